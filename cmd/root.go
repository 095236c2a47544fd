// Package cmd provides the pagerank command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/lioia/corpus-pagerank/pkg/report"
	"github.com/lioia/corpus-pagerank/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

// rootFlags holds the values bound to the command line.
type rootFlags struct {
	configPath string
	output     string
	config     utils.Config
}

// NewRootCmd builds the pagerank command and its subcommands.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{config: utils.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "pagerank <corpus>",
		Short: "Rank the pages of a directory of HTML files",
		Long: `Rank every .html page of a corpus directory twice: once by sampling a
random surfer and once by iterating the PageRank recurrence until it converges.

Parameters are read from the defaults, then the --config yaml file, then the
PAGERANK_* environment variables (a .env file is loaded if present) and finally
the flags given on the command line.

Examples:
  pagerank corpus0
  pagerank corpus0 --samples 100000 --seed 42
  pagerank corpus0 --damping 0.9 --threshold 0.0001 -o ranks.txt`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, flags, args[0])
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&flags.configPath, "config", "", "yaml configuration file")
	pflags.Float64Var(&flags.config.Damping, "damping", flags.config.Damping, "probability of following a link")
	pflags.IntVar(&flags.config.Samples, "samples", flags.config.Samples, "pages visited by the sampling estimator")
	pflags.Float64Var(&flags.config.Threshold, "threshold", flags.config.Threshold, "convergence threshold of the iterative estimator")
	pflags.IntVar(&flags.config.MaxIterations, "max-iterations", flags.config.MaxIterations, "sweeps before the iterative estimator gives up")
	pflags.Uint64Var(&flags.config.Seed, "seed", flags.config.Seed, "sampling seed (0 for random)")
	pflags.IntVar(&flags.config.Precision, "precision", flags.config.Precision, "decimal places printed for every rank")
	pflags.BoolVarP(&flags.config.Verbose, "verbose", "v", flags.config.Verbose, "log estimator progress")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "also write the results to this file")

	cmd.AddCommand(newGraphCmd(flags))
	return cmd
}

// Execute runs the command line until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig layers file, environment and explicitly set flags.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (utils.Config, error) {
	config, err := utils.LoadConfiguration(flags.configPath)
	if err != nil {
		return config, xerrors.Errorf("could not load configuration: %w", err)
	}
	set := cmd.Flags()
	if set.Changed("damping") {
		config.Damping = flags.config.Damping
	}
	if set.Changed("samples") {
		config.Samples = flags.config.Samples
	}
	if set.Changed("threshold") {
		config.Threshold = flags.config.Threshold
	}
	if set.Changed("max-iterations") {
		config.MaxIterations = flags.config.MaxIterations
	}
	if set.Changed("seed") {
		config.Seed = flags.config.Seed
	}
	if set.Changed("precision") {
		config.Precision = flags.config.Precision
	}
	if set.Changed("verbose") {
		config.Verbose = flags.config.Verbose
	}
	if err := config.Validate(); err != nil {
		return config, xerrors.Errorf("invalid configuration: %w", err)
	}
	utils.InitLog(config.Verbose, cmd.ErrOrStderr())
	return config, nil
}

func estimatorOptions(config utils.Config) []pagerank.Option {
	return []pagerank.Option{
		pagerank.WithDamping(config.Damping),
		pagerank.WithSamples(config.Samples),
		pagerank.WithThreshold(config.Threshold),
		pagerank.WithMaxIterations(config.MaxIterations),
		pagerank.WithSeed(config.Seed),
	}
}

func runRank(cmd *cobra.Command, flags *rootFlags, directory string) error {
	config, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	corpus, err := graph.Crawl(directory)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := estimatorOptions(config)
	sampled, err := pagerank.Sample(ctx, corpus, opts...)
	if err != nil {
		return err
	}
	iterated, err := pagerank.Iterate(ctx, corpus, opts...)
	if err != nil {
		return err
	}

	sections := []report.Section{
		{Title: fmt.Sprintf("PageRank Results from Sampling (n = %d)", config.Samples), Ranks: sampled},
		{Title: "PageRank Results from Iteration", Ranks: iterated},
	}
	if err := report.PrintAll(cmd.OutOrStdout(), sections, config.Precision); err != nil {
		return err
	}
	if flags.output != "" {
		return report.Write(flags.output, sections, config.Precision)
	}
	return nil
}
