package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

type graphFlags struct {
	output string
	format string
}

func newGraphCmd(root *rootFlags) *cobra.Command {
	flags := &graphFlags{}
	cmd := &cobra.Command{
		Use:   "graph <corpus>",
		Short: "Render the corpus link graph",
		Long: `Render the link graph of a corpus with Graphviz. Every page is labelled
with its rank from the iterative estimator.

The format is taken from --format, or else from the extension of --output;
without either the graph is written to stdout in dot format.

Examples:
  pagerank graph corpus0
  pagerank graph corpus0 -o corpus0.svg
  pagerank graph corpus0 -o corpus0.out --format png`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, root, flags, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write (stdout when empty)")
	cmd.Flags().StringVar(&flags.format, "format", "", "dot, svg, png or jpg")
	return cmd
}

func graphFormat(flags *graphFlags) string {
	if flags.format != "" {
		return flags.format
	}
	if ext := strings.TrimPrefix(filepath.Ext(flags.output), "."); ext != "" {
		return ext
	}
	return "dot"
}

func runGraph(cmd *cobra.Command, root *rootFlags, flags *graphFlags, directory string) error {
	config, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	format := graphFormat(flags)
	if _, err := graph.ParseFormat(format); err != nil {
		return err
	}
	corpus, err := graph.Crawl(directory)
	if err != nil {
		return err
	}
	ranks, err := pagerank.Iterate(cmd.Context(), corpus, estimatorOptions(config)...)
	if err != nil {
		return err
	}

	if flags.output == "" {
		return graph.Render(cmd.Context(), corpus, ranks, format, cmd.OutOrStdout())
	}
	file, err := os.Create(flags.output)
	if err != nil {
		return xerrors.Errorf("could not create %s: %w", flags.output, err)
	}
	defer file.Close()
	if err := graph.Render(cmd.Context(), corpus, ranks, format, file); err != nil {
		return err
	}
	return file.Close()
}
