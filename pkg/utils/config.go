package utils

import (
	"os"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of a run.
type Config struct {
	// Probability that the surfer follows a link instead of jumping to a
	// random page.
	Damping float64 `yaml:"damping"`
	// Number of pages visited by the sampling estimator.
	Samples int `yaml:"samples"`
	// Largest per-page change between sweeps accepted as converged.
	Threshold float64 `yaml:"threshold"`
	// Sweeps after which the iterative estimator gives up.
	MaxIterations int `yaml:"max_iterations"`
	// Sampling seed; 0 picks a random one.
	Seed uint64 `yaml:"seed"`
	// Decimal places printed for every rank.
	Precision int  `yaml:"precision"`
	Verbose   bool `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Damping:       0.85,
		Samples:       10000,
		Threshold:     0.001,
		MaxIterations: 1000,
		Seed:          0,
		Precision:     4,
		Verbose:       false,
	}
}

// LoadConfiguration starts from the defaults, applies the yaml file at path
// (skipped when path is empty) and then the PAGERANK_* environment variables.
// The result is not validated.
func LoadConfiguration(path string) (config Config, err error) {
	config = DefaultConfig()
	if path != "" {
		var bytes []byte
		bytes, err = os.ReadFile(path)
		if err != nil {
			err = xerrors.Errorf("read: %w", err)
			return
		}
		// Parse the file on top of the defaults
		if err = yaml.Unmarshal(bytes, &config); err != nil {
			err = xerrors.Errorf("parse: %w", err)
			return
		}
	}
	if err = applyEnvVars(&config); err != nil {
		err = xerrors.Errorf("environment: %w", err)
		return
	}
	return
}

// Validate reports every out-of-range parameter at once.
func (c Config) Validate() error {
	var result *multierror.Error
	// NaN fails every comparison
	if !(c.Damping >= 0 && c.Damping <= 1) {
		result = multierror.Append(result, xerrors.Errorf("damping must be in the range [0, 1], got %v", c.Damping))
	}
	if c.Samples <= 0 {
		result = multierror.Append(result, xerrors.Errorf("samples must be positive, got %d", c.Samples))
	}
	if !(c.Threshold > 0 && c.Threshold < 1) {
		result = multierror.Append(result, xerrors.Errorf("threshold must be in the range (0, 1), got %v", c.Threshold))
	}
	if c.MaxIterations <= 0 {
		result = multierror.Append(result, xerrors.Errorf("max_iterations must be positive, got %d", c.MaxIterations))
	}
	if c.Precision < 0 || c.Precision > 15 {
		result = multierror.Append(result, xerrors.Errorf("precision must be in the range [0, 15], got %d", c.Precision))
	}
	return result.ErrorOrNil()
}
