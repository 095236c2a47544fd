package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
)

const envPrefix = "PAGERANK_"

// applyEnvVars overrides c with PAGERANK_* variables.
// A .env file in the working directory is loaded first; it does not
// override variables already set.
func applyEnvVars(c *Config) error {
	_ = godotenv.Load()

	var err error
	if c.Damping, err = readFloatEnvVarOr("DAMPING", c.Damping); err != nil {
		return err
	}
	if c.Samples, err = readIntEnvVarOr("SAMPLES", c.Samples); err != nil {
		return err
	}
	if c.Threshold, err = readFloatEnvVarOr("THRESHOLD", c.Threshold); err != nil {
		return err
	}
	if c.MaxIterations, err = readIntEnvVarOr("MAX_ITERATIONS", c.MaxIterations); err != nil {
		return err
	}
	if c.Seed, err = readUint64EnvVarOr("SEED", c.Seed); err != nil {
		return err
	}
	if c.Precision, err = readIntEnvVarOr("PRECISION", c.Precision); err != nil {
		return err
	}
	if c.Verbose, err = readBoolEnvVarOr("VERBOSE", c.Verbose); err != nil {
		return err
	}
	return nil
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(envPrefix + name)
	if value == "" {
		return "", xerrors.Errorf("%s%s not set", envPrefix, name)
	}
	return value, nil
}

func readIntEnvVarOr(name string, or int) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return or, xerrors.Errorf("could not convert %s%s to a number: %w", envPrefix, name, err)
	}
	return value, nil
}

func readUint64EnvVarOr(name string, or uint64) (uint64, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return or, xerrors.Errorf("could not convert %s%s to a number: %w", envPrefix, name, err)
	}
	return value, nil
}

func readFloatEnvVarOr(name string, or float64) (float64, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return or, xerrors.Errorf("could not convert %s%s to a number: %w", envPrefix, name, err)
	}
	return value, nil
}

func readBoolEnvVarOr(name string, or bool) (bool, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or, xerrors.Errorf("could not convert %s%s to a boolean: %w", envPrefix, name, err)
	}
	return value, nil
}
