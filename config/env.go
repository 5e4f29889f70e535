package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvSeed     = "RATCHASE_SEED"
	EnvWidth    = "RATCHASE_WIDTH"
	EnvHeight   = "RATCHASE_HEIGHT"
	EnvLogLevel = "RATCHASE_LOG_LEVEL"
	EnvSaveApp  = "RATCHASE_SAVE_APP"
)

// LoadEnv loads an optional .env file and applies RATCHASE_* overrides.
// A missing file is fine; malformed values are reported and left at their defaults.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return ApplyEnv()
}

// ApplyEnv copies RATCHASE_* variables from the process environment into the config.
func ApplyEnv() error {
	var errs []error

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			World.Seed = seed
		}
	}
	if v, ok := os.LookupEnv(EnvWidth); ok {
		if n, err := positiveInt(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWidth, err))
		} else {
			C.Width = n
		}
	}
	if v, ok := os.LookupEnv(EnvHeight); ok {
		if n, err := positiveInt(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvHeight, err))
		} else {
			C.Height = n
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		C.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvSaveApp); ok && v != "" {
		C.AppName = v
	}

	return errors.Join(errs...)
}

func positiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
