// Package config loads the evaluator's runtime settings: a TOML file on
// disk, overridden by a single environment variable.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds settings the cmd/vivian CLI hands to eval.New.
type Config struct {
	Evaluator EvaluatorConfig `toml:"evaluator"`
}

// EvaluatorConfig mirrors eval.Option's tunables.
type EvaluatorConfig struct {
	Seed int64 `toml:"seed"`
}

// Load reads path (if non-empty and present) as TOML into a Config, then
// applies the VIVIAN_SEED environment override on top. A missing path is
// not an error — it just means an all-zero-value Config before the env
// override runs; a malformed file is.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, err
			}
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if raw := os.Getenv("VIVIAN_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, err
		}
		cfg.Evaluator.Seed = seed
	}

	return cfg, nil
}
