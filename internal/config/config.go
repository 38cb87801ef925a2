// Package config loads the optional TOML configuration of the contfrac
// command line tool. Everything has a sensible default, so having no
// configuration file at all is the common case.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Expression rendering defaults for the expr subcommand.
type ExprConfig struct {
	OmitSpaces  bool `toml:"omit_spaces"`
	ForceFloats bool `toml:"force_floats"`
}

// Config holds the tool defaults. Flags override it per invocation.
type Config struct {
	MaxTerms int        `toml:"max_terms"`
	MaxGrade int        `toml:"max_grade"`
	Expr     ExprConfig `toml:"expr"`
}

// Returns the built-in defaults: at most 30 coefficients and
// convergents up to grade 10, matching the library documentation
// examples.
func Default() Config {
	return Config{MaxTerms: 30, MaxGrade: 10}
}

// Loads the configuration from the given path. With an empty path the
// default locations are probed instead ("./contfrac.toml", then
// "contfrac/config.toml" under the user configuration directory) and
// a missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = probe()
		if path == "" { return cfg, nil }
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.MaxTerms <= 0 || cfg.MaxGrade < 0 {
		return Default(), fmt.Errorf("config %s: max_terms must be positive and max_grade non-negative", path)
	}
	return cfg, nil
}

func probe() string {
	candidates := []string{"contfrac.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "contfrac", "config.toml"))
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
