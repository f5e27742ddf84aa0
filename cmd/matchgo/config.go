package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the persistent matchgo settings. Every field can be
// overridden by the corresponding command-line flag.
type config struct {
	Root               string `yaml:"root"`
	Limit              int    `yaml:"limit"`
	Scorer             string `yaml:"scorer"`
	AlwaysShowDotFiles bool   `yaml:"always_show_dot_files"`
	NeverShowDotFiles  bool   `yaml:"never_show_dot_files"`
}

func defaultConfig() config {
	return config{Root: "."}
}

// loadConfig reads the YAML config at path. With an empty path, the default
// location is tried and a missing file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		base, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(base, "matchgo", "config.yaml")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	return cfg, nil
}
