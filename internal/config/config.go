// Package config loads the optional .pseudorc.yaml that supplies default
// CLI flag values. Explicit flags always win over a config file value.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config mirrors the subset of `pseudo` CLI flags that can be defaulted
// from a config file.
type Config struct {
	NoNewlines  bool   `yaml:"no_newlines"`
	Trace       bool   `yaml:"trace"`
	History     bool   `yaml:"history"`
	HistoryPath string `yaml:"history_path"`
}

const fileName = ".pseudorc.yaml"

// Load reads .pseudorc.yaml from the current working directory, falling
// back to the user's home directory. A missing file is not an error: it
// yields a zero-value Config so every flag keeps its cobra default.
func Load() (*Config, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
