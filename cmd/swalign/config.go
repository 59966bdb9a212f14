package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config mirrors the flag set so defaults can live in a YAML file.
// Precedence: built-in defaults < config file < explicit flags.
type config struct {
	Query       string `yaml:"query"`
	Subject     string `yaml:"subject"`
	QueryName   string `yaml:"query_name"`
	SubjectName string `yaml:"subject_name"`
	Matrix      string `yaml:"matrix"`
	Match       int    `yaml:"match"`
	Mismatch    int    `yaml:"mismatch"`
	Gap         int    `yaml:"gap"`
	GapMode     string `yaml:"gap_mode"`
	Mode        string `yaml:"mode"`
	Workers     int    `yaml:"workers"`
	Width       int    `yaml:"width"`
	Out         string `yaml:"out"`
}

// defaultConfig returns the built-in defaults: a +3/-3 uniform scheme
// with a linear -2 gap, all co-optimal alignments, sequential traceback.
func defaultConfig() config {
	return config{
		Match:    3,
		Mismatch: -3,
		Gap:      2,
		GapMode:  "linear",
		Mode:     "all",
		Workers:  1,
		Width:    60,
	}
}

// loadConfig overlays the YAML file at path onto the built-in defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("loadConfig: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loadConfig: %s: %w", path, err)
	}

	return cfg, nil
}
