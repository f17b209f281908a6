// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in defaults reproduce the fixed filenames of the original export job,
// so running with no flags and no config file behaves exactly like before.
const (
	DefaultFilter    = "log57-filter.csv"
	DefaultCovar     = "log57-covar.csv"
	DefaultOutput    = "log57-covar-fixed.csv"
	DefaultWidth     = 9
	DefaultDelimiter = ","
)

// Config mirrors the optional YAML config file.
type Config struct {
	Filter    string `yaml:"filter"`
	Covar     string `yaml:"covar"`
	Output    string `yaml:"output"`
	Width     int    `yaml:"width"`
	Delimiter string `yaml:"delimiter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Filter:    DefaultFilter,
		Covar:     DefaultCovar,
		Output:    DefaultOutput,
		Width:     DefaultWidth,
		Delimiter: DefaultDelimiter,
	}
}

// Load reads a YAML config file. Unknown keys are rejected; fields the file
// leaves unset fall back to the built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := Default()
	if file.Filter != "" {
		cfg.Filter = file.Filter
	}
	if file.Covar != "" {
		cfg.Covar = file.Covar
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Width != 0 {
		cfg.Width = file.Width
	}
	if file.Delimiter != "" {
		cfg.Delimiter = file.Delimiter
	}
	return cfg, nil
}
