// Package config loads loxc settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete loxc configuration.
type Config struct {
	Log    Log    `toml:"log" yaml:"log"`
	Output Output `toml:"output" yaml:"output"`
	REPL   REPL   `toml:"repl" yaml:"repl"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text, json, logfmt
}

// Output configures rendered output.
type Output struct {
	Color string `toml:"color" yaml:"color"` // auto, always, never
}

// REPL configures the interactive loop.
type REPL struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	ContinuePrompt string `toml:"continue_prompt" yaml:"continue_prompt"`
	HistoryFile    string `toml:"history_file" yaml:"history_file"`
}

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// EnvVar names the variable Discover checks first.
const EnvVar = "LOXC_CONFIG"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    Log{Level: "warn", Format: "text"},
		Output: Output{Color: "auto"},
		REPL:   REPL{Prompt: "> ", ContinuePrompt: ". "},
	}
}

// Load reads path, decoding it as YAML for .yaml/.yml and TOML otherwise.
// Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format over the defaults and validates
// the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	}
	cfg.REPL.HistoryFile = os.ExpandEnv(cfg.REPL.HistoryFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads the first config file found in $LOXC_CONFIG, ./loxc.toml,
// ./loxc.yaml, then $HOME/.config/loxc/config.toml. With none present it
// returns Default() and an empty path.
func Discover() (*Config, string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	for _, p := range searchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}
	return Default(), "", nil
}

func searchPaths() []string {
	paths := []string{"loxc.toml", "loxc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "loxc", "config.toml"))
	}
	return paths
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
