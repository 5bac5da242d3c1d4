package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/swantron/funcdemo/internal/counter"
	"github.com/swantron/funcdemo/internal/swap"
	"github.com/swantron/funcdemo/pkg/report"
	"gopkg.in/yaml.v3"
)

// SwapConfig holds the operands for the swap demonstration
type SwapConfig struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
	C int `yaml:"c"`
}

// LoopConfig holds settings for the counter loop
type LoopConfig struct {
	Start int `yaml:"start"`
}

// Config holds all configuration shared by swapdemo and staticloop
type Config struct {
	Swap SwapConfig `yaml:"swap"`
	Loop LoopConfig `yaml:"loop"`

	// Output is one of the formats known to pkg/report
	Output string `yaml:"output"`

	// Logging
	Verbose bool `yaml:"verbose"`
	LogJSON bool `yaml:"log_json"`
}

// DefaultConfig returns a Config that reproduces the original programs.
func DefaultConfig() *Config {
	ops := swap.DefaultOperands()
	return &Config{
		Swap:   SwapConfig{A: ops.A, B: ops.B, C: ops.C},
		Loop:   LoopConfig{Start: counter.DefaultStart},
		Output: string(report.FormatText),
	}
}

// Load builds the configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. The YAML file at path, if path is not empty
// 3. Defaults
//
// The result is not validated; ApplyFlags validates once flags have had
// their say.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyFlags copies every flag that was set on the command line onto the
// config. Flags win over the file and the environment.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "a":
			c.Swap.A, err = fs.GetInt("a")
		case "b":
			c.Swap.B, err = fs.GetInt("b")
		case "c":
			c.Swap.C, err = fs.GetInt("c")
		case "start":
			c.Loop.Start, err = fs.GetInt("start")
		case "output":
			c.Output, err = fs.GetString("output")
		case "verbose":
			c.Verbose, err = fs.GetBool("verbose")
		case "log-json":
			c.LogJSON, err = fs.GetBool("log-json")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}

	return c.Validate()
}

// Validate checks that the configuration can be acted on
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	return nil
}

// Operands returns the swap operands as the domain type
func (c *Config) Operands() swap.Operands {
	return swap.Operands{A: c.Swap.A, B: c.Swap.B, C: c.Swap.C}
}

// Format returns the parsed output format. Call Validate first.
func (c *Config) Format() report.Format {
	return report.Format(c.Output)
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"FUNCDEMO_SWAP_A", &cfg.Swap.A},
		{"FUNCDEMO_SWAP_B", &cfg.Swap.B},
		{"FUNCDEMO_SWAP_C", &cfg.Swap.C},
		{"FUNCDEMO_LOOP_START", &cfg.Loop.Start},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("FUNCDEMO_OUTPUT"); v != "" {
		cfg.Output = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"FUNCDEMO_VERBOSE", &cfg.Verbose},
		{"FUNCDEMO_LOG_JSON", &cfg.LogJSON},
	}
	for _, e := range bools {
		if v := os.Getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", e.key, err)
			}
			*e.dst = b
		}
	}

	return nil
}
