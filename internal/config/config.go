// Package config loads the cardshuffle configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ggardner42/card-server/entropy"
)

// Config is the complete cardshuffle configuration.
type Config struct {
	Source SourceConfig `hcl:"source,block"`
	Verify VerifyConfig `hcl:"verify,block"`
}

// SourceConfig describes the randomness source.
type SourceConfig struct {
	// Path is a device file to read entropy from. Empty means the operating
	// system's default secure source.
	Path string `hcl:"path,optional"`

	// BlockSize is the number of bytes fetched per refill.
	BlockSize int `hcl:"block_size,optional"`
}

// VerifyConfig holds defaults for the verify command.
type VerifyConfig struct {
	Trials  int `hcl:"trials,optional"`
	Max     int `hcl:"max,optional"`
	Workers int `hcl:"workers,optional"`
}

// rawConfig mirrors Config with optional blocks for decoding.
type rawConfig struct {
	Source *SourceConfig `hcl:"source,block"`
	Verify *VerifyConfig `hcl:"verify,block"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path:      "",
			BlockSize: entropy.DefaultBlockSize,
		},
		Verify: VerifyConfig{
			Trials: 100000,
			Max:    52,
		},
	}
}

// Load reads an HCL configuration from filename, filling unset values from
// Default. An empty filename or a missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	if raw.Source != nil {
		if raw.Source.Path != "" {
			cfg.Source.Path = raw.Source.Path
		}
		if raw.Source.BlockSize > 0 {
			cfg.Source.BlockSize = raw.Source.BlockSize
		}
	}
	if raw.Verify != nil {
		if raw.Verify.Trials > 0 {
			cfg.Verify.Trials = raw.Verify.Trials
		}
		if raw.Verify.Max > 0 {
			cfg.Verify.Max = raw.Verify.Max
		}
		if raw.Verify.Workers > 0 {
			cfg.Verify.Workers = raw.Verify.Workers
		}
	}
	return cfg, nil
}
