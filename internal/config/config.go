// Package config loads drawer configuration.
//
// Sources are layered, later ones winning:
//  1. built-in defaults
//  2. a YAML file, when a path is given
//  3. a .env file in the working directory, if present
//  4. DRAWER_* environment variables
//
// The merged result is checked against an embedded CUE schema.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DRAWER_"

// ErrInvalidConfig indicates the merged configuration failed the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds drawer settings.
type Config struct {
	Database       string        `yaml:"database" env:"DATABASE"`
	Organization   string        `yaml:"organization" env:"ORGANIZATION"`
	CurrencySymbol string        `yaml:"currency_symbol" env:"CURRENCY_SYMBOL"`
	LogLevel       string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat      string        `yaml:"log_format" env:"LOG_FORMAT"`
	Denominations  Denominations `yaml:"denominations" envPrefix:"DENOMINATIONS_"`
}

// Denominations overrides the built-in catalog. Empty lists keep the defaults.
type Denominations struct {
	Bill []float64 `yaml:"bill" env:"BILL" envSeparator:","`
	Coin []float64 `yaml:"coin" env:"COIN" envSeparator:","`
	Roll []float64 `yaml:"roll" env:"ROLL" envSeparator:","`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:       "cashdrawer.db",
		CurrencySymbol: "$",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Catalog builds the denomination catalog from the configuration.
func (c Config) Catalog() drawer.Catalog {
	return drawer.NewCatalog(c.Denominations.Bill, c.Denominations.Coin, c.Denominations.Roll)
}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// Path is the YAML file to read. Empty skips the file layer.
	Path string

	// DotEnv is the .env file to load into the process environment.
	// Empty means ".env"; a missing file is ignored.
	DotEnv string

	// Environment replaces the process environment when non-nil.
	// The .env layer is skipped in that case.
	Environment map[string]string
}

// Load merges every configuration layer and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		if err := readFile(opts.Path, &cfg); err != nil {
			return nil, err
		}
	}

	envOpts := env.Options{Prefix: EnvPrefix}
	if opts.Environment != nil {
		envOpts.Environment = opts.Environment
	} else {
		dotenv := opts.DotEnv
		if dotenv == "" {
			dotenv = ".env"
		}
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: read %s: %w", dotenv, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config.Load: parse %s: %w", path, err)
	}
	return nil
}
