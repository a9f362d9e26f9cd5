// Package config holds the immutable run configuration for nistcheck.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInputFile      = "NIST-STANDARDS.md"
	DefaultReportFile     = "update_report.md"
	DefaultResultsFile    = "check_results.json"
	DefaultDomain         = "nist.gov"
	DefaultCheckWindow    = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "NIST-Compliance-Guide-Bot/1.0 (https://github.com/CodeSolutionsLLC/nist-compliance-guide)"
	DefaultReportTitle    = "NIST Publication Update Check Report"
	DefaultOutputEnv      = "GITHUB_OUTPUT"
)

// DefaultSubdomains are the optional host prefixes matched in front of the domain.
var DefaultSubdomains = []string{"csrc", "nvlpubs"}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"logformat"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=0"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}

// Config is fixed at process start and passed by value into each component.
type Config struct {
	InputFile   string `yaml:"input_file" validate:"required"`
	ReportFile  string `yaml:"report_file" validate:"required"`
	ResultsFile string `yaml:"results_file" validate:"required"`
	CSVFile     string `yaml:"csv_file"` // Optional CSV copy of the results

	Domain     string   `yaml:"domain" validate:"required,fqdn"`
	Subdomains []string `yaml:"subdomains" validate:"dive,required,alphanum"`

	CheckWindow    time.Duration `yaml:"check_window" validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`
	UserAgent      string        `yaml:"user_agent" validate:"required"`

	ReportTitle string `yaml:"report_title" validate:"required"`
	OutputEnv   string `yaml:"output_env"` // Env var naming the key=value sink; empty disables it

	Log LogConfig `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputFile:      DefaultInputFile,
		ReportFile:     DefaultReportFile,
		ResultsFile:    DefaultResultsFile,
		Domain:         DefaultDomain,
		Subdomains:     slices.Clone(DefaultSubdomains),
		CheckWindow:    DefaultCheckWindow,
		RequestTimeout: DefaultRequestTimeout,
		UserAgent:      DefaultUserAgent,
		ReportTitle:    DefaultReportTitle,
		OutputEnv:      DefaultOutputEnv,
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, Validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.Subdomains = slices.Clone(c.Subdomains)
	return c
}
