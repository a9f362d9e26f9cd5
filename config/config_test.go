package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nistcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "NIST-STANDARDS.md", cfg.InputFile)
	assert.Equal(t, "update_report.md", cfg.ReportFile)
	assert.Equal(t, "check_results.json", cfg.ResultsFile)
	assert.Equal(t, 24*time.Hour, cfg.CheckWindow)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"csrc", "nvlpubs"}, cfg.Subdomains)
	assert.Equal(t, "GITHUB_OUTPUT", cfg.OutputEnv)
	assert.NoError(t, Validate(cfg))
}

func TestDefault_DoesNotShareSubdomains(t *testing.T) {
	cfg := Default()
	cfg.Subdomains[0] = "changed"

	assert.Equal(t, "csrc", DefaultSubdomains[0])
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
input_file: docs/STANDARDS.md
request_timeout: 5s
check_window: 48h
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "docs/STANDARDS.md", cfg.InputFile)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 48*time.Hour, cfg.CheckWindow)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultReportFile, cfg.ReportFile)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "input_file: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.RequestTimeout = 0 },
			wantErr: "RequestTimeout",
		},
		{
			name:    "negative window",
			mutate:  func(c *Config) { c.CheckWindow = -time.Hour },
			wantErr: "CheckWindow",
		},
		{
			name:    "missing input",
			mutate:  func(c *Config) { c.InputFile = "" },
			wantErr: "InputFile",
		},
		{
			name:    "bad domain",
			mutate:  func(c *Config) { c.Domain = "not a domain" },
			wantErr: "Domain",
		},
		{
			name:    "bad subdomain",
			mutate:  func(c *Config) { c.Subdomains = []string{"csrc", "a.b"} },
			wantErr: "Subdomains[1]",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "loglevel",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "logformat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Subdomains[0] = "www2"

	assert.Equal(t, "csrc", cfg.Subdomains[0])
}
