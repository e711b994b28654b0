package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://127.0.0.1:8000/api/v1/", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.API.MaxPages)
	assert.False(t, cfg.Cache.AcceptSummaries)
	assert.Equal(t, 6, cfg.Browse.Limit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.Equal(t, "s0up4200/ocmovies", cfg.Update.Repository)
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(cfg *Config) { cfg.API.URL = "" },
			wantErr: "api.url is required",
		},
		{
			name:    "relative url",
			mutate:  func(cfg *Config) { cfg.API.URL = "api/v1/" },
			wantErr: "api.url must be an absolute http(s) URL",
		},
		{
			name:    "unsupported scheme",
			mutate:  func(cfg *Config) { cfg.API.URL = "ftp://example.com/api/" },
			wantErr: "api.url must be an absolute http(s) URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *Config) { cfg.API.Timeout = 0 },
			wantErr: "api.timeout must be positive",
		},
		{
			name:    "zero page budget",
			mutate:  func(cfg *Config) { cfg.API.MaxPages = 0 },
			wantErr: "api.max_pages must be positive",
		},
		{
			name:    "negative browse limit",
			mutate:  func(cfg *Config) { cfg.Browse.Limit = -1 },
			wantErr: "browse.limit must be positive",
		},
		{
			name:    "invalid log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid log format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `api:
  url: https://movies.example.com/api/v1/
  timeout: 5s
  max_pages: 3
cache:
  accept_summaries: true
browse:
  limit: 4
  categories:
    - Drama
    - Comedy
logging:
  level: debug
  format: json
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "https://movies.example.com/api/v1/", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.MaxPages)
	assert.True(t, cfg.Cache.AcceptSummaries)
	assert.Equal(t, 4, cfg.Browse.Limit)
	assert.Equal(t, []string{"Drama", "Comedy"}, cfg.Browse.Categories)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
	// untouched keys keep their defaults
	assert.Equal(t, "s0up4200/ocmovies", cfg.Update.Repository)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Logging.Level)

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level: loud")
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().API.URL, cfg.API.URL)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OCMOVIES_API_URL", "http://catalog.internal:9000/api/v1/")
	t.Setenv("OCMOVIES_BROWSE_LIMIT", "12")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://catalog.internal:9000/api/v1/", cfg.API.URL)
	assert.Equal(t, 12, cfg.Browse.Limit)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
