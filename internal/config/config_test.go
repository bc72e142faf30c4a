package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.NotEmpty(t, cfg.CredentialsPath)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(path, &Config{
		APIURL:          "https://expenses.example.com/api",
		Timeout:         30 * time.Second,
		CredentialsPath: "/tmp/creds.yaml",
		ActivityLogPath: "/tmp/activity.csv",
	}))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://expenses.example.com/api", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKWISE_API_URL", "http://override.example.com/api")
	t.Setenv("TRACKWISE_TIMEOUT", "5s")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://override.example.com/api", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.APIURL = "ftp://nope"
	cfg.Timeout = -time.Second
	cfg.CredentialsPath = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme")
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "credentials")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	orig := Default()
	orig.APIURL = "https://api.example.com/api"
	require.NoError(t, Save(path, orig))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig.APIURL, loaded.APIURL)
}
