package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
callsign = "N0CALL"
passcode = "12345"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "N0CALL", cfg.Callsign)
	assert.Equal(t, defaultHost, cfg.Host)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultFilter, cfg.Filter)
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	path := writeTempConfig(t, `
callsign = "N0CALL"
passcode = "12345"
host = "aprs.example.com"
port = 10152
filter = "r/40/-74/50"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "aprs.example.com", cfg.Host)
	assert.Equal(t, 10152, cfg.Port)
	assert.Equal(t, "r/40/-74/50", cfg.Filter)
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestNewFromConfigWiresClient(t *testing.T) {
	cfg := &Config{
		Callsign: "N0CALL",
		Passcode: "12345",
		Host:     "aprs.example.com",
		Port:     10152,
		Filter:   "t/poimqstunw",
		Software: "mycoolclient",
		Version:  "2.1",
	}

	c := NewFromConfig(cfg, Callbacks{})

	assert.Equal(t, "N0CALL", c.Callsign)
	assert.Equal(t, "aprs.example.com", c.Host)
	assert.Equal(t, 10152, c.Port)
	assert.Equal(t, "t/poimqstunw", c.Filter)
	assert.Equal(t, "mycoolclient", c.Software)
	assert.Equal(t, "2.1", c.Version)
}

func TestNewFromConfigDefaultsVersionWhenSoftwareSetButVersionEmpty(t *testing.T) {
	cfg := &Config{
		Callsign: "N0CALL",
		Software: "mycoolclient",
	}

	c := NewFromConfig(cfg, Callbacks{})

	assert.Equal(t, "1.0", c.Version)
}
