package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.validate())
	require.Equal(t, "info", c.LogLevel)
	require.Equal(t, "./", c.WriteLocation)
	require.Equal(t, "groupname", c.OrderBy)
	require.Equal(t, "asc", c.OrderWay)
	require.Equal(t, DownloaderHTTP, c.Downloader)
}

func TestConfig_TokenFromEnv(t *testing.T) {
	t.Setenv("GGN_TOKEN", "env-token")
	c := &Config{}
	require.NoError(t, c.validate())
	require.Equal(t, "env-token", c.Token)

	// A file-provided token wins over the environment.
	c = &Config{Token: "file-token"}
	require.NoError(t, c.validate())
	require.Equal(t, "file-token", c.Token)
}

func TestConfig_RejectsUnknownDownloader(t *testing.T) {
	c := &Config{Downloader: "ftp"}
	require.Error(t, c.validate())
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{
		"log_level": "debug",
		"token": "abc",
		"categories": ["Atari 2600"],
		"write_location": "/tmp/torrents",
		"downloader": "grab",
		"rate_limit": "5/second"
	}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0644))

	configPath = dir
	t.Cleanup(func() { configPath = "" })

	c := &Config{}
	require.NoError(t, c.loadConfig())
	require.Equal(t, "debug", c.LogLevel)
	require.Equal(t, "abc", c.Token)
	require.Equal(t, []string{"Atari 2600"}, c.Categories)
	require.Equal(t, "/tmp/torrents", c.WriteLocation)
	require.Equal(t, DownloaderGrab, c.Downloader)
	require.Equal(t, "5/second", c.RateLimit)
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	configPath = t.TempDir()
	t.Cleanup(func() { configPath = "" })

	c := &Config{}
	require.NoError(t, c.loadConfig())
	require.Equal(t, "info", c.LogLevel)
}
