package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.NotEmpty(t, cfg.PresignEndpoint)
	require.NotEmpty(t, cfg.UploadEndpoint)
	require.Equal(t, "slideconfig/dixymedia/config/allmedia.json", cfg.ManifestObjectKey)
	require.Equal(t, "slideconfig/dixymedia", cfg.UploadFolder)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"presign_endpoint": "https://media.example.com/presign",
		"upload_folder": "customer/media",
		"request_timeout": "5s"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"cli", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://media.example.com/presign", cfg.PresignEndpoint)
	require.Equal(t, "customer/media", cfg.UploadFolder)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)

	// untouched fields keep their defaults
	require.Equal(t, "slideconfig/dixymedia/config/allmedia.json", cfg.ManifestObjectKey)
}

func TestParseFlags_Overlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cli", "-u", "https://media.example.com/upload", "-t", "10"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "https://media.example.com/upload", cfg.UploadEndpoint)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
