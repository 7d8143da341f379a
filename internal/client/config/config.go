// Package config handles configuration for the uploader CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the uploader CLI.
//
// Fields:
//   - PresignEndpoint: credential endpoint issuing short-lived URLs.
//   - UploadEndpoint: managed batch upload endpoint.
//   - ManifestWriteEndpoint: manifest write endpoint; empty means write the
//     manifest through a presigned PUT instead.
//   - ManifestObjectKey: the fixed object key of the shared manifest.
//   - UploadFolder: remote folder uploaded files are stored under.
//   - RequestTimeout: per-call HTTP timeout.
type Config struct {
	PresignEndpoint       string
	UploadEndpoint        string
	ManifestWriteEndpoint string
	ManifestObjectKey     string
	UploadFolder          string
	RequestTimeout        time.Duration
}

// LoadDefaults populates c with the observed deployment's defaults.
func (c *Config) LoadDefaults() {
	c.PresignEndpoint = "http://127.0.0.1:8080/generatePresignedUrl"
	c.UploadEndpoint = "http://127.0.0.1:8080/uploadApi/upload"
	c.ManifestWriteEndpoint = "http://127.0.0.1:8080/writeAllMedia"
	c.ManifestObjectKey = "slideconfig/dixymedia/config/allmedia.json"
	c.UploadFolder = "slideconfig/dixymedia"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
