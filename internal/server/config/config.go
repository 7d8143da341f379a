// Package config handles configuration for the media server component,
// including defaults, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the media server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - S3AccessKey / S3SecretKey: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//     An empty S3BaseEndpoint means plain AWS S3.
//   - ManifestObjectKey: the fixed object key of the shared manifest.
//   - PresignExpiry: validity window of issued presigned URLs.
//   - CORSAllowedOrigins: origins allowed to call the API from a browser.
type Config struct {
	EndpointAddr       string
	S3AccessKey        string
	S3SecretKey        string
	S3Bucket           string
	S3Region           string
	S3BaseEndpoint     string
	ManifestObjectKey  string
	PresignExpiry      time.Duration
	CORSAllowedOrigins []string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "digisolutions-assets"
	c.S3Region = "eu-west-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ManifestObjectKey = "slideconfig/dixymedia/config/allmedia.json"
	c.PresignExpiry = 20 * time.Second
	c.CORSAllowedOrigins = []string{"http://localhost:5173", "http://localhost:5175"}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
