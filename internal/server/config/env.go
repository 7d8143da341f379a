package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays Config with environment variables. AWS credentials use
// the conventional variable names so the same environment works for other
// AWS tooling.
func parseEnv(cfg *Config) {
	overlay(&cfg.EndpointAddr, "MEDIUP_ADDR")
	overlay(&cfg.S3AccessKey, "AWS_ACCESS_KEY_ID")
	overlay(&cfg.S3SecretKey, "AWS_SECRET_ACCESS_KEY")
	overlay(&cfg.S3Bucket, "MEDIUP_S3_BUCKET")
	overlay(&cfg.S3Region, "MEDIUP_S3_REGION")
	overlay(&cfg.S3BaseEndpoint, "MEDIUP_S3_ENDPOINT")
	overlay(&cfg.ManifestObjectKey, "MEDIUP_MANIFEST_KEY")

	if v := os.Getenv("MEDIUP_PRESIGN_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PresignExpiry = d
		}
	}

	if v := os.Getenv("MEDIUP_CORS_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = parseList(v)
	}
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func parseList(raw string) []string {
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
