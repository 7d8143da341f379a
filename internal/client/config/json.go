package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/digislides/mediup/internal/flagx"
	"github.com/digislides/mediup/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	PresignEndpoint       string         `json:"presign_endpoint"`
	UploadEndpoint        string         `json:"upload_endpoint"`
	ManifestWriteEndpoint string         `json:"manifest_write_endpoint"`
	ManifestObjectKey     string         `json:"manifest_object_key"`
	UploadFolder          string         `json:"upload_folder"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; no file means nothing is loaded.
// Empty fields keep their previous value, so a partial file is fine.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.PresignEndpoint != "" {
		cfg.PresignEndpoint = jc.PresignEndpoint
	}
	if jc.UploadEndpoint != "" {
		cfg.UploadEndpoint = jc.UploadEndpoint
	}
	if jc.ManifestWriteEndpoint != "" {
		cfg.ManifestWriteEndpoint = jc.ManifestWriteEndpoint
	}
	if jc.ManifestObjectKey != "" {
		cfg.ManifestObjectKey = jc.ManifestObjectKey
	}
	if jc.UploadFolder != "" {
		cfg.UploadFolder = jc.UploadFolder
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
