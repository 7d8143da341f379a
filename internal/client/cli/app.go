// Package cli wires the upload pipeline together and exposes it as an
// interactive prompt.
package cli

import (
	"os"

	"github.com/digislides/mediup/internal/client/api"
	"github.com/digislides/mediup/internal/client/config"
	"github.com/digislides/mediup/internal/client/manifest"
	"github.com/digislides/mediup/internal/client/staging"
	"github.com/digislides/mediup/internal/client/upload"
	"github.com/digislides/mediup/internal/logging"
)

type App struct {
	config       *config.Config
	store        *staging.Store
	orchestrator *upload.Orchestrator
	logger       logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stderr)

	rc := api.NewHTTPClient(c.RequestTimeout)
	presign := api.NewPresignClient(rc, c.PresignEndpoint)
	blob := api.NewBlobUploadClient(rc, c.UploadEndpoint)
	manifestClient := api.NewManifestClient(rc, presign, c.ManifestObjectKey, c.ManifestWriteEndpoint)

	store := staging.NewStore(&staging.TempFileAllocator{})
	engine := manifest.NewSyncEngine(manifestClient, logger)
	orchestrator := upload.NewOrchestrator(store, blob, engine, c.UploadFolder, logger)

	return &App{
		config:       c,
		store:        store,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}
