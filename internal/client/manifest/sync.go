package manifest

import (
	"context"

	"github.com/digislides/mediup/internal/client/models"
	"github.com/digislides/mediup/internal/logging"
)

// Store is the remote manifest object: whole-object read, whole-object
// overwrite.
type Store interface {
	Read(ctx context.Context) ([]models.MediaRecord, error)
	Write(ctx context.Context, records []models.MediaRecord) error
}

// SyncEngine appends newly uploaded media to the shared manifest with a
// read-modify-write round trip. There is no concurrency token on the object,
// so two engines racing can lose each other's appends (last writer wins);
// that staleness window is accepted for this deployment.
type SyncEngine struct {
	store Store
	log   logging.Logger
}

func NewSyncEngine(store Store, log logging.Logger) *SyncEngine {
	return &SyncEngine{store: store, log: log}
}

// AppendRecords fetches the current manifest, appends one record per upload
// result (preserving existing order, then input order) and writes the result
// back. It reports failure instead of returning an error: the uploaded blobs
// are kept either way, the caller only downgrades the outcome to a warning.
func (e *SyncEngine) AppendRecords(ctx context.Context, uploaded []models.UploadResult) bool {
	existing, err := e.store.Read(ctx)
	if err != nil {
		e.log.Error(ctx, "manifest read failed", "error", err.Error())
		return false
	}

	combined := append(existing, MapRecords(uploaded)...)

	if err := e.store.Write(ctx, combined); err != nil {
		e.log.Error(ctx, "manifest write failed", "error", err.Error(), "records", len(combined))
		return false
	}

	e.log.Info(ctx, "manifest updated", "existing", len(existing), "added", len(uploaded))
	return true
}
