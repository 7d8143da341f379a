// Package upload drives one batch through the pipeline: staged files are
// encoded, uploaded as a single batch, and appended to the shared manifest,
// with per-file progress for the UI layer.
package upload

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/digislides/mediup/internal/client/encode"
	"github.com/digislides/mediup/internal/client/models"
	"github.com/digislides/mediup/internal/client/staging"
	"github.com/digislides/mediup/internal/logging"
)

// State of the current batch.
type State string

const (
	StateIdle      State = "idle"
	StateEncoding  State = "encoding"
	StateUploading State = "uploading"
	StateSyncing   State = "syncing"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// ErrEmptySelection marks a submit with nothing staged. It is a user notice,
// not a failure: no transition happens and no network call is made.
var ErrEmptySelection = errors.New("no files selected")

// ErrBusy marks a submit while a batch is already in flight. Cancellation
// mid-batch is not supported.
var ErrBusy = errors.New("upload already in progress")

// Uploader sends one encoded batch and returns positionally aligned results.
type Uploader interface {
	UploadBatch(ctx context.Context, payloads []encode.Payload, folder string) ([]models.UploadResult, error)
}

// Syncer appends upload results to the shared manifest, reporting success
// instead of failing the batch.
type Syncer interface {
	AppendRecords(ctx context.Context, uploaded []models.UploadResult) bool
}

// Summary is the aggregate outcome of one finished batch.
type Summary struct {
	Uploaded      []models.UploadResult
	ManifestSaved bool
}

// Message renders the user-facing notice for the batch.
func (s *Summary) Message() string {
	msg := fmt.Sprintf("%d file(s) uploaded successfully.", len(s.Uploaded))
	if !s.ManifestSaved {
		msg += " Note: saving the shared manifest failed; the slideshow may not see the new files yet."
	}
	return msg
}

// seam for tests
var encodeFile = encode.File

// Orchestrator owns the batch state machine. A batch is strictly sequential;
// the mutex only guards the state surface polled by the UI while Submit runs.
type Orchestrator struct {
	store    *staging.Store
	uploader Uploader
	syncer   Syncer
	folder   string
	log      logging.Logger

	mu       sync.Mutex
	state    State
	progress map[int]int
}

func NewOrchestrator(store *staging.Store, uploader Uploader, syncer Syncer, folder string, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		store:    store,
		uploader: uploader,
		syncer:   syncer,
		folder:   folder,
		log:      log,
		state:    StateIdle,
		progress: map[int]int{},
	}
}

// State returns the current batch state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Progress returns a copy of the per-item progress map, keyed by staged index.
func (o *Orchestrator) Progress() map[int]int {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[int]int, len(o.progress))
	for k, v := range o.progress {
		out[k] = v
	}
	return out
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) setProgress(idx, pct int) {
	o.mu.Lock()
	o.progress[idx] = pct
	o.mu.Unlock()
}

func (o *Orchestrator) resetProgress(n int) {
	o.mu.Lock()
	o.progress = make(map[int]int, n)
	for i := 0; i < n; i++ {
		o.progress[i] = 0
	}
	o.mu.Unlock()
}

// Submit runs the staged selection through encode, upload and manifest sync.
//
// An encode or upload failure fails the whole batch: state becomes Failed and
// the staged files stay put so the user can retry without re-selecting. A
// manifest sync failure does not fail the batch; the summary just carries
// ManifestSaved=false. On success the selection and progress are cleared.
func (o *Orchestrator) Submit(ctx context.Context) (*Summary, error) {
	o.mu.Lock()
	if o.state == StateEncoding || o.state == StateUploading || o.state == StateSyncing {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.mu.Unlock()

	items := o.store.Items()
	if len(items) == 0 {
		return nil, ErrEmptySelection
	}

	o.setState(StateEncoding)
	o.resetProgress(len(items))

	payloads := make([]encode.Payload, 0, len(items))
	for i, it := range items {
		p, err := encodeFile(it.Path, it.Name, it.MimeType)
		if err != nil {
			o.setState(StateFailed)
			o.log.Error(ctx, "encode failed, batch aborted", "file", it.Name, "error", err.Error())
			return nil, err
		}
		payloads = append(payloads, p)
		o.setProgress(i, int(math.Round(50*float64(i+1)/float64(len(items)))))
	}

	o.setState(StateUploading)
	results, err := o.uploader.UploadBatch(ctx, payloads, o.folder)
	if err != nil {
		o.setState(StateFailed)
		o.log.Error(ctx, "batch upload failed", "files", len(payloads), "error", err.Error())
		return nil, err
	}
	for i := range items {
		o.setProgress(i, 100)
	}

	// results[i] corresponds to items[i]; attach the local classification.
	for i := range results {
		results[i].Kind = items[i].Kind
	}

	o.setState(StateSyncing)
	saved := o.syncer.AppendRecords(ctx, results)
	if !saved {
		o.log.Warn(ctx, "manifest not saved, uploaded files kept", "files", len(results))
	}

	o.setState(StateDone)
	o.store.Clear()
	o.resetProgress(0)

	o.log.Info(ctx, "batch finished", "files", len(results), "manifest_saved", saved)
	return &Summary{Uploaded: results, ManifestSaved: saved}, nil
}
