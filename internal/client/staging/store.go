// Package staging holds the user's pending selection of media files before a
// batch upload: the files themselves, their detected media kind, and a
// preview handle per accepted file.
package staging

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/digislides/mediup/internal/client/models"
)

// Item is one staged media file. The preview handle is owned by the store
// until the item is handed to the orchestrator.
type Item struct {
	Path      string
	Name      string
	SizeBytes int64
	Kind      models.Kind
	MimeType  string
	Preview   Handle
}

// AddResult reports how a selection was filtered. Rejected > 0 is surfaced to
// the user as a notice, not an error.
type AddResult struct {
	Accepted int
	Rejected int
}

type Store struct {
	alloc Allocator
	items []Item
}

func NewStore(alloc Allocator) *Store {
	return &Store{alloc: alloc}
}

// Add filters the given paths down to images and videos, allocates a preview
// handle for each accepted file and appends them to the selection. Files of
// any other type are counted in Rejected. Re-adding a previously removed path
// is allowed.
func (s *Store) Add(paths []string) (AddResult, error) {
	var res AddResult

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return res, fmt.Errorf("stat %s: %w", path, err)
		}

		mt := detectMime(path)
		kind, ok := classify(mt)
		if !ok {
			res.Rejected++
			continue
		}

		preview, err := s.alloc.Allocate(path)
		if err != nil {
			return res, fmt.Errorf("allocating preview for %s: %w", path, err)
		}

		s.items = append(s.items, Item{
			Path:      path,
			Name:      filepath.Base(path),
			SizeBytes: info.Size(),
			Kind:      kind,
			MimeType:  mt,
			Preview:   preview,
		})
		res.Accepted++
	}

	return res, nil
}

// Remove drops the item at index and releases its preview handle.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("index %d out of range", index)
	}

	removed := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)

	if removed.Preview != nil {
		return removed.Preview.Release()
	}
	return nil
}

// Clear drops the whole selection, releasing every preview handle.
func (s *Store) Clear() {
	for _, it := range s.items {
		if it.Preview != nil {
			_ = it.Preview.Release()
		}
	}
	s.items = nil
}

// Items returns the current selection in insertion order.
func (s *Store) Items() []Item {
	return s.items
}

func (s *Store) Len() int {
	return len(s.items)
}

// detectMime resolves a file's MIME type from its extension first, falling
// back to content sniffing when the extension is unknown.
func detectMime(path string) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	if mt, err := mimetype.DetectFile(path); err == nil {
		return mt.String()
	}
	return ""
}

func classify(mimeType string) (models.Kind, bool) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.KindImage, true
	case strings.HasPrefix(mimeType, "video/"):
		return models.KindVideo, true
	default:
		return "", false
	}
}
