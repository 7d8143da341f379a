package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Handle is a process-local preview resource for a staged item. Handles must
// be released when the owning item is removed, the batch completes or fails,
// or the store is torn down; otherwise the resource lives for the session.
type Handle interface {
	// Path returns the location of the preview resource.
	Path() string

	// Release frees the resource. Releasing twice is safe.
	Release() error
}

// Allocator produces preview handles for accepted files.
type Allocator interface {
	Allocate(path string) (Handle, error)
}

// TempFileAllocator materializes previews as temp-file copies of the source,
// the closest analog to the browser's object URLs.
type TempFileAllocator struct {
	Dir string // empty means os.TempDir
}

func (a *TempFileAllocator) Allocate(path string) (Handle, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(a.Dir, "preview-*"+filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("create preview: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("copy preview: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("close preview: %w", err)
	}

	return &tempFileHandle{path: dst.Name()}, nil
}

type tempFileHandle struct {
	path     string
	released bool
}

func (h *tempFileHandle) Path() string {
	return h.path
}

func (h *tempFileHandle) Release() error {
	if h.released {
		return nil
	}
	h.released = true
	return os.Remove(h.path)
}
