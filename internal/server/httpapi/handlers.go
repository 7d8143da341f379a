// Package httpapi exposes the media server's HTTP surface: the credential
// (presign) endpoint, the batch blob-upload endpoint and the manifest
// read/write endpoints. All payloads are plain JSON.
package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"path"

	"github.com/digislides/mediup/internal/logging"
	sc "github.com/digislides/mediup/internal/server/config"
	"github.com/digislides/mediup/internal/server/storage"
)

type Server struct {
	store  storage.ObjectStore
	config *sc.Config
	logger logging.Logger
}

func NewServer(store storage.ObjectStore, cfg *sc.Config, logger logging.Logger) *Server {
	return &Server{store: store, config: cfg, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type presignRequest struct {
	ObjectKey string `json:"objectKey"`
	Operation string `json:"operation"`

	// legacy field names still sent by older clients
	FolderPath    string `json:"folderPath"`
	OperationType string `json:"operationType"`
}

// handlePresign issues a short-lived, operation-scoped URL for one object.
func (s *Server) handlePresign(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	key := req.ObjectKey
	if key == "" {
		key = req.FolderPath
	}
	if key == "" {
		writeError(w, http.StatusBadRequest, "objectKey is required")
		return
	}

	op := req.Operation
	if op == "" {
		op = req.OperationType
	}
	if op == "" {
		op = "read"
	}

	var url string
	var err error
	if op == "write" {
		url, err = s.store.PresignPut(r.Context(), key, "application/json", s.config.PresignExpiry)
	} else {
		url, err = s.store.PresignGet(r.Context(), key, s.config.PresignExpiry)
	}
	if err != nil {
		s.logger.Error(r.Context(), "presign failed", "key", key, "op", op, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "error generating pre-signed URL")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

type uploadFile struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
}

type uploadRequest struct {
	Files  []uploadFile `json:"files"`
	Folder string       `json:"folder"`
}

type uploadedObject struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	URL  string `json:"url"`
}

// handleUpload stores a whole batch of base64-encoded files. The response
// array is positionally aligned with the request: uploaded[i] is files[i].
// Any invalid file fails the whole batch before anything is stored.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Files) == 0 {
		writeError(w, http.StatusBadRequest, "files is required")
		return
	}

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = req.Folder
	}

	decoded := make([][]byte, len(req.Files))
	for i, f := range req.Files {
		if f.Name == "" {
			writeError(w, http.StatusBadRequest, "file name is required")
			return
		}
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid base64 data for "+f.Name)
			return
		}
		decoded[i] = data
	}

	uploaded := make([]uploadedObject, len(req.Files))
	for i, f := range req.Files {
		key := path.Join(folder, f.Name)
		if err := s.store.Put(r.Context(), key, decoded[i], f.Type); err != nil {
			s.logger.Error(r.Context(), "storing file failed", "key", key, "error", err.Error())
			writeError(w, http.StatusInternalServerError, "storing "+f.Name+" failed")
			return
		}
		uploaded[i] = uploadedObject{Name: f.Name, Key: key, URL: s.store.PublicURL(key)}
	}

	s.logger.Info(r.Context(), "batch stored", "files", len(uploaded), "folder", folder)
	writeJSON(w, http.StatusOK, map[string]any{"uploaded": uploaded})
}

// handleReadAllMedia returns the manifest object as-is. A manifest that has
// never been written yields 404; clients treat that as an empty manifest.
func (s *Server) handleReadAllMedia(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Get(r.Context(), s.config.ManifestObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "manifest not found")
			return
		}
		s.logger.Error(r.Context(), "manifest read failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "reading manifest failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type writeAllMediaRequest struct {
	Items json.RawMessage `json:"items"`
}

// handleWriteAllMedia overwrites the manifest object with the given items.
// Only the shape is checked: items must be a JSON array.
func (s *Server) handleWriteAllMedia(w http.ResponseWriter, r *http.Request) {
	var req writeAllMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(req.Items, &items); err != nil {
		writeError(w, http.StatusBadRequest, "items must be an array")
		return
	}

	body, err := json.Marshal(items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding manifest failed")
		return
	}

	if err := s.store.Put(r.Context(), s.config.ManifestObjectKey, body, "application/json"); err != nil {
		s.logger.Error(r.Context(), "manifest write failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "writing manifest failed")
		return
	}

	s.logger.Info(r.Context(), "manifest written", "records", len(items))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
