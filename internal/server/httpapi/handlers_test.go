package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digislides/mediup/internal/logging"
	sc "github.com/digislides/mediup/internal/server/config"
	"github.com/digislides/mediup/internal/server/storage"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory ObjectStore for handler tests.
type memStore struct {
	objects map[string][]byte
	types   map[string]string

	putErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = body
	m.types[key] = contentType
	return nil
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://signed.example.com/%s?op=get&exp=%d", key, int(expires.Seconds())), nil
}

func (m *memStore) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://signed.example.com/%s?op=put&exp=%d", key, int(expires.Seconds())), nil
}

func (m *memStore) PublicURL(key string) string {
	return "https://assets.example.com/" + key
}

func newTestServer(t *testing.T) (*Server, *memStore) {
	t.Helper()
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.ManifestObjectKey = "cfg/allmedia.json"
	cfg.CORSAllowedOrigins = []string{"http://localhost:5173"}

	store := newMemStore()
	return NewServer(store, cfg, logging.NewJSON(io.Discard)), store
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlePresign_WriteOperation(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodPost, "/generatePresignedUrl", map[string]string{
		"objectKey": "cfg/allmedia.json",
		"operation": "write",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp["url"], "op=put")
	require.Contains(t, resp["url"], "exp=20")
}

func TestHandlePresign_LegacyFieldNames(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodPost, "/generatePresignedUrl", map[string]string{
		"folderPath":    "cfg/allmedia.json",
		"operationType": "read",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "op=get")
}

func TestHandlePresign_MissingKey(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodPost, "/generatePresignedUrl", map[string]string{"operation": "read"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "objectKey is required")
}

func TestHandleUpload_StoresBatchPositionally(t *testing.T) {
	s, store := newTestServer(t)
	h := s.NewRouter()

	body := map[string]any{
		"files": []map[string]string{
			{"name": "cat.png", "data": base64.StdEncoding.EncodeToString([]byte("png-bytes")), "type": "image/png"},
			{"name": "clip.mp4", "data": base64.StdEncoding.EncodeToString([]byte("mp4-bytes")), "type": "video/mp4"},
		},
	}
	rec := doJSON(t, h, http.MethodPost, "/uploadApi/upload?folder=slideconfig/dixymedia", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Uploaded []uploadedObject `json:"uploaded"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Uploaded, 2)
	require.Equal(t, "cat.png", resp.Uploaded[0].Name)
	require.Equal(t, "https://assets.example.com/slideconfig/dixymedia/cat.png", resp.Uploaded[0].URL)
	require.Equal(t, "clip.mp4", resp.Uploaded[1].Name)

	require.Equal(t, []byte("png-bytes"), store.objects["slideconfig/dixymedia/cat.png"])
	require.Equal(t, "video/mp4", store.types["slideconfig/dixymedia/clip.mp4"])
}

func TestHandleUpload_BadBase64RejectsWholeBatch(t *testing.T) {
	s, store := newTestServer(t)
	h := s.NewRouter()

	body := map[string]any{
		"files": []map[string]string{
			{"name": "ok.png", "data": base64.StdEncoding.EncodeToString([]byte("fine")), "type": "image/png"},
			{"name": "bad.png", "data": "!!! not base64", "type": "image/png"},
		},
	}
	rec := doJSON(t, h, http.MethodPost, "/uploadApi/upload", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, store.objects)
}

func TestHandleUpload_EmptyFiles(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodPost, "/uploadApi/upload", map[string]any{"files": []any{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReadAllMedia_NotFoundThenContent(t *testing.T) {
	s, store := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodGet, "/readAllMedia", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	store.objects["cfg/allmedia.json"] = []byte(`[{"itemId":"a1","type":"Image","uri":"https://x/1.png"}]`)
	rec = doJSON(t, h, http.MethodGet, "/readAllMedia", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"itemId":"a1"`)
}

func TestHandleWriteAllMedia_OverwritesManifest(t *testing.T) {
	s, store := newTestServer(t)
	h := s.NewRouter()

	body := map[string]any{"items": []map[string]string{
		{"itemId": "a1", "type": "Image", "uri": "https://x/1.png"},
	}}
	rec := doJSON(t, h, http.MethodPost, "/writeAllMedia", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok":true`)

	var stored []map[string]string
	require.NoError(t, json.Unmarshal(store.objects["cfg/allmedia.json"], &stored))
	require.Len(t, stored, 1)
	require.Equal(t, "a1", stored[0]["itemId"])
}

func TestHandleWriteAllMedia_ItemsMustBeArray(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodPost, "/writeAllMedia", map[string]any{"items": "not-an-array"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "items must be an array")
}

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	req := httptest.NewRequest(http.MethodOptions, "/generatePresignedUrl", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.NewRouter()

	rec := doJSON(t, h, http.MethodGet, "/ping", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
