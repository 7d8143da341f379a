package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digislides/mediup/internal/common"
	"github.com/stretchr/testify/require"
)

func TestPresignClient_RequestURL_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"url field", `{"url":"https://s3/a"}`, "https://s3/a"},
		{"signedUrl field", `{"signedUrl":"https://s3/b"}`, "https://s3/b"},
		{"signedURL field", `{"signedURL":"https://s3/c"}`, "https://s3/c"},
		{"putUrl field", `{"putUrl":"https://s3/d"}`, "https://s3/d"},
		{"data field", `{"data":"https://s3/e"}`, "https://s3/e"},
		{"bare string", `"https://s3/f"`, "https://s3/f"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)

				var req map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				require.Equal(t, "cfg/allmedia.json", req["objectKey"])
				require.Equal(t, "write", req["operation"])

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewPresignClient(NewHTTPClient(0), srv.URL)
			url, err := c.RequestURL(context.Background(), "cfg/allmedia.json", OpWrite)
			require.NoError(t, err)
			require.Equal(t, tc.want, url)
		})
	}
}

func TestPresignClient_RequestURL_UnrecognizedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"nope"}`))
	}))
	defer srv.Close()

	c := NewPresignClient(NewHTTPClient(0), srv.URL)
	url, err := c.RequestURL(context.Background(), "k", OpRead)
	require.Empty(t, url)
	require.True(t, errors.Is(err, common.ErrPresign))
}

func TestPresignClient_RequestURL_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPresignClient(NewHTTPClient(0), srv.URL)
	_, err := c.RequestURL(context.Background(), "k", OpRead)
	require.True(t, errors.Is(err, common.ErrPresign))
	require.Contains(t, err.Error(), "500")
}

func TestPresignClient_RequestURL_NetworkFailure(t *testing.T) {
	c := NewPresignClient(NewHTTPClient(0), "http://127.0.0.1:1")
	_, err := c.RequestURL(context.Background(), "k", OpRead)
	require.True(t, errors.Is(err, common.ErrPresign))
}
