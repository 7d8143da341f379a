package encode

import (
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/digislides/mediup/internal/common"
	"github.com/stretchr/testify/require"
)

func TestFile_RoundTrip(t *testing.T) {
	content := make([]byte, 4096)
	_, err := rand.Read(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	p, err := File(path, "clip.mp4", "video/mp4")
	require.NoError(t, err)
	require.Equal(t, "clip.mp4", p.Name)
	require.Equal(t, "video/mp4", p.MimeType)

	decoded, err := Decode(p)
	require.NoError(t, err)
	require.Equal(t, content, decoded)
}

func TestFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p, err := File(path, "empty.png", "image/png")
	require.NoError(t, err)

	decoded, err := Decode(p)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestFile_ReadFailure(t *testing.T) {
	_, err := File("/does/not/exist", "gone.png", "image/png")
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrEncode))
}

func TestDecode_MalformedData(t *testing.T) {
	_, err := Decode(Payload{Name: "x", Data: "!!! not base64 !!!"})
	require.True(t, errors.Is(err, common.ErrEncode))
}
