// Package encode turns staged media files into transport-safe payloads for
// the JSON upload endpoint.
package encode

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/digislides/mediup/internal/common"
)

// Payload is the ephemeral base64 form of one file, produced per upload
// attempt and never persisted.
type Payload struct {
	Name     string `json:"name"`
	MimeType string `json:"type"`
	Data     string `json:"data"`
}

// File reads the file at path and returns its base64 payload. A read failure
// wraps common.ErrEncode.
func File(path, name, mimeType string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: reading %s: %v", common.ErrEncode, name, err)
	}

	return Payload{
		Name:     name,
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// Decode reverses the transport encoding. It exists for the consuming side
// and to keep the round-trip property testable in one place.
func Decode(p Payload) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", common.ErrEncode, p.Name, err)
	}
	return b, nil
}
