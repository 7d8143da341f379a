// Package common defines shared constants and sentinel errors used across
// the upload pipeline. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Selection errors. ErrValidation marks a rejected file type; it is a
	// user-visible notice, never fatal to a batch.
	ErrValidation = errors.New("unsupported file type")

	// Pipeline errors. ErrEncode and ErrUpload abort the batch; ErrPresign
	// and ErrManifestSync are downgraded to a warning at the sync boundary.
	ErrEncode       = errors.New("encode failed")
	ErrPresign      = errors.New("presign failed")
	ErrUpload       = errors.New("upload failed")
	ErrManifestSync = errors.New("manifest sync failed")
)
