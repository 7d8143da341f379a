// Package api contains the HTTP clients the uploader uses to talk to its
// collaborators: the credential (presign) endpoint, the blob upload endpoint
// and the manifest read/write endpoints. All four speak plain JSON.
package api

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every call made by the pipeline's clients. The
// presigned URLs themselves have a much shorter validity window, so a stuck
// call is never worth waiting on longer than this.
const DefaultTimeout = 30 * time.Second

// NewHTTPClient builds the resty client shared by the pipeline's API clients.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}
