package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/digislides/mediup/internal/common"
)

// Operation scopes a presigned URL to a single verb.
type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

// PresignClient asks the credential endpoint for short-lived, operation-scoped
// URLs. The returned URL is time-limited (20s in the observed deployment), so
// callers should use it immediately.
type PresignClient struct {
	rc       *resty.Client
	endpoint string
}

func NewPresignClient(rc *resty.Client, endpoint string) *PresignClient {
	return &PresignClient{rc: rc, endpoint: endpoint}
}

type presignRequest struct {
	ObjectKey string `json:"objectKey"`
	Operation string `json:"operation"`
}

// RequestURL fetches a presigned URL for objectKey. It never returns an empty
// URL without an error: a missing URL is a hard stop for the surrounding
// workflow, which must not proceed to a storage call with no destination.
func (c *PresignClient) RequestURL(ctx context.Context, objectKey string, op Operation) (string, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(presignRequest{ObjectKey: objectKey, Operation: string(op)}).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrPresign, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", common.ErrPresign, resp.StatusCode(), resp.Body())
	}

	url, ok := extractURL(resp.Body())
	if !ok {
		return "", fmt.Errorf("%w: unexpected response shape: %s", common.ErrPresign, resp.Body())
	}
	return url, nil
}

// extractURL normalizes the several response shapes the credential endpoint
// has used over time: a bare JSON string, or an object keyed by one of the
// historical field names.
func extractURL(body []byte) (string, bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", false
	}

	switch value := v.(type) {
	case string:
		return value, value != ""
	case map[string]any:
		for _, k := range []string{"url", "signedUrl", "signedURL", "putUrl", "data"} {
			if s, ok := value[k].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
