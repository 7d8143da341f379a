package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/digislides/mediup/internal/client/encode"
	"github.com/digislides/mediup/internal/client/models"
	"github.com/digislides/mediup/internal/common"
)

// BlobUploadClient sends a whole encoded batch to the managed upload endpoint
// in one request. The server's response is positionally aligned with the
// request: uploaded[i] describes files[i]. Downstream code relies on that
// ordering, there is no other join key.
type BlobUploadClient struct {
	rc       *resty.Client
	endpoint string
}

func NewBlobUploadClient(rc *resty.Client, endpoint string) *BlobUploadClient {
	return &BlobUploadClient{rc: rc, endpoint: endpoint}
}

type uploadRequest struct {
	Files []encode.Payload `json:"files"`
}

type uploadResponse struct {
	Uploaded []map[string]any `json:"uploaded"`
}

// UploadBatch uploads all payloads as a single batch. Any failure (network,
// non-2xx, malformed body, count mismatch) is an all-or-nothing batch error;
// no partial-success bookkeeping is attempted.
func (c *BlobUploadClient) UploadBatch(ctx context.Context, payloads []encode.Payload, folder string) ([]models.UploadResult, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("folder", folder).
		SetBody(uploadRequest{Files: payloads}).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d: %s", common.ErrUpload, resp.StatusCode(), resp.Body())
	}

	var parsed uploadResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", common.ErrUpload, err)
	}
	if len(parsed.Uploaded) != len(payloads) {
		return nil, fmt.Errorf("%w: got %d results for %d files", common.ErrUpload, len(parsed.Uploaded), len(payloads))
	}

	results := make([]models.UploadResult, len(parsed.Uploaded))
	for i, u := range parsed.Uploaded {
		url, _ := u["url"].(string)
		if url == "" {
			return nil, fmt.Errorf("%w: result %d has no url", common.ErrUpload, i)
		}
		results[i] = models.UploadResult{
			Index:     i,
			Name:      payloads[i].Name,
			RemoteURL: url,
			Raw:       u,
		}
	}
	return results, nil
}
