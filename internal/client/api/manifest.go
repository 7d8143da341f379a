package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/digislides/mediup/internal/client/models"
	"github.com/digislides/mediup/internal/common"
)

// URLRequester is the part of PresignClient the manifest client needs.
type URLRequester interface {
	RequestURL(ctx context.Context, objectKey string, op Operation) (string, error)
}

// ManifestClient reads and writes the single remote manifest object. Reads go
// through a presigned GET against the object itself; writes go through the
// manifest write endpoint when one is configured, or a presigned PUT
// otherwise. Both paths overwrite the whole object, there is no partial
// update API.
type ManifestClient struct {
	rc            *resty.Client
	presign       URLRequester
	objectKey     string
	writeEndpoint string
}

func NewManifestClient(rc *resty.Client, presign URLRequester, objectKey, writeEndpoint string) *ManifestClient {
	return &ManifestClient{rc: rc, presign: presign, objectKey: objectKey, writeEndpoint: writeEndpoint}
}

// Read fetches the current manifest. A 404 means the manifest has never been
// written and is treated as an empty manifest. A body that is not a JSON
// array is also treated as empty; the manifest store does only shape checks.
func (c *ManifestClient) Read(ctx context.Context) ([]models.MediaRecord, error) {
	url, err := c.presign.RequestURL(ctx, c.objectKey, OpRead)
	if err != nil {
		return nil, err
	}

	resp, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: reading manifest: %v", common.ErrManifestSync, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return []models.MediaRecord{}, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: reading manifest: status %d: %s", common.ErrManifestSync, resp.StatusCode(), resp.Body())
	}

	var records []models.MediaRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return []models.MediaRecord{}, nil
	}
	return records, nil
}

type writeRequest struct {
	Items []models.MediaRecord `json:"items"`
}

// Write persists records as the new manifest.
func (c *ManifestClient) Write(ctx context.Context, records []models.MediaRecord) error {
	if c.writeEndpoint == "" {
		return c.writePresigned(ctx, records)
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(writeRequest{Items: records}).
		Post(c.writeEndpoint)
	if err != nil {
		return fmt.Errorf("%w: writing manifest: %v", common.ErrManifestSync, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: writing manifest: status %d: %s", common.ErrManifestSync, resp.StatusCode(), resp.Body())
	}
	return nil
}

// writePresigned PUTs the manifest JSON straight to the object through a
// presigned write URL.
func (c *ManifestClient) writePresigned(ctx context.Context, records []models.MediaRecord) error {
	url, err := c.presign.RequestURL(ctx, c.objectKey, OpWrite)
	if err != nil {
		return err
	}

	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: marshaling manifest: %v", common.ErrManifestSync, err)
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(url)
	if err != nil {
		return fmt.Errorf("%w: writing manifest: %v", common.ErrManifestSync, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: writing manifest: status %d: %s", common.ErrManifestSync, resp.StatusCode(), resp.Body())
	}
	return nil
}
