// Package manifest maps upload results to durable manifest records and keeps
// the remote manifest in sync with newly uploaded media.
package manifest

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/digislides/mediup/internal/client/models"
	"github.com/digislides/mediup/internal/randx"
)

// NewItemID generates a manifest-unique id: millisecond timestamp in base36
// plus a random suffix, so collisions are negligible even across clients.
func NewItemID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix, err := randx.String(6)
	if err != nil {
		// crypto/rand failing is effectively fatal; uuid keeps ids unique.
		return uuid.NewString()
	}
	return ts + "-" + suffix
}

// MapRecords turns upload results into manifest records, one per result and
// in the same order. Videos reuse their own URL as the preview.
func MapRecords(uploaded []models.UploadResult) []models.MediaRecord {
	records := make([]models.MediaRecord, 0, len(uploaded))

	for _, u := range uploaded {
		id := NewItemID()
		if u.Kind == models.KindVideo {
			records = append(records, models.MediaRecord{
				ItemID:     id,
				Type:       models.MediaTypeVideo,
				VideoURL:   u.RemoteURL,
				PreviewURL: u.RemoteURL,
			})
			continue
		}
		records = append(records, models.MediaRecord{
			ItemID: id,
			Type:   models.MediaTypeImage,
			URI:    u.RemoteURL,
		})
	}

	return records
}
