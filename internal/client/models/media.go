// Package models defines the data types passed between the stages of the
// upload pipeline and the records stored in the shared media manifest.
package models

// Kind is the local classification of a staged file.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Manifest record types as the slideshow application expects them.
const (
	MediaTypeImage = "Image"
	MediaTypeVideo = "Video"
)

// MediaRecord is one durable entry in the manifest. Images carry URI, videos
// carry VideoURL and PreviewURL. ItemID is unique across the whole manifest.
type MediaRecord struct {
	ItemID     string `json:"itemId"`
	Type       string `json:"type"`
	URI        string `json:"uri,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// UploadResult correlates one uploaded file with its staged origin. The blob
// endpoint aligns results positionally with the request, so Index is the only
// join key between the two.
type UploadResult struct {
	Index     int
	Name      string
	Kind      Kind
	RemoteURL string
	Raw       map[string]any
}
