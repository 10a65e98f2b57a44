package model

type MediaKind string

const (
	MediaImage      MediaKind = "image"
	MediaVideo      MediaKind = "video"
	MediaDriveImage MediaKind = "drive_image"
	MediaDriveVideo MediaKind = "drive_video"
)

func (k MediaKind) IsVideo() bool {
	return k == MediaVideo || k == MediaDriveVideo
}

type MediaItem struct {
	URL       string    `json:"url"`
	DirectURL string    `json:"direct_url"`
	Kind      MediaKind `json:"kind"`
	FileID    string    `json:"file_id,omitempty"`
}
