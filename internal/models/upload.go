package models

import "io"

// MediaUpload is a single object headed for the media store.
type MediaUpload struct {
	Key         string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult is what the media store hands back after a successful upload.
type UploadResult struct {
	URL      string  `json:"url"`
	Key      string  `json:"key"`
	Duration float64 `json:"duration"`
}
