package core

import (
	"context"
	"time"
)

// ThumbnailUpload describes a pre-signed target for uploading a course
// thumbnail, together with the public URL the file will be served from.
type ThumbnailUpload struct {
	UploadURL string
	Method    string
	Headers   map[string]string
	PublicURL string
	ExpiresAt time.Time
}

// ThumbnailStore abstracts the blob storage used for course thumbnails.
type ThumbnailStore interface {
	CreateThumbnailUpload(ctx context.Context, filename string) (*ThumbnailUpload, error)
}
