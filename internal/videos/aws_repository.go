package videos

import (
	"context"

	"github.com/vidshare/vidshare-api/internal/models"
)

// MediaRepository is the media host: it stores uploaded objects and, for
// videos, derives the duration of the uploaded file.
type MediaRepository interface {
	UploadVideo(ctx context.Context, upload *models.MediaUpload) (*models.UploadResult, error)
	UploadImage(ctx context.Context, upload *models.MediaUpload) (*models.UploadResult, error)
	RemoveObject(ctx context.Context, key string) error
}
