package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNotOwner      = errors.New("caller does not own this video")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMediaUpload   = errors.New("media upload failed")
)

type UseCase interface {
	List(ctx context.Context, filter *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error)
	Create(ctx context.Context, input *models.VideoCreateInput) (*models.Video, error)
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	Update(ctx context.Context, videoID uuid.UUID, input *models.VideoUpdateInput) (*models.Video, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
}
