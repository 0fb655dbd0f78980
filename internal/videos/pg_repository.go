package videos

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

type Repository interface {
	Create(ctx context.Context, video *models.Video) (*models.Video, error)
	GetByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	List(ctx context.Context, filter *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error)
	Update(ctx context.Context, videoID uuid.UUID, upd *models.VideoUpdate) (*models.Video, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.Video, error)
	IncrementViews(ctx context.Context, videoID uuid.UUID) error
}
