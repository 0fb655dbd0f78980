package videos

import (
	"context"

	"github.com/vidshare/vidshare-api/internal/models"
)

// RedisRepository caches single-video lookups.
type RedisRepository interface {
	GetVideoCtx(ctx context.Context, key string) (*models.Video, error)
	SetVideoCtx(ctx context.Context, key string, seconds int, video *models.Video) error
	DeleteVideoCtx(ctx context.Context, key string) error
}
