package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidshare/vidshare-api/internal/models"
)

func newTestRedisRepo(t *testing.T) *videoRedisRepo {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &videoRedisRepo{redisClient: client}
}

func TestVideoRedisRepo_SetGetDelete(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	video := &models.Video{
		VideoID:     uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Cached",
		IsPublished: true,
		Views:       7,
	}
	key := "api-videos:" + video.VideoID.String()

	require.NoError(t, repo.SetVideoCtx(ctx, key, 60, video))

	got, err := repo.GetVideoCtx(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, video.VideoID, got.VideoID)
	assert.Equal(t, video.Title, got.Title)
	assert.Equal(t, video.Views, got.Views)

	require.NoError(t, repo.DeleteVideoCtx(ctx, key))

	_, err = repo.GetVideoCtx(ctx, key)
	assert.Error(t, err)
}

func TestVideoRedisRepo_GetMiss(t *testing.T) {
	repo := newTestRedisRepo(t)

	_, err := repo.GetVideoCtx(context.Background(), "api-videos:absent")
	assert.Error(t, err)
}
