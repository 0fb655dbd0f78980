package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
)

type videoRedisRepo struct {
	redisClient *redis.Client
}

func NewVideoRedisRepo(redisClient *redis.Client) videos.RedisRepository {
	return &videoRedisRepo{
		redisClient: redisClient,
	}
}

func (r *videoRedisRepo) GetVideoCtx(ctx context.Context, key string) (*models.Video, error) {
	videoBytes, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "videoRedisRepo.GetVideoCtx.Get")
	}
	video := &models.Video{}
	if err = json.Unmarshal(videoBytes, video); err != nil {
		return nil, errors.Wrap(err, "videoRedisRepo.GetVideoCtx.Unmarshal")
	}
	return video, nil
}

func (r *videoRedisRepo) SetVideoCtx(ctx context.Context, key string, seconds int, video *models.Video) error {
	videoBytes, err := json.Marshal(video)
	if err != nil {
		return errors.Wrap(err, "videoRedisRepo.SetVideoCtx.Marshal")
	}
	if err = r.redisClient.Set(ctx, key, videoBytes, time.Second*time.Duration(seconds)).Err(); err != nil {
		return errors.Wrap(err, "videoRedisRepo.SetVideoCtx.Set")
	}
	return nil
}

func (r *videoRedisRepo) DeleteVideoCtx(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "videoRedisRepo.DeleteVideoCtx.Del")
	}
	return nil
}
