package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
	"github.com/vidshare/vidshare-api/pkg/logger"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

const (
	basePrefix = "api-videos:"
)

type videoUC struct {
	cfg       *config.Config
	videoRepo videos.Repository
	redisRepo videos.RedisRepository
	mediaRepo videos.MediaRepository
	logger    logger.Logger
}

func NewVideoUseCase(
	cfg *config.Config,
	videoRepo videos.Repository,
	redisRepo videos.RedisRepository,
	mediaRepo videos.MediaRepository,
	log logger.Logger,
) videos.UseCase {
	return &videoUC{
		cfg:       cfg,
		videoRepo: videoRepo,
		redisRepo: redisRepo,
		mediaRepo: mediaRepo,
		logger:    log,
	}
}

func (u *videoUC) List(ctx context.Context, filter *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error) {
	if filter == nil {
		filter = &models.VideoFilter{}
	}
	if pq == nil {
		pq = &utils.Pagination{}
	}
	list, err := u.videoRepo.List(ctx, filter, pq)
	if err != nil {
		u.logger.Errorf("List - failed to fetch videos: %v", err)
		return nil, fmt.Errorf("failed to fetch videos: %v", err)
	}
	return list, nil
}

func (u *videoUC) Create(ctx context.Context, input *models.VideoCreateInput) (*models.Video, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("Create - GetUserFromCtx: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("Create - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("%w: %v", videos.ErrInvalidInput, err)
	}
	if err = u.checkFileSize(input.VideoFile, u.cfg.Media.MaxVideoSizeMB); err != nil {
		return nil, err
	}
	if err = u.checkFileSize(input.Thumbnail, u.cfg.Media.MaxImageSizeMB); err != nil {
		return nil, err
	}

	videoRes, err := u.uploadFile(ctx, input.VideoFile, "videos", user.UserID, u.mediaRepo.UploadVideo)
	if err != nil {
		return nil, err
	}
	thumbRes, err := u.uploadFile(ctx, input.Thumbnail, "thumbnails", user.UserID, u.mediaRepo.UploadImage)
	if err != nil {
		u.removeObject(ctx, videoRes.Key)
		return nil, err
	}

	video := &models.Video{
		OwnerID:      user.UserID,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     videoRes.URL,
		VideoKey:     videoRes.Key,
		ThumbnailURL: thumbRes.URL,
		ThumbnailKey: thumbRes.Key,
		Duration:     videoRes.Duration,
		IsPublished:  true,
	}
	created, err := u.videoRepo.Create(ctx, video)
	if err != nil {
		u.logger.Errorf("Create - CreateVideo error: %v", err)
		u.removeObject(ctx, videoRes.Key)
		u.removeObject(ctx, thumbRes.Key)
		return nil, fmt.Errorf("failed to create video: %v", err)
	}
	u.logger.Infof("Video %s published by user %s", created.VideoID, user.UserID)
	return created, nil
}

func (u *videoUC) GetByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	if videoID == uuid.Nil {
		return nil, fmt.Errorf("%w: video id cannot be empty", videos.ErrInvalidInput)
	}

	if cached, err := u.redisRepo.GetVideoCtx(ctx, u.videoKey(videoID)); err == nil && cached != nil {
		if err = u.videoRepo.IncrementViews(ctx, videoID); err != nil {
			u.logger.Warnf("GetByID - IncrementViews error: %v", err)
		}
		return cached, nil
	}

	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u.logger.Warnf("Video not found with ID: %s", videoID.String())
			return nil, videos.ErrVideoNotFound
		}
		u.logger.Errorf("GetByID - failed to fetch video: %v", err)
		return nil, fmt.Errorf("failed to fetch video: %v", err)
	}

	if err = u.videoRepo.IncrementViews(ctx, videoID); err != nil {
		u.logger.Warnf("GetByID - IncrementViews error: %v", err)
	} else {
		video.Views++
	}

	if err = u.redisRepo.SetVideoCtx(ctx, u.videoKey(videoID), u.cacheSeconds(), video); err != nil {
		u.logger.Warnf("GetByID - SetVideoCtx error: %v", err)
	}
	return video, nil
}

func (u *videoUC) Update(ctx context.Context, videoID uuid.UUID, input *models.VideoUpdateInput) (*models.Video, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("Update - GetUserFromCtx: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("Update - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("%w: %v", videos.ErrInvalidInput, err)
	}

	existing, err := u.fetchOwned(ctx, videoID, user.UserID)
	if err != nil {
		return nil, err
	}

	upd := &models.VideoUpdate{
		Title:       input.Title,
		Description: input.Description,
		IsPublished: input.IsPublished,
	}
	oldThumbKey := ""
	if input.Thumbnail != nil {
		if err = u.checkFileSize(input.Thumbnail, u.cfg.Media.MaxImageSizeMB); err != nil {
			return nil, err
		}
		thumbRes, err := u.uploadFile(ctx, input.Thumbnail, "thumbnails", user.UserID, u.mediaRepo.UploadImage)
		if err != nil {
			return nil, err
		}
		upd.ThumbnailURL = thumbRes.URL
		upd.ThumbnailKey = thumbRes.Key
		oldThumbKey = existing.ThumbnailKey
	}

	updated, err := u.videoRepo.Update(ctx, videoID, upd)
	if err != nil {
		u.logger.Errorf("Update - failed to update video: %v", err)
		u.removeObject(ctx, upd.ThumbnailKey)
		return nil, fmt.Errorf("failed to update video: %v", err)
	}

	u.evictCache(ctx, videoID)
	if oldThumbKey != "" {
		u.removeObject(ctx, oldThumbKey)
	}
	return updated, nil
}

func (u *videoUC) Delete(ctx context.Context, videoID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("Delete - GetUserFromCtx: %v", err)
		return err
	}

	existing, err := u.fetchOwned(ctx, videoID, user.UserID)
	if err != nil {
		return err
	}

	if err = u.videoRepo.Delete(ctx, videoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return videos.ErrVideoNotFound
		}
		u.logger.Errorf("Delete - failed to delete video: %v", err)
		return fmt.Errorf("failed to delete video: %v", err)
	}

	u.evictCache(ctx, videoID)
	u.removeObject(ctx, existing.VideoKey)
	u.removeObject(ctx, existing.ThumbnailKey)
	u.logger.Infof("Video %s deleted by user %s", videoID, user.UserID)
	return nil
}

func (u *videoUC) TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("TogglePublish - GetUserFromCtx: %v", err)
		return nil, err
	}

	if _, err = u.fetchOwned(ctx, videoID, user.UserID); err != nil {
		return nil, err
	}

	updated, err := u.videoRepo.TogglePublish(ctx, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videos.ErrVideoNotFound
		}
		u.logger.Errorf("TogglePublish - failed to toggle publish: %v", err)
		return nil, fmt.Errorf("failed to toggle publish status: %v", err)
	}

	u.evictCache(ctx, videoID)
	return updated, nil
}

// fetchOwned loads the video and enforces that userID owns it.
func (u *videoUC) fetchOwned(ctx context.Context, videoID, userID uuid.UUID) (*models.Video, error) {
	existing, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u.logger.Warnf("Video not found with ID: %s", videoID.String())
			return nil, videos.ErrVideoNotFound
		}
		u.logger.Errorf("fetchOwned - failed to fetch video: %v", err)
		return nil, fmt.Errorf("failed to fetch video: %v", err)
	}
	if existing.OwnerID != userID {
		u.logger.Warnf("User %s is not the owner of video %s", userID, videoID)
		return nil, videos.ErrNotOwner
	}
	return existing, nil
}

func (u *videoUC) uploadFile(
	ctx context.Context,
	fh *multipart.FileHeader,
	kind string,
	userID uuid.UUID,
	upload func(context.Context, *models.MediaUpload) (*models.UploadResult, error),
) (*models.UploadResult, error) {
	file, err := fh.Open()
	if err != nil {
		u.logger.Errorf("uploadFile - failed to open %s: %v", fh.Filename, err)
		return nil, fmt.Errorf("%w: %v", videos.ErrInvalidInput, err)
	}
	defer file.Close()

	res, err := upload(ctx, &models.MediaUpload{
		Key:         u.mediaKey(kind, userID, fh.Filename),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	})
	if err != nil {
		u.logger.Errorf("uploadFile - upload of %s failed: %v", fh.Filename, err)
		return nil, fmt.Errorf("%w: %v", videos.ErrMediaUpload, err)
	}
	return res, nil
}

func (u *videoUC) checkFileSize(fh *multipart.FileHeader, maxMB int64) error {
	if fh == nil || maxMB <= 0 {
		return nil
	}
	if fh.Size > maxMB<<20 {
		return fmt.Errorf("%w: file %s exceeds %d MB", videos.ErrInvalidInput, fh.Filename, maxMB)
	}
	return nil
}

func (u *videoUC) mediaKey(kind string, userID uuid.UUID, fileName string) string {
	prefix := u.cfg.Media.KeyPrefix
	if prefix == "" {
		prefix = "media"
	}
	return fmt.Sprintf("%s/%s/%s/%s%s", prefix, kind, userID, uuid.New().String(), strings.ToLower(filepath.Ext(fileName)))
}

func (u *videoUC) videoKey(videoID uuid.UUID) string {
	return basePrefix + videoID.String()
}

func (u *videoUC) cacheSeconds() int {
	if u.cfg.Redis.VideoCacheTime > 0 {
		return u.cfg.Redis.VideoCacheTime
	}
	return 300
}

func (u *videoUC) evictCache(ctx context.Context, videoID uuid.UUID) {
	if err := u.redisRepo.DeleteVideoCtx(ctx, u.videoKey(videoID)); err != nil {
		u.logger.Warnf("failed to evict video %s from cache: %v", videoID, err)
	}
}

func (u *videoUC) removeObject(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := u.mediaRepo.RemoveObject(ctx, key); err != nil {
		u.logger.Warnf("failed to remove object %s: %v", key, err)
	}
}
