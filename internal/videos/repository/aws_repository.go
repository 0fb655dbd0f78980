package repository

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

var videoFileRegex = regexp.MustCompile(`.+\.(mp4|mkv|avi|mov|wmv|flv|webm|m4v|mpeg|mpg|3gp|ogv|vob|ts|mxf)$`)

type awsMediaRepository struct {
	cfg           *config.Config
	client        *s3.Client
	preSignClient *s3.PresignClient
}

func NewMediaRepository(cfg *config.Config, awsClient *s3.Client, preSignClient *s3.PresignClient) videos.MediaRepository {
	return &awsMediaRepository{
		cfg:           cfg,
		client:        awsClient,
		preSignClient: preSignClient,
	}
}

func (a *awsMediaRepository) UploadVideo(ctx context.Context, upload *models.MediaUpload) (*models.UploadResult, error) {
	if !videoFileRegex.MatchString(strings.ToLower(upload.FileName)) {
		return nil, fmt.Errorf("invalid video file format: %s", upload.FileName)
	}

	// spill to disk so the duration can be read before the object goes out
	tmpPath, err := utils.SaveTempFile(upload.Body, "vidshare-upload-*")
	if err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadVideo.SaveTempFile")
	}
	defer os.Remove(tmpPath)

	duration, err := utils.ProbeDuration(ctx, a.cfg.Media.FFprobePath, tmpPath)
	if err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadVideo.ProbeDuration")
	}

	file, err := os.Open(tmpPath)
	if err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadVideo.Open")
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadVideo.Stat")
	}
	size := stat.Size()

	if _, err = a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &a.cfg.S3.MediaBucket,
			Key:           &upload.Key,
			Body:          file,
			ContentType:   &upload.ContentType,
			ContentLength: &size,
		},
	); err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadVideo.PutObject")
	}

	url, err := a.objectURL(ctx, upload.Key)
	if err != nil {
		return nil, err
	}
	return &models.UploadResult{
		URL:      url,
		Key:      upload.Key,
		Duration: duration,
	}, nil
}

func (a *awsMediaRepository) UploadImage(ctx context.Context, upload *models.MediaUpload) (*models.UploadResult, error) {
	if _, err := a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &a.cfg.S3.MediaBucket,
			Key:           &upload.Key,
			Body:          upload.Body,
			ContentType:   &upload.ContentType,
			ContentLength: &upload.Size,
		},
	); err != nil {
		return nil, errors.Wrap(err, "awsMediaRepository.UploadImage.PutObject")
	}

	url, err := a.objectURL(ctx, upload.Key)
	if err != nil {
		return nil, err
	}
	return &models.UploadResult{
		URL: url,
		Key: upload.Key,
	}, nil
}

func (a *awsMediaRepository) RemoveObject(ctx context.Context, key string) error {
	if _, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &a.cfg.S3.MediaBucket,
		Key:    &key,
	}); err != nil {
		return errors.Wrap(err, "awsMediaRepository.RemoveObject.DeleteObject")
	}
	return nil
}

// objectURL prefers a public CDN base; without one it falls back to a
// presigned GET.
func (a *awsMediaRepository) objectURL(ctx context.Context, key string) (string, error) {
	if base := a.cfg.S3.PublicBaseURL; base != "" {
		return strings.TrimSuffix(base, "/") + "/" + key, nil
	}
	expiry := a.cfg.S3.PresignExpiry
	if expiry <= 0 {
		expiry = 60
	}
	req, err := a.preSignClient.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &a.cfg.S3.MediaBucket,
			Key:    &key,
		},
		s3.WithPresignExpires(time.Duration(expiry)*time.Minute),
	)
	if err != nil {
		return "", errors.Wrap(err, "awsMediaRepository.objectURL.PresignGetObject")
	}
	return req.URL, nil
}
