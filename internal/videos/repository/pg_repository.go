package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

type videoRepo struct {
	db *sqlx.DB
}

func NewVideoRepo(db *sqlx.DB) videos.Repository {
	return &videoRepo{
		db: db,
	}
}

func (v *videoRepo) Create(ctx context.Context, video *models.Video) (*models.Video, error) {
	created := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		createVideoQuery,
		video.OwnerID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.VideoKey,
		video.ThumbnailURL,
		video.ThumbnailKey,
		video.Duration,
		video.IsPublished,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "videoRepo.Create.StructScan")
	}
	return created, nil
}

func (v *videoRepo) GetByID(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	video := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		getVideoByIDQuery,
		videoID,
	).StructScan(video); err != nil {
		return nil, errors.Wrap(err, "videoRepo.GetByID.StructScan")
	}
	return video, nil
}

// sortExpr maps user-facing sort params onto a fixed set of columns.
func sortExpr(filter *models.VideoFilter) string {
	column := "v.created_at"
	switch filter.SortBy {
	case "views":
		column = "v.views"
	case "duration":
		column = "v.duration"
	case "created_at", "":
	}
	dir := "DESC"
	if filter.SortDir == "asc" {
		dir = "ASC"
	}
	return column + " " + dir
}

func (v *videoRepo) List(ctx context.Context, filter *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error) {
	var totalCount int
	if err := v.db.GetContext(
		ctx,
		&totalCount,
		countVideosQuery,
		filter.Query,
	); err != nil {
		return nil, errors.Wrap(err, "videoRepo.List.GetContext")
	}
	if totalCount == 0 {
		return &models.VideoList{
			Videos:     make([]*models.VideoWithOwner, 0),
			TotalCount: 0,
			TotalPages: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := v.db.QueryxContext(
		ctx,
		fmt.Sprintf(listVideosQuery, sortExpr(filter)),
		filter.Query,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "videoRepo.List.QueryxContext")
	}
	defer rows.Close()
	var items = make([]*models.VideoWithOwner, 0, pq.GetSize())
	for rows.Next() {
		var item models.VideoWithOwner
		if err = rows.StructScan(&item); err != nil {
			return nil, errors.Wrap(err, "videoRepo.List.StructScan")
		}
		items = append(items, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "videoRepo.List.rows.Err")
	}
	return &models.VideoList{
		Videos:     items,
		TotalCount: totalCount,
		TotalPages: utils.GetTotalPages(totalCount, pq.GetSize()),
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (v *videoRepo) Update(ctx context.Context, videoID uuid.UUID, upd *models.VideoUpdate) (*models.Video, error) {
	video := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		updateVideoQuery,
		upd.Title,
		upd.Description,
		upd.IsPublished,
		upd.ThumbnailURL,
		upd.ThumbnailKey,
		videoID,
	).StructScan(video); err != nil {
		return nil, errors.Wrap(err, "videoRepo.Update.StructScan")
	}
	return video, nil
}

func (v *videoRepo) Delete(ctx context.Context, videoID uuid.UUID) error {
	res, err := v.db.ExecContext(
		ctx,
		deleteVideoQuery,
		videoID,
	)
	if err != nil {
		return errors.Wrap(err, "videoRepo.Delete.ExecContext")
	}
	count, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "videoRepo.Delete.RowsAffected")
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (v *videoRepo) TogglePublish(ctx context.Context, videoID uuid.UUID) (*models.Video, error) {
	video := &models.Video{}
	if err := v.db.QueryRowxContext(
		ctx,
		togglePublishQuery,
		videoID,
	).StructScan(video); err != nil {
		return nil, errors.Wrap(err, "videoRepo.TogglePublish.StructScan")
	}
	return video, nil
}

func (v *videoRepo) IncrementViews(ctx context.Context, videoID uuid.UUID) error {
	if _, err := v.db.ExecContext(
		ctx,
		incrementViewsQuery,
		videoID,
	); err != nil {
		return errors.Wrap(err, "videoRepo.IncrementViews.ExecContext")
	}
	return nil
}
