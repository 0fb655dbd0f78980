package models

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

type Video struct {
	VideoID      uuid.UUID `json:"video_id" db:"video_id" redis:"video_id" validate:"omitempty"`
	OwnerID      uuid.UUID `json:"owner_id" db:"owner_id" redis:"owner_id" validate:"omitempty"`
	Title        string    `json:"title" db:"title" redis:"title" validate:"required,lte=255"`
	Description  string    `json:"description" db:"description" redis:"description" validate:"omitempty,lte=5000"`
	VideoURL     string    `json:"video_url" db:"video_url" redis:"video_url" validate:"required,lte=512"`
	VideoKey     string    `json:"-" db:"video_key" redis:"video_key"`
	ThumbnailURL string    `json:"thumbnail_url" db:"thumbnail_url" redis:"thumbnail_url" validate:"required,lte=512"`
	ThumbnailKey string    `json:"-" db:"thumbnail_key" redis:"thumbnail_key"`
	Duration     float64   `json:"duration" db:"duration" redis:"duration"`
	Views        int64     `json:"views" db:"views" redis:"views"`
	IsPublished  bool      `json:"is_published" db:"is_published" redis:"is_published"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" redis:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" redis:"updated_at"`
}

// VideoOwner is the slice of the owning user joined into list results.
type VideoOwner struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url"`
}

type VideoWithOwner struct {
	Video
	Owner VideoOwner `json:"owner"`
}

type VideoList struct {
	Videos     []*VideoWithOwner `json:"videos"`
	TotalCount int               `json:"total_count"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	HasMore    bool              `json:"has_more"`
}

// VideoFilter narrows the list query. An empty Query applies no text filter.
type VideoFilter struct {
	Query   string
	SortBy  string
	SortDir string
}

type VideoCreateInput struct {
	Title       string                `form:"title" json:"title" validate:"required,lte=255"`
	Description string                `form:"description" json:"description" validate:"omitempty,lte=5000"`
	VideoFile   *multipart.FileHeader `form:"-" json:"-" validate:"required"`
	Thumbnail   *multipart.FileHeader `form:"-" json:"-" validate:"required"`
}

// VideoUpdateInput carries a partial update. Nil fields are left untouched.
type VideoUpdateInput struct {
	Title       *string               `form:"title" json:"title" validate:"omitempty,lte=255"`
	Description *string               `form:"description" json:"description" validate:"omitempty,lte=5000"`
	IsPublished *bool                 `form:"is_published" json:"is_published"`
	Thumbnail   *multipart.FileHeader `form:"-" json:"-"`
}

// VideoUpdate is the repository-level mutation built by the usecase.
type VideoUpdate struct {
	Title        *string
	Description  *string
	IsPublished  *bool
	ThumbnailURL string
	ThumbnailKey string
}
