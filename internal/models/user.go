package models

import (
	"time"

	"github.com/google/uuid"
)

// User is read-only in this service: accounts are provisioned elsewhere and
// surface here only as video owners and token subjects.
type User struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id" redis:"user_id" validate:"omitempty"`
	Username  string    `json:"username" db:"username" redis:"username" validate:"required,lte=30"`
	Fullname  string    `json:"fullname" db:"fullname" redis:"fullname" validate:"omitempty,lte=60"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url" redis:"avatar_url" validate:"omitempty,lte=512"`
	CreatedAt time.Time `json:"created_at" db:"created_at" redis:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" redis:"updated_at"`
}
