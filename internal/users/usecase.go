package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UseCase interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
