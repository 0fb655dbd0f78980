package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidshare/vidshare-api/internal/models"
)

type Repository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
