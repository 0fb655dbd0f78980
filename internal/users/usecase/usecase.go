package usecase

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/users"
	"github.com/vidshare/vidshare-api/pkg/logger"
)

type userUC struct {
	cfg      *config.Config
	userRepo users.Repository
	logger   logger.Logger
}

func NewUserUseCase(cfg *config.Config, userRepo users.Repository, log logger.Logger) users.UseCase {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		logger:   log,
	}
}

func (u *userUC) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			u.logger.Warnf("User not found with ID: %s", userID.String())
			return nil, users.ErrUserNotFound
		}
		u.logger.Errorf("GetByID - failed to fetch user: %v", err)
		return nil, err
	}
	return user, nil
}
