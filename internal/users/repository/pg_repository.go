package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/users"
)

type userRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) users.Repository {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		getUserByIDQuery,
		userID,
	).StructScan(u); err != nil {
		return nil, errors.Wrap(err, "userRepo.GetByID.StructScan")
	}
	return u, nil
}
