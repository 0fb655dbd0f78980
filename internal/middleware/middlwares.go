package middleware

import (
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/users"
	"github.com/vidshare/vidshare-api/pkg/logger"
)

type MiddlewareManager struct {
	userUC  users.UseCase
	cfg     *config.Config
	origins []string
	logger  logger.Logger
}

// Middleware manager constructor
func NewMiddlewareManager(userUC users.UseCase, cfg *config.Config, origins []string, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{userUC: userUC, cfg: cfg, origins: origins, logger: logger}
}
