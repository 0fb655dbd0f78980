package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/users"
	"github.com/vidshare/vidshare-api/pkg/logger"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

type userHandler struct {
	cfg    *config.Config
	userUC users.UseCase
	logger logger.Logger
}

func NewUserHandler(cfg *config.Config, userUC users.UseCase, logger logger.Logger) users.Handler {
	return &userHandler{
		cfg:    cfg,
		userUC: userUC,
		logger: logger,
	}
}

func (h *userHandler) GetUserByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		}

		user, err := h.userUC.GetByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			}
			return utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch user")
		}

		return utils.SuccessResponse(c, http.StatusOK, user, "User fetched successfully")
	}
}

func (h *userHandler) GetMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get("user").(*models.User)
		if !ok {
			return utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized access")
		}
		return utils.SuccessResponse(c, http.StatusOK, user, "Current user fetched successfully")
	}
}
