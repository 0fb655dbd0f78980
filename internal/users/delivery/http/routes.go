package http

import (
	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/internal/middleware"
	"github.com/vidshare/vidshare-api/internal/users"
)

func MapUserRoutes(userGroup *echo.Group, h users.Handler, mw *middleware.MiddlewareManager) {
	userGroup.GET("/me", h.GetMe(), mw.AuthJWTMiddleware())
	userGroup.GET("/:user_id", h.GetUserByID())
}
