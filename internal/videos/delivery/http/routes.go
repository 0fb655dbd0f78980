package http

import (
	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/internal/middleware"
	"github.com/vidshare/vidshare-api/internal/videos"
)

func MapVideoRoutes(videoGroup *echo.Group, h videos.Handler, mw *middleware.MiddlewareManager) {
	videoGroup.GET("", h.ListVideos())
	videoGroup.GET("/:video_id", h.GetVideoByID())

	auth := mw.AuthJWTMiddleware()
	videoGroup.POST("", h.CreateVideo(), auth)
	videoGroup.PATCH("/:video_id", h.UpdateVideo(), auth)
	videoGroup.DELETE("/:video_id", h.DeleteVideo(), auth)
	videoGroup.PATCH("/:video_id/toggle-publish", h.TogglePublish(), auth)
}
