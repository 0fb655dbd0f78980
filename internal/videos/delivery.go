package videos

import "github.com/labstack/echo/v4"

type Handler interface {
	ListVideos() echo.HandlerFunc
	CreateVideo() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc
	UpdateVideo() echo.HandlerFunc
	DeleteVideo() echo.HandlerFunc
	TogglePublish() echo.HandlerFunc
}
