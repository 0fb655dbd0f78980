package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

type videoHandler struct {
	videoUC videos.UseCase
}

func NewVideoHandler(videoUC videos.UseCase) videos.Handler {
	return &videoHandler{
		videoUC: videoUC,
	}
}

func (h *videoHandler) ListVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		filter := &models.VideoFilter{
			Query:   c.QueryParam("query"),
			SortBy:  c.QueryParam("sort_by"),
			SortDir: c.QueryParam("sort_dir"),
		}
		list, err := h.videoUC.List(c.Request().Context(), filter, pagination)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, list, "Videos fetched successfully")
	}
}

func (h *videoHandler) CreateVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.VideoCreateInput{}
		if err := c.Bind(input); err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request payload")
		}
		videoFile, err := c.FormFile("videoFile")
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "videoFile is required")
		}
		thumbnail, err := c.FormFile("thumbnail")
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "thumbnail is required")
		}
		input.VideoFile = videoFile
		input.Thumbnail = thumbnail

		video, err := h.videoUC.Create(c.Request().Context(), input)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusCreated, video, "Video published successfully")
	}
}

func (h *videoHandler) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		}
		video, err := h.videoUC.GetByID(c.Request().Context(), videoID)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, video, "Video fetched successfully")
	}
}

func (h *videoHandler) UpdateVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		}
		input := &models.VideoUpdateInput{}
		if err := c.Bind(input); err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request payload")
		}
		// a metadata-only update carries no file
		if thumbnail, err := c.FormFile("thumbnail"); err == nil {
			input.Thumbnail = thumbnail
		}

		video, err := h.videoUC.Update(c.Request().Context(), videoID, input)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, video, "Video updated successfully")
	}
}

func (h *videoHandler) DeleteVideo() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		}
		if err := h.videoUC.Delete(c.Request().Context(), videoID); err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, nil, "Video deleted successfully")
	}
}

func (h *videoHandler) TogglePublish() echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID, err := uuid.Parse(c.Param("video_id"))
		if err != nil {
			return utils.ErrorResponse(c, http.StatusBadRequest, "Invalid video id")
		}
		video, err := h.videoUC.TogglePublish(c.Request().Context(), videoID)
		if err != nil {
			return h.mapError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, video, "Publish status toggled successfully")
	}
}

func (h *videoHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, videos.ErrVideoNotFound):
		return utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, videos.ErrNotOwner):
		return utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, videos.ErrInvalidInput):
		return utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, videos.ErrMediaUpload):
		return utils.ErrorResponse(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, utils.ErrUnauthorized):
		return utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		return utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
