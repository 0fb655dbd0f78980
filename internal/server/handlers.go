package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/internal/middleware"
	userHttp "github.com/vidshare/vidshare-api/internal/users/delivery/http"
	userRepository "github.com/vidshare/vidshare-api/internal/users/repository"
	userUsecase "github.com/vidshare/vidshare-api/internal/users/usecase"
	videoHttp "github.com/vidshare/vidshare-api/internal/videos/delivery/http"
	videoRepository "github.com/vidshare/vidshare-api/internal/videos/repository"
	videoUsecase "github.com/vidshare/vidshare-api/internal/videos/usecase"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	uRepo := userRepository.NewUserRepo(s.db)
	vRepo := videoRepository.NewVideoRepo(s.db)
	vRedisRepo := videoRepository.NewVideoRedisRepo(s.redisClient)
	vMediaRepo := videoRepository.NewMediaRepository(s.cfg, s.s3Client, s.preSignClient)

	userUC := userUsecase.NewUserUseCase(s.cfg, uRepo, s.logger)
	videoUC := videoUsecase.NewVideoUseCase(s.cfg, vRepo, vRedisRepo, vMediaRepo, s.logger)

	userHandlers := userHttp.NewUserHandler(s.cfg, userUC, s.logger)
	videoHandlers := videoHttp.NewVideoHandler(videoUC)

	mw := middleware.NewMiddlewareManager(userUC, s.cfg, []string{"*"}, s.logger)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	userGroup := v1.Group("/users")
	videoGroup := v1.Group("/videos")

	userHttp.MapUserRoutes(userGroup, userHandlers, mw)
	videoHttp.MapVideoRoutes(videoGroup, videoHandlers, mw)
	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
