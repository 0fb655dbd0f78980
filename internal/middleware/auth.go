package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

// AuthJWTMiddleware resolves the caller from a Bearer token or the jwt
// cookie and attaches the user to both the echo and request contexts.
func (mw *MiddlewareManager) AuthJWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerHeader := c.Request().Header.Get("Authorization")

			if bearerHeader != "" {
				headerParts := strings.Split(bearerHeader, " ")
				if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") {
					mw.logger.Warnf("auth middleware: malformed Authorization header, RequestID: %s", utils.GetRequestID(c))
					return utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
				}

				if err := mw.validateJWTToken(c, headerParts[1]); err != nil {
					mw.logger.Warnf("auth middleware validateJWTToken: %v", err)
					return utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
				}
				return next(c)
			}

			cookie, err := c.Cookie(mw.cookieName())
			if err != nil {
				mw.logger.Warnf("auth middleware c.Cookie: %v", err)
				return utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			}

			if err = mw.validateJWTToken(c, cookie.Value); err != nil {
				mw.logger.Warnf("auth middleware validateJWTToken: %v", err)
				return utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}

func (mw *MiddlewareManager) validateJWTToken(c echo.Context, tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("empty token string")
	}

	claims, err := utils.ValidateToken(tokenString, mw.cfg.Server.JwtSecretKey)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid user_id claim: %w", err)
	}

	user, err := mw.userUC.GetByID(c.Request().Context(), userUUID)
	if err != nil {
		return fmt.Errorf("token subject lookup failed: %w", err)
	}

	c.Set("user", user)
	ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, user)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}

func (mw *MiddlewareManager) cookieName() string {
	if mw.cfg.Cookie.Name != "" {
		return mw.cfg.Cookie.Name
	}
	return "jwt-token"
}
