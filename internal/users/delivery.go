package users

import "github.com/labstack/echo/v4"

type Handler interface {
	GetUserByID() echo.HandlerFunc
	GetMe() echo.HandlerFunc
}
