package utils

import "github.com/labstack/echo/v4"

// Response is the uniform success envelope for every endpoint.
type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ErrResponse is the uniform error envelope.
type ErrResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func SuccessResponse(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Response{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrResponse{
		Status:  status,
		Message: message,
	})
}
