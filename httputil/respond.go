package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every route answers one of these two shapes. Handlers never write a bare
// payload or a bare error string.
type successBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors"` // structured detail or null
}

func OK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, successBody{Success: true, Message: message, Data: data})
}

func Created(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, successBody{Success: true, Message: message, Data: data})
}

func Fail(c echo.Context, code int, message string, errs any) error {
	return c.JSON(code, errorBody{Success: false, Message: message, Errors: errs})
}
