package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkotelnikov/restaurant-pos/internal/service"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func successResponse(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Status: "success", Message: message, Data: data})
}

func errorResponse(c echo.Context, code int, message string) error {
	return c.JSON(code, Response{Status: "error", Message: message})
}

// serviceError maps the service sentinels onto HTTP codes, passing the
// service message through so forms can surface it verbatim.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return errorResponse(c, http.StatusConflict, err.Error())
	default:
		return errorResponse(c, http.StatusInternalServerError, "internal error")
	}
}
