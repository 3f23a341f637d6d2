package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/wfh"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors to status codes. Anything unrecognised is a 500
// whose body hides the cause; the cause is logged.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, wfh.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, wfh.ErrNotFound), errors.Is(err, employee.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, wfh.ErrRunInProgress):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindAndValidate reports false once it has answered the request itself (400 or 422).
func bindAndValidate(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
