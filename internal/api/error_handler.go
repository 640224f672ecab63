package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Keeps the anti-enumeration contract: authentication and registration
//     failures surface only their generic messages.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "could not validate credentials"
	// ErrUserExists folds into the registration message: a duplicate that
	// slipped past the exists check must read the same as any other
	// registration failure.
	case errors.Is(err, domain.ErrInvalidRegistration),
		errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, domain.ErrInvalidRegistration.Error()
	case errors.Is(err, domain.ErrInvalidTodo):
		return http.StatusBadRequest, domain.ErrInvalidTodo.Error()
	case errors.Is(err, domain.ErrTodoNotFound):
		return http.StatusNotFound, domain.ErrTodoNotFound.Error()
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, domain.ErrAddressNotFound.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrUserNotFound.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
