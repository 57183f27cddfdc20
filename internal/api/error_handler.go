package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// messageResponse is the canonical envelope for all API errors. The legacy
// frontend reads the "message" field, so every handler and middleware funnels
// through this shape.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes and the
//     exact message strings the frontend matches on.
//   - Logs unexpected errors with request context.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.) and
	// middleware rejections carry their status and message already.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, "Failed! Username is already in use!"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Failed! Email is already in use!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username/password combination"
	case errors.Is(err, domain.ErrInvalidOldPassword):
		return http.StatusUnauthorized, "Invalid old password."
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	// The raw error text is surfaced to the caller because the legacy
	// frontend displays it verbatim. Storage details can leak here.
	return http.StatusInternalServerError, err.Error()
}
