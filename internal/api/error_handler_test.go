package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["message"]
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrUsernameTaken, http.StatusBadRequest, "Failed! Username is already in use!"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "Failed! Email is already in use!"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username/password combination"},
		{domain.ErrInvalidOldPassword, http.StatusUnauthorized, "Invalid old password."},
		{domain.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg != tc.message {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.message, msg)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("lookup: %w", domain.ErrUserNotFound))
	if code != http.StatusNotFound || msg != "User not found" {
		t.Fatalf("wrapped error not resolved: %d %q", code, msg)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusForbidden, "Require Manager Role!"))
	if code != http.StatusForbidden || msg != "Require Manager Role!" {
		t.Fatalf("HTTPError not passed through: %d %q", code, msg)
	}
}

func TestErrorHandler_UnexpectedErrorSurfacesMessage(t *testing.T) {
	code, msg := renderError(t, errors.New("Unable to add booking: write failed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Unable to add booking: write failed" {
		t.Fatalf("expected raw message, got %q", msg)
	}
}
