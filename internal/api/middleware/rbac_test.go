package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

func newRoleContext(role any) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(ContextRole, role)
	}
	return c
}

func TestRequireManager_Allowed(t *testing.T) {
	c := newRoleContext(domain.RoleManager)

	called := false
	err := RequireManager(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called for manager")
	}
}

func TestRequireManager_CustomerForbidden(t *testing.T) {
	c := newRoleContext(domain.RoleCustomer)

	err := RequireManager(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
	if he.Message != "Require Manager Role!" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireManager_MissingRole(t *testing.T) {
	c := newRoleContext(nil)

	err := RequireManager(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}
