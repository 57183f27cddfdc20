package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.user == nil || r.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return r.user, nil
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, _, _ string) error {
	return errors.New("not implemented")
}

func signToken(t *testing.T, secret, userID string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice", Role: domain.RoleManager}}
	token := signToken(t, "secret", "u1", time.Now().Add(time.Hour))

	c, rec := newAuthContext("Bearer " + token)

	called := false
	handler := Auth("secret", repo)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "u1" {
			t.Fatalf("user id not set")
		}
		if c.Get(ContextRole) != domain.RoleManager {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{}
	c, _ := newAuthContext("")

	err := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}}
	token := signToken(t, "wrong-secret", "u1", time.Now().Add(time.Hour))

	c, _ := newAuthContext("Bearer " + token)

	err := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: "u1", Role: domain.RoleCustomer}}
	token := signToken(t, "secret", "u1", time.Now().Add(-time.Hour))

	c, _ := newAuthContext("Bearer " + token)

	err := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	// Token is valid but the account no longer exists.
	repo := &stubUserRepo{}
	token := signToken(t, "secret", "u1", time.Now().Add(time.Hour))

	c, _ := newAuthContext("Bearer " + token)

	err := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestAuthMiddleware_LookupFailure(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("connection reset")}
	token := signToken(t, "secret", "u1", time.Now().Add(time.Hour))

	c, _ := newAuthContext("Bearer " + token)

	err := Auth("secret", repo)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
}
