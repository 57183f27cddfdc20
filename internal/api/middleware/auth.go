package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Auth gates a request through token verification: extract the bearer token,
// verify signature and expiry, then resolve the embedded user id against the
// store so a token minted for a since-deleted account is rejected. On success
// the caller's id and role are attached to the request context.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusForbidden, "No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusForbidden, "No token provided")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			userID, _ := claims["id"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "User not found")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Unable to authenticate user")
			}

			c.Set(ContextUserID, user.ID)
			c.Set(ContextRole, user.Role)

			return next(c)
		}
	}
}
