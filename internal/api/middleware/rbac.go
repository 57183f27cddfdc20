package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

// RequireManager restricts a route to callers whose resolved role is manager.
// Must run after Auth. The switch is exhaustive over the Role enum; anything
// else (including a missing claim) is rejected.
func RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ContextRole).(domain.Role)
		switch role {
		case domain.RoleManager:
			return next(c)
		case domain.RoleCustomer:
			return echo.NewHTTPError(http.StatusForbidden, "Require Manager Role!")
		default:
			return echo.NewHTTPError(http.StatusForbidden, "Require Manager Role!")
		}
	}
}
