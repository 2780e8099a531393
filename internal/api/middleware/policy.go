package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// Policy maps "resource:operation" to the set of roles allowed to perform
// it. An empty role set means any authenticated role is allowed. Keeping
// the table in one place makes the authorization rules reviewable at a
// glance instead of being scattered across handlers.
type Policy map[string][]string

// DefaultPolicy is the authorization table for the API.
var DefaultPolicy = Policy{
	"jobs:list":    nil, // any authenticated
	"jobs:create":  {domain.RoleAdmin},
	"jobs:update":  nil, // any authenticated; no ownership check
	"users:list":   nil,
	"users:create": {domain.RoleAdmin},
	"users:delete": {domain.RoleAdmin},
}

// Authorize enforces the policy entry for the given action. Must run after
// Auth, which injects the role claim. Unknown actions are denied outright
// so a missing table entry fails closed.
func Authorize(p Policy, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			allowed, known := p[action]
			if !known {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			if allowed == nil {
				return next(c)
			}
			for _, r := range allowed {
				if r == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
	}
}
