package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty user_id and username
// prove the middleware ran and the token carried a complete identity.
func ctxClaims(c echo.Context) (userID, username, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || username == "" || role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, username, role, nil
}
