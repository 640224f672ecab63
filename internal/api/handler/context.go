package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/auth"
)

// ctxIdentity extracts the identity injected by the auth middleware and
// fast-fails before any service call. Presence of the username proves the
// middleware ran; a protected handler reached without it is a wiring bug
// and is rejected as unauthenticated rather than guessed around.
func ctxIdentity(c echo.Context) (auth.Identity, error) {
	username, _ := c.Get("username").(string)
	userID, ok := c.Get("user_id").(int64)
	if username == "" || !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return auth.Identity{Username: username, UserID: userID}, nil
}
