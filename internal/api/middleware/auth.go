package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/auth"
	"github.com/taskhub/todo-api/internal/api/metrics"
)

// Context keys under which the resolved identity is stored for handlers.
const (
	CtxUsername = "username"
	CtxUserID   = "user_id"
)

// Bearer is the strict API strategy: handlers behind it always receive a
// valid identity. An unauthenticated request is rejected with 401 and a
// WWW-Authenticate hint before any business logic runs.
func Bearer(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result := resolver.Resolve(c.Request())
			identity, ok := result.Identity()
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUsername, identity.Username)
			c.Set(CtxUserID, identity.UserID)
			return next(c)
		}
	}
}

// Cookie is the browser strategy: no token, an invalid token and an expired
// one all redirect to the login route instead of raising. The token is never
// refreshed or rewritten on the way through.
func Cookie(resolver *auth.Resolver, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result := resolver.Resolve(c.Request())
			identity, ok := result.Identity()
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUsername, identity.Username)
			c.Set(CtxUserID, identity.UserID)
			return next(c)
		}
	}
}
