package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/session"
)

const payloadKey = "session.payload"

// RequireSession decodes the session cookie and attaches the payload to the
// echo context. No cookie, a tampered token or an expired one is a plain 401.
func RequireSession(cd *session.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := session.FromRequest(c, cd)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(payloadKey, p)
			return next(c)
		}
	}
}

// RequireRole rejects sessions whose role is not in the allowed set.
// Must run after RequireSession.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Payload(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[strings.ToLower(p.Role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role not allowed")
			}
			return next(c)
		}
	}
}

// Payload returns the decoded session payload, nil when unauthenticated.
func Payload(c echo.Context) *session.Payload {
	p, _ := c.Get(payloadKey).(*session.Payload)
	return p
}
