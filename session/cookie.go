package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const CookieName = "session"

// SetCookie stores the signed token as the session cookie. secure should be
// true outside local development.
func SetCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie overwrites the session cookie with an already-expired one.
// The token itself stays valid until its natural expiry; there is no
// server-side revocation list.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// FromRequest decodes the session cookie, nil when absent or invalid.
func FromRequest(c echo.Context, cd *Codec) *Payload {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	return cd.Verify(ck.Value)
}
