package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/services"
)

// ValidationError carries per-field detail for 400 responses.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrorHandler is the single recovery boundary: every error returned by a
// handler or middleware ends up here and is translated into the error
// envelope. Nothing escapes the HTTP boundary unwrapped.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ve *ValidationError
	var he *echo.HTTPError

	switch {
	case errors.As(err, &ve):
		_ = Fail(c, http.StatusBadRequest, ve.Message, ve.Fields)
	case errors.Is(err, services.ErrNotFound):
		_ = Fail(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicate), errors.Is(err, services.ErrSectionFull):
		_ = Fail(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		_ = Fail(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		_ = Fail(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.As(err, &he):
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		_ = Fail(c, he.Code, msg, nil)
	default:
		// internal tool: raw detail goes out as-is (known trade-off)
		_ = Fail(c, http.StatusInternalServerError, "internal server error", err.Error())
	}
}
