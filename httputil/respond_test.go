package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muthita66/Winai-school-sub002/services"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := fn(c); err != nil {
		ErrorHandler(err, c)
	}
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestEnvelopeSuccess(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return OK(c, "done", map[string]int{"n": 1})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.NotNil(t, body["data"])
}

func TestEnvelopeErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &ValidationError{Message: "bad", Fields: map[string]string{"x": "required"}}, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"duplicate", services.ErrDuplicate, http.StatusConflict},
		{"section full", services.ErrSectionFull, http.StatusConflict},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"http error", echo.NewHTTPError(http.StatusUnauthorized, "authentication required"), http.StatusUnauthorized},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := record(t, func(c echo.Context) error { return tt.err })
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestInternalErrorCarriesDetail(t *testing.T) {
	_, body := record(t, func(c echo.Context) error { return errors.New("pq: gone") })
	assert.Equal(t, "pq: gone", body["errors"])
}
