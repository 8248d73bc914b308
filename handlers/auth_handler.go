package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/services"
	"github.com/muthita66/Winai-school-sub002/session"
)

type AuthHandler struct {
	svc          *services.AuthService
	codec        *session.Codec
	secureCookie bool
}

func NewAuthHandler(svc *services.AuthService, codec *session.Codec, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, codec: codec, secureCookie: secureCookie}
}

type loginReq struct {
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=director teacher student"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payload, err := h.svc.Authenticate(c.Request().Context(), req.Code, req.Password, req.Role)
	if err != nil {
		return err
	}
	token, err := h.codec.Issue(payload)
	if err != nil {
		return err
	}
	session.SetCookie(c, token, h.secureCookie)
	return httputil.OK(c, "login successful", payload)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	session.ClearCookie(c)
	return httputil.OK(c, "logged out", nil)
}
