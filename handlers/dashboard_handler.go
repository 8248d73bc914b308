package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GET /api/director/dashboard
func (h *DashboardHandler) Summary(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return httputil.OK(c, "dashboard", sum)
}
