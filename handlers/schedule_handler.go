package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func termParams(c echo.Context) (int, int, error) {
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Min: 1})
	if err != nil {
		return 0, 0, err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Min: 1})
	if err != nil {
		return 0, 0, err
	}
	return year, semester, nil
}

// GET /api/student/schedule?year=&semester=
func (h *ScheduleHandler) ForStudent(c echo.Context) error {
	year, semester, err := termParams(c)
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.ForStudent(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "schedule", list)
}

// GET /api/teacher/schedule?year=&semester=
func (h *ScheduleHandler) ForTeacher(c echo.Context) error {
	year, semester, err := termParams(c)
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.ForTeacher(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "schedule", list)
}
