package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

type AttendanceHandler struct {
	svc *services.AttendanceService
}

func NewAttendanceHandler(svc *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

type markReq struct {
	SectionID uint   `json:"section_id" validate:"required,min=1"`
	StudentID uint   `json:"student_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present late absent leave"`
	Note      string `json:"note"`
}

// POST /api/teacher/attendance
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := middlewares.Payload(c)
	att, err := h.svc.Mark(c.Request().Context(), p.ID, req.SectionID, req.StudentID,
		req.Date, req.Status, req.Note)
	if err != nil {
		return err
	}
	return httputil.OK(c, "attendance saved", att)
}

// GET /api/teacher/attendance?section_id=&date=
func (h *AttendanceHandler) ListForSection(c echo.Context) error {
	sectionID, _, err := httputil.ParseIntParam("section_id", c.QueryParam("section_id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.ListForSection(c.Request().Context(), p.ID, uint(sectionID), c.QueryParam("date"))
	if err != nil {
		return err
	}
	return httputil.OK(c, "attendance", list)
}

// GET /api/student/attendance?year=&semester=
func (h *AttendanceHandler) ListMine(c echo.Context) error {
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}

	p := middlewares.Payload(c)
	list, err := h.svc.ListForStudent(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	sum, err := h.svc.SummaryForStudent(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "attendance", map[string]any{"records": list, "summary": sum})
}
