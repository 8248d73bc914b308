package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

// TeacherHandler serves the teacher portal reads (sections, students,
// advisees). Writes live in the grade/attendance handlers.
type TeacherHandler struct {
	svc *services.TeacherService
}

func NewTeacherHandler(svc *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{svc: svc}
}

// GET /api/teacher/sections?year=&semester=
func (h *TeacherHandler) Sections(c echo.Context) error {
	year, semester, err := termParams(c)
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.Sections(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "sections", list)
}

// GET /api/teacher/sections/:id/students
func (h *TeacherHandler) SectionStudents(c echo.Context) error {
	id, _, err := httputil.ParseIntParam("id", c.Param("id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.SectionStudents(c.Request().Context(), p.ID, uint(id))
	if err != nil {
		return err
	}
	return httputil.OK(c, "students", list)
}

// GET /api/teacher/advisees
func (h *TeacherHandler) Advisees(c echo.Context) error {
	p := middlewares.Payload(c)
	list, err := h.svc.Advisees(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return httputil.OK(c, "advisees", list)
}
