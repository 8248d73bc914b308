package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

type GradeHandler struct {
	svc *services.GradeService
}

func NewGradeHandler(svc *services.GradeService) *GradeHandler {
	return &GradeHandler{svc: svc}
}

// GET /api/student/grades?year=&semester=
func (h *GradeHandler) ListMine(c echo.Context) error {
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
	return httputil.OK(c, "grades", list)
}

// GET /api/student/grades/summary
func (h *GradeHandler) Summary(c echo.Context) error {
	p := middlewares.Payload(c)
	sum, err := h.svc.Summary(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return httputil.OK(c, "grade summary", sum)
}

type enterGradeReq struct {
	SectionID uint    `json:"section_id" validate:"required,min=1"`
	StudentID uint    `json:"student_id" validate:"required,min=1"`
	Score     float64 `json:"score" validate:"min=0,max=100"`
}

// POST /api/teacher/grades
func (h *GradeHandler) Enter(c echo.Context) error {
	var req enterGradeReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := middlewares.Payload(c)
	g, err := h.svc.Enter(c.Request().Context(), p.ID, req.SectionID, req.StudentID, req.Score)
	if err != nil {
		return err
	}
	return httputil.OK(c, "grade saved", g)
}

// GET /api/teacher/grades?section_id=
func (h *GradeHandler) ListForSection(c echo.Context) error {
	sectionID, _, err := httputil.ParseIntParam("section_id", c.QueryParam("section_id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	list, err := h.svc.ListForSection(c.Request().Context(), p.ID, uint(sectionID))
	if err != nil {
		return err
	}
	return httputil.OK(c, "grades", list)
}
