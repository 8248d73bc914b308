package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

type EvaluationHandler struct {
	svc *services.EvaluationService
}

func NewEvaluationHandler(svc *services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{svc: svc}
}

type submitEvalReq struct {
	SectionID uint   `json:"section_id" validate:"required,min=1"`
	Year      int    `json:"year" validate:"required,min=1"`
	Semester  int    `json:"semester" validate:"required,min=1"`
	Score     int    `json:"score" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// POST /api/student/evaluation
func (h *EvaluationHandler) Submit(c echo.Context) error {
	var req submitEvalReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := middlewares.Payload(c)
	ev, err := h.svc.Submit(c.Request().Context(), p.ID, req.SectionID,
		req.Year, req.Semester, req.Score, req.Comment)
	if err != nil {
		return err
	}
	return httputil.OK(c, "evaluation saved", ev)
}

// GET /api/teacher/evaluation?section_id=
func (h *EvaluationHandler) Report(c echo.Context) error {
	sectionID, _, err := httputil.ParseIntParam("section_id", c.QueryParam("section_id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	rep, err := h.svc.Report(c.Request().Context(), p.ID, uint(sectionID))
	if err != nil {
		return err
	}
	return httputil.OK(c, "evaluation report", rep)
}
