package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/models"
	"github.com/muthita66/Winai-school-sub002/services"
)

type FinanceHandler struct {
	svc *services.FinanceService
}

func NewFinanceHandler(svc *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// GET /api/student/finance
func (h *FinanceHandler) MyStatement(c echo.Context) error {
	p := middlewares.Payload(c)
	st, err := h.svc.StatementForStudent(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return httputil.OK(c, "finance statement", st)
}

// GET /api/director/finance?student_id=&year=&semester=
func (h *FinanceHandler) List(c echo.Context) error {
	studentID, _, err := httputil.ParseIntParam("student_id", c.QueryParam("student_id"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}

	list, err := h.svc.List(c.Request().Context(), uint(studentID), year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "finance records", list)
}

type createFinanceReq struct {
	StudentID uint    `json:"student_id" validate:"required,min=1"`
	Year      int     `json:"year" validate:"required,min=1"`
	Semester  int     `json:"semester" validate:"required,min=1"`
	Item      string  `json:"item" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// POST /api/director/finance
func (h *FinanceHandler) Create(c echo.Context) error {
	var req createFinanceReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec := models.FinanceRecord{
		StudentID: req.StudentID,
		Year:      req.Year,
		Semester:  req.Semester,
		Item:      req.Item,
		Amount:    req.Amount,
	}
	if err := h.svc.Create(c.Request().Context(), &rec); err != nil {
		return err
	}
	return httputil.Created(c, "finance record created", rec)
}

// PUT /api/director/finance?id= (marks the record paid)
func (h *FinanceHandler) MarkPaid(c echo.Context) error {
	id, _, err := httputil.ParseIntParam("id", c.QueryParam("id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	rec, err := h.svc.MarkPaid(c.Request().Context(), uint(id))
	if err != nil {
		return err
	}
	return httputil.OK(c, "marked paid", rec)
}
