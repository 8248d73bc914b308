package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/services"
)

type RegistrationHandler struct {
	svc *services.RegistrationService
}

func NewRegistrationHandler(svc *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// GET /api/student/registration/browse?year=&semester=&class_level=&room=
func (h *RegistrationHandler) Browse(c echo.Context) error {
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}

	list, err := h.svc.BrowseSubjects(c.Request().Context(), year, semester,
		c.QueryParam("class_level"), c.QueryParam("room"))
	if err != nil {
		return err
	}
	return httputil.OK(c, "sections", list)
}

// GET /api/student/registration/search?keyword=&year=&semester=&classroom_id=
func (h *RegistrationHandler) Search(c echo.Context) error {
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	classroomID, _, err := httputil.ParseIntParam("classroom_id", c.QueryParam("classroom_id"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}

	list, err := h.svc.SearchSubjects(c.Request().Context(), c.QueryParam("keyword"),
		year, semester, uint(classroomID))
	if err != nil {
		return err
	}
	return httputil.OK(c, "sections", list)
}

type addReq struct {
	SectionID uint `json:"section_id" validate:"required,min=1"`
	Year      int  `json:"year" validate:"required,min=1"`
	Semester  int  `json:"semester" validate:"required,min=1"`
}

// POST /api/student/registration/add
func (h *RegistrationHandler) Add(c echo.Context) error {
	var req addReq
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := middlewares.Payload(c)
	reg, err := h.svc.AddToCart(c.Request().Context(), p.ID, req.SectionID, req.Year, req.Semester)
	if err != nil {
		return err
	}
	return httputil.Created(c, "registered", reg)
}

// DELETE /api/student/registration/:id
func (h *RegistrationHandler) Remove(c echo.Context) error {
	id, _, err := httputil.ParseIntParam("id", c.Param("id"), httputil.IntOpts{Required: true, Min: 1})
	if err != nil {
		return err
	}
	p := middlewares.Payload(c)
	if err := h.svc.RemoveCartItem(c.Request().Context(), p.ID, uint(id)); err != nil {
		return err
	}
	return httputil.OK(c, "removed", nil)
}

// GET /api/student/registration/registered?year=&semester=
func (h *RegistrationHandler) Registered(c echo.Context) error {
	year, _, err := httputil.ParseIntParam("year", c.QueryParam("year"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}
	semester, _, err := httputil.ParseIntParam("semester", c.QueryParam("semester"), httputil.IntOpts{Min: 1})
	if err != nil {
		return err
	}

	p := middlewares.Payload(c)
	list, err := h.svc.GetRegistered(c.Request().Context(), p.ID, year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "registrations", list)
}

// POST /api/student/registration/confirm
//
// Registration is a two-state model (absent / registered); adding is the
// enrollment. This endpoint is kept for the existing client and does not
// change any state.
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	return httputil.OK(c, "registration confirmed", nil)
}
