package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/models"
	"github.com/muthita66/Winai-school-sub002/services"
)

// DirectorHandler is the management CRUD surface. Identifiers for PUT and
// DELETE come in as ?id= query parameters.
type DirectorHandler struct {
	svc *services.ActorService
}

func NewDirectorHandler(svc *services.ActorService) *DirectorHandler {
	return &DirectorHandler{svc: svc}
}

const defaultPassword = "1234"

func queryID(c echo.Context) (uint, error) {
	id, _, err := httputil.ParseIntParam("id", c.QueryParam("id"), httputil.IntOpts{Required: true, Min: 1})
	return uint(id), err
}

/* ===== Students ===== */

type studentPayload struct {
	Code        string `json:"code" validate:"required"`
	Prefix      string `json:"prefix"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	ClassLevel  string `json:"class_level" validate:"required"`
	Room        string `json:"room" validate:"required"`
	ClassroomID uint   `json:"classroom_id"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	Password    string `json:"password"` // initial login password, optional
}

func (p *studentPayload) model() *models.Student {
	return &models.Student{
		Code:        p.Code,
		Prefix:      p.Prefix,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		ClassLevel:  p.ClassLevel,
		Room:        p.Room,
		ClassroomID: p.ClassroomID,
		Phone:       p.Phone,
		Status:      p.Status,
	}
}

// GET /api/director/students?class_level=&room=&q=
func (h *DirectorHandler) ListStudents(c echo.Context) error {
	list, err := h.svc.ListStudents(c.Request().Context(),
		c.QueryParam("class_level"), c.QueryParam("room"), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return httputil.OK(c, "students", list)
}

// POST /api/director/students
func (h *DirectorHandler) CreateStudent(c echo.Context) error {
	var req studentPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	pw := req.Password
	if pw == "" {
		pw = defaultPassword
	}
	st := req.model()
	if err := h.svc.CreateStudent(c.Request().Context(), st, pw); err != nil {
		return err
	}
	return httputil.Created(c, "student created", st)
}

// PUT /api/director/students?id=
func (h *DirectorHandler) UpdateStudent(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req studentPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	st, err := h.svc.UpdateStudent(c.Request().Context(), id, req.model())
	if err != nil {
		return err
	}
	return httputil.OK(c, "student updated", st)
}

// DELETE /api/director/students?id=
func (h *DirectorHandler) DeleteStudent(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteStudent(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "student deleted", nil)
}

/* ===== Teachers ===== */

type teacherPayload struct {
	Code      string `json:"code" validate:"required"`
	Prefix    string `json:"prefix"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Position  string `json:"position"`
	Password  string `json:"password"`
}

func (p *teacherPayload) model() *models.Teacher {
	return &models.Teacher{
		Code:      p.Code,
		Prefix:    p.Prefix,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Position:  p.Position,
	}
}

// GET /api/director/teachers?q=
func (h *DirectorHandler) ListTeachers(c echo.Context) error {
	list, err := h.svc.ListTeachers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return httputil.OK(c, "teachers", list)
}

// POST /api/director/teachers
func (h *DirectorHandler) CreateTeacher(c echo.Context) error {
	var req teacherPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	pw := req.Password
	if pw == "" {
		pw = defaultPassword
	}
	t := req.model()
	if err := h.svc.CreateTeacher(c.Request().Context(), t, pw); err != nil {
		return err
	}
	return httputil.Created(c, "teacher created", t)
}

// PUT /api/director/teachers?id=
func (h *DirectorHandler) UpdateTeacher(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req teacherPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	t, err := h.svc.UpdateTeacher(c.Request().Context(), id, req.model())
	if err != nil {
		return err
	}
	return httputil.OK(c, "teacher updated", t)
}

// DELETE /api/director/teachers?id=
func (h *DirectorHandler) DeleteTeacher(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteTeacher(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "teacher deleted", nil)
}

/* ===== Classrooms ===== */

type classroomPayload struct {
	ClassLevel string `json:"class_level" validate:"required"`
	Room       string `json:"room" validate:"required"`
	AdvisorID  uint   `json:"advisor_id"`
}

// GET /api/director/classrooms
func (h *DirectorHandler) ListClassrooms(c echo.Context) error {
	list, err := h.svc.ListClassrooms(c.Request().Context())
	if err != nil {
		return err
	}
	return httputil.OK(c, "classrooms", list)
}

// POST /api/director/classrooms
func (h *DirectorHandler) CreateClassroom(c echo.Context) error {
	var req classroomPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cr := models.Classroom{ClassLevel: req.ClassLevel, Room: req.Room, AdvisorID: req.AdvisorID}
	if err := h.svc.CreateClassroom(c.Request().Context(), &cr); err != nil {
		return err
	}
	return httputil.Created(c, "classroom created", cr)
}

// PUT /api/director/classrooms?id=
func (h *DirectorHandler) UpdateClassroom(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req classroomPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cr, err := h.svc.UpdateClassroom(c.Request().Context(), id,
		&models.Classroom{ClassLevel: req.ClassLevel, Room: req.Room, AdvisorID: req.AdvisorID})
	if err != nil {
		return err
	}
	return httputil.OK(c, "classroom updated", cr)
}

// DELETE /api/director/classrooms?id=
func (h *DirectorHandler) DeleteClassroom(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteClassroom(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "classroom deleted", nil)
}

/* ===== Subjects ===== */

type subjectPayload struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"required,min=1"`
}

// GET /api/director/subjects?q=
func (h *DirectorHandler) ListSubjects(c echo.Context) error {
	list, err := h.svc.ListSubjects(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return httputil.OK(c, "subjects", list)
}

// POST /api/director/subjects
func (h *DirectorHandler) CreateSubject(c echo.Context) error {
	var req subjectPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sub := models.Subject{Code: req.Code, Name: req.Name, Credits: req.Credits}
	if err := h.svc.CreateSubject(c.Request().Context(), &sub); err != nil {
		return err
	}
	return httputil.Created(c, "subject created", sub)
}

// PUT /api/director/subjects?id=
func (h *DirectorHandler) UpdateSubject(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req subjectPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sub, err := h.svc.UpdateSubject(c.Request().Context(), id,
		&models.Subject{Code: req.Code, Name: req.Name, Credits: req.Credits})
	if err != nil {
		return err
	}
	return httputil.OK(c, "subject updated", sub)
}

// DELETE /api/director/subjects?id=
func (h *DirectorHandler) DeleteSubject(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSubject(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "subject deleted", nil)
}

/* ===== Sections ===== */

type sectionPayload struct {
	SubjectID   uint   `json:"subject_id" validate:"required,min=1"`
	TeacherID   uint   `json:"teacher_id" validate:"required,min=1"`
	ClassroomID uint   `json:"classroom_id"`
	Year        int    `json:"year" validate:"required,min=1"`
	Semester    int    `json:"semester" validate:"required,min=1"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	DayOfWeek   int    `json:"day_of_week" validate:"omitempty,min=1,max=7"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (p *sectionPayload) model() *models.Section {
	return &models.Section{
		SubjectID:   p.SubjectID,
		TeacherID:   p.TeacherID,
		ClassroomID: p.ClassroomID,
		Year:        p.Year,
		Semester:    p.Semester,
		Capacity:    p.Capacity,
		DayOfWeek:   p.DayOfWeek,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
	}
}

// GET /api/director/sections?year=&semester=
func (h *DirectorHandler) ListSections(c echo.Context) error {
	year, semester, err := termParams(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListSections(c.Request().Context(), year, semester)
	if err != nil {
		return err
	}
	return httputil.OK(c, "sections", list)
}

// POST /api/director/sections
func (h *DirectorHandler) CreateSection(c echo.Context) error {
	var req sectionPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sec := req.model()
	if err := h.svc.CreateSection(c.Request().Context(), sec); err != nil {
		return err
	}
	return httputil.Created(c, "section created", sec)
}

// PUT /api/director/sections?id=
func (h *DirectorHandler) UpdateSection(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req sectionPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sec, err := h.svc.UpdateSection(c.Request().Context(), id, req.model())
	if err != nil {
		return err
	}
	return httputil.OK(c, "section updated", sec)
}

// DELETE /api/director/sections?id=
func (h *DirectorHandler) DeleteSection(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSection(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "section deleted", nil)
}

/* ===== Events ===== */

type eventPayload struct {
	Title     string `json:"title" validate:"required"`
	Detail    string `json:"detail"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
}

// GET /api/director/events
func (h *DirectorHandler) ListEvents(c echo.Context) error {
	list, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return httputil.OK(c, "events", list)
}

// POST /api/director/events
func (h *DirectorHandler) CreateEvent(c echo.Context) error {
	var req eventPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ev := models.Event{Title: req.Title, Detail: req.Detail, EventDate: req.EventDate}
	if err := h.svc.CreateEvent(c.Request().Context(), &ev); err != nil {
		return err
	}
	return httputil.Created(c, "event created", ev)
}

// PUT /api/director/events?id=
func (h *DirectorHandler) UpdateEvent(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	var req eventPayload
	if err := c.Bind(&req); err != nil {
		return &httputil.ValidationError{Message: "invalid request body"}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ev, err := h.svc.UpdateEvent(c.Request().Context(), id,
		&models.Event{Title: req.Title, Detail: req.Detail, EventDate: req.EventDate})
	if err != nil {
		return err
	}
	return httputil.OK(c, "event updated", ev)
}

// DELETE /api/director/events?id=
func (h *DirectorHandler) DeleteEvent(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEvent(c.Request().Context(), id); err != nil {
		return err
	}
	return httputil.OK(c, "event deleted", nil)
}
