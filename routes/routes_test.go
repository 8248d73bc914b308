package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/muthita66/Winai-school-sub002/config"
	"github.com/muthita66/Winai-school-sub002/database"
	"github.com/muthita66/Winai-school-sub002/httputil"
	"github.com/muthita66/Winai-school-sub002/models"
)

type app struct {
	e  *echo.Echo
	db *gorm.DB
}

func newApp(t *testing.T) *app {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{AppEnv: "dev", JWTSecret: "test-secret"}
	e := echo.New()
	e.Use(middleware.Recover())
	e.Validator = httputil.NewValidator()
	e.HTTPErrorHandler = httputil.ErrorHandler
	Register(e, db, cfg)
	return &app{e: e, db: db}
}

// seed creates a term with one open section and the S001/1234 student login.
func (a *app) seed(t *testing.T) models.Section {
	t.Helper()
	teacher := models.Teacher{Code: "T001", Prefix: "ครู", FirstName: "สมศรี", LastName: "ดีมาก"}
	require.NoError(t, a.db.Create(&teacher).Error)
	subject := models.Subject{Code: "MATH101", Name: "คณิตศาสตร์พื้นฐาน", Credits: 3}
	require.NoError(t, a.db.Create(&subject).Error)
	classroom := models.Classroom{ClassLevel: "ม.1", Room: "2", AdvisorID: teacher.ID}
	require.NoError(t, a.db.Create(&classroom).Error)
	student := models.Student{Code: "S001", FirstName: "สมชาย", LastName: "ใจดี",
		ClassLevel: "ม.1", Room: "2", ClassroomID: classroom.ID, Status: "active"}
	require.NoError(t, a.db.Create(&student).Error)

	for _, acc := range []struct {
		code, role string
		refID      uint
	}{
		{"S001", models.RoleStudent, student.ID},
		{"T001", models.RoleTeacher, teacher.ID},
		{"D001", models.RoleDirector, 0},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, a.db.Create(&models.User{
			Code: acc.code, PasswordHash: string(hash), Role: acc.role, RefID: acc.refID,
		}).Error)
	}

	section := models.Section{SubjectID: subject.ID, TeacherID: teacher.ID,
		ClassroomID: classroom.ID, Year: 2025, Semester: 1, Capacity: 40}
	require.NoError(t, a.db.Create(&section).Error)
	return section
}

func (a *app) do(t *testing.T, method, path, body string, cookie *http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func (a *app) login(t *testing.T, code, role string) *http.Cookie {
	t.Helper()
	rec, body := a.do(t, http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"code":%q,"password":"1234","role":%q}`, code, role), nil)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %v", body)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestStudentRegistrationFlow(t *testing.T) {
	a := newApp(t)
	section := a.seed(t)

	cookie := a.login(t, "S001", "student")

	// browse
	rec, body := a.do(t, http.MethodGet, "/api/student/registration/browse?year=2025&semester=1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	require.Len(t, body["data"], 1)

	// add
	rec, body = a.do(t, http.MethodPost, "/api/student/registration/add",
		fmt.Sprintf(`{"section_id":%d,"year":2025,"semester":1}`, section.ID), cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])

	// the row appears in registered
	rec, body = a.do(t, http.MethodGet, "/api/student/registration/registered", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	// duplicate add is a conflict, not a second row
	rec, body = a.do(t, http.MethodPost, "/api/student/registration/add",
		fmt.Sprintf(`{"section_id":%d,"year":2025,"semester":1}`, section.ID), cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, body["success"])

	// confirm stays a success no-op
	rec, _ = a.do(t, http.MethodPost, "/api/student/registration/confirm", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	// remove, then it is gone
	item := data[0].(map[string]any)
	regID := int(item["registration_id"].(float64))
	rec, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/student/registration/%d", regID), "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/student/registration/%d", regID), "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidIntegerParamIs400(t *testing.T) {
	a := newApp(t)
	a.seed(t)
	cookie := a.login(t, "S001", "student")

	rec, body := a.do(t, http.MethodGet, "/api/student/grades?year=abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestMissingRequiredParamIs400(t *testing.T) {
	a := newApp(t)
	a.seed(t)
	cookie := a.login(t, "S001", "student")

	rec, body := a.do(t, http.MethodGet, "/api/student/registration/browse?semester=1", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestAuthBoundaries(t *testing.T) {
	a := newApp(t)
	a.seed(t)

	t.Run("no session is 401", func(t *testing.T) {
		rec, body := a.do(t, http.MethodGet, "/api/student/grades", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("wrong role is 403", func(t *testing.T) {
		teacherCookie := a.login(t, "T001", "teacher")
		rec, body := a.do(t, http.MethodGet, "/api/student/grades", "", teacherCookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("tampered cookie is 401", func(t *testing.T) {
		cookie := a.login(t, "S001", "student")
		cookie.Value += "x"
		rec, _ := a.do(t, http.MethodGet, "/api/student/grades", "", cookie)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad credentials is 401", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/auth/login",
			`{"code":"S001","password":"wrong","role":"student"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("missing login fields is 400", func(t *testing.T) {
		rec, _ := a.do(t, http.MethodPost, "/api/auth/login", `{"code":"S001"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	a := newApp(t)
	a.seed(t)
	cookie := a.login(t, "S001", "student")

	rec, _ := a.do(t, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" {
			assert.Less(t, ck.MaxAge, 0)
			assert.Empty(t, ck.Value)
			return
		}
	}
	t.Fatal("logout did not rewrite the session cookie")
}

func TestPageGuards(t *testing.T) {
	a := newApp(t)
	a.seed(t)

	t.Run("anonymous redirects to login", func(t *testing.T) {
		for _, path := range []string{"/student", "/teacher", "/director"} {
			rec, _ := a.do(t, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusSeeOther, rec.Code, path)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation), path)
		}
	})

	t.Run("role mismatch redirects", func(t *testing.T) {
		cookie := a.login(t, "S001", "student")
		rec, _ := a.do(t, http.MethodGet, "/teacher", "", cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("matching role renders", func(t *testing.T) {
		cookie := a.login(t, "S001", "student")
		rec, _ := a.do(t, http.MethodGet, "/student", "", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "สมชาย ใจดี")
	})

	t.Run("login page is public", func(t *testing.T) {
		rec, _ := a.do(t, http.MethodGet, "/login", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTeacherOwnershipOverHTTP(t *testing.T) {
	a := newApp(t)
	section := a.seed(t)

	// a second teacher with no sections
	teacher2 := models.Teacher{Code: "T002", FirstName: "x", LastName: "y"}
	require.NoError(t, a.db.Create(&teacher2).Error)
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, a.db.Create(&models.User{
		Code: "T002", PasswordHash: string(hash), Role: models.RoleTeacher, RefID: teacher2.ID,
	}).Error)

	cookie := a.login(t, "T002", "teacher")
	rec, body := a.do(t, http.MethodGet,
		fmt.Sprintf("/api/teacher/sections/%d/students", section.ID), "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestDirectorCRUD(t *testing.T) {
	a := newApp(t)
	a.seed(t)
	cookie := a.login(t, "D001", "director")

	// create a subject
	rec, body := a.do(t, http.MethodPost, "/api/director/subjects",
		`{"code":"SCI101","name":"วิทยาศาสตร์","credits":2}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(body["data"].(map[string]any)["id"].(float64))

	// update via ?id=
	rec, _ = a.do(t, http.MethodPut, fmt.Sprintf("/api/director/subjects?id=%d", id),
		`{"code":"SCI101","name":"วิทยาศาสตร์ทั่วไป","credits":3}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// delete via ?id=
	rec, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/director/subjects?id=%d", id), "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = a.do(t, http.MethodDelete, fmt.Sprintf("/api/director/subjects?id=%d", id), "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("dashboard", func(t *testing.T) {
		rec, body := a.do(t, http.MethodGet, "/api/director/dashboard", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.EqualValues(t, 1, data["students"])
	})

	t.Run("creating a student also creates the login", func(t *testing.T) {
		rec, _ := a.do(t, http.MethodPost, "/api/director/students",
			`{"code":"S100","first_name":"ใหม่","last_name":"มาแล้ว","class_level":"ม.1","room":"2"}`, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)

		var u models.User
		require.NoError(t, a.db.Where("code = ? AND role = ?", "S100", models.RoleStudent).First(&u).Error)
	})
}
