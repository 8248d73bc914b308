package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/config"
	"github.com/muthita66/Winai-school-sub002/handlers"
	"github.com/muthita66/Winai-school-sub002/middlewares"
	"github.com/muthita66/Winai-school-sub002/pages"
	"github.com/muthita66/Winai-school-sub002/services"
	"github.com/muthita66/Winai-school-sub002/session"
)

// Register wires every route. The db handle is the one opened in main; the
// services hold it, nothing reaches for a global.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	codec := session.NewCodec(cfg.JWTSecret)

	// ===== Handlers =====
	auth := handlers.NewAuthHandler(services.NewAuthService(db), codec, !cfg.IsDev())
	reg := handlers.NewRegistrationHandler(services.NewRegistrationService(db))
	grd := handlers.NewGradeHandler(services.NewGradeService(db))
	att := handlers.NewAttendanceHandler(services.NewAttendanceService(db))
	sch := handlers.NewScheduleHandler(services.NewScheduleService(db))
	evl := handlers.NewEvaluationHandler(services.NewEvaluationService(db))
	fin := handlers.NewFinanceHandler(services.NewFinanceService(db))
	dash := handlers.NewDashboardHandler(services.NewDashboardService(db))
	tch := handlers.NewTeacherHandler(services.NewTeacherService(db))
	dir := handlers.NewDirectorHandler(services.NewActorService(db))

	// ===== Pages =====
	e.Renderer = pages.NewRenderer()
	pg := pages.New(codec)
	e.GET("/login", pg.Login)
	e.GET("/director", pg.Director())
	e.GET("/teacher", pg.Teacher())
	e.GET("/student", pg.Student())

	// ===== Auth =====
	e.POST("/api/auth/login", auth.Login)
	e.POST("/api/auth/logout", auth.Logout)

	authMW := middlewares.RequireSession(codec)

	// ===== Student =====
	student := e.Group("/api/student", authMW, middlewares.RequireRole("student"))
	student.GET("/registration/browse", reg.Browse)
	student.GET("/registration/search", reg.Search)
	student.POST("/registration/add", reg.Add)
	student.DELETE("/registration/:id", reg.Remove)
	student.GET("/registration/registered", reg.Registered)
	student.POST("/registration/confirm", reg.Confirm)
	student.GET("/grades", grd.ListMine)
	student.GET("/grades/summary", grd.Summary)
	student.GET("/attendance", att.ListMine)
	student.GET("/schedule", sch.ForStudent)
	student.POST("/evaluation", evl.Submit)
	student.GET("/finance", fin.MyStatement)

	// ===== Teacher =====
	teacher := e.Group("/api/teacher", authMW, middlewares.RequireRole("teacher"))
	teacher.GET("/sections", tch.Sections)
	teacher.GET("/sections/:id/students", tch.SectionStudents)
	teacher.GET("/advisees", tch.Advisees)
	teacher.GET("/schedule", sch.ForTeacher)
	teacher.POST("/attendance", att.Mark)
	teacher.GET("/attendance", att.ListForSection)
	teacher.POST("/grades", grd.Enter)
	teacher.GET("/grades", grd.ListForSection)
	teacher.GET("/evaluation", evl.Report)

	// ===== Director =====
	director := e.Group("/api/director", authMW, middlewares.RequireRole("director"))
	director.GET("/dashboard", dash.Summary)

	director.GET("/students", dir.ListStudents)
	director.POST("/students", dir.CreateStudent)
	director.PUT("/students", dir.UpdateStudent)
	director.DELETE("/students", dir.DeleteStudent)

	director.GET("/teachers", dir.ListTeachers)
	director.POST("/teachers", dir.CreateTeacher)
	director.PUT("/teachers", dir.UpdateTeacher)
	director.DELETE("/teachers", dir.DeleteTeacher)

	director.GET("/classrooms", dir.ListClassrooms)
	director.POST("/classrooms", dir.CreateClassroom)
	director.PUT("/classrooms", dir.UpdateClassroom)
	director.DELETE("/classrooms", dir.DeleteClassroom)

	director.GET("/subjects", dir.ListSubjects)
	director.POST("/subjects", dir.CreateSubject)
	director.PUT("/subjects", dir.UpdateSubject)
	director.DELETE("/subjects", dir.DeleteSubject)

	director.GET("/sections", dir.ListSections)
	director.POST("/sections", dir.CreateSection)
	director.PUT("/sections", dir.UpdateSection)
	director.DELETE("/sections", dir.DeleteSection)

	director.GET("/events", dir.ListEvents)
	director.POST("/events", dir.CreateEvent)
	director.PUT("/events", dir.UpdateEvent)
	director.DELETE("/events", dir.DeleteEvent)

	director.GET("/finance", fin.List)
	director.POST("/finance", fin.Create)
	director.PUT("/finance", fin.MarkPaid)
}
