package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/muthita66/Winai-school-sub002/database"
	"github.com/muthita66/Winai-school-sub002/models"
)

// newTestDB opens a fresh in-memory sqlite DB migrated to the app schema.
// The DSN is keyed by test name so parallel tests cannot share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	teacher   models.Teacher
	subject   models.Subject
	classroom models.Classroom
	section   models.Section
	student   models.Student
}

// seedTerm creates one classroom, teacher, subject and an open section for
// year 2568 semester 1, plus one student in that classroom.
func seedTerm(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	fx := fixture{
		teacher: models.Teacher{Code: "T001", Prefix: "ครู", FirstName: "สมศรี", LastName: "ดีมาก"},
		subject: models.Subject{Code: "MATH101", Name: "คณิตศาสตร์พื้นฐาน", Credits: 3},
	}
	require.NoError(t, db.Create(&fx.teacher).Error)
	require.NoError(t, db.Create(&fx.subject).Error)

	fx.classroom = models.Classroom{ClassLevel: "ม.1", Room: "2", AdvisorID: fx.teacher.ID}
	require.NoError(t, db.Create(&fx.classroom).Error)

	fx.section = models.Section{
		SubjectID:   fx.subject.ID,
		TeacherID:   fx.teacher.ID,
		ClassroomID: fx.classroom.ID,
		Year:        2568,
		Semester:    1,
		Capacity:    2,
		DayOfWeek:   1,
		StartTime:   "08:30",
		EndTime:     "10:30",
	}
	require.NoError(t, db.Create(&fx.section).Error)

	fx.student = newStudent(t, db, "S001", fx.classroom.ID)
	return fx
}

var studentSeq = 0

func newStudent(t *testing.T, db *gorm.DB, code string, classroomID uint) models.Student {
	t.Helper()
	studentSeq++
	st := models.Student{
		Code:        code,
		Prefix:      "ด.ช.",
		FirstName:   fmt.Sprintf("นักเรียน%d", studentSeq),
		LastName:    "ทดสอบ",
		ClassLevel:  "ม.1",
		Room:        "2",
		ClassroomID: classroomID,
		Status:      "active",
	}
	require.NoError(t, db.Create(&st).Error)
	return st
}

func register(t *testing.T, db *gorm.DB, studentID, sectionID uint, year, semester int) models.Registration {
	t.Helper()
	reg := models.Registration{StudentID: studentID, SectionID: sectionID, Year: year, Semester: semester}
	require.NoError(t, db.Create(&reg).Error)
	return reg
}
