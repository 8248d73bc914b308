package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

// TeacherService covers the teacher portal reads: their own sections, the
// students in those sections, and their advisees.
type TeacherService struct {
	db *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{db: db}
}

type TeacherSection struct {
	ID          uint   `json:"id"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Year        int    `json:"year"`
	Semester    int    `json:"semester"`
	Capacity    int    `json:"capacity"`
	Registered  int    `json:"registered"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// Sections lists the sections assigned to teacherID. Every returned row is
// one of their own.
func (s *TeacherService) Sections(ctx context.Context, teacherID uint, year, semester int) ([]TeacherSection, error) {
	tx := s.db.WithContext(ctx).
		Table("sections").
		Select(`sections.id, sub.code AS subject_code, sub.name AS subject_name, sections.year,
sections.semester, sections.capacity, sections.day_of_week, sections.start_time, sections.end_time,
(SELECT COUNT(*) FROM registrations r WHERE r.section_id = sections.id
 AND r.year = sections.year AND r.semester = sections.semester) AS registered`).
		Joins("JOIN subjects sub ON sub.id = sections.subject_id").
		Where("sections.teacher_id = ?", teacherID)
	if year > 0 {
		tx = tx.Where("sections.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("sections.semester = ?", semester)
	}
	var rows []TeacherSection
	if err := tx.Order("sections.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SectionStudents lists the students registered in one of the teacher's own
// sections; a section taught by someone else is ErrForbidden.
func (s *TeacherService) SectionStudents(ctx context.Context, teacherID, sectionID uint) ([]models.Student, error) {
	if _, err := ownSection(s.db.WithContext(ctx), teacherID, sectionID); err != nil {
		return nil, err
	}
	var rows []models.Student
	err := s.db.WithContext(ctx).
		Table("students").
		Select("students.*").
		Joins("JOIN registrations reg ON reg.student_id = students.id").
		Where("reg.section_id = ?", sectionID).
		Order("students.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Advisees lists the students of the classrooms the teacher advises.
func (s *TeacherService) Advisees(ctx context.Context, teacherID uint) ([]models.Student, error) {
	var rows []models.Student
	err := s.db.WithContext(ctx).
		Table("students").
		Select("students.*").
		Joins("JOIN classrooms cr ON cr.id = students.classroom_id").
		Where("cr.advisor_id = ?", teacherID).
		Order("students.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
