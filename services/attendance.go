package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// Mark records attendance for a student in one of the teacher's own
// sections. Marking the same student+section+date again overwrites the
// earlier status (late corrections are normal).
func (s *AttendanceService) Mark(ctx context.Context, teacherID, sectionID, studentID uint, date, status, note string) (*models.Attendance, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var out models.Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownSection(tx, teacherID, sectionID); err != nil {
			return err
		}

		var att models.Attendance
		err := tx.Where("student_id = ? AND section_id = ? AND date = ?", studentID, sectionID, date).
			First(&att).Error
		if err == nil {
			att.Status = status
			att.Note = note
			out = att
			return tx.Save(&att).Error
		}
		att = models.Attendance{
			StudentID: studentID,
			SectionID: sectionID,
			Date:      date,
			Status:    status,
			Note:      note,
		}
		if err := tx.Create(&att).Error; err != nil {
			return err
		}
		out = att
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListForSection returns attendance rows of one of the teacher's sections,
// optionally for a single date.
func (s *AttendanceService) ListForSection(ctx context.Context, teacherID, sectionID uint, date string) ([]models.Attendance, error) {
	if _, err := ownSection(s.db.WithContext(ctx), teacherID, sectionID); err != nil {
		return nil, err
	}
	tx := s.db.WithContext(ctx).Where("section_id = ?", sectionID)
	if date != "" {
		tx = tx.Where("date = ?", date)
	}
	var rows []models.Attendance
	if err := tx.Order("date ASC, student_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListForStudent returns the student's own attendance, optionally narrowed
// to a term (resolved through the section).
func (s *AttendanceService) ListForStudent(ctx context.Context, studentID uint, year, semester int) ([]models.Attendance, error) {
	tx := s.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("attendances.student_id = ?", studentID)
	if year > 0 || semester > 0 {
		tx = tx.Joins("JOIN sections sec ON sec.id = attendances.section_id")
		if year > 0 {
			tx = tx.Where("sec.year = ?", year)
		}
		if semester > 0 {
			tx = tx.Where("sec.semester = ?", semester)
		}
	}
	var rows []models.Attendance
	if err := tx.Order("attendances.date ASC, attendances.id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type AttendanceSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

// SummaryForStudent counts the student's attendance by status.
func (s *AttendanceService) SummaryForStudent(ctx context.Context, studentID uint, year, semester int) (*AttendanceSummary, error) {
	rows, err := s.ListForStudent(ctx, studentID, year, semester)
	if err != nil {
		return nil, err
	}
	sum := &AttendanceSummary{}
	for _, r := range rows {
		switch r.Status {
		case "present":
			sum.Present++
		case "late":
			sum.Late++
		case "absent":
			sum.Absent++
		case "leave":
			sum.Leave++
		}
	}
	return sum, nil
}
