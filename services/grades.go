package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type GradeService struct {
	db *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{db: db}
}

type GradeInfo struct {
	ID          uint    `json:"id"`
	StudentID   uint    `json:"student_id"`
	SectionID   uint    `json:"section_id"`
	SubjectCode string  `json:"subject_code"`
	SubjectName string  `json:"subject_name"`
	Credits     int     `json:"credits"`
	Year        int     `json:"year"`
	Semester    int     `json:"semester"`
	Score       float64 `json:"score"`
	Letter      string  `json:"letter"`
}

// letterFor maps a 0-100 score onto the school's grade scale.
func letterFor(score float64) string {
	switch {
	case score >= 80:
		return "4"
	case score >= 75:
		return "3.5"
	case score >= 70:
		return "3"
	case score >= 65:
		return "2.5"
	case score >= 60:
		return "2"
	case score >= 55:
		return "1.5"
	case score >= 50:
		return "1"
	default:
		return "0"
	}
}

func points(letter string) float64 {
	switch letter {
	case "4":
		return 4
	case "3.5":
		return 3.5
	case "3":
		return 3
	case "2.5":
		return 2.5
	case "2":
		return 2
	case "1.5":
		return 1.5
	case "1":
		return 1
	default:
		return 0
	}
}

// ListForStudent returns the student's own grades, optionally narrowed to a
// term. Every returned row belongs to studentID.
func (s *GradeService) ListForStudent(ctx context.Context, studentID uint, year, semester int) ([]GradeInfo, error) {
	tx := s.db.WithContext(ctx).
		Table("grades").
		Select(`grades.id, grades.student_id, grades.section_id, sub.code AS subject_code,
sub.name AS subject_name, sub.credits, grades.year, grades.semester, grades.score, grades.letter`).
		Joins("JOIN sections sec ON sec.id = grades.section_id").
		Joins("JOIN subjects sub ON sub.id = sec.subject_id").
		Where("grades.student_id = ?", studentID)
	if year > 0 {
		tx = tx.Where("grades.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("grades.semester = ?", semester)
	}

	var rows []GradeInfo
	if err := tx.Order("grades.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type GradeSummary struct {
	GPA          float64 `json:"gpa"`
	TotalCredits int     `json:"total_credits"`
	Graded       int     `json:"graded"`
}

// Summary computes the credit-weighted GPA over every grade the student has.
func (s *GradeService) Summary(ctx context.Context, studentID uint) (*GradeSummary, error) {
	rows, err := s.ListForStudent(ctx, studentID, 0, 0)
	if err != nil {
		return nil, err
	}
	sum := &GradeSummary{}
	var weighted float64
	for _, g := range rows {
		weighted += points(g.Letter) * float64(g.Credits)
		sum.TotalCredits += g.Credits
		sum.Graded++
	}
	if sum.TotalCredits > 0 {
		sum.GPA = weighted / float64(sum.TotalCredits)
	}
	return sum, nil
}

// ownSection checks that the section exists and is taught by teacherID.
func ownSection(tx *gorm.DB, teacherID, sectionID uint) (*models.Section, error) {
	var sec models.Section
	if err := tx.First(&sec, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("section %d: %w", sectionID, ErrNotFound)
		}
		return nil, err
	}
	if sec.TeacherID != teacherID {
		return nil, fmt.Errorf("section %d: %w", sectionID, ErrForbidden)
	}
	return &sec, nil
}

// Enter records or updates the grade for a student in one of the teacher's
// own sections. The student must actually be registered in that section.
func (s *GradeService) Enter(ctx context.Context, teacherID, sectionID, studentID uint, score float64) (*models.Grade, error) {
	var out models.Grade
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sec, err := ownSection(tx, teacherID, sectionID)
		if err != nil {
			return err
		}

		var reg int64
		if err := tx.Model(&models.Registration{}).
			Where("student_id = ? AND section_id = ? AND year = ? AND semester = ?",
				studentID, sectionID, sec.Year, sec.Semester).
			Count(&reg).Error; err != nil {
			return err
		}
		if reg == 0 {
			return fmt.Errorf("student %d is not registered in section %d: %w", studentID, sectionID, ErrNotFound)
		}

		var g models.Grade
		err = tx.Where("student_id = ? AND section_id = ? AND year = ? AND semester = ?",
			studentID, sectionID, sec.Year, sec.Semester).First(&g).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			g = models.Grade{
				StudentID: studentID,
				SectionID: sectionID,
				Year:      sec.Year,
				Semester:  sec.Semester,
				Score:     score,
				Letter:    letterFor(score),
			}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			g.Score = score
			g.Letter = letterFor(score)
			if err := tx.Save(&g).Error; err != nil {
				return err
			}
		}
		out = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListForSection returns all grades of one of the teacher's own sections.
func (s *GradeService) ListForSection(ctx context.Context, teacherID, sectionID uint) ([]models.Grade, error) {
	if _, err := ownSection(s.db.WithContext(ctx), teacherID, sectionID); err != nil {
		return nil, err
	}
	var rows []models.Grade
	err := s.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("student_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
