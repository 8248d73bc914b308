package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type EvaluationService struct {
	db *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// Submit stores a student's evaluation of a section they are registered in.
// One evaluation per student+section+term; submitting again replaces it.
func (s *EvaluationService) Submit(ctx context.Context, studentID, sectionID uint, year, semester, score int, comment string) (*models.Evaluation, error) {
	var out models.Evaluation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg int64
		if err := tx.Model(&models.Registration{}).
			Where("student_id = ? AND section_id = ? AND year = ? AND semester = ?",
				studentID, sectionID, year, semester).
			Count(&reg).Error; err != nil {
			return err
		}
		if reg == 0 {
			return fmt.Errorf("not registered in section %d: %w", sectionID, ErrForbidden)
		}

		var ev models.Evaluation
		err := tx.Where("student_id = ? AND section_id = ? AND year = ? AND semester = ?",
			studentID, sectionID, year, semester).First(&ev).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ev = models.Evaluation{
				StudentID: studentID,
				SectionID: sectionID,
				Year:      year,
				Semester:  semester,
				Score:     score,
				Comment:   comment,
			}
			if err := tx.Create(&ev).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			ev.Score = score
			ev.Comment = comment
			if err := tx.Save(&ev).Error; err != nil {
				return err
			}
		}
		out = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type EvaluationReport struct {
	SectionID uint     `json:"section_id"`
	Count     int      `json:"count"`
	Average   float64  `json:"average"`
	Comments  []string `json:"comments"`
}

// Report aggregates the evaluations of one of the teacher's own sections.
// Comments are returned without the submitting student's identity.
func (s *EvaluationService) Report(ctx context.Context, teacherID, sectionID uint) (*EvaluationReport, error) {
	if _, err := ownSection(s.db.WithContext(ctx), teacherID, sectionID); err != nil {
		return nil, err
	}

	var rows []models.Evaluation
	if err := s.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rep := &EvaluationReport{SectionID: sectionID, Comments: []string{}}
	var total int
	for _, ev := range rows {
		rep.Count++
		total += ev.Score
		if ev.Comment != "" {
			rep.Comments = append(rep.Comments, ev.Comment)
		}
	}
	if rep.Count > 0 {
		rep.Average = float64(total) / float64(rep.Count)
	}
	return rep, nil
}
