package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type FinanceService struct {
	db *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{db: db}
}

type FinanceStatement struct {
	Records     []models.FinanceRecord `json:"records"`
	Outstanding float64                `json:"outstanding"`
}

// StatementForStudent returns the student's own fee records plus the unpaid
// total.
func (s *FinanceService) StatementForStudent(ctx context.Context, studentID uint) (*FinanceStatement, error) {
	var rows []models.FinanceRecord
	if err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	st := &FinanceStatement{Records: rows}
	for _, r := range rows {
		if r.Status != "paid" {
			st.Outstanding += r.Amount
		}
	}
	return st, nil
}

// List is the director view: all records, optionally one student or term.
func (s *FinanceService) List(ctx context.Context, studentID uint, year, semester int) ([]models.FinanceRecord, error) {
	tx := s.db.WithContext(ctx).Model(&models.FinanceRecord{})
	if studentID > 0 {
		tx = tx.Where("student_id = ?", studentID)
	}
	if year > 0 {
		tx = tx.Where("year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("semester = ?", semester)
	}
	var rows []models.FinanceRecord
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *FinanceService) Create(ctx context.Context, rec *models.FinanceRecord) error {
	if rec.Status == "" {
		rec.Status = "unpaid"
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

// MarkPaid flags one record as paid, stamping the payment time.
func (s *FinanceService) MarkPaid(ctx context.Context, id uint) (*models.FinanceRecord, error) {
	var rec models.FinanceRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("finance record %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	now := time.Now()
	rec.Status = "paid"
	rec.PaidAt = &now
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
