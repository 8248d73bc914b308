package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type LevelCount struct {
	ClassLevel string `json:"class_level"`
	Count      int64  `json:"count"`
}

type DashboardSummary struct {
	Students      int64          `json:"students"`
	Teachers      int64          `json:"teachers"`
	Subjects      int64          `json:"subjects"`
	Sections      int64          `json:"sections"`
	Registrations []LevelCount   `json:"registrations_by_level"`
	Upcoming      []models.Event `json:"upcoming_events"`
}

// Summary builds the director dashboard: overall counts, registrations
// grouped by class level, and the next five calendar events from today on.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	db := s.db.WithContext(ctx)
	sum := &DashboardSummary{}

	if err := db.Model(&models.Student{}).Count(&sum.Students).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Teacher{}).Count(&sum.Teachers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Subject{}).Count(&sum.Subjects).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Section{}).Count(&sum.Sections).Error; err != nil {
		return nil, err
	}

	if err := db.Table("registrations").
		Select("s.class_level AS class_level, COUNT(*) AS count").
		Joins("JOIN students s ON s.id = registrations.student_id").
		Group("s.class_level").
		Order("s.class_level ASC").
		Scan(&sum.Registrations).Error; err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if err := db.Where("event_date >= ?", today).
		Order("event_date ASC, id ASC").
		Limit(5).
		Find(&sum.Upcoming).Error; err != nil {
		return nil, err
	}
	return sum, nil
}
