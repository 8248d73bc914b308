package services

import (
	"context"

	"gorm.io/gorm"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// ScheduleEntry is one timetable slot.
type ScheduleEntry struct {
	SectionID   uint   `json:"section_id"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type scheduleRow struct {
	SectionID     uint
	SubjectCode   string
	SubjectName   string
	TeacherPrefix string
	TeacherFirst  string
	TeacherLast   string
	DayOfWeek     int
	StartTime     string
	EndTime       string
}

const scheduleSelect = `sections.id AS section_id, sub.code AS subject_code, sub.name AS subject_name,
t.prefix AS teacher_prefix, t.first_name AS teacher_first, t.last_name AS teacher_last,
sections.day_of_week, sections.start_time, sections.end_time`

func toEntries(rows []scheduleRow) []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, ScheduleEntry{
			SectionID:   r.SectionID,
			SubjectCode: r.SubjectCode,
			SubjectName: r.SubjectName,
			TeacherName: teacherName(r.TeacherPrefix, r.TeacherFirst, r.TeacherLast),
			DayOfWeek:   r.DayOfWeek,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
		})
	}
	return out
}

func (s *ScheduleService) base(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("sections").
		Select(scheduleSelect).
		Joins("JOIN subjects sub ON sub.id = sections.subject_id").
		Joins("JOIN teachers t ON t.id = sections.teacher_id")
}

// ForStudent builds the student's weekly timetable from their registrations.
func (s *ScheduleService) ForStudent(ctx context.Context, studentID uint, year, semester int) ([]ScheduleEntry, error) {
	tx := s.base(ctx).
		Joins("JOIN registrations reg ON reg.section_id = sections.id").
		Where("reg.student_id = ?", studentID)
	if year > 0 {
		tx = tx.Where("reg.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("reg.semester = ?", semester)
	}
	var rows []scheduleRow
	if err := tx.Order("sections.day_of_week ASC, sections.start_time ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

// ForTeacher builds the teacher's timetable from their assigned sections.
func (s *ScheduleService) ForTeacher(ctx context.Context, teacherID uint, year, semester int) ([]ScheduleEntry, error) {
	tx := s.base(ctx).Where("sections.teacher_id = ?", teacherID)
	if year > 0 {
		tx = tx.Where("sections.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("sections.semester = ?", semester)
	}
	var rows []scheduleRow
	if err := tx.Order("sections.day_of_week ASC, sections.start_time ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}
