package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// SectionInfo is a section joined with its subject and teacher plus the
// current seat usage. Returned by browse/search/registered.
type SectionInfo struct {
	ID          uint   `json:"id"`
	SubjectID   uint   `json:"subject_id"`
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Credits     int    `json:"credits"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	ClassroomID uint   `json:"classroom_id"`
	Year        int    `json:"year"`
	Semester    int    `json:"semester"`
	Capacity    int    `json:"capacity"`
	Registered  int    `json:"registered"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type sectionRow struct {
	RegistrationID uint // only set by GetRegistered
	ID             uint
	SubjectID      uint
	SubjectCode    string
	SubjectName    string
	Credits        int
	TeacherID      uint
	TeacherPrefix  string
	TeacherFirst   string
	TeacherLast    string
	ClassroomID    uint
	Year           int
	Semester       int
	Capacity       int
	Registered     int
	DayOfWeek      int
	StartTime      string
	EndTime        string
}

const sectionSelect = `sections.id, sections.subject_id, sub.code AS subject_code, sub.name AS subject_name,
sub.credits, sections.teacher_id, t.prefix AS teacher_prefix, t.first_name AS teacher_first,
t.last_name AS teacher_last, sections.classroom_id, sections.year, sections.semester, sections.capacity,
sections.day_of_week, sections.start_time, sections.end_time,
(SELECT COUNT(*) FROM registrations r WHERE r.section_id = sections.id
 AND r.year = sections.year AND r.semester = sections.semester) AS registered`

func (row sectionRow) info() SectionInfo {
	name := teacherName(row.TeacherPrefix, row.TeacherFirst, row.TeacherLast)
	return SectionInfo{
		ID:          row.ID,
		SubjectID:   row.SubjectID,
		SubjectCode: row.SubjectCode,
		SubjectName: row.SubjectName,
		Credits:     row.Credits,
		TeacherID:   row.TeacherID,
		TeacherName: name,
		ClassroomID: row.ClassroomID,
		Year:        row.Year,
		Semester:    row.Semester,
		Capacity:    row.Capacity,
		Registered:  row.Registered,
		DayOfWeek:   row.DayOfWeek,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
	}
}

func toInfos(rows []sectionRow) []SectionInfo {
	out := make([]SectionInfo, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.info())
	}
	return out
}

func (s *RegistrationService) sectionQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("sections").
		Select(sectionSelect).
		Joins("JOIN subjects sub ON sub.id = sections.subject_id").
		Joins("JOIN teachers t ON t.id = sections.teacher_id")
}

// ResolveClassroomID turns an optional class_level/room filter into a
// classroom id. Pure lookup: (0, false) when no filter was given or nothing
// matches.
func (s *RegistrationService) ResolveClassroomID(ctx context.Context, classLevel, room string) (uint, bool, error) {
	classLevel = strings.TrimSpace(classLevel)
	room = strings.TrimSpace(room)
	if classLevel == "" && room == "" {
		return 0, false, nil
	}
	tx := s.db.WithContext(ctx).Model(&models.Classroom{})
	if classLevel != "" {
		tx = tx.Where("class_level = ?", classLevel)
	}
	if room != "" {
		tx = tx.Where("room = ?", room)
	}
	var cr models.Classroom
	if err := tx.First(&cr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return cr.ID, true, nil
}

// BrowseSubjects lists the sections offered in a term, optionally narrowed
// to one classroom, with current seat counts. Ordered by section id.
func (s *RegistrationService) BrowseSubjects(ctx context.Context, year, semester int, classLevel, room string) ([]SectionInfo, error) {
	tx := s.sectionQuery(ctx).
		Where("sections.year = ? AND sections.semester = ?", year, semester)

	if strings.TrimSpace(classLevel) != "" || strings.TrimSpace(room) != "" {
		id, ok, err := s.ResolveClassroomID(ctx, classLevel, room)
		if err != nil {
			return nil, err
		}
		if !ok {
			// filter given but no such classroom: nothing is offered there
			return []SectionInfo{}, nil
		}
		tx = tx.Where("sections.classroom_id = ?", id)
	}

	var rows []sectionRow
	if err := tx.Order("sections.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toInfos(rows), nil
}

// SearchSubjects matches keyword as a substring of subject name or code.
// An empty keyword is not an error, it is just an empty result.
func (s *RegistrationService) SearchSubjects(ctx context.Context, keyword string, year, semester int, classroomID uint) ([]SectionInfo, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []SectionInfo{}, nil
	}

	like := "%" + strings.ToLower(keyword) + "%"
	tx := s.sectionQuery(ctx).
		Where("LOWER(sub.name) LIKE ? OR LOWER(sub.code) LIKE ?", like, like)
	if year > 0 {
		tx = tx.Where("sections.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("sections.semester = ?", semester)
	}
	if classroomID > 0 {
		tx = tx.Where("sections.classroom_id = ?", classroomID)
	}

	var rows []sectionRow
	if err := tx.Order("sections.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toInfos(rows), nil
}

// AddToCart registers a student into a section. "Cart" is historical naming:
// there is no staged state, the row is the enrollment. The capacity and
// duplicate checks run inside one transaction so concurrent adds cannot
// oversubscribe a section; a duplicate add is an explicit error, never a
// second row.
func (s *RegistrationService) AddToCart(ctx context.Context, studentID, sectionID uint, year, semester int) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sec models.Section
		if err := tx.First(&sec, sectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("section %d: %w", sectionID, ErrNotFound)
			}
			return err
		}
		if sec.Year != year || sec.Semester != semester {
			return fmt.Errorf("section %d is not offered in %d/%d: %w", sectionID, year, semester, ErrNotFound)
		}

		var dup int64
		if err := tx.Model(&models.Registration{}).
			Where("student_id = ? AND section_id = ? AND year = ? AND semester = ?",
				studentID, sectionID, year, semester).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicate
		}

		var used int64
		if err := tx.Model(&models.Registration{}).
			Where("section_id = ? AND year = ? AND semester = ?", sectionID, year, semester).
			Count(&used).Error; err != nil {
			return err
		}
		if used >= int64(sec.Capacity) {
			return ErrSectionFull
		}

		reg = models.Registration{
			StudentID: studentID,
			SectionID: sectionID,
			Year:      year,
			Semester:  semester,
		}
		return tx.Create(&reg).Error
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// RemoveCartItem deletes one of the student's own registrations. A row that
// does not exist, or belongs to another student, is the same not-found.
func (s *RegistrationService) RemoveCartItem(ctx context.Context, studentID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		Delete(&models.Registration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("registration %d: %w", id, ErrNotFound)
	}
	return nil
}

// RegisteredItem is one active registration of a student.
type RegisteredItem struct {
	RegistrationID uint        `json:"registration_id"`
	Section        SectionInfo `json:"section"`
}

// GetRegistered lists the student's active registrations. studentID always
// comes from the session, never from the caller.
func (s *RegistrationService) GetRegistered(ctx context.Context, studentID uint, year, semester int) ([]RegisteredItem, error) {
	tx := s.sectionQuery(ctx).
		Select("reg.id AS registration_id, "+sectionSelect).
		Joins("JOIN registrations reg ON reg.section_id = sections.id").
		Where("reg.student_id = ?", studentID)
	if year > 0 {
		tx = tx.Where("reg.year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("reg.semester = ?", semester)
	}

	var rows []sectionRow
	if err := tx.Order("reg.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]RegisteredItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, RegisteredItem{RegistrationID: r.RegistrationID, Section: r.info()})
	}
	return out, nil
}
