package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
)

// ActorService is the director's management surface: people, classrooms,
// subjects, sections and calendar events.
type ActorService struct {
	db *gorm.DB
}

func NewActorService(db *gorm.DB) *ActorService {
	return &ActorService{db: db}
}

func notFound(what string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}

/* ===== Students ===== */

func (s *ActorService) ListStudents(ctx context.Context, classLevel, room, q string) ([]models.Student, error) {
	tx := s.db.WithContext(ctx).Model(&models.Student{})
	if classLevel != "" {
		tx = tx.Where("class_level = ?", classLevel)
	}
	if room != "" {
		tx = tx.Where("room = ?", room)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(code) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}
	var rows []models.Student
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateStudent inserts the student and their login account in one
// transaction. initialPassword is bcrypt-hashed into the account.
func (s *ActorService) CreateStudent(ctx context.Context, st *models.Student, initialPassword string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(st).Error; err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := models.User{
			Code:         st.Code,
			PasswordHash: string(hash),
			Role:         models.RoleStudent,
			Name:         strings.TrimSpace(st.Prefix + st.FirstName + " " + st.LastName),
			RefID:        st.ID,
		}
		return tx.Create(&u).Error
	})
}

func (s *ActorService) UpdateStudent(ctx context.Context, id uint, upd *models.Student) (*models.Student, error) {
	var st models.Student
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, notFound("student", id, err)
	}
	st.Prefix = upd.Prefix
	st.FirstName = upd.FirstName
	st.LastName = upd.LastName
	st.ClassLevel = upd.ClassLevel
	st.Room = upd.Room
	st.ClassroomID = upd.ClassroomID
	st.Phone = upd.Phone
	if upd.Status != "" {
		st.Status = upd.Status
	}
	if err := s.db.WithContext(ctx).Save(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *ActorService) DeleteStudent(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st models.Student
		if err := tx.First(&st, id).Error; err != nil {
			return notFound("student", id, err)
		}
		if err := tx.Where("role = ? AND ref_id = ?", models.RoleStudent, id).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&st).Error
	})
}

/* ===== Teachers ===== */

func (s *ActorService) ListTeachers(ctx context.Context, q string) ([]models.Teacher, error) {
	tx := s.db.WithContext(ctx).Model(&models.Teacher{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(code) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}
	var rows []models.Teacher
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActorService) CreateTeacher(ctx context.Context, t *models.Teacher, initialPassword string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := models.User{
			Code:         t.Code,
			PasswordHash: string(hash),
			Role:         models.RoleTeacher,
			Name:         teacherName(t.Prefix, t.FirstName, t.LastName),
			RefID:        t.ID,
		}
		return tx.Create(&u).Error
	})
}

func (s *ActorService) UpdateTeacher(ctx context.Context, id uint, upd *models.Teacher) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound("teacher", id, err)
	}
	t.Prefix = upd.Prefix
	t.FirstName = upd.FirstName
	t.LastName = upd.LastName
	t.Email = upd.Email
	t.Position = upd.Position
	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ActorService) DeleteTeacher(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t models.Teacher
		if err := tx.First(&t, id).Error; err != nil {
			return notFound("teacher", id, err)
		}
		if err := tx.Where("role = ? AND ref_id = ?", models.RoleTeacher, id).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&t).Error
	})
}

/* ===== Classrooms ===== */

func (s *ActorService) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	var rows []models.Classroom
	if err := s.db.WithContext(ctx).Order("class_level ASC, room ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActorService) CreateClassroom(ctx context.Context, cr *models.Classroom) error {
	return s.db.WithContext(ctx).Create(cr).Error
}

func (s *ActorService) UpdateClassroom(ctx context.Context, id uint, upd *models.Classroom) (*models.Classroom, error) {
	var cr models.Classroom
	if err := s.db.WithContext(ctx).First(&cr, id).Error; err != nil {
		return nil, notFound("classroom", id, err)
	}
	cr.ClassLevel = upd.ClassLevel
	cr.Room = upd.Room
	cr.AdvisorID = upd.AdvisorID
	if err := s.db.WithContext(ctx).Save(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (s *ActorService) DeleteClassroom(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Classroom{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("classroom %d: %w", id, ErrNotFound)
	}
	return nil
}

/* ===== Subjects ===== */

func (s *ActorService) ListSubjects(ctx context.Context, q string) ([]models.Subject, error) {
	tx := s.db.WithContext(ctx).Model(&models.Subject{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}
	var rows []models.Subject
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActorService) CreateSubject(ctx context.Context, sub *models.Subject) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *ActorService) UpdateSubject(ctx context.Context, id uint, upd *models.Subject) (*models.Subject, error) {
	var sub models.Subject
	if err := s.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, notFound("subject", id, err)
	}
	sub.Code = upd.Code
	sub.Name = upd.Name
	sub.Credits = upd.Credits
	if err := s.db.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *ActorService) DeleteSubject(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Subject{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("subject %d: %w", id, ErrNotFound)
	}
	return nil
}

/* ===== Sections ===== */

func (s *ActorService) ListSections(ctx context.Context, year, semester int) ([]models.Section, error) {
	tx := s.db.WithContext(ctx).Model(&models.Section{})
	if year > 0 {
		tx = tx.Where("year = ?", year)
	}
	if semester > 0 {
		tx = tx.Where("semester = ?", semester)
	}
	var rows []models.Section
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActorService) CreateSection(ctx context.Context, sec *models.Section) error {
	// subject and teacher must exist; a dangling section breaks browse joins
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Subject{}).Where("id = ?", sec.SubjectID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("subject %d: %w", sec.SubjectID, ErrNotFound)
	}
	if err := s.db.WithContext(ctx).Model(&models.Teacher{}).Where("id = ?", sec.TeacherID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("teacher %d: %w", sec.TeacherID, ErrNotFound)
	}
	return s.db.WithContext(ctx).Create(sec).Error
}

func (s *ActorService) UpdateSection(ctx context.Context, id uint, upd *models.Section) (*models.Section, error) {
	var sec models.Section
	if err := s.db.WithContext(ctx).First(&sec, id).Error; err != nil {
		return nil, notFound("section", id, err)
	}
	sec.SubjectID = upd.SubjectID
	sec.TeacherID = upd.TeacherID
	sec.ClassroomID = upd.ClassroomID
	sec.Year = upd.Year
	sec.Semester = upd.Semester
	sec.Capacity = upd.Capacity
	sec.DayOfWeek = upd.DayOfWeek
	sec.StartTime = upd.StartTime
	sec.EndTime = upd.EndTime
	if err := s.db.WithContext(ctx).Save(&sec).Error; err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *ActorService) DeleteSection(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Section{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("section %d: %w", id, ErrNotFound)
	}
	return nil
}

/* ===== Events ===== */

func (s *ActorService) ListEvents(ctx context.Context) ([]models.Event, error) {
	var rows []models.Event
	if err := s.db.WithContext(ctx).Order("event_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ActorService) CreateEvent(ctx context.Context, ev *models.Event) error {
	return s.db.WithContext(ctx).Create(ev).Error
}

func (s *ActorService) UpdateEvent(ctx context.Context, id uint, upd *models.Event) (*models.Event, error) {
	var ev models.Event
	if err := s.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, notFound("event", id, err)
	}
	ev.Title = upd.Title
	ev.Detail = upd.Detail
	ev.EventDate = upd.EventDate
	if err := s.db.WithContext(ctx).Save(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *ActorService) DeleteEvent(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	return nil
}
