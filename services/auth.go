package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/models"
	"github.com/muthita66/Winai-school-sub002/session"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks code+password for the requested role and builds the
// session payload. A wrong code, wrong password or wrong role all come back
// as the same ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, code, password, role string) (session.Payload, error) {
	code = strings.TrimSpace(code)
	role = strings.ToLower(strings.TrimSpace(role))

	var u models.User
	err := s.db.WithContext(ctx).
		Where("code = ? AND role = ?", code, role).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Payload{}, ErrInvalidCredentials
		}
		return session.Payload{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return session.Payload{}, ErrInvalidCredentials
	}

	switch u.Role {
	case models.RoleStudent:
		var st models.Student
		if err := s.db.WithContext(ctx).First(&st, u.RefID).Error; err != nil {
			return session.Payload{}, err
		}
		name := strings.TrimSpace(st.Prefix + st.FirstName + " " + st.LastName)
		return session.StudentPayload(st.ID, name, st.Code, st.ClassLevel, st.Room), nil
	case models.RoleTeacher:
		var t models.Teacher
		if err := s.db.WithContext(ctx).First(&t, u.RefID).Error; err != nil {
			return session.Payload{}, err
		}
		name := strings.TrimSpace(t.Prefix + t.FirstName + " " + t.LastName)
		return session.TeacherPayload(t.ID, name, t.Code), nil
	case models.RoleDirector:
		return session.DirectorPayload(u.ID, u.Name), nil
	default:
		return session.Payload{}, ErrInvalidCredentials
	}
}
