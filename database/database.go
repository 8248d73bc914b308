package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/config"
	"github.com/muthita66/Winai-school-sub002/models"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// the single process-wide client; callers pass it down to the services
// instead of reaching for a package global.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model. Split out so tests can reuse it
// against their own (sqlite) handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Classroom{},
		&models.Subject{},
		&models.Section{},
		&models.Registration{},
		&models.Grade{},
		&models.Attendance{},
		&models.Evaluation{},
		&models.FinanceRecord{},
		&models.Event{},
	)
}
