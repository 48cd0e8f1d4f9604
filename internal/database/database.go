package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema idempotently. There is no migration system;
// AutoMigrate runs at every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.Booking{},
		&model.Contact{},
	)
}
