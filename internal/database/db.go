package database

import (
	"log"

	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	// TranslateError lets callers detect unique-index violations via
	// gorm.ErrDuplicatedKey, the backstop for duplicate-creation races.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Branch{},
		&model.User{},
		&model.Accessory{},
		&model.ServiceSystem{},
		&model.ServiceBranch{},
		&model.VehicleModel{},
		&model.VehiclesSystem{},
		&model.VehiclesCustomer{},
		&model.Appointment{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
