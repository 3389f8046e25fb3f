package model

import (
	"time"

	"github.com/google/uuid"
)

// VehiclesCustomer is a specific vehicle owned by a customer, linked to its
// catalog entry.
type VehiclesCustomer struct {
	ID                  uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LicensePlate        string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"licensePlate"`
	VehiclesSystemID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"vehiclesSystemId"`
	VehiclesSystem      *VehiclesSystem `gorm:"foreignKey:VehiclesSystemID" json:"vehiclesSystem,omitempty"`
	Color               string          `gorm:"type:varchar(50)" json:"color"`
	Mileage             int             `gorm:"not null;default:0" json:"mileage"`
	LastMaintenanceDate *time.Time      `json:"lastMaintenanceDate"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Customer            *User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	IsActive            bool            `gorm:"default:true" json:"isActive"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
