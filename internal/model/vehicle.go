package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinManufactureYear is the earliest accepted year of manufacture.
const MinManufactureYear = 1886

// VehicleModel is a catalog model/trim name (Civic, City, HR-V).
type VehicleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`
}

// VehiclesSystem is a catalog vehicle: a model instance with pricing. The
// (name, model) pair is unique.
type VehiclesSystem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_vehicles_system_name_model" json:"name"`
	ModelID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_vehicles_system_name_model" json:"model_id"`
	Model       *VehicleModel   `gorm:"foreignKey:ModelID" json:"model,omitempty"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Year        int             `gorm:"not null" json:"year"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Avatar      string          `gorm:"type:varchar(255)" json:"avatar"`
	Images      StringList      `gorm:"type:jsonb" json:"images"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
