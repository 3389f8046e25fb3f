package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accessory is a sellable spare part or add-on. Once an accessory has images,
// an update may replace them but never clear the list.
type Accessory struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Images      StringList      `gorm:"type:jsonb" json:"images"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
