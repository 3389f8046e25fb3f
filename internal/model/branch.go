package model

import (
	"time"

	"github.com/google/uuid"
)

// Branch represents a physical service-center location. Branches are toggled
// inactive, never deleted.
type Branch struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Address     string     `gorm:"type:text;not null" json:"address"`
	PhoneNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phoneNumber"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	Images      StringList `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
