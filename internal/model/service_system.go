package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceCategory enum constants
const (
	CategoryMaintenance = "maintenance"
	CategoryRepair      = "repair"
	CategoryCheck       = "check"
)

// ValidCategories is the closed set of service categories.
var ValidCategories = map[string]bool{
	CategoryMaintenance: true,
	CategoryRepair:      true,
	CategoryCheck:       true,
}

// ServiceSystem is a service offering (oil change, inspection, ...). It can
// be enabled or disabled per branch independently of the branch's own
// IsActive flag.
type ServiceSystem struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	EstimatedTime float64         `gorm:"not null;default:0" json:"estimatedTime"` // hours
	Category      string          `gorm:"type:varchar(20);not null;index" json:"category"`
	Images        StringList      `gorm:"type:jsonb" json:"images"`
	Branches      []ServiceBranch `gorm:"foreignKey:ServiceSystemID;constraint:OnDelete:CASCADE" json:"branches"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ServiceBranch links a service to a branch it is offered at. The set is
// replaced wholesale on update, not merged.
type ServiceBranch struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ServiceSystemID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_system_id"`
	BranchID        uuid.UUID `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch          *Branch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
}
