package model

import (
	"time"

	"github.com/google/uuid"
)

// Role enum constants. Single source of truth for the data model and the
// authorization gate.
const (
	RoleAdministrator       = "Administrator"
	RoleBranchManager       = "Branch Manager"
	RoleWarehouseStaff      = "Warehouse Staff"
	RoleTechnician          = "Technician"
	RoleServiceReceptionist = "Service Receptionist"
	RoleServiceAdvisor      = "Service Advisor"
	RoleCustomer            = "Customer"
)

// Gender enum constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// ValidRoles is the closed set of account roles.
var ValidRoles = map[string]bool{
	RoleAdministrator:       true,
	RoleBranchManager:       true,
	RoleWarehouseStaff:      true,
	RoleTechnician:          true,
	RoleServiceReceptionist: true,
	RoleServiceAdvisor:      true,
	RoleCustomer:            true,
}

// ValidGenders is the closed set of genders.
var ValidGenders = map[string]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

// StaffRoles are the non-customer roles, used where an endpoint is open to
// any member of staff.
var StaffRoles = []string{
	RoleAdministrator,
	RoleBranchManager,
	RoleWarehouseStaff,
	RoleTechnician,
	RoleServiceReceptionist,
	RoleServiceAdvisor,
}

// User represents a staff or customer account. Accounts are deactivated via
// IsActive, never hard-deleted.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"fullName"`
	Email       *string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PhoneNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"phoneNumber"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"`
	Role        string     `gorm:"type:varchar(50);not null;default:'Customer';index" json:"role"`
	Gender      string     `gorm:"type:varchar(10);not null;default:'Other'" json:"gender"`
	Address     string     `gorm:"type:text" json:"address"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	Images      StringList `gorm:"type:jsonb" json:"images"`
	BranchID    *uuid.UUID `gorm:"type:uuid;index" json:"branch_id"`
	Branch      *Branch    `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
