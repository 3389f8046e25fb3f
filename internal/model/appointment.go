package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status enum constants. Any status may follow any other; the
// value itself is validated but transitions are not constrained.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusProgress  = "Progress"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatuses is the closed set of appointment statuses.
var ValidStatuses = map[string]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusProgress:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// CreatedType enum constants record which entry point created an appointment.
const (
	CreatedTypeAdmin    = "Admin"
	CreatedTypeCustomer = "Customer"
)

// Appointment is a booked service visit. DateTime is validated against the
// clock only at creation time.
type Appointment struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer     *User          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	ServiceID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"service_id"`
	Service      *ServiceSystem `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	BranchID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch       *Branch        `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	DateTime     time.Time      `gorm:"not null" json:"dateTime"`
	Status       string         `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CustomerNote string         `gorm:"type:text" json:"customer_note"`
	AdminNote    string         `gorm:"type:text" json:"admin_note"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	Creator      *User          `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedType  string         `gorm:"type:varchar(10);not null;default:'Customer'" json:"created_type"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}
