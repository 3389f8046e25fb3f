package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentFilter narrows List results.
type AppointmentFilter struct {
	Status   string
	BranchID *uuid.UUID
	Page     int
	Limit    int
}

// AppointmentRepository defines the interface for data access of Appointment entities
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository returns a new instance of AppointmentRepository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Creator").
		Preload("Service").
		Preload("Branch")
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return GetDB(ctx, r.db).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.preload(GetDB(ctx, r.db)).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, int64, error) {
	var appointments []model.Appointment
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Appointment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := r.preload(query).Order("date_time DESC").Offset(offset).Limit(filter.Limit).Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

func (r *appointmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.preload(GetDB(ctx, r.db)).
		Where("customer_id = ?", customerID).
		Order("date_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	return GetDB(ctx, r.db).Omit("Customer", "Creator", "Service", "Branch").Save(appointment).Error
}
