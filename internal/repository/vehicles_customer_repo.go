package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehiclesCustomerRepository defines the interface for data access of VehiclesCustomer entities
type VehiclesCustomerRepository interface {
	Create(ctx context.Context, vehicle *model.VehiclesCustomer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VehiclesCustomer, error)
	GetByLicensePlate(ctx context.Context, plate string) (*model.VehiclesCustomer, error)
	List(ctx context.Context, page, limit int) ([]model.VehiclesCustomer, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.VehiclesCustomer, error)
	Update(ctx context.Context, vehicle *model.VehiclesCustomer) error
}

type vehiclesCustomerRepository struct {
	db *gorm.DB
}

// NewVehiclesCustomerRepository returns a new instance of VehiclesCustomerRepository
func NewVehiclesCustomerRepository(db *gorm.DB) VehiclesCustomerRepository {
	return &vehiclesCustomerRepository{db: db}
}

func (r *vehiclesCustomerRepository) Create(ctx context.Context, vehicle *model.VehiclesCustomer) error {
	return GetDB(ctx, r.db).Create(vehicle).Error
}

func (r *vehiclesCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.VehiclesCustomer, error) {
	var vehicle model.VehiclesCustomer
	err := GetDB(ctx, r.db).
		Preload("VehiclesSystem.Model").
		Preload("Customer").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehiclesCustomerRepository) GetByLicensePlate(ctx context.Context, plate string) (*model.VehiclesCustomer, error) {
	var vehicle model.VehiclesCustomer
	if err := GetDB(ctx, r.db).First(&vehicle, "license_plate = ?", plate).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehiclesCustomerRepository) List(ctx context.Context, page, limit int) ([]model.VehiclesCustomer, int64, error) {
	var vehicles []model.VehiclesCustomer
	var total int64

	query := GetDB(ctx, r.db).Model(&model.VehiclesCustomer{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := GetDB(ctx, r.db).
		Preload("VehiclesSystem.Model").
		Preload("Customer").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (r *vehiclesCustomerRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.VehiclesCustomer, error) {
	var vehicles []model.VehiclesCustomer
	err := GetDB(ctx, r.db).
		Preload("VehiclesSystem.Model").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehiclesCustomerRepository) Update(ctx context.Context, vehicle *model.VehiclesCustomer) error {
	return GetDB(ctx, r.db).Save(vehicle).Error
}
