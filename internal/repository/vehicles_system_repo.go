package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleModelRepository defines the interface for data access of VehicleModel entities
type VehicleModelRepository interface {
	Create(ctx context.Context, m *model.VehicleModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VehicleModel, error)
	List(ctx context.Context) ([]model.VehicleModel, error)
}

type vehicleModelRepository struct {
	db *gorm.DB
}

// NewVehicleModelRepository returns a new instance of VehicleModelRepository
func NewVehicleModelRepository(db *gorm.DB) VehicleModelRepository {
	return &vehicleModelRepository{db: db}
}

func (r *vehicleModelRepository) Create(ctx context.Context, m *model.VehicleModel) error {
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *vehicleModelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.VehicleModel, error) {
	var m model.VehicleModel
	if err := GetDB(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *vehicleModelRepository) List(ctx context.Context) ([]model.VehicleModel, error) {
	var models []model.VehicleModel
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// VehiclesSystemFilter narrows List results.
type VehiclesSystemFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// VehiclesSystemRepository defines the interface for data access of VehiclesSystem entities
type VehiclesSystemRepository interface {
	Create(ctx context.Context, vehicle *model.VehiclesSystem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VehiclesSystem, error)
	GetByNameAndModel(ctx context.Context, name string, modelID uuid.UUID) (*model.VehiclesSystem, error)
	List(ctx context.Context, filter VehiclesSystemFilter) ([]model.VehiclesSystem, int64, error)
	ListByModel(ctx context.Context, modelID uuid.UUID) ([]model.VehiclesSystem, error)
	Update(ctx context.Context, vehicle *model.VehiclesSystem) error
}

type vehiclesSystemRepository struct {
	db *gorm.DB
}

// NewVehiclesSystemRepository returns a new instance of VehiclesSystemRepository
func NewVehiclesSystemRepository(db *gorm.DB) VehiclesSystemRepository {
	return &vehiclesSystemRepository{db: db}
}

func (r *vehiclesSystemRepository) Create(ctx context.Context, vehicle *model.VehiclesSystem) error {
	return GetDB(ctx, r.db).Create(vehicle).Error
}

func (r *vehiclesSystemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.VehiclesSystem, error) {
	var vehicle model.VehiclesSystem
	if err := GetDB(ctx, r.db).Preload("Model").First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehiclesSystemRepository) GetByNameAndModel(ctx context.Context, name string, modelID uuid.UUID) (*model.VehiclesSystem, error) {
	var vehicle model.VehiclesSystem
	err := GetDB(ctx, r.db).First(&vehicle, "name = ? AND model_id = ?", name, modelID).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehiclesSystemRepository) List(ctx context.Context, filter VehiclesSystemFilter) ([]model.VehiclesSystem, int64, error) {
	var vehicles []model.VehiclesSystem
	var total int64

	query := GetDB(ctx, r.db).Model(&model.VehiclesSystem{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Preload("Model").Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (r *vehiclesSystemRepository) ListByModel(ctx context.Context, modelID uuid.UUID) ([]model.VehiclesSystem, error) {
	var vehicles []model.VehiclesSystem
	err := GetDB(ctx, r.db).Preload("Model").
		Where("model_id = ?", modelID).
		Order("created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehiclesSystemRepository) Update(ctx context.Context, vehicle *model.VehiclesSystem) error {
	return GetDB(ctx, r.db).Omit("Model").Save(vehicle).Error
}
