package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessoryFilter narrows List results.
type AccessoryFilter struct {
	Search   string // case-insensitive substring on name
	IsActive *bool
	Page     int
	Limit    int
}

// AccessoryRepository defines the interface for data access of Accessory entities
type AccessoryRepository interface {
	Create(ctx context.Context, accessory *model.Accessory) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Accessory, error)
	GetByName(ctx context.Context, name string) (*model.Accessory, error)
	List(ctx context.Context, filter AccessoryFilter) ([]model.Accessory, int64, error)
	Update(ctx context.Context, accessory *model.Accessory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accessoryRepository struct {
	db *gorm.DB
}

// NewAccessoryRepository returns a new instance of AccessoryRepository
func NewAccessoryRepository(db *gorm.DB) AccessoryRepository {
	return &accessoryRepository{db: db}
}

func (r *accessoryRepository) Create(ctx context.Context, accessory *model.Accessory) error {
	return GetDB(ctx, r.db).Create(accessory).Error
}

func (r *accessoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Accessory, error) {
	var accessory model.Accessory
	if err := GetDB(ctx, r.db).First(&accessory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (r *accessoryRepository) GetByName(ctx context.Context, name string) (*model.Accessory, error) {
	var accessory model.Accessory
	if err := GetDB(ctx, r.db).First(&accessory, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (r *accessoryRepository) List(ctx context.Context, filter AccessoryFilter) ([]model.Accessory, int64, error) {
	var accessories []model.Accessory
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Accessory{})
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
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&accessories).Error; err != nil {
		return nil, 0, err
	}

	return accessories, total, nil
}

func (r *accessoryRepository) Update(ctx context.Context, accessory *model.Accessory) error {
	return GetDB(ctx, r.db).Save(accessory).Error
}

func (r *accessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Accessory{}).Error
}
