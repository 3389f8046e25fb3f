package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceSystemRepository defines the interface for data access of ServiceSystem entities
type ServiceSystemRepository interface {
	Create(ctx context.Context, service *model.ServiceSystem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ServiceSystem, error)
	List(ctx context.Context) ([]model.ServiceSystem, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ServiceSystem, error)
	Update(ctx context.Context, service *model.ServiceSystem) error
	DeleteBranchesByServiceID(ctx context.Context, serviceID uuid.UUID) error
	CreateBranches(ctx context.Context, branches []model.ServiceBranch) error
	GetBranchLink(ctx context.Context, serviceID, branchID uuid.UUID) (*model.ServiceBranch, error)
	UpdateBranchLink(ctx context.Context, link *model.ServiceBranch) error
}

type serviceSystemRepository struct {
	db *gorm.DB
}

// NewServiceSystemRepository returns a new instance of ServiceSystemRepository
func NewServiceSystemRepository(db *gorm.DB) ServiceSystemRepository {
	return &serviceSystemRepository{db: db}
}

func (r *serviceSystemRepository) Create(ctx context.Context, service *model.ServiceSystem) error {
	return GetDB(ctx, r.db).Create(service).Error
}

func (r *serviceSystemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ServiceSystem, error) {
	var service model.ServiceSystem
	if err := GetDB(ctx, r.db).Preload("Branches.Branch").First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceSystemRepository) List(ctx context.Context) ([]model.ServiceSystem, error) {
	var services []model.ServiceSystem
	if err := GetDB(ctx, r.db).Preload("Branches.Branch").Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceSystemRepository) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.ServiceSystem, error) {
	var services []model.ServiceSystem
	err := GetDB(ctx, r.db).
		Joins("JOIN service_branches sb ON sb.service_system_id = service_systems.id").
		Where("sb.branch_id = ?", branchID).
		Preload("Branches", "branch_id = ?", branchID).
		Preload("Branches.Branch").
		Order("service_systems.created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceSystemRepository) Update(ctx context.Context, service *model.ServiceSystem) error {
	// Omit the association: the branch set is replaced explicitly inside a
	// transaction, not merged by Save.
	return GetDB(ctx, r.db).Omit("Branches").Save(service).Error
}

func (r *serviceSystemRepository) DeleteBranchesByServiceID(ctx context.Context, serviceID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("service_system_id = ?", serviceID).Delete(&model.ServiceBranch{}).Error
}

func (r *serviceSystemRepository) CreateBranches(ctx context.Context, branches []model.ServiceBranch) error {
	if len(branches) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&branches).Error
}

func (r *serviceSystemRepository) GetBranchLink(ctx context.Context, serviceID, branchID uuid.UUID) (*model.ServiceBranch, error) {
	var link model.ServiceBranch
	err := GetDB(ctx, r.db).
		First(&link, "service_system_id = ? AND branch_id = ?", serviceID, branchID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *serviceSystemRepository) UpdateBranchLink(ctx context.Context, link *model.ServiceBranch) error {
	return GetDB(ctx, r.db).Save(link).Error
}
