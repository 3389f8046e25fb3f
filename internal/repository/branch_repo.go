package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository defines the interface for data access of Branch entities
type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	GetByName(ctx context.Context, name string) (*model.Branch, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*model.Branch, error)
	GetByEmail(ctx context.Context, email string) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, branch *model.Branch) error
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository returns a new instance of BranchRepository
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *model.Branch) error {
	return GetDB(ctx, r.db).Create(branch).Error
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var branch model.Branch
	if err := GetDB(ctx, r.db).First(&branch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetByName(ctx context.Context, name string) (*model.Branch, error) {
	var branch model.Branch
	if err := GetDB(ctx, r.db).First(&branch, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetByPhoneNumber(ctx context.Context, phone string) (*model.Branch, error) {
	var branch model.Branch
	if err := GetDB(ctx, r.db).First(&branch, "phone_number = ?", phone).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) GetByEmail(ctx context.Context, email string) (*model.Branch, error) {
	var branch model.Branch
	if err := GetDB(ctx, r.db).First(&branch, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *branchRepository) Update(ctx context.Context, branch *model.Branch) error {
	return GetDB(ctx, r.db).Save(branch).Error
}
