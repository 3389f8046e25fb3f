package service

import (
	"context"
	"strings"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"
	"backend/pkg/validate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAccessoryRequest struct {
	Name        string
	Description string
	Price       string
	Stock       string
}

// UpdateAccessoryRequest uses pointers so an absent field is distinguishable
// from an empty one.
type UpdateAccessoryRequest struct {
	Name        *string
	Description *string
	Price       *string
	Stock       *string
	IsActive    *bool
}

type AccessoryResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	Images      model.StringList `json:"images"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type AccessoryListFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// AccessoryService defines the interface for business logic related to Accessory
type AccessoryService interface {
	CreateAccessory(ctx context.Context, req CreateAccessoryRequest, images []string) (*AccessoryResponse, error)
	GetAllAccessories(ctx context.Context, filter AccessoryListFilter) ([]AccessoryResponse, int64, error)
	GetAccessoryByID(ctx context.Context, id string) (*AccessoryResponse, error)
	UpdateAccessory(ctx context.Context, id string, req UpdateAccessoryRequest, newImages []string) (*AccessoryResponse, []string, error)
	UpdateIsActive(ctx context.Context, id string, isActive bool) (*AccessoryResponse, error)
	DeleteAccessory(ctx context.Context, id string) error
}

type accessoryService struct {
	accessoryRepo repository.AccessoryRepository
}

// NewAccessoryService returns a new instance of AccessoryService
func NewAccessoryService(accessoryRepo repository.AccessoryRepository) AccessoryService {
	return &accessoryService{accessoryRepo: accessoryRepo}
}

func (s *accessoryService) CreateAccessory(ctx context.Context, req CreateAccessoryRequest, images []string) (*AccessoryResponse, error) {
	if len(images) == 0 {
		return nil, apperror.BadRequest("At least one image is required")
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	missing := validate.MissingFields(
		map[string]string{
			"name":        name,
			"description": description,
			"price":       req.Price,
			"stock":       req.Stock,
		},
		[]string{"name", "description", "price", "stock"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	price, ok := validate.ParseNonNegativeDecimal(req.Price)
	if !ok {
		return nil, apperror.BadRequest("price must be a valid number >= 0")
	}
	stock, ok := validate.ParseNonNegativeInt(req.Stock)
	if !ok {
		return nil, apperror.BadRequest("stock must be a valid number >= 0")
	}

	if _, err := s.accessoryRepo.GetByName(ctx, name); err == nil {
		return nil, apperror.Conflict("Accessory name already exists")
	}

	accessory := &model.Accessory{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Images:      images,
		IsActive:    true,
	}
	if err := s.accessoryRepo.Create(ctx, accessory); err != nil {
		return nil, translateDuplicate(err, "accessory")
	}

	resp := toAccessoryResponse(accessory)
	return &resp, nil
}

func (s *accessoryService) GetAllAccessories(ctx context.Context, filter AccessoryListFilter) ([]AccessoryResponse, int64, error) {
	accessories, total, err := s.accessoryRepo.List(ctx, repository.AccessoryFilter{
		Search:   strings.TrimSpace(filter.Search),
		IsActive: filter.IsActive,
		Page:     filter.Page,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch accessories")
	}

	responses := make([]AccessoryResponse, 0, len(accessories))
	for i := range accessories {
		responses = append(responses, toAccessoryResponse(&accessories[i]))
	}
	return responses, total, nil
}

func (s *accessoryService) GetAccessoryByID(ctx context.Context, id string) (*AccessoryResponse, error) {
	accessoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid accessory ID")
	}
	accessory, err := s.accessoryRepo.GetByID(ctx, accessoryID)
	if err != nil {
		return nil, apperror.NotFound("Accessory not found")
	}
	resp := toAccessoryResponse(accessory)
	return &resp, nil
}

func (s *accessoryService) UpdateAccessory(ctx context.Context, id string, req UpdateAccessoryRequest, newImages []string) (*AccessoryResponse, []string, error) {
	accessoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid accessory ID")
	}
	accessory, err := s.accessoryRepo.GetByID(ctx, accessoryID)
	if err != nil {
		return nil, nil, apperror.NotFound("Accessory not found")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, nil, apperror.BadRequest("name cannot be empty")
		}
		if name != accessory.Name {
			if _, err := s.accessoryRepo.GetByName(ctx, name); err == nil {
				return nil, nil, apperror.Conflict("Accessory name already exists")
			}
			accessory.Name = name
		}
	}
	if req.Description != nil {
		accessory.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		price, ok := validate.ParseNonNegativeDecimal(*req.Price)
		if !ok {
			return nil, nil, apperror.BadRequest("price must be a valid number >= 0")
		}
		accessory.Price = price
	}
	if req.Stock != nil {
		stock, ok := validate.ParseNonNegativeInt(*req.Stock)
		if !ok {
			return nil, nil, apperror.BadRequest("stock must be a valid number >= 0")
		}
		accessory.Stock = stock
	}
	if req.IsActive != nil {
		accessory.IsActive = *req.IsActive
	}

	// A populated image list can be replaced but never cleared.
	var oldImages []string
	if len(newImages) > 0 {
		oldImages = accessory.Images
		accessory.Images = newImages
	} else if len(accessory.Images) == 0 {
		return nil, nil, apperror.BadRequest("Images cannot be empty")
	}

	if err := s.accessoryRepo.Update(ctx, accessory); err != nil {
		return nil, nil, translateDuplicate(err, "accessory")
	}

	resp := toAccessoryResponse(accessory)
	return &resp, oldImages, nil
}

func (s *accessoryService) UpdateIsActive(ctx context.Context, id string, isActive bool) (*AccessoryResponse, error) {
	accessoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid accessory ID")
	}
	accessory, err := s.accessoryRepo.GetByID(ctx, accessoryID)
	if err != nil {
		return nil, apperror.NotFound("Accessory not found")
	}

	accessory.IsActive = isActive
	if err := s.accessoryRepo.Update(ctx, accessory); err != nil {
		return nil, apperror.Internal("failed to update accessory status")
	}

	resp := toAccessoryResponse(accessory)
	return &resp, nil
}

func (s *accessoryService) DeleteAccessory(ctx context.Context, id string) error {
	accessoryID, err := uuid.Parse(id)
	if err != nil {
		return apperror.BadRequest("Invalid accessory ID")
	}
	if _, err := s.accessoryRepo.GetByID(ctx, accessoryID); err != nil {
		return apperror.NotFound("Accessory not found")
	}
	if err := s.accessoryRepo.Delete(ctx, accessoryID); err != nil {
		return apperror.Internal("failed to delete accessory")
	}
	return nil
}

func toAccessoryResponse(a *model.Accessory) AccessoryResponse {
	return AccessoryResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Stock:       a.Stock,
		Images:      a.Images,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
