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

type CreateVehicleModelRequest struct {
	Name string
}

type VehicleModelResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateVehiclesSystemRequest struct {
	Name        string
	ModelID     string
	Description string
	Year        string
	Price       string
}

type UpdateVehiclesSystemRequest struct {
	Name        *string
	ModelID     *string
	Description *string
	Year        *string
	Price       *string
}

type VehiclesSystemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Model       *VehicleModelResponse `json:"model,omitempty"`
	Description string                `json:"description"`
	Year        int                   `json:"year"`
	Price       decimal.Decimal       `json:"price"`
	Avatar      string                `json:"avatar,omitempty"`
	Images      model.StringList      `json:"images"`
	IsActive    bool                  `json:"isActive"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type VehiclesSystemListFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// VehiclesSystemService defines the interface for business logic related to
// the vehicle catalog (models and catalog vehicles).
type VehiclesSystemService interface {
	CreateModel(ctx context.Context, req CreateVehicleModelRequest) (*VehicleModelResponse, error)
	ListModels(ctx context.Context) ([]VehicleModelResponse, error)
	CreateVehiclesSystem(ctx context.Context, req CreateVehiclesSystemRequest, avatar string, images []string) (*VehiclesSystemResponse, error)
	UpdateVehiclesSystem(ctx context.Context, id string, req UpdateVehiclesSystemRequest, newAvatar string, newImages []string) (*VehiclesSystemResponse, []string, error)
	UpdateIsActive(ctx context.Context, id string, isActive bool) (*VehiclesSystemResponse, error)
	GetAll(ctx context.Context, filter VehiclesSystemListFilter) ([]VehiclesSystemResponse, int64, error)
	GetByID(ctx context.Context, id string) (*VehiclesSystemResponse, error)
	GetByModel(ctx context.Context, modelID string) ([]VehiclesSystemResponse, error)
}

type vehiclesSystemService struct {
	vehicleRepo repository.VehiclesSystemRepository
	modelRepo   repository.VehicleModelRepository
}

// NewVehiclesSystemService returns a new instance of VehiclesSystemService
func NewVehiclesSystemService(
	vehicleRepo repository.VehiclesSystemRepository,
	modelRepo repository.VehicleModelRepository,
) VehiclesSystemService {
	return &vehiclesSystemService{vehicleRepo: vehicleRepo, modelRepo: modelRepo}
}

func (s *vehiclesSystemService) CreateModel(ctx context.Context, req CreateVehicleModelRequest) (*VehicleModelResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.BadRequest("Missing required fields: name")
	}
	m := &model.VehicleModel{Name: name}
	if err := s.modelRepo.Create(ctx, m); err != nil {
		return nil, apperror.Internal("failed to create model")
	}
	return &VehicleModelResponse{ID: m.ID, Name: m.Name}, nil
}

func (s *vehiclesSystemService) ListModels(ctx context.Context) ([]VehicleModelResponse, error) {
	models, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch models")
	}
	responses := make([]VehicleModelResponse, 0, len(models))
	for _, m := range models {
		responses = append(responses, VehicleModelResponse{ID: m.ID, Name: m.Name})
	}
	return responses, nil
}

func (s *vehiclesSystemService) CreateVehiclesSystem(ctx context.Context, req CreateVehiclesSystemRequest, avatar string, images []string) (*VehiclesSystemResponse, error) {
	name := strings.TrimSpace(req.Name)
	rawModel := strings.TrimSpace(req.ModelID)
	description := strings.TrimSpace(req.Description)

	missing := validate.MissingFields(
		map[string]string{
			"name":        name,
			"model":       rawModel,
			"description": description,
			"year":        req.Year,
			"price":       req.Price,
		},
		[]string{"name", "model", "description", "year", "price"},
	)
	if len(images) == 0 {
		missing = append(missing, "images")
	}
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	year, ok := validate.ParseNonNegativeInt(req.Year)
	if !ok || year < model.MinManufactureYear {
		return nil, apperror.BadRequest("Invalid year of manufacture")
	}
	price, ok := validate.ParseNonNegativeDecimal(req.Price)
	if !ok {
		return nil, apperror.BadRequest("Price must be a valid non-negative number")
	}

	modelID, err := uuid.Parse(rawModel)
	if err != nil {
		return nil, apperror.BadRequest("Invalid model ID")
	}
	vehicleModel, err := s.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, apperror.NotFound("Model not found")
	}

	// (name, model) pair is unique across the catalog.
	if _, err := s.vehicleRepo.GetByNameAndModel(ctx, name, modelID); err == nil {
		return nil, apperror.Conflict("Vehicle %s - %s already exists", name, vehicleModel.Name)
	}

	vehicle := &model.VehiclesSystem{
		Name:        name,
		ModelID:     modelID,
		Description: description,
		Year:        year,
		Price:       price,
		Avatar:      avatar,
		Images:      images,
		IsActive:    true,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, translateDuplicate(err, "vehicle")
	}
	vehicle.Model = vehicleModel

	resp := toVehiclesSystemResponse(vehicle)
	return &resp, nil
}

func (s *vehiclesSystemService) UpdateVehiclesSystem(ctx context.Context, id string, req UpdateVehiclesSystemRequest, newAvatar string, newImages []string) (*VehiclesSystemResponse, []string, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, nil, apperror.NotFound("Vehicle not found")
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			vehicle.Name = name
		}
	}
	if req.ModelID != nil {
		modelID, err := uuid.Parse(strings.TrimSpace(*req.ModelID))
		if err != nil {
			return nil, nil, apperror.BadRequest("Invalid model ID")
		}
		vehicleModel, err := s.modelRepo.GetByID(ctx, modelID)
		if err != nil {
			return nil, nil, apperror.NotFound("Model not found")
		}
		vehicle.ModelID = modelID
		vehicle.Model = vehicleModel
	}
	if req.Description != nil {
		if description := strings.TrimSpace(*req.Description); description != "" {
			vehicle.Description = description
		}
	}
	if req.Year != nil {
		year, ok := validate.ParseNonNegativeInt(*req.Year)
		if !ok || year < model.MinManufactureYear {
			return nil, nil, apperror.BadRequest("Invalid year of manufacture")
		}
		vehicle.Year = year
	}
	if req.Price != nil {
		price, ok := validate.ParseNonNegativeDecimal(*req.Price)
		if !ok {
			return nil, nil, apperror.BadRequest("Price must be a valid non-negative number")
		}
		vehicle.Price = price
	}

	// Check the (name, model) pair is still unique after field updates.
	if existing, err := s.vehicleRepo.GetByNameAndModel(ctx, vehicle.Name, vehicle.ModelID); err == nil && existing.ID != vehicle.ID {
		return nil, nil, apperror.Conflict("Vehicle %s already exists for this model", vehicle.Name)
	}

	var oldFiles []string
	if newAvatar != "" {
		if vehicle.Avatar != "" {
			oldFiles = append(oldFiles, vehicle.Avatar)
		}
		vehicle.Avatar = newAvatar
	}
	if len(newImages) > 0 {
		oldFiles = append(oldFiles, vehicle.Images...)
		vehicle.Images = newImages
	} else if len(vehicle.Images) == 0 {
		return nil, nil, apperror.BadRequest("Images cannot be empty")
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, nil, translateDuplicate(err, "vehicle")
	}

	resp := toVehiclesSystemResponse(vehicle)
	return &resp, oldFiles, nil
}

func (s *vehiclesSystemService) UpdateIsActive(ctx context.Context, id string, isActive bool) (*VehiclesSystemResponse, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, apperror.NotFound("Vehicle not found")
	}

	vehicle.IsActive = isActive
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, apperror.Internal("failed to update vehicle status")
	}

	resp := toVehiclesSystemResponse(vehicle)
	return &resp, nil
}

func (s *vehiclesSystemService) GetAll(ctx context.Context, filter VehiclesSystemListFilter) ([]VehiclesSystemResponse, int64, error) {
	vehicles, total, err := s.vehicleRepo.List(ctx, repository.VehiclesSystemFilter{
		Search:   strings.TrimSpace(filter.Search),
		IsActive: filter.IsActive,
		Page:     filter.Page,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch vehicles")
	}

	responses := make([]VehiclesSystemResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, toVehiclesSystemResponse(&vehicles[i]))
	}
	return responses, total, nil
}

func (s *vehiclesSystemService) GetByID(ctx context.Context, id string) (*VehiclesSystemResponse, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, apperror.NotFound("Vehicle not found")
	}
	resp := toVehiclesSystemResponse(vehicle)
	return &resp, nil
}

func (s *vehiclesSystemService) GetByModel(ctx context.Context, modelID string) ([]VehiclesSystemResponse, error) {
	mid, err := uuid.Parse(modelID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid model ID")
	}
	vehicles, err := s.vehicleRepo.ListByModel(ctx, mid)
	if err != nil {
		return nil, apperror.Internal("failed to fetch vehicles")
	}

	responses := make([]VehiclesSystemResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, toVehiclesSystemResponse(&vehicles[i]))
	}
	return responses, nil
}

func toVehiclesSystemResponse(v *model.VehiclesSystem) VehiclesSystemResponse {
	resp := VehiclesSystemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Year:        v.Year,
		Price:       v.Price,
		Avatar:      v.Avatar,
		Images:      v.Images,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.Model != nil {
		resp.Model = &VehicleModelResponse{ID: v.Model.ID, Name: v.Model.Name}
	}
	return resp
}
