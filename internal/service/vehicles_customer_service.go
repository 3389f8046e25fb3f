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
)

type CreateVehiclesCustomerRequest struct {
	LicensePlate        string
	VehiclesSystemID    string
	Color               string
	Mileage             string
	LastMaintenanceDate string
	CustomerID          string
}

type UpdateVehiclesCustomerRequest struct {
	LicensePlate        *string
	VehiclesSystemID    *string
	Color               *string
	Mileage             *string
	LastMaintenanceDate *string
	IsActive            *bool
}

type VehiclesCustomerResponse struct {
	ID                  uuid.UUID               `json:"id"`
	LicensePlate        string                  `json:"licensePlate"`
	VehiclesSystem      *VehiclesSystemResponse `json:"vehiclesSystem,omitempty"`
	Color               string                  `json:"color"`
	Mileage             int                     `json:"mileage"`
	LastMaintenanceDate *time.Time              `json:"lastMaintenanceDate"`
	Customer            *UserResponse           `json:"customer,omitempty"`
	IsActive            bool                    `json:"isActive"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// VehiclesCustomerService defines the interface for business logic related to
// customer-owned vehicles.
type VehiclesCustomerService interface {
	CreateVehiclesCustomer(ctx context.Context, req CreateVehiclesCustomerRequest) (*VehiclesCustomerResponse, error)
	UpdateVehiclesCustomer(ctx context.Context, id string, req UpdateVehiclesCustomerRequest) (*VehiclesCustomerResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]VehiclesCustomerResponse, int64, error)
	GetByID(ctx context.Context, id string) (*VehiclesCustomerResponse, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]VehiclesCustomerResponse, error)
}

type vehiclesCustomerService struct {
	vehicleRepo repository.VehiclesCustomerRepository
	catalogRepo repository.VehiclesSystemRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewVehiclesCustomerService returns a new instance of VehiclesCustomerService
func NewVehiclesCustomerService(
	vehicleRepo repository.VehiclesCustomerRepository,
	catalogRepo repository.VehiclesSystemRepository,
	userRepo repository.UserRepository,
) VehiclesCustomerService {
	return &vehiclesCustomerService{
		vehicleRepo: vehicleRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *vehiclesCustomerService) CreateVehiclesCustomer(ctx context.Context, req CreateVehiclesCustomerRequest) (*VehiclesCustomerResponse, error) {
	plate := strings.TrimSpace(req.LicensePlate)
	rawSystem := strings.TrimSpace(req.VehiclesSystemID)
	rawCustomer := strings.TrimSpace(req.CustomerID)

	missing := validate.MissingFields(
		map[string]string{
			"licensePlate":     plate,
			"vehiclesSystemId": rawSystem,
			"customerId":       rawCustomer,
		},
		[]string{"licensePlate", "vehiclesSystemId", "customerId"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	systemID, err := uuid.Parse(rawSystem)
	if err != nil {
		return nil, apperror.BadRequest("Invalid vehiclesSystemId")
	}
	customerID, err := uuid.Parse(rawCustomer)
	if err != nil {
		return nil, apperror.BadRequest("Invalid customerId")
	}

	if _, err := s.catalogRepo.GetByID(ctx, systemID); err != nil {
		return nil, apperror.NotFound("Vehicle not found in catalog")
	}
	owner, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, apperror.NotFound("Customer not found")
	}
	if owner.Role != model.RoleCustomer {
		return nil, apperror.BadRequest("Vehicle owner must be a customer account")
	}

	if _, err := s.vehicleRepo.GetByLicensePlate(ctx, plate); err == nil {
		return nil, apperror.Conflict("License plate %s already registered", plate)
	}

	mileage := 0
	if strings.TrimSpace(req.Mileage) != "" {
		m, ok := validate.ParseNonNegativeInt(req.Mileage)
		if !ok {
			return nil, apperror.BadRequest("Mileage must be a valid non-negative number")
		}
		mileage = m
	}

	lastMaintenance := s.now()
	if strings.TrimSpace(req.LastMaintenanceDate) != "" {
		parsed, err := parseDateTime(req.LastMaintenanceDate)
		if err != nil {
			return nil, apperror.BadRequest("Invalid lastMaintenanceDate")
		}
		lastMaintenance = parsed
	}

	vehicle := &model.VehiclesCustomer{
		LicensePlate:        plate,
		VehiclesSystemID:    systemID,
		Color:               strings.TrimSpace(req.Color),
		Mileage:             mileage,
		LastMaintenanceDate: &lastMaintenance,
		CustomerID:          customerID,
		IsActive:            true,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, translateDuplicate(err, "vehicle")
	}

	created, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return nil, apperror.Internal("failed to load created vehicle")
	}
	resp := toVehiclesCustomerResponse(created)
	return &resp, nil
}

func (s *vehiclesCustomerService) UpdateVehiclesCustomer(ctx context.Context, id string, req UpdateVehiclesCustomerRequest) (*VehiclesCustomerResponse, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, apperror.NotFound("Vehicle not found")
	}

	if req.LicensePlate != nil {
		plate := strings.TrimSpace(*req.LicensePlate)
		if plate != "" && plate != vehicle.LicensePlate {
			if existing, err := s.vehicleRepo.GetByLicensePlate(ctx, plate); err == nil && existing.ID != vehicle.ID {
				return nil, apperror.Conflict("License plate %s already registered", plate)
			}
			vehicle.LicensePlate = plate
		}
	}
	if req.VehiclesSystemID != nil {
		systemID, err := uuid.Parse(strings.TrimSpace(*req.VehiclesSystemID))
		if err != nil {
			return nil, apperror.BadRequest("Invalid vehiclesSystemId")
		}
		if _, err := s.catalogRepo.GetByID(ctx, systemID); err != nil {
			return nil, apperror.NotFound("Vehicle not found in catalog")
		}
		vehicle.VehiclesSystemID = systemID
		vehicle.VehiclesSystem = nil
	}
	if req.Color != nil {
		vehicle.Color = strings.TrimSpace(*req.Color)
	}
	if req.Mileage != nil {
		m, ok := validate.ParseNonNegativeInt(*req.Mileage)
		if !ok {
			return nil, apperror.BadRequest("Mileage must be a valid non-negative number")
		}
		vehicle.Mileage = m
	}
	if req.LastMaintenanceDate != nil {
		parsed, err := parseDateTime(*req.LastMaintenanceDate)
		if err != nil {
			return nil, apperror.BadRequest("Invalid lastMaintenanceDate")
		}
		vehicle.LastMaintenanceDate = &parsed
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, translateDuplicate(err, "vehicle")
	}

	updated, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return nil, apperror.Internal("failed to load updated vehicle")
	}
	resp := toVehiclesCustomerResponse(updated)
	return &resp, nil
}

func (s *vehiclesCustomerService) GetAll(ctx context.Context, page, limit int) ([]VehiclesCustomerResponse, int64, error) {
	vehicles, total, err := s.vehicleRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch vehicles")
	}
	responses := make([]VehiclesCustomerResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, toVehiclesCustomerResponse(&vehicles[i]))
	}
	return responses, total, nil
}

func (s *vehiclesCustomerService) GetByID(ctx context.Context, id string) (*VehiclesCustomerResponse, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid vehicle ID")
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, apperror.NotFound("Vehicle not found")
	}
	resp := toVehiclesCustomerResponse(vehicle)
	return &resp, nil
}

func (s *vehiclesCustomerService) GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]VehiclesCustomerResponse, error) {
	vehicles, err := s.vehicleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch vehicles")
	}
	responses := make([]VehiclesCustomerResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, toVehiclesCustomerResponse(&vehicles[i]))
	}
	return responses, nil
}

// parseDateTime accepts RFC3339 or a plain date.
func parseDateTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func toVehiclesCustomerResponse(v *model.VehiclesCustomer) VehiclesCustomerResponse {
	resp := VehiclesCustomerResponse{
		ID:                  v.ID,
		LicensePlate:        v.LicensePlate,
		Color:               v.Color,
		Mileage:             v.Mileage,
		LastMaintenanceDate: v.LastMaintenanceDate,
		IsActive:            v.IsActive,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
	if v.VehiclesSystem != nil {
		vs := toVehiclesSystemResponse(v.VehiclesSystem)
		resp.VehiclesSystem = &vs
	}
	if v.Customer != nil {
		u := toUserResponse(v.Customer)
		resp.Customer = &u
	}
	return resp
}
