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

type CreateServiceSystemRequest struct {
	Name          string
	Description   string
	Price         string
	EstimatedTime string
	Category      string
	BranchIDs     []string
}

type UpdateServiceSystemRequest struct {
	Name          *string
	Description   *string
	Price         *string
	EstimatedTime *string
	Category      *string
	BranchIDs     []string // nil = keep current set, non-nil = replace wholesale
}

type ServiceBranchResponse struct {
	BranchID uuid.UUID       `json:"branch_id"`
	Branch   *BranchResponse `json:"branch,omitempty"`
	IsActive bool            `json:"isActive"`
}

type ServiceSystemResponse struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Price         decimal.Decimal         `json:"price"`
	EstimatedTime float64                 `json:"estimatedTime"`
	Category      string                  `json:"category"`
	Images        model.StringList        `json:"images"`
	Branches      []ServiceBranchResponse `json:"branches"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// ServiceSystemService defines the interface for business logic related to ServiceSystem
type ServiceSystemService interface {
	CreateServiceSystem(ctx context.Context, req CreateServiceSystemRequest, images []string) (*ServiceSystemResponse, error)
	UpdateServiceSystem(ctx context.Context, id string, req UpdateServiceSystemRequest, newImages []string) (*ServiceSystemResponse, []string, error)
	ToggleBranchStatus(ctx context.Context, serviceID, branchID string) (*ServiceSystemResponse, error)
	GetServiceSystemDetail(ctx context.Context, id string) (*ServiceSystemResponse, error)
	GetAllServiceSystems(ctx context.Context) ([]ServiceSystemResponse, error)
	GetServiceSystemsByBranch(ctx context.Context, branchID string) ([]ServiceSystemResponse, error)
}

type serviceSystemService struct {
	serviceRepo repository.ServiceSystemRepository
	branchRepo  repository.BranchRepository
	txManager   repository.TransactionManager
}

// NewServiceSystemService returns a new instance of ServiceSystemService
func NewServiceSystemService(
	serviceRepo repository.ServiceSystemRepository,
	branchRepo repository.BranchRepository,
	txManager repository.TransactionManager,
) ServiceSystemService {
	return &serviceSystemService{serviceRepo: serviceRepo, branchRepo: branchRepo, txManager: txManager}
}

// resolveBranches validates each raw id and confirms the branch exists,
// producing the association rows (created active).
func (s *serviceSystemService) resolveBranches(ctx context.Context, serviceID uuid.UUID, rawIDs []string) ([]model.ServiceBranch, error) {
	branches := make([]model.ServiceBranch, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperror.BadRequest("Invalid branch_id: %s", raw)
		}
		if _, err := s.branchRepo.GetByID(ctx, id); err != nil {
			return nil, apperror.NotFound("Branch not found: %s", raw)
		}
		branches = append(branches, model.ServiceBranch{
			ServiceSystemID: serviceID,
			BranchID:        id,
			IsActive:        true,
		})
	}
	return branches, nil
}

func (s *serviceSystemService) CreateServiceSystem(ctx context.Context, req CreateServiceSystemRequest, images []string) (*ServiceSystemResponse, error) {
	if len(images) == 0 {
		return nil, apperror.BadRequest("At least one image must be uploaded")
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	category := strings.TrimSpace(req.Category)

	missing := validate.MissingFields(
		map[string]string{
			"name":          name,
			"description":   description,
			"price":         req.Price,
			"estimatedTime": req.EstimatedTime,
			"category":      category,
		},
		[]string{"name", "description", "price", "estimatedTime", "category"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !model.ValidCategories[category] {
		return nil, apperror.BadRequest("Category must be one of: maintenance, repair, or check")
	}
	price, ok := validate.ParseNonNegativeDecimal(req.Price)
	if !ok {
		return nil, apperror.BadRequest("Price must be a valid non-negative number")
	}
	estimated, ok := validate.ParseNonNegativeDecimal(req.EstimatedTime)
	if !ok {
		return nil, apperror.BadRequest("Estimated time must be a valid non-negative number (in hours)")
	}

	branches, err := s.resolveBranches(ctx, uuid.Nil, req.BranchIDs)
	if err != nil {
		return nil, err
	}

	service := &model.ServiceSystem{
		Name:          name,
		Description:   description,
		Price:         price,
		EstimatedTime: estimated.InexactFloat64(),
		Category:      category,
		Images:        images,
		Branches:      branches,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, translateDuplicate(err, "service system")
	}

	resp := toServiceSystemResponse(service)
	return &resp, nil
}

func (s *serviceSystemService) UpdateServiceSystem(ctx context.Context, id string, req UpdateServiceSystemRequest, newImages []string) (*ServiceSystemResponse, []string, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid service ID")
	}
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, nil, apperror.NotFound("Service system not found")
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			service.Name = name
		}
	}
	if req.Description != nil {
		if description := strings.TrimSpace(*req.Description); description != "" {
			service.Description = description
		}
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if !model.ValidCategories[category] {
			return nil, nil, apperror.BadRequest("Category must be one of: maintenance, repair, or check")
		}
		service.Category = category
	}
	if req.Price != nil {
		price, ok := validate.ParseNonNegativeDecimal(*req.Price)
		if !ok {
			return nil, nil, apperror.BadRequest("Invalid price value")
		}
		service.Price = price
	}
	if req.EstimatedTime != nil {
		estimated, ok := validate.ParseNonNegativeDecimal(*req.EstimatedTime)
		if !ok {
			return nil, nil, apperror.BadRequest("Invalid estimatedTime value")
		}
		service.EstimatedTime = estimated.InexactFloat64()
	}

	var newBranches []model.ServiceBranch
	if req.BranchIDs != nil {
		newBranches, err = s.resolveBranches(ctx, serviceID, req.BranchIDs)
		if err != nil {
			return nil, nil, err
		}
	}

	var oldImages []string
	if len(newImages) > 0 {
		oldImages = service.Images
		service.Images = newImages
	} else if len(service.Images) == 0 {
		return nil, nil, apperror.BadRequest("Images cannot be empty")
	}

	// Field update plus wholesale branch replacement run in one transaction.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.serviceRepo.Update(txCtx, service); err != nil {
			return translateDuplicate(err, "service system")
		}
		if req.BranchIDs != nil {
			if err := s.serviceRepo.DeleteBranchesByServiceID(txCtx, serviceID); err != nil {
				return apperror.Internal("failed to replace service branches")
			}
			if err := s.serviceRepo.CreateBranches(txCtx, newBranches); err != nil {
				return apperror.Internal("failed to replace service branches")
			}
			service.Branches = newBranches
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp := toServiceSystemResponse(service)
	return &resp, oldImages, nil
}

// ToggleBranchStatus flips a service's availability at one branch. This flag
// is independent of the branch's own IsActive.
func (s *serviceSystemService) ToggleBranchStatus(ctx context.Context, serviceID, branchID string) (*ServiceSystemResponse, error) {
	sid, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid service ID")
	}
	bid, err := uuid.Parse(branchID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid branch ID")
	}

	link, err := s.serviceRepo.GetBranchLink(ctx, sid, bid)
	if err != nil {
		return nil, apperror.NotFound("Service or branch not found")
	}

	link.IsActive = !link.IsActive
	if err := s.serviceRepo.UpdateBranchLink(ctx, link); err != nil {
		return nil, apperror.Internal("failed to toggle service status")
	}

	service, err := s.serviceRepo.GetByID(ctx, sid)
	if err != nil {
		return nil, apperror.NotFound("Service system not found")
	}
	resp := toServiceSystemResponse(service)
	return &resp, nil
}

func (s *serviceSystemService) GetServiceSystemDetail(ctx context.Context, id string) (*ServiceSystemResponse, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid service ID")
	}
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, apperror.NotFound("Service not found")
	}
	resp := toServiceSystemResponse(service)
	return &resp, nil
}

func (s *serviceSystemService) GetAllServiceSystems(ctx context.Context) ([]ServiceSystemResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch services")
	}
	responses := make([]ServiceSystemResponse, 0, len(services))
	for i := range services {
		responses = append(responses, toServiceSystemResponse(&services[i]))
	}
	return responses, nil
}

func (s *serviceSystemService) GetServiceSystemsByBranch(ctx context.Context, branchID string) ([]ServiceSystemResponse, error) {
	bid, err := uuid.Parse(branchID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid branch ID")
	}
	services, err := s.serviceRepo.ListByBranch(ctx, bid)
	if err != nil {
		return nil, apperror.Internal("failed to fetch services")
	}
	responses := make([]ServiceSystemResponse, 0, len(services))
	for i := range services {
		responses = append(responses, toServiceSystemResponse(&services[i]))
	}
	return responses, nil
}

func toServiceSystemResponse(service *model.ServiceSystem) ServiceSystemResponse {
	branches := make([]ServiceBranchResponse, 0, len(service.Branches))
	for _, link := range service.Branches {
		entry := ServiceBranchResponse{BranchID: link.BranchID, IsActive: link.IsActive}
		if link.Branch != nil {
			b := toBranchResponse(link.Branch)
			entry.Branch = &b
		}
		branches = append(branches, entry)
	}

	return ServiceSystemResponse{
		ID:            service.ID,
		Name:          service.Name,
		Description:   service.Description,
		Price:         service.Price,
		EstimatedTime: service.EstimatedTime,
		Category:      service.Category,
		Images:        service.Images,
		Branches:      branches,
		CreatedAt:     service.CreatedAt,
		UpdatedAt:     service.UpdatedAt,
	}
}
