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

type CreateBranchRequest struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

type UpdateBranchRequest struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

type BranchResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	PhoneNumber string           `json:"phoneNumber"`
	Email       string           `json:"email"`
	IsActive    bool             `json:"isActive"`
	Images      model.StringList `json:"images"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BranchService defines the interface for business logic related to Branch
type BranchService interface {
	CreateBranch(ctx context.Context, req CreateBranchRequest, images []string) (*BranchResponse, error)
	GetAllBranches(ctx context.Context) ([]BranchResponse, error)
	GetBranchByID(ctx context.Context, id string) (*BranchResponse, error)
	UpdateBranch(ctx context.Context, id string, req UpdateBranchRequest, newImages []string) (*BranchResponse, []string, error)
	ChangeStatus(ctx context.Context, id string) (*BranchResponse, error)
}

type branchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService returns a new instance of BranchService
func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

// validateBranchFields runs the shared create/update field validation and
// returns the trimmed values.
func validateBranchFields(req CreateBranchRequest, requireImages bool, imageCount int) (CreateBranchRequest, error) {
	trimmed := CreateBranchRequest{
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       strings.TrimSpace(req.Email),
	}

	missing := validate.MissingFields(
		map[string]string{
			"name":        trimmed.Name,
			"address":     trimmed.Address,
			"phoneNumber": trimmed.PhoneNumber,
			"email":       trimmed.Email,
		},
		[]string{"name", "address", "phoneNumber", "email"},
	)
	if requireImages && imageCount == 0 {
		missing = append(missing, "images")
	}
	if len(missing) > 0 {
		return trimmed, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !validate.IsEmail(trimmed.Email) {
		return trimmed, apperror.BadRequest("Invalid email format")
	}
	if !validate.IsVietnamesePhone(trimmed.PhoneNumber) {
		return trimmed, apperror.BadRequest("Phone number is not in Vietnamese format")
	}
	return trimmed, nil
}

func (s *branchService) CreateBranch(ctx context.Context, req CreateBranchRequest, images []string) (*BranchResponse, error) {
	trimmed, err := validateBranchFields(req, true, len(images))
	if err != nil {
		return nil, err
	}

	// Name, phone and email are each globally unique.
	if _, err := s.branchRepo.GetByName(ctx, trimmed.Name); err == nil {
		return nil, apperror.Conflict("Branch with this name already exists")
	}
	if _, err := s.branchRepo.GetByPhoneNumber(ctx, trimmed.PhoneNumber); err == nil {
		return nil, apperror.Conflict("Branch with this phoneNumber already exists")
	}
	if _, err := s.branchRepo.GetByEmail(ctx, trimmed.Email); err == nil {
		return nil, apperror.Conflict("Branch with this email already exists")
	}

	branch := &model.Branch{
		Name:        trimmed.Name,
		Address:     trimmed.Address,
		PhoneNumber: trimmed.PhoneNumber,
		Email:       trimmed.Email,
		IsActive:    true,
		Images:      images,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, translateDuplicate(err, "branch")
	}

	resp := toBranchResponse(branch)
	return &resp, nil
}

func (s *branchService) GetAllBranches(ctx context.Context) ([]BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch branches")
	}
	responses := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, toBranchResponse(&branches[i]))
	}
	return responses, nil
}

func (s *branchService) GetBranchByID(ctx context.Context, id string) (*BranchResponse, error) {
	branchID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid branch ID")
	}
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, apperror.NotFound("Branch not found")
	}
	resp := toBranchResponse(branch)
	return &resp, nil
}

func (s *branchService) UpdateBranch(ctx context.Context, id string, req UpdateBranchRequest, newImages []string) (*BranchResponse, []string, error) {
	branchID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid branch ID")
	}
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, nil, apperror.NotFound("Branch not found")
	}

	trimmed, err := validateBranchFields(CreateBranchRequest(req), false, 0)
	if err != nil {
		return nil, nil, err
	}

	if trimmed.Name != branch.Name {
		if _, err := s.branchRepo.GetByName(ctx, trimmed.Name); err == nil {
			return nil, nil, apperror.Conflict("Branch with this name already exists")
		}
	}
	if trimmed.PhoneNumber != branch.PhoneNumber {
		if _, err := s.branchRepo.GetByPhoneNumber(ctx, trimmed.PhoneNumber); err == nil {
			return nil, nil, apperror.Conflict("Branch with this phoneNumber already exists")
		}
	}
	if trimmed.Email != branch.Email {
		if _, err := s.branchRepo.GetByEmail(ctx, trimmed.Email); err == nil {
			return nil, nil, apperror.Conflict("Branch with this email already exists")
		}
	}

	branch.Name = trimmed.Name
	branch.Address = trimmed.Address
	branch.PhoneNumber = trimmed.PhoneNumber
	branch.Email = trimmed.Email

	var oldImages []string
	if len(newImages) > 0 {
		oldImages = branch.Images
		branch.Images = newImages
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, nil, translateDuplicate(err, "branch")
	}

	resp := toBranchResponse(branch)
	return &resp, oldImages, nil
}

func (s *branchService) ChangeStatus(ctx context.Context, id string) (*BranchResponse, error) {
	branchID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid branch ID")
	}
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, apperror.NotFound("Branch not found")
	}

	branch.IsActive = !branch.IsActive
	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, apperror.Internal("failed to update branch status")
	}

	resp := toBranchResponse(branch)
	return &resp, nil
}

func toBranchResponse(b *model.Branch) BranchResponse {
	return BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		IsActive:    b.IsActive,
		Images:      b.Images,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
