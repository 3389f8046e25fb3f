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
	"golang.org/x/crypto/bcrypt"
)

// DTOs for request validation. Create/update bodies arrive as multipart form
// fields, so values are plain strings validated here rather than by binding
// tags.
type CreateUserRequest struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	Gender      string
	Address     string
	BranchID    string
}

type UpdateProfileRequest struct {
	FullName string
	Email    string
	Gender   string
	Address  string
}

// UserResponse is the profile projection; it never carries the password.
type UserResponse struct {
	ID          uuid.UUID        `json:"id"`
	FullName    string           `json:"fullName"`
	Email       string           `json:"email,omitempty"`
	PhoneNumber string           `json:"phoneNumber"`
	Role        string           `json:"role"`
	Gender      string           `json:"gender"`
	Address     string           `json:"address"`
	IsActive    bool             `json:"isActive"`
	Images      model.StringList `json:"images"`
	BranchID    *uuid.UUID       `json:"branch_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type UserListFilter struct {
	Role     string
	BranchID string
	Search   string
	Page     int
	Limit    int
}

// UserService defines the interface for business logic related to User
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest, images []string) (*UserResponse, error)
	GetProfile(ctx context.Context, id string) (*UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest, newImages []string) (*UserResponse, []string, error)
	ChangeAccountStatus(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error)
}

type userService struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserService returns a new instance of UserService
func NewUserService(userRepo repository.UserRepository, branchRepo repository.BranchRepository) UserService {
	return &userService{userRepo: userRepo, branchRepo: branchRepo}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest, images []string) (*UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.PhoneNumber)
	password := strings.TrimSpace(req.Password)
	role := strings.TrimSpace(req.Role)
	gender := strings.TrimSpace(req.Gender)
	address := strings.TrimSpace(req.Address)

	missing := validate.MissingFields(
		map[string]string{
			"fullName":    fullName,
			"phoneNumber": phone,
			"password":    password,
			"address":     address,
		},
		[]string{"fullName", "phoneNumber", "password", "address"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if email != "" && !validate.IsEmail(email) {
		return nil, apperror.BadRequest("Invalid email format")
	}
	if !validate.IsVietnamesePhone(phone) {
		return nil, apperror.BadRequest("Invalid phone number format. Must be a valid Vietnamese phone number.")
	}
	if len(password) < 6 {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}

	if role == "" {
		role = model.RoleCustomer
	}
	if !model.ValidRoles[role] {
		return nil, apperror.BadRequest("Invalid role: %s", role)
	}
	if gender == "" {
		gender = model.GenderOther
	}
	if !model.ValidGenders[gender] {
		return nil, apperror.BadRequest("Invalid gender: %s", gender)
	}

	var branchID *uuid.UUID
	if b := strings.TrimSpace(req.BranchID); b != "" {
		id, err := uuid.Parse(b)
		if err != nil {
			return nil, apperror.BadRequest("Invalid branch_id: %s", b)
		}
		if _, err := s.branchRepo.GetByID(ctx, id); err != nil {
			return nil, apperror.NotFound("Branch not found: %s", b)
		}
		branchID = &id
	}

	// Pre-check uniqueness; the unique indexes remain the backstop for a
	// duplicate-creation race.
	if _, err := s.userRepo.GetByPhoneNumber(ctx, phone); err == nil {
		return nil, apperror.Conflict("User with this phoneNumber already exists")
	}
	if email != "" {
		if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
			return nil, apperror.Conflict("User with this email already exists")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password")
	}

	user := &model.User{
		FullName:    fullName,
		PhoneNumber: phone,
		Password:    string(hashed),
		Role:        role,
		Gender:      gender,
		Address:     address,
		IsActive:    true,
		Images:      images,
		BranchID:    branchID,
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateDuplicate(err, "user")
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) GetProfile(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user ID")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest, newImages []string) (*UserResponse, []string, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, apperror.BadRequest("Invalid user ID")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, apperror.NotFound("User not found")
	}

	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		user.FullName = fullName
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		if !validate.IsEmail(email) {
			return nil, nil, apperror.BadRequest("Invalid email format")
		}
		if user.Email == nil || *user.Email != email {
			if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
				return nil, nil, apperror.Conflict("User with this email already exists")
			}
			user.Email = &email
		}
	}
	if gender := strings.TrimSpace(req.Gender); gender != "" {
		if !model.ValidGenders[gender] {
			return nil, nil, apperror.BadRequest("Invalid gender: %s", gender)
		}
		user.Gender = gender
	}
	if address := strings.TrimSpace(req.Address); address != "" {
		user.Address = address
	}

	var oldImages []string
	if len(newImages) > 0 {
		oldImages = user.Images
		user.Images = newImages
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, translateDuplicate(err, "user")
	}

	resp := toUserResponse(user)
	return &resp, oldImages, nil
}

func (s *userService) ChangeAccountStatus(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user ID")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal("failed to update account status")
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	repoFilter := repository.UserFilter{
		Search: strings.TrimSpace(filter.Search),
		Page:   filter.Page,
		Limit:  filter.Limit,
	}
	if role := strings.TrimSpace(filter.Role); role != "" {
		if !model.ValidRoles[role] {
			return nil, 0, apperror.BadRequest("Invalid role: %s", role)
		}
		repoFilter.Role = role
	}
	if b := strings.TrimSpace(filter.BranchID); b != "" {
		id, err := uuid.Parse(b)
		if err != nil {
			return nil, 0, apperror.BadRequest("Invalid branch_id: %s", b)
		}
		repoFilter.BranchID = &id
	}

	users, total, err := s.userRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch users")
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, total, nil
}
