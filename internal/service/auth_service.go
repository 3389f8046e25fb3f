package service

import (
	"context"
	"strings"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"
	"backend/pkg/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for request validation
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type CheckPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type ResetPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	NewPassword string `json:"newPassword"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	CheckPhoneNumber(ctx context.Context, req CheckPhoneRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	password := strings.TrimSpace(req.Password)

	missing := validate.MissingFields(
		map[string]string{"phoneNumber": phone, "password": password},
		[]string{"phoneNumber", "password"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	// The same generic message covers unknown phone and wrong password so a
	// caller cannot tell which field was wrong.
	user, err := s.userRepo.GetByPhoneNumber(ctx, phone)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid phone number or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid phone number or password")
	}
	if !user.IsActive {
		return nil, apperror.Forbidden("User is not active")
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		return nil, apperror.Internal("failed to generate token")
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

// CheckPhoneNumber verifies a phone number belongs to an account. It precedes
// an out-of-band OTP step that is not handled by this service.
func (s *authService) CheckPhoneNumber(ctx context.Context, req CheckPhoneRequest) error {
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return apperror.BadRequest("Missing required fields: phoneNumber")
	}
	if _, err := s.userRepo.GetByPhoneNumber(ctx, phone); err != nil {
		return apperror.NotFound("Phone number not found")
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	phone := strings.TrimSpace(req.PhoneNumber)
	newPassword := strings.TrimSpace(req.NewPassword)

	missing := validate.MissingFields(
		map[string]string{"phoneNumber": phone, "newPassword": newPassword},
		[]string{"phoneNumber", "newPassword"},
	)
	if len(missing) > 0 {
		return apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if len(newPassword) < 6 {
		return apperror.BadRequest("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByPhoneNumber(ctx, phone)
	if err != nil {
		return apperror.NotFound("Phone number not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password")
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal("failed to update password")
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	oldPassword := strings.TrimSpace(req.OldPassword)
	newPassword := strings.TrimSpace(req.NewPassword)

	missing := validate.MissingFields(
		map[string]string{"oldPassword": oldPassword, "newPassword": newPassword},
		[]string{"oldPassword", "newPassword"},
	)
	if len(missing) > 0 {
		return apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if len(newPassword) < 6 {
		return apperror.BadRequest("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.NotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.BadRequest("Old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password")
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal("failed to update password")
	}
	return nil
}

func toUserResponse(user *model.User) UserResponse {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Gender:      user.Gender,
		Address:     user.Address,
		IsActive:    user.IsActive,
		Images:      user.Images,
		BranchID:    user.BranchID,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
