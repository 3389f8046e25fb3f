package service

import (
	"context"
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/pkg/apperror"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		FullName:    gofakeit.Name(),
		Email:       gofakeit.Email(),
		PhoneNumber: "0912345678",
		Password:    "secret123",
		Role:        model.RoleTechnician,
		Gender:      model.GenderFemale,
		Address:     gofakeit.Address().Address,
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		branchRepo := newFakeBranchRepo()
		branch := branchRepo.add(&model.Branch{Name: "District 1", IsActive: true})
		svc := NewUserService(userRepo, branchRepo)

		req := validCreateUserRequest()
		req.BranchID = branch.ID.String()
		resp, err := svc.CreateUser(context.Background(), req, []string{"uploads/a.png"})
		require.NoError(t, err)

		assert.Equal(t, req.FullName, resp.FullName)
		assert.Equal(t, model.RoleTechnician, resp.Role)
		assert.True(t, resp.IsActive)
		require.NotNil(t, resp.BranchID)
		assert.Equal(t, branch.ID, *resp.BranchID)

		stored := userRepo.users[resp.ID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	})

	t.Run("defaults role and gender", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), newFakeBranchRepo())

		req := validCreateUserRequest()
		req.Role = ""
		req.Gender = ""
		resp, err := svc.CreateUser(context.Background(), req, nil)
		require.NoError(t, err)
		assert.Equal(t, model.RoleCustomer, resp.Role)
		assert.Equal(t, model.GenderOther, resp.Gender)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *CreateUserRequest)
			status  int
			message string
		}{
			{
				name: "missing fields enumerated in order",
				mutate: func(r *CreateUserRequest) {
					r.FullName = ""
					r.Address = "  "
				},
				status:  http.StatusBadRequest,
				message: "Missing required fields: fullName, address",
			},
			{
				name:    "invalid email",
				mutate:  func(r *CreateUserRequest) { r.Email = "not-an-email" },
				status:  http.StatusBadRequest,
				message: "Invalid email format",
			},
			{
				name:    "invalid phone",
				mutate:  func(r *CreateUserRequest) { r.PhoneNumber = "12345" },
				status:  http.StatusBadRequest,
				message: "Invalid phone number format. Must be a valid Vietnamese phone number.",
			},
			{
				name:    "short password",
				mutate:  func(r *CreateUserRequest) { r.Password = "12345" },
				status:  http.StatusBadRequest,
				message: "Password must be at least 6 characters",
			},
			{
				name:    "unknown role",
				mutate:  func(r *CreateUserRequest) { r.Role = "Janitor" },
				status:  http.StatusBadRequest,
				message: "Invalid role: Janitor",
			},
			{
				name:    "unknown gender",
				mutate:  func(r *CreateUserRequest) { r.Gender = "X" },
				status:  http.StatusBadRequest,
				message: "Invalid gender: X",
			},
			{
				name:    "malformed branch id",
				mutate:  func(r *CreateUserRequest) { r.BranchID = "not-a-uuid" },
				status:  http.StatusBadRequest,
				message: "Invalid branch_id: not-a-uuid",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewUserService(newFakeUserRepo(), newFakeBranchRepo())
				req := validCreateUserRequest()
				tt.mutate(&req)

				_, err := svc.CreateUser(context.Background(), req, nil)
				require.Error(t, err)
				assert.Equal(t, tt.status, apperror.Status(err))
				assert.Equal(t, tt.message, err.Error())
			})
		}
	})

	t.Run("unknown branch", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), newFakeBranchRepo())
		req := validCreateUserRequest()
		req.BranchID = uuid.NewString()

		_, err := svc.CreateUser(context.Background(), req, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.Status(err))
	})

	t.Run("duplicate phone", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := NewUserService(userRepo, newFakeBranchRepo())

		first := validCreateUserRequest()
		_, err := svc.CreateUser(context.Background(), first, nil)
		require.NoError(t, err)

		second := validCreateUserRequest()
		second.PhoneNumber = first.PhoneNumber
		_, err = svc.CreateUser(context.Background(), second, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
		assert.Equal(t, "User with this phoneNumber already exists", err.Error())
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := NewUserService(userRepo, newFakeBranchRepo())

		first := validCreateUserRequest()
		_, err := svc.CreateUser(context.Background(), first, nil)
		require.NoError(t, err)

		second := validCreateUserRequest()
		second.PhoneNumber = "0987654321"
		second.Email = first.Email
		_, err = svc.CreateUser(context.Background(), second, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
		assert.Equal(t, "User with this email already exists", err.Error())
	})
}

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := seedCustomer(t, userRepo, "0912345678", "secret123")
	svc := NewUserService(userRepo, newFakeBranchRepo())

	resp, err := svc.GetProfile(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.FullName, resp.FullName)

	_, err = svc.GetProfile(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))

	_, err = svc.GetProfile(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		user := seedCustomer(t, userRepo, "0912345678", "secret123")
		user.Address = "1 Old Street"
		svc := NewUserService(userRepo, newFakeBranchRepo())

		resp, oldImages, err := svc.UpdateProfile(context.Background(), user.ID.String(), UpdateProfileRequest{
			FullName: "Tran Thi B",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Tran Thi B", resp.FullName)
		assert.Equal(t, "1 Old Street", resp.Address)
		assert.Nil(t, oldImages)
	})

	t.Run("new images return old set for cleanup", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		user := seedCustomer(t, userRepo, "0912345678", "secret123")
		user.Images = model.StringList{"uploads/old.png"}
		svc := NewUserService(userRepo, newFakeBranchRepo())

		resp, oldImages, err := svc.UpdateProfile(context.Background(), user.ID.String(), UpdateProfileRequest{}, []string{"uploads/new.png"})
		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/old.png"}, oldImages)
		assert.Equal(t, model.StringList{"uploads/new.png"}, resp.Images)
	})

	t.Run("email conflict", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		taken := "taken@example.com"
		other := seedCustomer(t, userRepo, "0987654321", "secret123")
		other.Email = &taken
		user := seedCustomer(t, userRepo, "0912345678", "secret123")
		svc := NewUserService(userRepo, newFakeBranchRepo())

		_, _, err := svc.UpdateProfile(context.Background(), user.ID.String(), UpdateProfileRequest{Email: taken}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
	})

	t.Run("invalid gender", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		user := seedCustomer(t, userRepo, "0912345678", "secret123")
		svc := NewUserService(userRepo, newFakeBranchRepo())

		_, _, err := svc.UpdateProfile(context.Background(), user.ID.String(), UpdateProfileRequest{Gender: "X"}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
	})
}

func TestChangeAccountStatus(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := seedCustomer(t, userRepo, "0912345678", "secret123")
	svc := NewUserService(userRepo, newFakeBranchRepo())

	resp, err := svc.ChangeAccountStatus(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.ChangeAccountStatus(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	_, err = svc.ChangeAccountStatus(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestListUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	branchID := uuid.New()
	userRepo.add(&model.User{PhoneNumber: "0911111111", Role: model.RoleCustomer, IsActive: true})
	userRepo.add(&model.User{PhoneNumber: "0922222222", Role: model.RoleTechnician, BranchID: &branchID, IsActive: true})
	svc := NewUserService(userRepo, newFakeBranchRepo())

	users, total, err := svc.ListUsers(context.Background(), UserListFilter{Role: model.RoleTechnician})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "0922222222", users[0].PhoneNumber)

	_, _, err = svc.ListUsers(context.Background(), UserListFilter{Role: "Janitor"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))

	_, _, err = svc.ListUsers(context.Background(), UserListFilter{BranchID: "nope"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
}
