package service

import (
	"context"
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBranchRequest() CreateBranchRequest {
	return CreateBranchRequest{
		Name:        "District 1 Center",
		Address:     "12 Le Loi, District 1",
		PhoneNumber: "0912345678",
		Email:       "d1@center.vn",
	}
}

func TestCreateBranch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewBranchService(newFakeBranchRepo())

		resp, err := svc.CreateBranch(context.Background(), validCreateBranchRequest(), []string{"uploads/front.png"})
		require.NoError(t, err)
		assert.Equal(t, "District 1 Center", resp.Name)
		assert.True(t, resp.IsActive)
		assert.Equal(t, model.StringList{"uploads/front.png"}, resp.Images)
	})

	t.Run("images are required on create", func(t *testing.T) {
		svc := NewBranchService(newFakeBranchRepo())

		_, err := svc.CreateBranch(context.Background(), validCreateBranchRequest(), nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
		assert.Equal(t, "Missing required fields: images", err.Error())
	})

	t.Run("missing fields enumerated in order", func(t *testing.T) {
		svc := NewBranchService(newFakeBranchRepo())

		_, err := svc.CreateBranch(context.Background(), CreateBranchRequest{Address: "somewhere"}, nil)
		require.Error(t, err)
		assert.Equal(t, "Missing required fields: name, phoneNumber, email, images", err.Error())
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewBranchService(newFakeBranchRepo())
		req := validCreateBranchRequest()
		req.Email = "nope"

		_, err := svc.CreateBranch(context.Background(), req, []string{"uploads/a.png"})
		require.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})

	t.Run("invalid phone", func(t *testing.T) {
		svc := NewBranchService(newFakeBranchRepo())
		req := validCreateBranchRequest()
		req.PhoneNumber = "12345"

		_, err := svc.CreateBranch(context.Background(), req, []string{"uploads/a.png"})
		require.Error(t, err)
		assert.Equal(t, "Phone number is not in Vietnamese format", err.Error())
	})

	t.Run("per-field uniqueness", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *CreateBranchRequest)
			message string
		}{
			{
				name:    "duplicate name",
				mutate:  func(r *CreateBranchRequest) { r.PhoneNumber = "0987654321"; r.Email = "other@center.vn" },
				message: "Branch with this name already exists",
			},
			{
				name:    "duplicate phone",
				mutate:  func(r *CreateBranchRequest) { r.Name = "District 2 Center"; r.Email = "other@center.vn" },
				message: "Branch with this phoneNumber already exists",
			},
			{
				name:    "duplicate email",
				mutate:  func(r *CreateBranchRequest) { r.Name = "District 2 Center"; r.PhoneNumber = "0987654321" },
				message: "Branch with this email already exists",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewBranchService(newFakeBranchRepo())
				_, err := svc.CreateBranch(context.Background(), validCreateBranchRequest(), []string{"uploads/a.png"})
				require.NoError(t, err)

				req := validCreateBranchRequest()
				tt.mutate(&req)
				_, err = svc.CreateBranch(context.Background(), req, []string{"uploads/b.png"})
				require.Error(t, err)
				assert.Equal(t, http.StatusConflict, apperror.Status(err))
				assert.Equal(t, tt.message, err.Error())
			})
		}
	})
}

func TestGetBranchByID(t *testing.T) {
	branchRepo := newFakeBranchRepo()
	branch := branchRepo.add(&model.Branch{Name: "District 1 Center", IsActive: true})
	svc := NewBranchService(branchRepo)

	resp, err := svc.GetBranchByID(context.Background(), branch.ID.String())
	require.NoError(t, err)
	assert.Equal(t, branch.Name, resp.Name)

	_, err = svc.GetBranchByID(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))

	_, err = svc.GetBranchByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestUpdateBranch(t *testing.T) {
	newRepoWithBranch := func() (*fakeBranchRepo, *model.Branch) {
		repo := newFakeBranchRepo()
		branch := repo.add(&model.Branch{
			Name:        "District 1 Center",
			Address:     "12 Le Loi",
			PhoneNumber: "0912345678",
			Email:       "d1@center.vn",
			IsActive:    true,
			Images:      model.StringList{"uploads/old.png"},
		})
		return repo, branch
	}

	t.Run("success without new images", func(t *testing.T) {
		repo, branch := newRepoWithBranch()
		svc := NewBranchService(repo)

		resp, oldImages, err := svc.UpdateBranch(context.Background(), branch.ID.String(), UpdateBranchRequest{
			Name:        "District 1 Center",
			Address:     "34 Nguyen Hue",
			PhoneNumber: "0912345678",
			Email:       "d1@center.vn",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "34 Nguyen Hue", resp.Address)
		assert.Nil(t, oldImages)
		assert.Equal(t, model.StringList{"uploads/old.png"}, resp.Images)
	})

	t.Run("new images return old set", func(t *testing.T) {
		repo, branch := newRepoWithBranch()
		svc := NewBranchService(repo)

		resp, oldImages, err := svc.UpdateBranch(context.Background(), branch.ID.String(), UpdateBranchRequest{
			Name:        "District 1 Center",
			Address:     "12 Le Loi",
			PhoneNumber: "0912345678",
			Email:       "d1@center.vn",
		}, []string{"uploads/new.png"})
		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/old.png"}, oldImages)
		assert.Equal(t, model.StringList{"uploads/new.png"}, resp.Images)
	})

	t.Run("conflict only when value changes owner", func(t *testing.T) {
		repo, branch := newRepoWithBranch()
		repo.add(&model.Branch{
			Name:        "District 2 Center",
			PhoneNumber: "0987654321",
			Email:       "d2@center.vn",
			IsActive:    true,
		})
		svc := NewBranchService(repo)

		// Resubmitting its own values is not a conflict.
		_, _, err := svc.UpdateBranch(context.Background(), branch.ID.String(), UpdateBranchRequest{
			Name:        "District 1 Center",
			Address:     "12 Le Loi",
			PhoneNumber: "0912345678",
			Email:       "d1@center.vn",
		}, nil)
		require.NoError(t, err)

		_, _, err = svc.UpdateBranch(context.Background(), branch.ID.String(), UpdateBranchRequest{
			Name:        "District 2 Center",
			Address:     "12 Le Loi",
			PhoneNumber: "0912345678",
			Email:       "d1@center.vn",
		}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
	})
}

func TestBranchChangeStatus(t *testing.T) {
	branchRepo := newFakeBranchRepo()
	branch := branchRepo.add(&model.Branch{Name: "District 1 Center", IsActive: true})
	svc := NewBranchService(branchRepo)

	resp, err := svc.ChangeStatus(context.Background(), branch.ID.String())
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.ChangeStatus(context.Background(), branch.ID.String())
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}
