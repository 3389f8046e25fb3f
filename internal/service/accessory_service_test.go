package service

import (
	"context"
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func validCreateAccessoryRequest() CreateAccessoryRequest {
	return CreateAccessoryRequest{
		Name:        "Oil Filter",
		Description: "Standard oil filter",
		Price:       "150000",
		Stock:       "20",
	}
}

func TestCreateAccessory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewAccessoryService(newFakeAccessoryRepo())

		resp, err := svc.CreateAccessory(context.Background(), validCreateAccessoryRequest(), []string{"uploads/filter.png"})
		require.NoError(t, err)
		assert.Equal(t, "Oil Filter", resp.Name)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(150000)))
		assert.Equal(t, 20, resp.Stock)
		assert.True(t, resp.IsActive)
	})

	t.Run("images required", func(t *testing.T) {
		svc := NewAccessoryService(newFakeAccessoryRepo())

		_, err := svc.CreateAccessory(context.Background(), validCreateAccessoryRequest(), nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
		assert.Equal(t, "At least one image is required", err.Error())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *CreateAccessoryRequest)
			message string
		}{
			{
				name:    "missing fields",
				mutate:  func(r *CreateAccessoryRequest) { r.Name = " "; r.Price = "" },
				message: "Missing required fields: name, price",
			},
			{
				name:    "negative price",
				mutate:  func(r *CreateAccessoryRequest) { r.Price = "-5" },
				message: "price must be a valid number >= 0",
			},
			{
				name:    "non-numeric price",
				mutate:  func(r *CreateAccessoryRequest) { r.Price = "abc" },
				message: "price must be a valid number >= 0",
			},
			{
				name:    "negative stock",
				mutate:  func(r *CreateAccessoryRequest) { r.Stock = "-1" },
				message: "stock must be a valid number >= 0",
			},
			{
				name:    "fractional stock",
				mutate:  func(r *CreateAccessoryRequest) { r.Stock = "1.5" },
				message: "stock must be a valid number >= 0",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewAccessoryService(newFakeAccessoryRepo())
				req := validCreateAccessoryRequest()
				tt.mutate(&req)

				_, err := svc.CreateAccessory(context.Background(), req, []string{"uploads/a.png"})
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
				assert.Equal(t, tt.message, err.Error())
			})
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := NewAccessoryService(newFakeAccessoryRepo())
		_, err := svc.CreateAccessory(context.Background(), validCreateAccessoryRequest(), []string{"uploads/a.png"})
		require.NoError(t, err)

		_, err = svc.CreateAccessory(context.Background(), validCreateAccessoryRequest(), []string{"uploads/b.png"})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
		assert.Equal(t, "Accessory name already exists", err.Error())
	})
}

func TestUpdateAccessory(t *testing.T) {
	newRepoWithAccessory := func() (*fakeAccessoryRepo, *model.Accessory) {
		repo := newFakeAccessoryRepo()
		accessory := repo.add(&model.Accessory{
			Name:        "Oil Filter",
			Description: "Standard oil filter",
			Price:       decimal.NewFromInt(150000),
			Stock:       20,
			Images:      model.StringList{"uploads/old.png"},
			IsActive:    true,
		})
		return repo, accessory
	}

	t.Run("partial update", func(t *testing.T) {
		repo, accessory := newRepoWithAccessory()
		svc := NewAccessoryService(repo)

		resp, oldImages, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{
			Price:    strPtr("180000"),
			IsActive: boolPtr(false),
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Oil Filter", resp.Name)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(180000)))
		assert.False(t, resp.IsActive)
		assert.Nil(t, oldImages)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo, accessory := newRepoWithAccessory()
		svc := NewAccessoryService(repo)

		_, _, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{
			Name: strPtr("  "),
		}, nil)
		require.Error(t, err)
		assert.Equal(t, "name cannot be empty", err.Error())
	})

	t.Run("rename to taken name", func(t *testing.T) {
		repo, accessory := newRepoWithAccessory()
		repo.add(&model.Accessory{Name: "Air Filter", Images: model.StringList{"uploads/x.png"}, IsActive: true})
		svc := NewAccessoryService(repo)

		_, _, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{
			Name: strPtr("Air Filter"),
		}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.Status(err))
	})

	t.Run("new images return old set", func(t *testing.T) {
		repo, accessory := newRepoWithAccessory()
		svc := NewAccessoryService(repo)

		resp, oldImages, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{}, []string{"uploads/new.png"})
		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/old.png"}, oldImages)
		assert.Equal(t, model.StringList{"uploads/new.png"}, resp.Images)
	})

	t.Run("images cannot be cleared", func(t *testing.T) {
		repo := newFakeAccessoryRepo()
		accessory := repo.add(&model.Accessory{Name: "Bare", IsActive: true})
		svc := NewAccessoryService(repo)

		_, _, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{}, nil)
		require.Error(t, err)
		assert.Equal(t, "Images cannot be empty", err.Error())
	})

	t.Run("invalid stock", func(t *testing.T) {
		repo, accessory := newRepoWithAccessory()
		svc := NewAccessoryService(repo)

		_, _, err := svc.UpdateAccessory(context.Background(), accessory.ID.String(), UpdateAccessoryRequest{
			Stock: strPtr("-3"),
		}, nil)
		require.Error(t, err)
		assert.Equal(t, "stock must be a valid number >= 0", err.Error())
	})
}

func TestAccessoryUpdateIsActive(t *testing.T) {
	repo := newFakeAccessoryRepo()
	accessory := repo.add(&model.Accessory{Name: "Oil Filter", Images: model.StringList{"uploads/a.png"}, IsActive: true})
	svc := NewAccessoryService(repo)

	resp, err := svc.UpdateIsActive(context.Background(), accessory.ID.String(), false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = svc.UpdateIsActive(context.Background(), "garbage", true)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
}

func TestDeleteAccessory(t *testing.T) {
	repo := newFakeAccessoryRepo()
	accessory := repo.add(&model.Accessory{Name: "Oil Filter", IsActive: true})
	svc := NewAccessoryService(repo)

	require.NoError(t, svc.DeleteAccessory(context.Background(), accessory.ID.String()))
	assert.Contains(t, repo.deleted, accessory.ID)

	err := svc.DeleteAccessory(context.Background(), accessory.ID.String())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}
