package service

import (
	"context"
	"net/http"
	"testing"

	"backend/internal/model"
	"backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateServiceSystemRequest() CreateServiceSystemRequest {
	return CreateServiceSystemRequest{
		Name:          "Periodic Maintenance",
		Description:   "10,000 km checkup",
		Price:         "500000",
		EstimatedTime: "1.5",
		Category:      model.CategoryMaintenance,
	}
}

func TestCreateServiceSystem(t *testing.T) {
	t.Run("success with branch activation", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		branchRepo := newFakeBranchRepo()
		branch := branchRepo.add(&model.Branch{Name: "District 1", IsActive: true})
		svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

		req := validCreateServiceSystemRequest()
		req.BranchIDs = []string{branch.ID.String()}
		resp, err := svc.CreateServiceSystem(context.Background(), req, []string{"uploads/svc.png"})
		require.NoError(t, err)
		assert.Equal(t, "Periodic Maintenance", resp.Name)
		assert.Equal(t, 1.5, resp.EstimatedTime)
		require.Len(t, resp.Branches, 1)
		assert.Equal(t, branch.ID, resp.Branches[0].BranchID)
		assert.True(t, resp.Branches[0].IsActive)
	})

	t.Run("images required", func(t *testing.T) {
		svc := NewServiceSystemService(newFakeServiceSystemRepo(), newFakeBranchRepo(), fakeTxManager{})

		_, err := svc.CreateServiceSystem(context.Background(), validCreateServiceSystemRequest(), nil)
		require.Error(t, err)
		assert.Equal(t, "At least one image must be uploaded", err.Error())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *CreateServiceSystemRequest)
			message string
		}{
			{
				name:    "missing fields",
				mutate:  func(r *CreateServiceSystemRequest) { r.Name = ""; r.Category = " " },
				message: "Missing required fields: name, category",
			},
			{
				name:    "unknown category",
				mutate:  func(r *CreateServiceSystemRequest) { r.Category = "detailing" },
				message: "Category must be one of: maintenance, repair, or check",
			},
			{
				name:    "negative price",
				mutate:  func(r *CreateServiceSystemRequest) { r.Price = "-1" },
				message: "Price must be a valid non-negative number",
			},
			{
				name:    "bad estimated time",
				mutate:  func(r *CreateServiceSystemRequest) { r.EstimatedTime = "soon" },
				message: "Estimated time must be a valid non-negative number (in hours)",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewServiceSystemService(newFakeServiceSystemRepo(), newFakeBranchRepo(), fakeTxManager{})
				req := validCreateServiceSystemRequest()
				tt.mutate(&req)

				_, err := svc.CreateServiceSystem(context.Background(), req, []string{"uploads/a.png"})
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
				assert.Equal(t, tt.message, err.Error())
			})
		}
	})

	t.Run("branch resolution errors", func(t *testing.T) {
		svc := NewServiceSystemService(newFakeServiceSystemRepo(), newFakeBranchRepo(), fakeTxManager{})

		req := validCreateServiceSystemRequest()
		req.BranchIDs = []string{"not-a-uuid"}
		_, err := svc.CreateServiceSystem(context.Background(), req, []string{"uploads/a.png"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.Status(err))

		req.BranchIDs = []string{uuid.NewString()}
		_, err = svc.CreateServiceSystem(context.Background(), req, []string{"uploads/a.png"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.Status(err))
	})
}

func seedServiceSystem(serviceRepo *fakeServiceSystemRepo, branchRepo *fakeBranchRepo) (*model.ServiceSystem, *model.Branch) {
	branch := branchRepo.add(&model.Branch{Name: "District 1", IsActive: true})
	service := serviceRepo.add(&model.ServiceSystem{
		Name:          "Periodic Maintenance",
		Description:   "10,000 km checkup",
		Price:         decimal.NewFromInt(500000),
		EstimatedTime: 1.5,
		Category:      model.CategoryMaintenance,
		Images:        model.StringList{"uploads/old.png"},
	})
	serviceRepo.links = append(serviceRepo.links, model.ServiceBranch{
		ID:              uuid.New(),
		ServiceSystemID: service.ID,
		BranchID:        branch.ID,
		IsActive:        true,
	})
	return service, branch
}

func TestUpdateServiceSystem(t *testing.T) {
	t.Run("nil branch ids keep current set", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		branchRepo := newFakeBranchRepo()
		service, branch := seedServiceSystem(serviceRepo, branchRepo)
		svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

		resp, _, err := svc.UpdateServiceSystem(context.Background(), service.ID.String(), UpdateServiceSystemRequest{
			Price: strPtr("600000"),
		}, nil)
		require.NoError(t, err)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(600000)))
		require.Len(t, resp.Branches, 1)
		assert.Equal(t, branch.ID, resp.Branches[0].BranchID)
	})

	t.Run("non-nil branch ids replace wholesale", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		branchRepo := newFakeBranchRepo()
		service, _ := seedServiceSystem(serviceRepo, branchRepo)
		replacement := branchRepo.add(&model.Branch{Name: "District 2", IsActive: true})
		svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

		resp, _, err := svc.UpdateServiceSystem(context.Background(), service.ID.String(), UpdateServiceSystemRequest{
			BranchIDs: []string{replacement.ID.String()},
		}, nil)
		require.NoError(t, err)
		require.Len(t, resp.Branches, 1)
		assert.Equal(t, replacement.ID, resp.Branches[0].BranchID)
		require.Len(t, serviceRepo.links, 1)
		assert.Equal(t, replacement.ID, serviceRepo.links[0].BranchID)
	})

	t.Run("empty branch slice clears all links", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		branchRepo := newFakeBranchRepo()
		service, _ := seedServiceSystem(serviceRepo, branchRepo)
		svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

		resp, _, err := svc.UpdateServiceSystem(context.Background(), service.ID.String(), UpdateServiceSystemRequest{
			BranchIDs: []string{},
		}, nil)
		require.NoError(t, err)
		assert.Empty(t, resp.Branches)
		assert.Empty(t, serviceRepo.links)
	})

	t.Run("unknown replacement branch aborts before write", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		branchRepo := newFakeBranchRepo()
		service, branch := seedServiceSystem(serviceRepo, branchRepo)
		svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

		_, _, err := svc.UpdateServiceSystem(context.Background(), service.ID.String(), UpdateServiceSystemRequest{
			BranchIDs: []string{uuid.NewString()},
		}, nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.Status(err))
		require.Len(t, serviceRepo.links, 1)
		assert.Equal(t, branch.ID, serviceRepo.links[0].BranchID)
	})

	t.Run("images cannot be cleared", func(t *testing.T) {
		serviceRepo := newFakeServiceSystemRepo()
		service := serviceRepo.add(&model.ServiceSystem{Name: "Bare", Category: model.CategoryMaintenance})
		svc := NewServiceSystemService(serviceRepo, newFakeBranchRepo(), fakeTxManager{})

		_, _, err := svc.UpdateServiceSystem(context.Background(), service.ID.String(), UpdateServiceSystemRequest{}, nil)
		require.Error(t, err)
		assert.Equal(t, "Images cannot be empty", err.Error())
	})
}

func TestToggleBranchStatus(t *testing.T) {
	serviceRepo := newFakeServiceSystemRepo()
	branchRepo := newFakeBranchRepo()
	service, branch := seedServiceSystem(serviceRepo, branchRepo)
	svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

	resp, err := svc.ToggleBranchStatus(context.Background(), service.ID.String(), branch.ID.String())
	require.NoError(t, err)
	require.Len(t, resp.Branches, 1)
	assert.False(t, resp.Branches[0].IsActive)

	resp, err = svc.ToggleBranchStatus(context.Background(), service.ID.String(), branch.ID.String())
	require.NoError(t, err)
	assert.True(t, resp.Branches[0].IsActive)

	_, err = svc.ToggleBranchStatus(context.Background(), service.ID.String(), uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestGetServiceSystemsByBranch(t *testing.T) {
	serviceRepo := newFakeServiceSystemRepo()
	branchRepo := newFakeBranchRepo()
	_, branch := seedServiceSystem(serviceRepo, branchRepo)
	other := branchRepo.add(&model.Branch{Name: "District 2", IsActive: true})
	svc := NewServiceSystemService(serviceRepo, branchRepo, fakeTxManager{})

	services, err := svc.GetServiceSystemsByBranch(context.Background(), branch.ID.String())
	require.NoError(t, err)
	assert.Len(t, services, 1)

	services, err = svc.GetServiceSystemsByBranch(context.Background(), other.ID.String())
	require.NoError(t, err)
	assert.Empty(t, services)

	_, err = svc.GetServiceSystemsByBranch(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
}
