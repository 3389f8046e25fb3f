package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/upload"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ServiceSystemHandler struct {
	serviceSystemService service.ServiceSystemService
	saver                *upload.Saver
}

func NewServiceSystemHandler(serviceSystemService service.ServiceSystemService, saver *upload.Saver) *ServiceSystemHandler {
	return &ServiceSystemHandler{serviceSystemService: serviceSystemService, saver: saver}
}

func (h *ServiceSystemHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	managed := middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager)

	services := router.Group("/service-systems")
	{
		services.POST("/create-service", middleware.RequireAuth(), managed, h.CreateServiceSystem)
		services.PUT("/update-service/:id", middleware.RequireAuth(), managed, h.UpdateServiceSystem)
		services.PATCH("/:serviceSystemId/branches/:branchId/status", middleware.RequireAuth(), managed, h.ToggleBranchStatus)
		services.GET("/list-services", middleware.RequireAuth(), h.ListServiceSystems)
		services.GET("/branch/:branchId", h.ListByBranch)
		services.GET("/:serviceSystemId", middleware.RequireAuth(), h.GetServiceSystemDetail)
	}
}

// CreateServiceSystem creates a service offering with its branch links
// @Summary      Create service
// @Tags         services
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name           formData  string  true  "Service name"
// @Param        description    formData  string  true  "Description"
// @Param        price          formData  string  true  "Price"
// @Param        estimatedTime  formData  string  true  "Estimated time in hours"
// @Param        category       formData  string  true  "Category: maintenance, repair, check"
// @Param        branch_ids     formData  string  false "Branch IDs offering the service"
// @Param        images         formData  file    true  "Service images (max 5)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /service-systems/create-service [post]
func (h *ServiceSystemHandler) CreateServiceSystem(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.CreateServiceSystemRequest{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Price:         c.PostForm("price"),
		EstimatedTime: c.PostForm("estimatedTime"),
		Category:      c.PostForm("category"),
		BranchIDs:     branchIDsFromForm(c),
	}

	svc, err := h.serviceSystemService.CreateServiceSystem(c.Request.Context(), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Service created successfully", svc))
}

// UpdateServiceSystem updates a service; a supplied branch_ids list replaces
// the branch set wholesale
// @Summary      Update service
// @Tags         services
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id             path      string  true   "Service ID"
// @Param        name           formData  string  false  "Service name"
// @Param        description    formData  string  false  "Description"
// @Param        price          formData  string  false  "Price"
// @Param        estimatedTime  formData  string  false  "Estimated time in hours"
// @Param        category       formData  string  false  "Category"
// @Param        branch_ids     formData  string  false  "Replacement branch IDs"
// @Param        images         formData  file    false  "Replacement images (max 5)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /service-systems/update-service/{id} [put]
func (h *ServiceSystemHandler) UpdateServiceSystem(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.UpdateServiceSystemRequest{
		Name:          formValue(c, "name"),
		Description:   formValue(c, "description"),
		Price:         formValue(c, "price"),
		EstimatedTime: formValue(c, "estimatedTime"),
		Category:      formValue(c, "category"),
		BranchIDs:     branchIDsFromForm(c),
	}

	svc, oldImages, err := h.serviceSystemService.UpdateServiceSystem(c.Request.Context(), c.Param("id"), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()
	h.saver.Remove(oldImages)

	c.JSON(http.StatusOK, response.SuccessWithMessage("Service updated successfully", svc))
}

// ToggleBranchStatus flips one branch link of a service
// @Summary      Toggle service availability at a branch
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceSystemId  path  string  true  "Service ID"
// @Param        branchId         path  string  true  "Branch ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /service-systems/{serviceSystemId}/branches/{branchId}/status [patch]
func (h *ServiceSystemHandler) ToggleBranchStatus(c *gin.Context) {
	svc, err := h.serviceSystemService.ToggleBranchStatus(c.Request.Context(), c.Param("serviceSystemId"), c.Param("branchId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Service branch status updated", svc))
}

// ListServiceSystems lists every service offering
// @Summary      List services
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /service-systems/list-services [get]
func (h *ServiceSystemHandler) ListServiceSystems(c *gin.Context) {
	services, err := h.serviceSystemService.GetAllServiceSystems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(services))
}

// ListByBranch lists the services offered at a branch
// @Summary      List services by branch
// @Tags         services
// @Produce      json
// @Param        branchId  path  string  true  "Branch ID"
// @Success      200  {object}  response.Response
// @Router       /service-systems/branch/{branchId} [get]
func (h *ServiceSystemHandler) ListByBranch(c *gin.Context) {
	services, err := h.serviceSystemService.GetServiceSystemsByBranch(c.Request.Context(), c.Param("branchId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(services))
}

// GetServiceSystemDetail returns one service with its branch links
// @Summary      Get service
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceSystemId  path  string  true  "Service ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /service-systems/{serviceSystemId} [get]
func (h *ServiceSystemHandler) GetServiceSystemDetail(c *gin.Context) {
	svc, err := h.serviceSystemService.GetServiceSystemDetail(c.Request.Context(), c.Param("serviceSystemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(svc))
}

// branchIDsFromForm accepts both branch_ids and branch_ids[] field names.
// Returns nil when neither field was sent.
func branchIDsFromForm(c *gin.Context) []string {
	if ids, ok := c.GetPostFormArray("branch_ids"); ok {
		return ids
	}
	if ids, ok := c.GetPostFormArray("branch_ids[]"); ok {
		return ids
	}
	return nil
}
