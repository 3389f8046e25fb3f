package handler

import (
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/internal/upload"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type VehiclesSystemHandler struct {
	vehiclesService service.VehiclesSystemService
	saver           *upload.Saver
}

func NewVehiclesSystemHandler(vehiclesService service.VehiclesSystemService, saver *upload.Saver) *VehiclesSystemHandler {
	return &VehiclesSystemHandler{vehiclesService: vehiclesService, saver: saver}
}

func (h *VehiclesSystemHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	managed := middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager)

	vehicles := router.Group("/vehicles-system")
	{
		vehicles.POST("", middleware.RequireAuth(), managed, h.CreateVehiclesSystem)
		vehicles.PUT("/:id", middleware.RequireAuth(), managed, h.UpdateVehiclesSystem)
		vehicles.PATCH("/:id/status", middleware.RequireAuth(), managed, h.UpdateIsActive)
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/model/:modelId", h.ListByModel)
		vehicles.GET("/:id", h.GetVehicleByID)
	}

	models := router.Group("/models")
	{
		models.GET("", h.ListModels)
		models.POST("",
			middleware.RequireAuth(),
			middleware.RequireRole(store, model.RoleAdministrator),
			h.CreateModel)
	}
}

// CreateModel creates a vehicle model name for the catalog
// @Summary      Create vehicle model
// @Tags         vehicle-models
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateVehicleModelRequest  true  "Model name"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /models [post]
func (h *VehiclesSystemHandler) CreateModel(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	m, err := h.vehiclesService.CreateModel(c.Request.Context(), service.CreateVehicleModelRequest{Name: body.Name})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Model created successfully", m))
}

// ListModels lists all vehicle models
// @Summary      List vehicle models
// @Tags         vehicle-models
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /models [get]
func (h *VehiclesSystemHandler) ListModels(c *gin.Context) {
	models, err := h.vehiclesService.ListModels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(models))
}

// CreateVehiclesSystem creates a catalog vehicle
// @Summary      Create catalog vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true  "Vehicle name"
// @Param        model        formData  string  true  "Model ID"
// @Param        description  formData  string  true  "Description"
// @Param        year         formData  string  true  "Year of manufacture"
// @Param        price        formData  string  true  "Price"
// @Param        avatar       formData  file    false "Cover image"
// @Param        images       formData  file    true  "Gallery images (max 5)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /vehicles-system [post]
func (h *VehiclesSystemHandler) CreateVehiclesSystem(c *gin.Context) {
	avatar, avatarSet, err := h.saver.SaveOne(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer avatarSet.Cleanup()

	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.CreateVehiclesSystemRequest{
		Name:        c.PostForm("name"),
		ModelID:     c.PostForm("model"),
		Description: c.PostForm("description"),
		Year:        c.PostForm("year"),
		Price:       c.PostForm("price"),
	}

	vehicle, err := h.vehiclesService.CreateVehiclesSystem(c.Request.Context(), req, avatar, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	avatarSet.Commit()
	files.Commit()

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Vehicle created successfully", vehicle))
}

// UpdateVehiclesSystem updates a catalog vehicle
// @Summary      Update catalog vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Vehicle ID"
// @Param        name         formData  string  false  "Vehicle name"
// @Param        model        formData  string  false  "Model ID"
// @Param        description  formData  string  false  "Description"
// @Param        year         formData  string  false  "Year of manufacture"
// @Param        price        formData  string  false  "Price"
// @Param        avatar       formData  file    false  "Replacement cover image"
// @Param        images       formData  file    false  "Replacement gallery images (max 5)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles-system/{id} [put]
func (h *VehiclesSystemHandler) UpdateVehiclesSystem(c *gin.Context) {
	avatar, avatarSet, err := h.saver.SaveOne(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer avatarSet.Cleanup()

	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.UpdateVehiclesSystemRequest{
		Name:        formValue(c, "name"),
		ModelID:     formValue(c, "model"),
		Description: formValue(c, "description"),
		Year:        formValue(c, "year"),
		Price:       formValue(c, "price"),
	}

	vehicle, oldFiles, err := h.vehiclesService.UpdateVehiclesSystem(c.Request.Context(), c.Param("id"), req, avatar, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	avatarSet.Commit()
	files.Commit()
	h.saver.Remove(oldFiles)

	c.JSON(http.StatusOK, response.SuccessWithMessage("Vehicle updated successfully", vehicle))
}

// UpdateIsActive sets the isActive flag of a catalog vehicle
// @Summary      Set catalog vehicle status
// @Tags         vehicles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Vehicle ID"
// @Param        payload  body  object  true  "{\"isActive\": bool}"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles-system/{id}/status [patch]
func (h *VehiclesSystemHandler) UpdateIsActive(c *gin.Context) {
	var body struct {
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IsActive == nil {
		c.JSON(http.StatusBadRequest, response.Error("isActive must be a boolean"))
		return
	}

	vehicle, err := h.vehiclesService.UpdateIsActive(c.Request.Context(), c.Param("id"), *body.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Vehicle status updated", vehicle))
}

// ListVehicles returns paginated catalog vehicles
// @Summary      List catalog vehicles
// @Tags         vehicles
// @Produce      json
// @Param        page      query  int     false  "Page number (default: 1)"
// @Param        limit     query  int     false  "Items per page (default: 20)"
// @Param        search    query  string  false  "Search by name"
// @Param        isActive  query  bool    false  "Filter by status"
// @Success      200  {object}  response.Response
// @Router       /vehicles-system [get]
func (h *VehiclesSystemHandler) ListVehicles(c *gin.Context) {
	page := pagination.Parse(c)

	filter := service.VehiclesSystemListFilter{
		Search: c.Query("search"),
		Page:   page.Page,
		Limit:  page.Limit,
	}
	if raw := c.Query("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	vehicles, total, err := h.vehiclesService.GetAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(vehicles, page.Page, page.Limit, total))
}

// ListByModel lists the catalog vehicles of a model
// @Summary      List catalog vehicles by model
// @Tags         vehicles
// @Produce      json
// @Param        modelId  path  string  true  "Model ID"
// @Success      200  {object}  response.Response
// @Router       /vehicles-system/model/{modelId} [get]
func (h *VehiclesSystemHandler) ListByModel(c *gin.Context) {
	vehicles, err := h.vehiclesService.GetByModel(c.Request.Context(), c.Param("modelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(vehicles))
}

// GetVehicleByID returns one catalog vehicle
// @Summary      Get catalog vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id  path  string  true  "Vehicle ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles-system/{id} [get]
func (h *VehiclesSystemHandler) GetVehicleByID(c *gin.Context) {
	vehicle, err := h.vehiclesService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(vehicle))
}
