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

type AccessoryHandler struct {
	accessoryService service.AccessoryService
	saver            *upload.Saver
}

func NewAccessoryHandler(accessoryService service.AccessoryService, saver *upload.Saver) *AccessoryHandler {
	return &AccessoryHandler{accessoryService: accessoryService, saver: saver}
}

func (h *AccessoryHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	managed := middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager)

	accessories := router.Group("/accessories")
	{
		accessories.POST("", middleware.RequireAuth(), managed, h.CreateAccessory)
		accessories.PUT("/:id", middleware.RequireAuth(), managed, h.UpdateAccessory)
		accessories.PATCH("/:id/status", middleware.RequireAuth(), managed, h.UpdateIsActive)
		// Hard delete stays unregistered; accessories are deactivated instead.
		// accessories.DELETE("/:id", middleware.RequireAuth(), managed, h.DeleteAccessory)
		accessories.GET("", h.ListAccessories)
		accessories.GET("/:id", h.GetAccessoryByID)
	}
}

// CreateAccessory creates a new accessory
// @Summary      Create accessory
// @Tags         accessories
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true  "Accessory name"
// @Param        description  formData  string  true  "Description"
// @Param        price        formData  string  true  "Price"
// @Param        stock        formData  string  true  "Stock quantity"
// @Param        images       formData  file    true  "Accessory images (max 5)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /accessories [post]
func (h *AccessoryHandler) CreateAccessory(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.CreateAccessoryRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       c.PostForm("price"),
		Stock:       c.PostForm("stock"),
	}

	accessory, err := h.accessoryService.CreateAccessory(c.Request.Context(), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Accessory created successfully", accessory))
}

// UpdateAccessory updates an accessory; absent fields keep their values
// @Summary      Update accessory
// @Tags         accessories
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Accessory ID"
// @Param        name         formData  string  false  "Accessory name"
// @Param        description  formData  string  false  "Description"
// @Param        price        formData  string  false  "Price"
// @Param        stock        formData  string  false  "Stock quantity"
// @Param        images       formData  file    false  "Replacement images (max 5)"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accessories/{id} [put]
func (h *AccessoryHandler) UpdateAccessory(c *gin.Context) {
	files, err := h.saver.Save(c, "images", 5)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		return
	}
	defer files.Cleanup()

	req := service.UpdateAccessoryRequest{
		Name:        formValue(c, "name"),
		Description: formValue(c, "description"),
		Price:       formValue(c, "price"),
		Stock:       formValue(c, "stock"),
	}

	accessory, oldImages, err := h.accessoryService.UpdateAccessory(c.Request.Context(), c.Param("id"), req, files.Filenames())
	if err != nil {
		respondError(c, err)
		return
	}
	files.Commit()
	h.saver.Remove(oldImages)

	c.JSON(http.StatusOK, response.SuccessWithMessage("Accessory updated successfully", accessory))
}

// UpdateIsActive sets the isActive flag of an accessory
// @Summary      Set accessory status
// @Tags         accessories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Accessory ID"
// @Param        payload  body  object  true  "{\"isActive\": bool}"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accessories/{id}/status [patch]
func (h *AccessoryHandler) UpdateIsActive(c *gin.Context) {
	var body struct {
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IsActive == nil {
		c.JSON(http.StatusBadRequest, response.Error("isActive must be a boolean"))
		return
	}

	accessory, err := h.accessoryService.UpdateIsActive(c.Request.Context(), c.Param("id"), *body.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Accessory status updated", accessory))
}

// DeleteAccessory removes an accessory permanently
// @Summary      Delete accessory
// @Tags         accessories
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Accessory ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accessories/{id} [delete]
func (h *AccessoryHandler) DeleteAccessory(c *gin.Context) {
	if err := h.accessoryService.DeleteAccessory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Accessory deleted successfully", nil))
}

// ListAccessories returns paginated accessories with optional filters
// @Summary      List accessories
// @Tags         accessories
// @Produce      json
// @Param        page      query  int     false  "Page number (default: 1)"
// @Param        limit     query  int     false  "Items per page (default: 20)"
// @Param        search    query  string  false  "Search by name"
// @Param        isActive  query  bool    false  "Filter by status"
// @Success      200  {object}  response.Response
// @Router       /accessories [get]
func (h *AccessoryHandler) ListAccessories(c *gin.Context) {
	page := pagination.Parse(c)

	filter := service.AccessoryListFilter{
		Search: c.Query("search"),
		Page:   page.Page,
		Limit:  page.Limit,
	}
	if raw := c.Query("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}

	accessories, total, err := h.accessoryService.GetAllAccessories(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(accessories, page.Page, page.Limit, total))
}

// GetAccessoryByID returns one accessory
// @Summary      Get accessory
// @Tags         accessories
// @Produce      json
// @Param        id  path  string  true  "Accessory ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accessories/{id} [get]
func (h *AccessoryHandler) GetAccessoryByID(c *gin.Context) {
	accessory, err := h.accessoryService.GetAccessoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(accessory))
}
