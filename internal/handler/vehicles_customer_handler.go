package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehiclesCustomerHandler struct {
	vehiclesService service.VehiclesCustomerService
}

func NewVehiclesCustomerHandler(vehiclesService service.VehiclesCustomerService) *VehiclesCustomerHandler {
	return &VehiclesCustomerHandler{vehiclesService: vehiclesService}
}

func (h *VehiclesCustomerHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	vehicles := router.Group("/vehicles-customer", middleware.RequireAuth())
	{
		vehicles.POST("",
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.CreateVehiclesCustomer)
		vehicles.PUT("/:id",
			middleware.RequireRole(store, model.RoleAdministrator, model.RoleBranchManager),
			h.UpdateVehiclesCustomer)
		vehicles.GET("/customers", h.ListAll)
		vehicles.GET("/:id/customer", h.ListByCustomer)
		vehicles.GET("/:id", h.GetDetail)
	}
}

// CreateVehiclesCustomer registers a customer's vehicle
// @Summary      Register customer vehicle
// @Tags         customer-vehicles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateVehiclesCustomerRequest  true  "Vehicle payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /vehicles-customer [post]
func (h *VehiclesCustomerHandler) CreateVehiclesCustomer(c *gin.Context) {
	var body struct {
		LicensePlate        string `json:"licensePlate"`
		VehiclesSystemID    string `json:"vehiclesSystemId"`
		Color               string `json:"color"`
		Mileage             string `json:"mileage"`
		LastMaintenanceDate string `json:"lastMaintenanceDate"`
		CustomerID          string `json:"customerId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehiclesService.CreateVehiclesCustomer(c.Request.Context(), service.CreateVehiclesCustomerRequest{
		LicensePlate:        body.LicensePlate,
		VehiclesSystemID:    body.VehiclesSystemID,
		Color:               body.Color,
		Mileage:             body.Mileage,
		LastMaintenanceDate: body.LastMaintenanceDate,
		CustomerID:          body.CustomerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Vehicle registered successfully", vehicle))
}

// UpdateVehiclesCustomer updates a customer vehicle; absent fields keep their values
// @Summary      Update customer vehicle
// @Tags         customer-vehicles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Vehicle ID"
// @Param        payload  body  object  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /vehicles-customer/{id} [put]
func (h *VehiclesCustomerHandler) UpdateVehiclesCustomer(c *gin.Context) {
	var body struct {
		LicensePlate        *string `json:"licensePlate"`
		VehiclesSystemID    *string `json:"vehiclesSystemId"`
		Color               *string `json:"color"`
		Mileage             *string `json:"mileage"`
		LastMaintenanceDate *string `json:"lastMaintenanceDate"`
		IsActive            *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehiclesService.UpdateVehiclesCustomer(c.Request.Context(), c.Param("id"), service.UpdateVehiclesCustomerRequest{
		LicensePlate:        body.LicensePlate,
		VehiclesSystemID:    body.VehiclesSystemID,
		Color:               body.Color,
		Mileage:             body.Mileage,
		LastMaintenanceDate: body.LastMaintenanceDate,
		IsActive:            body.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Vehicle updated successfully", vehicle))
}

// ListAll returns paginated customer vehicles for management
// @Summary      List customer vehicles
// @Tags         customer-vehicles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /vehicles-customer/customers [get]
func (h *VehiclesCustomerHandler) ListAll(c *gin.Context) {
	page := pagination.Parse(c)

	vehicles, total, err := h.vehiclesService.GetAll(c.Request.Context(), page.Page, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(vehicles, page.Page, page.Limit, total))
}

// ListByCustomer lists the vehicles owned by a customer
// @Summary      List vehicles of a customer
// @Tags         customer-vehicles
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  response.Response
// @Router       /vehicles-customer/{id}/customer [get]
func (h *VehiclesCustomerHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid customer ID"))
		return
	}

	vehicles, err := h.vehiclesService.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(vehicles))
}

// GetDetail returns one customer vehicle with its catalog entry and owner
// @Summary      Get customer vehicle
// @Tags         customer-vehicles
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Vehicle ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vehicles-customer/{id} [get]
func (h *VehiclesCustomerHandler) GetDetail(c *gin.Context) {
	vehicle, err := h.vehiclesService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(vehicle))
}
