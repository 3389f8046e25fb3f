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

type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) RegisterRoutes(router *gin.RouterGroup, store middleware.IdentityStore) {
	appointments := router.Group("/appointments", middleware.RequireAuth())
	{
		appointments.POST("",
			middleware.RequireRole(store, model.StaffRoles...),
			h.AdminCreateAppointment)
		appointments.POST("/customer",
			middleware.RequireRole(store, model.RoleCustomer),
			h.CustomerCreateAppointment)
		appointments.PATCH("/:id",
			middleware.RequireRole(store, model.StaffRoles...),
			h.UpdateAppointment)
		appointments.GET("/list/:customer_id", h.ListByCustomer)
		appointments.GET("/:id", h.GetDetail)
		appointments.GET("", h.ListAppointments)
	}
}

// AdminCreateAppointment books an appointment on behalf of a customer
// @Summary      Create appointment (staff)
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateAppointmentRequest  true  "Appointment payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /appointments [post]
func (h *AppointmentHandler) AdminCreateAppointment(c *gin.Context) {
	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	appointment, err := h.appointmentService.AdminCreate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Appointment created successfully", appointment))
}

// CustomerCreateAppointment books an appointment for the calling customer
// @Summary      Create appointment (customer)
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateAppointmentRequest  true  "Appointment payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /appointments/customer [post]
func (h *AppointmentHandler) CustomerCreateAppointment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Unauthorized: no user ID found"))
		return
	}

	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	appointment, err := h.appointmentService.CustomerCreate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessWithMessage("Appointment created successfully", appointment))
}

// UpdateAppointment updates appointment fields; absent fields keep their values
// @Summary      Update appointment
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                            true  "Appointment ID"
// @Param        payload  body  service.UpdateAppointmentRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /appointments/{id} [patch]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req service.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage("Appointment updated successfully", appointment))
}

// ListByCustomer lists a customer's appointments
// @Summary      List appointments by customer
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        customer_id  path  string  true  "Customer ID"
// @Success      200  {object}  response.Response
// @Router       /appointments/list/{customer_id} [get]
func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid customer ID"))
		return
	}

	appointments, err := h.appointmentService.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(appointments))
}

// GetDetail returns one appointment with its related records
// @Summary      Get appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Appointment ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) GetDetail(c *gin.Context) {
	appointment, err := h.appointmentService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(appointment))
}

// ListAppointments returns paginated appointments with optional filters
// @Summary      List appointments
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        page       query  int     false  "Page number (default: 1)"
// @Param        limit      query  int     false  "Items per page (default: 20)"
// @Param        status     query  string  false  "Filter by status"
// @Param        branch_id  query  string  false  "Filter by branch"
// @Success      200  {object}  response.Response
// @Router       /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	page := pagination.Parse(c)

	filter := service.AppointmentListFilter{
		Status: c.Query("status"),
		Page:   page.Page,
		Limit:  page.Limit,
	}
	if raw := c.Query("branch_id"); raw != "" {
		branchID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error("Invalid branch_id"))
			return
		}
		filter.BranchID = &branchID
	}

	appointments, total, err := h.appointmentService.GetAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(appointments, page.Page, page.Limit, total))
}
