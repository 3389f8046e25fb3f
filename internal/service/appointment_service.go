package service

import (
	"context"
	"strings"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/apperror"
	"backend/pkg/validate"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	CustomerID   string `json:"customer_id"`
	ServiceID    string `json:"service_id"`
	BranchID     string `json:"branch_id"`
	DateTime     string `json:"dateTime"`
	CustomerNote string `json:"customer_note"`
	AdminNote    string `json:"admin_note"`
	CreatedBy    string `json:"created_by"`
}

type UpdateAppointmentRequest struct {
	ServiceID    *string `json:"service_id"`
	BranchID     *string `json:"branch_id"`
	DateTime     *string `json:"dateTime"`
	Status       *string `json:"status"`
	CustomerNote *string `json:"customer_note"`
	AdminNote    *string `json:"admin_note"`
}

type AppointmentResponse struct {
	ID           uuid.UUID              `json:"id"`
	Customer     *UserResponse          `json:"customer,omitempty"`
	Service      *ServiceSystemResponse `json:"service,omitempty"`
	Branch       *BranchResponse        `json:"branch,omitempty"`
	DateTime     time.Time              `json:"dateTime"`
	Status       string                 `json:"status"`
	CustomerNote string                 `json:"customer_note"`
	AdminNote    string                 `json:"admin_note"`
	Creator      *UserResponse          `json:"creator,omitempty"`
	CreatedType  string                 `json:"created_type"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type AppointmentListFilter struct {
	Status   string
	BranchID *uuid.UUID
	Page     int
	Limit    int
}

// AppointmentService defines the interface for business logic related to
// service appointments.
type AppointmentService interface {
	AdminCreate(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error)
	CustomerCreate(ctx context.Context, req CreateAppointmentRequest, customerID uuid.UUID) (*AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
	GetDetail(ctx context.Context, id string) (*AppointmentResponse, error)
	GetAll(ctx context.Context, filter AppointmentListFilter) ([]AppointmentResponse, int64, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]AppointmentResponse, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	serviceRepo     repository.ServiceSystemRepository
	branchRepo      repository.BranchRepository
	hub             *websocket.Hub
	now             func() time.Time
}

// NewAppointmentService returns a new instance of AppointmentService. hub may
// be nil, in which case no events are published.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceSystemRepository,
	branchRepo repository.BranchRepository,
	hub *websocket.Hub,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		serviceRepo:     serviceRepo,
		branchRepo:      branchRepo,
		hub:             hub,
		now:             time.Now,
	}
}

func (s *appointmentService) AdminCreate(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	missing := validate.MissingFields(
		map[string]string{
			"customer_id": req.CustomerID,
			"service_id":  req.ServiceID,
			"branch_id":   req.BranchID,
			"dateTime":    req.DateTime,
			"created_by":  req.CreatedBy,
		},
		[]string{"customer_id", "service_id", "branch_id", "dateTime", "created_by"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	customerID, err := uuid.Parse(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, apperror.BadRequest("Invalid customer_id")
	}
	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, apperror.NotFound("Customer not found")
	}
	if customer.Role != model.RoleCustomer {
		return nil, apperror.BadRequest("Appointments can only be booked for customer accounts")
	}

	createdBy, err := uuid.Parse(strings.TrimSpace(req.CreatedBy))
	if err != nil {
		return nil, apperror.BadRequest("Invalid created_by")
	}
	if _, err := s.userRepo.GetByID(ctx, createdBy); err != nil {
		return nil, apperror.NotFound("Creator not found")
	}

	return s.create(ctx, req, customerID, createdBy, model.CreatedTypeAdmin)
}

func (s *appointmentService) CustomerCreate(ctx context.Context, req CreateAppointmentRequest, customerID uuid.UUID) (*AppointmentResponse, error) {
	missing := validate.MissingFields(
		map[string]string{
			"service_id": req.ServiceID,
			"branch_id":  req.BranchID,
			"dateTime":   req.DateTime,
		},
		[]string{"service_id", "branch_id", "dateTime"},
	)
	if len(missing) > 0 {
		return nil, apperror.BadRequest("Missing required fields: %s", strings.Join(missing, ", "))
	}

	// Customers never set the admin note.
	req.AdminNote = ""
	return s.create(ctx, req, customerID, customerID, model.CreatedTypeCustomer)
}

func (s *appointmentService) create(ctx context.Context, req CreateAppointmentRequest, customerID, createdBy uuid.UUID, createdType string) (*AppointmentResponse, error) {
	serviceID, err := uuid.Parse(strings.TrimSpace(req.ServiceID))
	if err != nil {
		return nil, apperror.BadRequest("Invalid service_id")
	}
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, apperror.NotFound("Service not found")
	}

	branchID, err := uuid.Parse(strings.TrimSpace(req.BranchID))
	if err != nil {
		return nil, apperror.BadRequest("Invalid branch_id")
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, apperror.NotFound("Branch not found")
	}

	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		return nil, apperror.BadRequest("Invalid dateTime")
	}
	if dateTime.Before(s.now()) {
		return nil, apperror.BadRequest("Appointment time must be in the future")
	}

	appointment := &model.Appointment{
		CustomerID:   customerID,
		ServiceID:    serviceID,
		BranchID:     branchID,
		DateTime:     dateTime,
		Status:       model.StatusPending,
		CustomerNote: strings.TrimSpace(req.CustomerNote),
		AdminNote:    strings.TrimSpace(req.AdminNote),
		CreatedBy:    createdBy,
		CreatedType:  createdType,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, apperror.Internal("failed to create appointment")
	}

	created, err := s.appointmentRepo.GetByID(ctx, appointment.ID)
	if err != nil {
		return nil, apperror.Internal("failed to load created appointment")
	}

	resp := toAppointmentResponse(created)
	s.publish("appointment.created", resp)
	return &resp, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid appointment ID")
	}
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, apperror.NotFound("Appointment not found")
	}

	if req.ServiceID != nil {
		serviceID, err := uuid.Parse(strings.TrimSpace(*req.ServiceID))
		if err != nil {
			return nil, apperror.BadRequest("Invalid service_id")
		}
		if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
			return nil, apperror.NotFound("Service not found")
		}
		appointment.ServiceID = serviceID
		appointment.Service = nil
	}
	if req.BranchID != nil {
		branchID, err := uuid.Parse(strings.TrimSpace(*req.BranchID))
		if err != nil {
			return nil, apperror.BadRequest("Invalid branch_id")
		}
		if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
			return nil, apperror.NotFound("Branch not found")
		}
		appointment.BranchID = branchID
		appointment.Branch = nil
	}
	if req.DateTime != nil {
		dateTime, err := parseDateTime(*req.DateTime)
		if err != nil {
			return nil, apperror.BadRequest("Invalid dateTime")
		}
		if dateTime.Before(s.now()) {
			return nil, apperror.BadRequest("Appointment time must be in the future")
		}
		appointment.DateTime = dateTime
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !model.ValidStatuses[status] {
			return nil, apperror.BadRequest("Invalid status: %s", status)
		}
		appointment.Status = status
	}
	if req.CustomerNote != nil {
		appointment.CustomerNote = strings.TrimSpace(*req.CustomerNote)
	}
	if req.AdminNote != nil {
		appointment.AdminNote = strings.TrimSpace(*req.AdminNote)
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, apperror.Internal("failed to update appointment")
	}

	updated, err := s.appointmentRepo.GetByID(ctx, appointment.ID)
	if err != nil {
		return nil, apperror.Internal("failed to load updated appointment")
	}

	resp := toAppointmentResponse(updated)
	s.publish("appointment.updated", resp)
	return &resp, nil
}

func (s *appointmentService) GetDetail(ctx context.Context, id string) (*AppointmentResponse, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid appointment ID")
	}
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, apperror.NotFound("Appointment not found")
	}
	resp := toAppointmentResponse(appointment)
	return &resp, nil
}

func (s *appointmentService) GetAll(ctx context.Context, filter AppointmentListFilter) ([]AppointmentResponse, int64, error) {
	if filter.Status != "" && !model.ValidStatuses[filter.Status] {
		return nil, 0, apperror.BadRequest("Invalid status: %s", filter.Status)
	}
	appointments, total, err := s.appointmentRepo.List(ctx, repository.AppointmentFilter{
		Status:   filter.Status,
		BranchID: filter.BranchID,
		Page:     filter.Page,
		Limit:    filter.Limit,
	})
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch appointments")
	}
	responses := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, toAppointmentResponse(&appointments[i]))
	}
	return responses, total, nil
}

func (s *appointmentService) GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch appointments")
	}
	responses := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, toAppointmentResponse(&appointments[i]))
	}
	return responses, nil
}

func (s *appointmentService) publish(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.PublishEvent(event, data)
}

func toAppointmentResponse(a *model.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:           a.ID,
		DateTime:     a.DateTime,
		Status:       a.Status,
		CustomerNote: a.CustomerNote,
		AdminNote:    a.AdminNote,
		CreatedType:  a.CreatedType,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Customer != nil {
		u := toUserResponse(a.Customer)
		resp.Customer = &u
	}
	if a.Service != nil {
		svc := toServiceSystemResponse(a.Service)
		resp.Service = &svc
	}
	if a.Branch != nil {
		b := toBranchResponse(a.Branch)
		resp.Branch = &b
	}
	if a.Creator != nil {
		u := toUserResponse(a.Creator)
		resp.Creator = &u
	}
	return resp
}
