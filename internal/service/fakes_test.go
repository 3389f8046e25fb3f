package service

import (
	"context"
	"errors"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// errNotFound stands in for gorm.ErrRecordNotFound in the in-memory fakes;
// the services only check err != nil on lookups.
var errNotFound = errors.New("record not found")

type fakeUserRepo struct {
	users     map[uuid.UUID]*model.User
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) GetByPhoneNumber(_ context.Context, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.BranchID != nil && (u.BranchID == nil || *u.BranchID != *filter.BranchID) {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[user.ID] = user
	return nil
}

type fakeBranchRepo struct {
	branches  map[uuid.UUID]*model.Branch
	createErr error
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: make(map[uuid.UUID]*model.Branch)}
}

func (r *fakeBranchRepo) add(branch *model.Branch) *model.Branch {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	r.branches[branch.ID] = branch
	return branch
}

func (r *fakeBranchRepo) Create(_ context.Context, branch *model.Branch) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(branch)
	return nil
}

func (r *fakeBranchRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Branch, error) {
	if b, ok := r.branches[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (r *fakeBranchRepo) GetByName(_ context.Context, name string) (*model.Branch, error) {
	for _, b := range r.branches {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeBranchRepo) GetByPhoneNumber(_ context.Context, phone string) (*model.Branch, error) {
	for _, b := range r.branches {
		if b.PhoneNumber == phone {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeBranchRepo) GetByEmail(_ context.Context, email string) (*model.Branch, error) {
	for _, b := range r.branches {
		if b.Email == email {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	var out []model.Branch
	for _, b := range r.branches {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBranchRepo) Update(_ context.Context, branch *model.Branch) error {
	r.branches[branch.ID] = branch
	return nil
}

type fakeAccessoryRepo struct {
	accessories map[uuid.UUID]*model.Accessory
	deleted     []uuid.UUID
}

func newFakeAccessoryRepo() *fakeAccessoryRepo {
	return &fakeAccessoryRepo{accessories: make(map[uuid.UUID]*model.Accessory)}
}

func (r *fakeAccessoryRepo) add(a *model.Accessory) *model.Accessory {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.accessories[a.ID] = a
	return a
}

func (r *fakeAccessoryRepo) Create(_ context.Context, a *model.Accessory) error {
	r.add(a)
	return nil
}

func (r *fakeAccessoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Accessory, error) {
	if a, ok := r.accessories[id]; ok {
		return a, nil
	}
	return nil, errNotFound
}

func (r *fakeAccessoryRepo) GetByName(_ context.Context, name string) (*model.Accessory, error) {
	for _, a := range r.accessories {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAccessoryRepo) List(_ context.Context, _ repository.AccessoryFilter) ([]model.Accessory, int64, error) {
	var out []model.Accessory
	for _, a := range r.accessories {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAccessoryRepo) Update(_ context.Context, a *model.Accessory) error {
	r.accessories[a.ID] = a
	return nil
}

func (r *fakeAccessoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.accessories, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeServiceSystemRepo struct {
	services map[uuid.UUID]*model.ServiceSystem
	links    []model.ServiceBranch
}

func newFakeServiceSystemRepo() *fakeServiceSystemRepo {
	return &fakeServiceSystemRepo{services: make(map[uuid.UUID]*model.ServiceSystem)}
}

func (r *fakeServiceSystemRepo) add(s *model.ServiceSystem) *model.ServiceSystem {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.services[s.ID] = s
	return s
}

func (r *fakeServiceSystemRepo) Create(_ context.Context, s *model.ServiceSystem) error {
	r.add(s)
	r.links = append(r.links, s.Branches...)
	return nil
}

func (r *fakeServiceSystemRepo) GetByID(_ context.Context, id uuid.UUID) (*model.ServiceSystem, error) {
	if s, ok := r.services[id]; ok {
		copied := *s
		copied.Branches = nil
		for _, link := range r.links {
			if link.ServiceSystemID == id {
				copied.Branches = append(copied.Branches, link)
			}
		}
		return &copied, nil
	}
	return nil, errNotFound
}

func (r *fakeServiceSystemRepo) List(_ context.Context) ([]model.ServiceSystem, error) {
	var out []model.ServiceSystem
	for id := range r.services {
		s, _ := r.GetByID(context.Background(), id)
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceSystemRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.ServiceSystem, error) {
	var out []model.ServiceSystem
	for _, link := range r.links {
		if link.BranchID != branchID {
			continue
		}
		if s, ok := r.services[link.ServiceSystemID]; ok {
			copied := *s
			copied.Branches = []model.ServiceBranch{link}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeServiceSystemRepo) Update(_ context.Context, s *model.ServiceSystem) error {
	r.services[s.ID] = s
	return nil
}

func (r *fakeServiceSystemRepo) DeleteBranchesByServiceID(_ context.Context, serviceID uuid.UUID) error {
	var kept []model.ServiceBranch
	for _, link := range r.links {
		if link.ServiceSystemID != serviceID {
			kept = append(kept, link)
		}
	}
	r.links = kept
	return nil
}

func (r *fakeServiceSystemRepo) CreateBranches(_ context.Context, branches []model.ServiceBranch) error {
	for i := range branches {
		if branches[i].ID == uuid.Nil {
			branches[i].ID = uuid.New()
		}
	}
	r.links = append(r.links, branches...)
	return nil
}

func (r *fakeServiceSystemRepo) GetBranchLink(_ context.Context, serviceID, branchID uuid.UUID) (*model.ServiceBranch, error) {
	for i := range r.links {
		if r.links[i].ServiceSystemID == serviceID && r.links[i].BranchID == branchID {
			return &r.links[i], nil
		}
	}
	return nil, errNotFound
}

func (r *fakeServiceSystemRepo) UpdateBranchLink(_ context.Context, link *model.ServiceBranch) error {
	for i := range r.links {
		if r.links[i].ID == link.ID {
			r.links[i] = *link
			return nil
		}
	}
	return errNotFound
}

type fakeVehicleModelRepo struct {
	models map[uuid.UUID]*model.VehicleModel
}

func newFakeVehicleModelRepo() *fakeVehicleModelRepo {
	return &fakeVehicleModelRepo{models: make(map[uuid.UUID]*model.VehicleModel)}
}

func (r *fakeVehicleModelRepo) add(m *model.VehicleModel) *model.VehicleModel {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.models[m.ID] = m
	return m
}

func (r *fakeVehicleModelRepo) Create(_ context.Context, m *model.VehicleModel) error {
	r.add(m)
	return nil
}

func (r *fakeVehicleModelRepo) GetByID(_ context.Context, id uuid.UUID) (*model.VehicleModel, error) {
	if m, ok := r.models[id]; ok {
		return m, nil
	}
	return nil, errNotFound
}

func (r *fakeVehicleModelRepo) List(_ context.Context) ([]model.VehicleModel, error) {
	var out []model.VehicleModel
	for _, m := range r.models {
		out = append(out, *m)
	}
	return out, nil
}

type fakeVehiclesSystemRepo struct {
	vehicles map[uuid.UUID]*model.VehiclesSystem
}

func newFakeVehiclesSystemRepo() *fakeVehiclesSystemRepo {
	return &fakeVehiclesSystemRepo{vehicles: make(map[uuid.UUID]*model.VehiclesSystem)}
}

func (r *fakeVehiclesSystemRepo) add(v *model.VehiclesSystem) *model.VehiclesSystem {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehicles[v.ID] = v
	return v
}

func (r *fakeVehiclesSystemRepo) Create(_ context.Context, v *model.VehiclesSystem) error {
	r.add(v)
	return nil
}

func (r *fakeVehiclesSystemRepo) GetByID(_ context.Context, id uuid.UUID) (*model.VehiclesSystem, error) {
	if v, ok := r.vehicles[id]; ok {
		// Return a copy, like a real repository: callers mutate the result
		// before Update, and the stored record must not alias it.
		cp := *v
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *fakeVehiclesSystemRepo) GetByNameAndModel(_ context.Context, name string, modelID uuid.UUID) (*model.VehiclesSystem, error) {
	for _, v := range r.vehicles {
		if v.Name == name && v.ModelID == modelID {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeVehiclesSystemRepo) List(_ context.Context, _ repository.VehiclesSystemFilter) ([]model.VehiclesSystem, int64, error) {
	var out []model.VehiclesSystem
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVehiclesSystemRepo) ListByModel(_ context.Context, modelID uuid.UUID) ([]model.VehiclesSystem, error) {
	var out []model.VehiclesSystem
	for _, v := range r.vehicles {
		if v.ModelID == modelID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVehiclesSystemRepo) Update(_ context.Context, v *model.VehiclesSystem) error {
	r.vehicles[v.ID] = v
	return nil
}

type fakeVehiclesCustomerRepo struct {
	vehicles map[uuid.UUID]*model.VehiclesCustomer
}

func newFakeVehiclesCustomerRepo() *fakeVehiclesCustomerRepo {
	return &fakeVehiclesCustomerRepo{vehicles: make(map[uuid.UUID]*model.VehiclesCustomer)}
}

func (r *fakeVehiclesCustomerRepo) Create(_ context.Context, v *model.VehiclesCustomer) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehiclesCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*model.VehiclesCustomer, error) {
	if v, ok := r.vehicles[id]; ok {
		return v, nil
	}
	return nil, errNotFound
}

func (r *fakeVehiclesCustomerRepo) GetByLicensePlate(_ context.Context, plate string) (*model.VehiclesCustomer, error) {
	for _, v := range r.vehicles {
		if v.LicensePlate == plate {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeVehiclesCustomerRepo) List(_ context.Context, _, _ int) ([]model.VehiclesCustomer, int64, error) {
	var out []model.VehiclesCustomer
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVehiclesCustomerRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.VehiclesCustomer, error) {
	var out []model.VehiclesCustomer
	for _, v := range r.vehicles {
		if v.CustomerID == customerID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVehiclesCustomerRepo) Update(_ context.Context, v *model.VehiclesCustomer) error {
	r.vehicles[v.ID] = v
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*model.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.appointments[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		return a, nil
	}
	return nil, errNotFound
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter repository.AppointmentFilter) ([]model.Appointment, int64, error) {
	var out []model.Appointment
	for _, a := range r.appointments {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.BranchID != nil && a.BranchID != *filter.BranchID {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAppointmentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range r.appointments {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, a *model.Appointment) error {
	r.appointments[a.ID] = a
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// fixedClock returns a now func pinned to a known instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
