package store

import (
	"context"
	"sync"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
)

// Appointments is the container backing every appointment screen.
type Appointments struct {
	api *api.AppointmentAPI

	mu      sync.RWMutex
	items   []model.Appointment
	loading bool
	err     string
}

func NewAppointments(a *api.AppointmentAPI) *Appointments {
	return &Appointments{api: a}
}

// Items returns a copy of the current list.
func (s *Appointments) Items() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Appointment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Appointments) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Appointments) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Fetch replaces the list with the server's, order preserved. Failures are
// recorded on the container without being re-raised; the screens render
// the error slot instead.
func (s *Appointments) Fetch(ctx context.Context, filters model.AppointmentFilters) {
	s.begin()
	items, err := s.api.List(ctx, filters)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

// Create books an appointment and appends the server's record.
func (s *Appointments) Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	s.begin()
	apt, err := s.api.Create(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *apt)
	s.loading = false
	s.mu.Unlock()
	return apt, nil
}

// Update edits an appointment and replaces it in the list by id.
func (s *Appointments) Update(ctx context.Context, id int64, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	s.begin()
	apt, err := s.api.Update(ctx, id, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.replace(*apt)
	return apt, nil
}

// Cancel requests cancellation and removes the appointment from the list.
func (s *Appointments) Cancel(ctx context.Context, id int64, reason string) error {
	s.begin()
	if err := s.api.Cancel(ctx, id, reason); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Approve, Reject, Confirm and Complete each hit their own endpoint and
// store whatever status the server returned.

func (s *Appointments) Approve(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.transition(func(ctx context.Context) (*model.Appointment, error) {
		return s.api.Approve(ctx, id)
	}, ctx)
}

func (s *Appointments) Reject(ctx context.Context, id int64, reason string) (*model.Appointment, error) {
	return s.transition(func(ctx context.Context) (*model.Appointment, error) {
		return s.api.Reject(ctx, id, reason)
	}, ctx)
}

func (s *Appointments) Confirm(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.transition(func(ctx context.Context) (*model.Appointment, error) {
		return s.api.Confirm(ctx, id)
	}, ctx)
}

func (s *Appointments) Complete(ctx context.Context, id int64, req model.CompleteAppointmentRequest) (*model.Appointment, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return s.transition(func(ctx context.Context) (*model.Appointment, error) {
		return s.api.Complete(ctx, id, req)
	}, ctx)
}

func (s *Appointments) transition(call func(context.Context) (*model.Appointment, error), ctx context.Context) (*model.Appointment, error) {
	s.begin()
	apt, err := call(ctx)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.replace(*apt)
	return apt, nil
}

func (s *Appointments) replace(apt model.Appointment) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == apt.ID {
			s.items[i] = apt
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
}

func (s *Appointments) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Appointments) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errMessage(err)
	s.mu.Unlock()
}
