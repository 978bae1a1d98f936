package store

import (
	"context"
	"sync"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
)

// Patients is the container backing the patient screens.
type Patients struct {
	api *api.PatientAPI

	mu      sync.RWMutex
	items   []model.Patient
	loading bool
	err     string
}

func NewPatients(a *api.PatientAPI) *Patients {
	return &Patients{api: a}
}

func (s *Patients) Items() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Patient, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Patients) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Patients) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Patients) Fetch(ctx context.Context, params model.ListParams) {
	s.begin()
	items, err := s.api.List(ctx, params)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

func (s *Patients) Create(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	s.begin()
	p, err := s.api.Create(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *p)
	s.loading = false
	s.mu.Unlock()
	return p, nil
}

func (s *Patients) Update(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error) {
	s.begin()
	p, err := s.api.Update(ctx, id, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return p, nil
}

func (s *Patients) Delete(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.Delete(ctx, id); err != nil {
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

func (s *Patients) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Patients) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errMessage(err)
	s.mu.Unlock()
}
