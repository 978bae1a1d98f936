package store

import (
	"context"
	"sync"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
)

// Users is the container backing the admin user-management screens.
type Users struct {
	api *api.UserAPI

	mu      sync.RWMutex
	items   []model.User
	loading bool
	err     string
}

func NewUsers(a *api.UserAPI) *Users {
	return &Users{api: a}
}

func (s *Users) Items() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Users) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Users) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Users) Fetch(ctx context.Context, filters model.UserFilters) {
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

func (s *Users) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	s.begin()
	u, err := s.api.Create(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *u)
	s.loading = false
	s.mu.Unlock()
	return u, nil
}

func (s *Users) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	s.begin()
	u, err := s.api.Update(ctx, id, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.replace(*u)
	return u, nil
}

// ToggleActive flips the active flag and stores the server's record.
func (s *Users) ToggleActive(ctx context.Context, id int64) (*model.User, error) {
	s.begin()
	u, err := s.api.ToggleActive(ctx, id)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	s.replace(*u)
	return u, nil
}

func (s *Users) Delete(ctx context.Context, id int64) error {
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

func (s *Users) replace(u model.User) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == u.ID {
			s.items[i] = u
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
}

func (s *Users) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Users) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errMessage(err)
	s.mu.Unlock()
}
