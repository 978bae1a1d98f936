package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// UserAPI wraps the /usuarios endpoints. Admin-only server-side; the
// client additionally role-gates the screens that reach these.
type UserAPI struct {
	client *transport.Client
}

func NewUserAPI(client *transport.Client) *UserAPI {
	return &UserAPI{client: client}
}

func (a *UserAPI) List(ctx context.Context, filters model.UserFilters) ([]model.User, error) {
	params := url.Values{}
	if filters.Role != "" {
		params.Set("rol", filters.Role)
	}
	if filters.Active != nil {
		params.Set("activo", strconv.FormatBool(*filters.Active))
	}
	if filters.Search != "" {
		params.Set("buscar", filters.Search)
	}

	env, err := a.client.Get(ctx, "/usuarios", params)
	if err != nil {
		return nil, err
	}
	var out []model.User
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *UserAPI) Get(ctx context.Context, id int64) (*model.User, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/usuarios/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	env, err := a.client.Post(ctx, "/usuarios", req)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	env, err := a.client.Put(ctx, fmt.Sprintf("/usuarios/%d", id), req)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, fmt.Sprintf("/usuarios/%d", id))
	return err
}

// ToggleActive flips the user's active flag.
func (a *UserAPI) ToggleActive(ctx context.Context, id int64) (*model.User, error) {
	env, err := a.client.Patch(ctx, fmt.Sprintf("/usuarios/%d/estado", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
