package api

import (
	"context"
	"fmt"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// SpecialtyAPI wraps the /especialidades endpoints.
type SpecialtyAPI struct {
	client *transport.Client
}

func NewSpecialtyAPI(client *transport.Client) *SpecialtyAPI {
	return &SpecialtyAPI{client: client}
}

func (a *SpecialtyAPI) List(ctx context.Context) ([]model.Specialty, error) {
	env, err := a.client.Get(ctx, "/especialidades", nil)
	if err != nil {
		return nil, err
	}
	var out []model.Specialty
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SpecialtyAPI) Get(ctx context.Context, id int64) (*model.Specialty, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/especialidades/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.Specialty
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SpecialtyAPI) Create(ctx context.Context, req model.CreateSpecialtyRequest) (*model.Specialty, error) {
	env, err := a.client.Post(ctx, "/especialidades", req)
	if err != nil {
		return nil, err
	}
	var out model.Specialty
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SpecialtyAPI) Update(ctx context.Context, id int64, req model.UpdateSpecialtyRequest) (*model.Specialty, error) {
	env, err := a.client.Put(ctx, fmt.Sprintf("/especialidades/%d", id), req)
	if err != nil {
		return nil, err
	}
	var out model.Specialty
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SpecialtyAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, fmt.Sprintf("/especialidades/%d", id))
	return err
}
