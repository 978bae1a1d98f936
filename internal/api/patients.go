package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// PatientAPI wraps the /pacientes endpoints.
type PatientAPI struct {
	client *transport.Client
}

func NewPatientAPI(client *transport.Client) *PatientAPI {
	return &PatientAPI{client: client}
}

func (a *PatientAPI) List(ctx context.Context, p model.ListParams) ([]model.Patient, error) {
	params := url.Values{}
	if p.Page > 0 {
		params.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		params.Set("buscar", p.Search)
	}

	env, err := a.client.Get(ctx, "/pacientes", params)
	if err != nil {
		return nil, err
	}
	var out []model.Patient
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *PatientAPI) Get(ctx context.Context, id int64) (*model.Patient, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/pacientes/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.Patient
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PatientAPI) Create(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	env, err := a.client.Post(ctx, "/pacientes", req)
	if err != nil {
		return nil, err
	}
	var out model.Patient
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PatientAPI) Update(ctx context.Context, id int64, req model.UpdatePatientRequest) (*model.Patient, error) {
	env, err := a.client.Put(ctx, fmt.Sprintf("/pacientes/%d", id), req)
	if err != nil {
		return nil, err
	}
	var out model.Patient
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PatientAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, fmt.Sprintf("/pacientes/%d", id))
	return err
}

// History fetches the patient's clinical record entries.
func (a *PatientAPI) History(ctx context.Context, id int64) ([]model.MedicalRecord, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/pacientes/%d/historial", id), nil)
	if err != nil {
		return nil, err
	}
	var out []model.MedicalRecord
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}
