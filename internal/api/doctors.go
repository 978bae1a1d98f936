package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// DoctorAPI wraps the /medicos endpoints.
type DoctorAPI struct {
	client *transport.Client
}

func NewDoctorAPI(client *transport.Client) *DoctorAPI {
	return &DoctorAPI{client: client}
}

// List fetches doctors, optionally filtered by specialty.
func (a *DoctorAPI) List(ctx context.Context, specialtyID int64) ([]model.Doctor, error) {
	params := url.Values{}
	if specialtyID != 0 {
		params.Set("especialidad_id", strconv.FormatInt(specialtyID, 10))
	}

	env, err := a.client.Get(ctx, "/medicos", params)
	if err != nil {
		return nil, err
	}
	var out []model.Doctor
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DoctorAPI) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/medicos/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.Doctor
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DoctorAPI) Create(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error) {
	env, err := a.client.Post(ctx, "/medicos", req)
	if err != nil {
		return nil, err
	}
	var out model.Doctor
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DoctorAPI) Update(ctx context.Context, id int64, req model.UpdateDoctorRequest) (*model.Doctor, error) {
	env, err := a.client.Put(ctx, fmt.Sprintf("/medicos/%d", id), req)
	if err != nil {
		return nil, err
	}
	var out model.Doctor
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DoctorAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, fmt.Sprintf("/medicos/%d", id))
	return err
}

// Schedule fetches the doctor's weekly working hours.
func (a *DoctorAPI) Schedule(ctx context.Context, id int64) ([]model.WorkShift, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/medicos/%d/horario", id), nil)
	if err != nil {
		return nil, err
	}
	var out []model.WorkShift
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Availability fetches bookable slots for the doctor on a given day.
func (a *DoctorAPI) Availability(ctx context.Context, id int64, date time.Time) ([]model.TimeSlot, error) {
	params := url.Values{}
	params.Set("fecha", date.Format(time.DateOnly))

	env, err := a.client.Get(ctx, fmt.Sprintf("/medicos/%d/disponibilidad", id), params)
	if err != nil {
		return nil, err
	}
	var out []model.TimeSlot
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}
