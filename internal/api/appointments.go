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

// AppointmentAPI wraps the /citas endpoints. Every status transition has
// its own endpoint; the server decides whether a transition is legal.
type AppointmentAPI struct {
	client *transport.Client
}

func NewAppointmentAPI(client *transport.Client) *AppointmentAPI {
	return &AppointmentAPI{client: client}
}

// List fetches appointments matching the filters.
func (a *AppointmentAPI) List(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error) {
	params := url.Values{}
	if filters.Status != "" {
		params.Set("estado", string(filters.Status))
	}
	if filters.DoctorID != 0 {
		params.Set("medico_id", strconv.FormatInt(filters.DoctorID, 10))
	}
	if filters.PatientID != 0 {
		params.Set("paciente_id", strconv.FormatInt(filters.PatientID, 10))
	}
	if !filters.StartDate.IsZero() {
		params.Set("desde", filters.StartDate.Format(time.DateOnly))
	}
	if !filters.EndDate.IsZero() {
		params.Set("hasta", filters.EndDate.Format(time.DateOnly))
	}

	env, err := a.client.Get(ctx, "/citas", params)
	if err != nil {
		return nil, err
	}
	var out []model.Appointment
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single appointment.
func (a *AppointmentAPI) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	env, err := a.client.Get(ctx, fmt.Sprintf("/citas/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var out model.Appointment
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create books a new appointment.
func (a *AppointmentAPI) Create(ctx context.Context, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	env, err := a.client.Post(ctx, "/citas", req)
	if err != nil {
		return nil, err
	}
	var out model.Appointment
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits appointment fields.
func (a *AppointmentAPI) Update(ctx context.Context, id int64, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	env, err := a.client.Put(ctx, fmt.Sprintf("/citas/%d", id), req)
	if err != nil {
		return nil, err
	}
	var out model.Appointment
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel requests the cancelled status. reason may be empty.
func (a *AppointmentAPI) Cancel(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"motivo": reason}
	_, err := a.client.Patch(ctx, fmt.Sprintf("/citas/%d/cancelar", id), body)
	return err
}

// Approve requests the scheduled status for a pending appointment.
func (a *AppointmentAPI) Approve(ctx context.Context, id int64) (*model.Appointment, error) {
	return a.transition(ctx, id, "aprobar", nil)
}

// Reject declines a pending appointment.
func (a *AppointmentAPI) Reject(ctx context.Context, id int64, reason string) (*model.Appointment, error) {
	return a.transition(ctx, id, "rechazar", map[string]string{"motivo": reason})
}

// Confirm requests the confirmed status.
func (a *AppointmentAPI) Confirm(ctx context.Context, id int64) (*model.Appointment, error) {
	return a.transition(ctx, id, "confirmar", nil)
}

// Complete closes the appointment with the doctor's clinical notes.
func (a *AppointmentAPI) Complete(ctx context.Context, id int64, req model.CompleteAppointmentRequest) (*model.Appointment, error) {
	return a.transition(ctx, id, "completar", req)
}

func (a *AppointmentAPI) transition(ctx context.Context, id int64, action string, body interface{}) (*model.Appointment, error) {
	env, err := a.client.Patch(ctx, fmt.Sprintf("/citas/%d/%s", id, action), body)
	if err != nil {
		return nil, err
	}
	var out model.Appointment
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
