package api

import (
	"context"
	"net/url"
	"time"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// ReportAPI wraps the /reportes endpoints.
type ReportAPI struct {
	client *transport.Client
}

func NewReportAPI(client *transport.Client) *ReportAPI {
	return &ReportAPI{client: client}
}

func rangeParams(from, to time.Time) url.Values {
	params := url.Values{}
	if !from.IsZero() {
		params.Set("desde", from.Format(time.DateOnly))
	}
	if !to.IsZero() {
		params.Set("hasta", to.Format(time.DateOnly))
	}
	return params
}

func (a *ReportAPI) Appointments(ctx context.Context, from, to time.Time) (*model.AppointmentsReport, error) {
	env, err := a.client.Get(ctx, "/reportes/citas", rangeParams(from, to))
	if err != nil {
		return nil, err
	}
	var out model.AppointmentsReport
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ReportAPI) Doctors(ctx context.Context, from, to time.Time) (*model.DoctorsReport, error) {
	env, err := a.client.Get(ctx, "/reportes/medicos", rangeParams(from, to))
	if err != nil {
		return nil, err
	}
	var out model.DoctorsReport
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Export downloads a report file. kind is "citas" or "medicos"; format is
// one of the model.ExportFormat constants.
func (a *ReportAPI) Export(ctx context.Context, kind, format string, from, to time.Time) ([]byte, error) {
	params := rangeParams(from, to)
	params.Set("formato", format)
	return a.client.GetRaw(ctx, "/reportes/"+kind+"/exportar", params)
}
