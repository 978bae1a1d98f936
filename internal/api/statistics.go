package api

import (
	"context"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// StatisticsAPI wraps the /estadisticas endpoints. All aggregation is
// server-side; these calls only fetch the finished numbers.
type StatisticsAPI struct {
	client *transport.Client
}

func NewStatisticsAPI(client *transport.Client) *StatisticsAPI {
	return &StatisticsAPI{client: client}
}

func (a *StatisticsAPI) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	env, err := a.client.Get(ctx, "/estadisticas/dashboard", nil)
	if err != nil {
		return nil, err
	}
	var out model.DashboardStats
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *StatisticsAPI) AppointmentsByStatus(ctx context.Context) ([]model.StatusCount, error) {
	env, err := a.client.Get(ctx, "/estadisticas/citas-por-estado", nil)
	if err != nil {
		return nil, err
	}
	var out []model.StatusCount
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *StatisticsAPI) AppointmentsByDoctor(ctx context.Context) ([]model.DoctorCount, error) {
	env, err := a.client.Get(ctx, "/estadisticas/citas-por-medico", nil)
	if err != nil {
		return nil, err
	}
	var out []model.DoctorCount
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *StatisticsAPI) RecentActivity(ctx context.Context) ([]model.ActivityItem, error) {
	env, err := a.client.Get(ctx, "/estadisticas/actividad-reciente", nil)
	if err != nil {
		return nil, err
	}
	var out []model.ActivityItem
	if err := decodeList(env, &out); err != nil {
		return nil, err
	}
	return out, nil
}
