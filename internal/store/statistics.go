package store

import (
	"context"
	"sync"
	"time"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
)

// Statistics is the container backing the dashboard screens.
type Statistics struct {
	api *api.StatisticsAPI

	mu        sync.RWMutex
	dashboard *model.DashboardStats
	byStatus  []model.StatusCount
	byDoctor  []model.DoctorCount
	activity  []model.ActivityItem
	loading   bool
	err       string
}

func NewStatistics(a *api.StatisticsAPI) *Statistics {
	return &Statistics{api: a}
}

func (s *Statistics) Dashboard() *model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

func (s *Statistics) ByStatus() []model.StatusCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StatusCount(nil), s.byStatus...)
}

func (s *Statistics) ByDoctor() []model.DoctorCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.DoctorCount(nil), s.byDoctor...)
}

func (s *Statistics) Activity() []model.ActivityItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ActivityItem(nil), s.activity...)
}

func (s *Statistics) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Statistics) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchDashboard loads the aggregate numbers.
func (s *Statistics) FetchDashboard(ctx context.Context) {
	s.begin()
	stats, err := s.api.Dashboard(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.dashboard = stats
	s.loading = false
	s.mu.Unlock()
}

// FetchCharts loads the by-status and by-doctor breakdowns.
func (s *Statistics) FetchCharts(ctx context.Context) {
	s.begin()
	byStatus, err := s.api.AppointmentsByStatus(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	byDoctor, err := s.api.AppointmentsByDoctor(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	s.byStatus = byStatus
	s.byDoctor = byDoctor
	s.loading = false
	s.mu.Unlock()
}

// FetchActivity loads the recent-activity feed, degrading to a canned
// placeholder list when the fetch fails, the same way the dashboard did.
func (s *Statistics) FetchActivity(ctx context.Context) {
	s.begin()
	items, err := s.api.RecentActivity(ctx)
	if err != nil {
		s.mu.Lock()
		s.activity = placeholderActivity(time.Now())
		s.loading = false
		s.err = errMessage(err)
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	s.activity = items
	s.loading = false
	s.mu.Unlock()
}

func placeholderActivity(now time.Time) []model.ActivityItem {
	return []model.ActivityItem{
		{Type: "sistema", Description: "Sin actividad reciente disponible", Timestamp: now},
	}
}

func (s *Statistics) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Statistics) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = errMessage(err)
	s.mu.Unlock()
}
