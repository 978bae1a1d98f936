// Package cli is the presentation surface of the client: one command per
// screen of the original app. Commands read from the containers, render
// tables, and call container operations. They never mutate shared state
// directly.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/config"
	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/store"
	"github.com/citasmovil/citasmovil/internal/theme"
	"github.com/citasmovil/citasmovil/internal/transport"
	"github.com/citasmovil/citasmovil/pkg/logger"
	"github.com/citasmovil/citasmovil/pkg/metrics"
)

// ErrAccessDenied is returned by role guards before any data is loaded.
var ErrAccessDenied = errors.New("acceso denegado")

// App bundles everything the commands need.
type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Store   *storage.Store
	Theme   *theme.Manager
	Session *store.Session

	Auth          *api.AuthAPI
	AppointmentsA *api.AppointmentAPI
	PatientsA     *api.PatientAPI
	DoctorsA      *api.DoctorAPI
	SpecialtiesA  *api.SpecialtyAPI
	UsersA        *api.UserAPI
	StatsA        *api.StatisticsAPI
	NotifA        *api.NotificationAPI
	ReportsA      *api.ReportAPI

	Appointments *store.Appointments
	Patients     *store.Patients
	Users        *store.Users
	Stats        *store.Statistics

	Metrics *metrics.Metrics
}

// NewApp wires the whole client: env file, config, logger, storage,
// transport, API modules, containers.
func NewApp() (*App, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	})

	st, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	m := metrics.NewMetrics("citasmovil")

	client := transport.New(transport.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
	}, st, log, m)

	app := &App{
		Config:  cfg,
		Log:     log,
		Store:   st,
		Theme:   theme.NewManager(st),
		Metrics: m,

		Auth:          api.NewAuthAPI(client),
		AppointmentsA: api.NewAppointmentAPI(client),
		PatientsA:     api.NewPatientAPI(client),
		DoctorsA:      api.NewDoctorAPI(client),
		SpecialtiesA:  api.NewSpecialtyAPI(client),
		UsersA:        api.NewUserAPI(client),
		StatsA:        api.NewStatisticsAPI(client),
		NotifA:        api.NewNotificationAPI(client),
		ReportsA:      api.NewReportAPI(client),
	}

	app.Session = store.NewSession(app.Auth, st, log)
	app.Appointments = store.NewAppointments(app.AppointmentsA)
	app.Patients = store.NewPatients(app.PatientsA)
	app.Users = store.NewUsers(app.UsersA)
	app.Stats = store.NewStatistics(app.StatsA)

	return app, nil
}

// RequireRole is the client-side screen guard: it checks the session user
// against the allowed roles before any data loading happens. This is a UX
// guard only; the server is the enforcement point.
func (a *App) RequireRole(roles ...string) error {
	user := a.Session.User()
	if user == nil {
		return fmt.Errorf("debes iniciar sesión primero")
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return ErrAccessDenied
}
