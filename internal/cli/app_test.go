package cli

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/apitest"
	"github.com/citasmovil/citasmovil/internal/config"
	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/store"
	"github.com/citasmovil/citasmovil/internal/theme"
	"github.com/citasmovil/citasmovil/internal/transport"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	log := logger.NewLogger(nil)
	client := transport.New(transport.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, st, log, nil)

	app := &App{
		Config: &config.Config{},
		Log:    log,
		Store:  st,
		Theme:  theme.NewManager(st),

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
	return app
}

func TestRequireRoleWithoutSession(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	app := newTestApp(t, server.URL)
	err := app.RequireRole("admin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied, "missing session is a login prompt, not access denied")
}

func TestRequireRoleMismatch(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 2, "rol": "medico", "nombre": "Luis"})
	})

	app := newTestApp(t, server.URL)
	require.NoError(t, app.Store.SetToken("tok"))
	app.Session.Bootstrap(context.Background())

	assert.NoError(t, app.RequireRole("medico", "admin"))
	assert.ErrorIs(t, app.RequireRole("superadmin"), ErrAccessDenied)
}

func TestRoleGatedScreenDoesNotLoadData(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 2, "rol": "medico", "nombre": "Luis"})
	})
	server.Router.GET("/usuarios", func(c *gin.Context) {
		apitest.OK(c, []gin.H{})
	})

	app := newTestApp(t, server.URL)
	require.NoError(t, app.Store.SetToken("tok"))

	root := NewRootCmd(app)
	root.SetArgs([]string{"usuarios", "list"})
	err := root.ExecuteContext(context.Background())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, server.Hits("GET /usuarios"), "denied screen must not call its data loader")
}

func TestGatedScreenLoadsForAllowedRole(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 1, "rol": "admin", "nombre": "Ana"})
	})
	server.Router.GET("/usuarios", func(c *gin.Context) {
		apitest.OK(c, []gin.H{{"id": 1, "nombre": "Ana", "rol": "admin", "activo": true}})
	})

	app := newTestApp(t, server.URL)
	require.NoError(t, app.Store.SetToken("tok"))

	root := NewRootCmd(app)
	root.SetArgs([]string{"usuarios", "list"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, 1, server.Hits("GET /usuarios"))
}
