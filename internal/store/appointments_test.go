package store_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/apitest"
	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/store"
	"github.com/citasmovil/citasmovil/internal/transport"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

func newAppointments(t *testing.T, baseURL string) *store.Appointments {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	client := transport.New(transport.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, st, logger.NewLogger(nil), nil)
	return store.NewAppointments(api.NewAppointmentAPI(client))
}

func TestFetchReplacesList(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	first := []gin.H{{"id": 1, "estado": "programada"}}
	second := []gin.H{{"id": 2, "estado": "confirmada"}, {"id": 3, "estado": "pendiente"}}
	calls := 0
	server.Router.GET("/citas", func(c *gin.Context) {
		calls++
		if calls == 1 {
			apitest.OK(c, first)
			return
		}
		apitest.OK(c, second)
	})

	s := newAppointments(t, server.URL)

	s.Fetch(context.Background(), model.AppointmentFilters{})
	require.Empty(t, s.Err())
	require.Len(t, s.Items(), 1)

	// A second fetch replaces the list wholesale, order preserved.
	s.Fetch(context.Background(), model.AppointmentFilters{})
	items := s.Items()
	require.Len(t, items, 2)
	assert.EqualValues(t, 2, items[0].ID)
	assert.EqualValues(t, 3, items[1].ID)
	assert.False(t, s.Loading())
}

func TestFetchUnwrapsPaginatedPayload(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/citas", func(c *gin.Context) {
		apitest.OK(c, gin.H{
			"data":  []gin.H{{"id": 9, "estado": "programada"}},
			"total": 1,
		})
	})

	s := newAppointments(t, server.URL)
	s.Fetch(context.Background(), model.AppointmentFilters{})
	require.Empty(t, s.Err())
	require.Len(t, s.Items(), 1)
	assert.EqualValues(t, 9, s.Items()[0].ID)
}

func TestUpdateReplacesExactlyOne(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/citas", func(c *gin.Context) {
		apitest.OK(c, []gin.H{
			{"id": 1, "estado": "programada", "motivo": "control"},
			{"id": 2, "estado": "programada", "motivo": "dolor"},
		})
	})
	server.Router.PUT("/citas/2", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 2, "estado": "programada", "motivo": "dolor agudo"})
	})

	s := newAppointments(t, server.URL)
	s.Fetch(context.Background(), model.AppointmentFilters{})
	require.Len(t, s.Items(), 2)
	before := s.Items()[0]

	reason := "dolor agudo"
	updated, err := s.Update(context.Background(), 2, model.UpdateAppointmentRequest{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, "dolor agudo", updated.Reason)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, before, items[0], "other items must be unchanged")

	matches := 0
	for _, it := range items {
		if it.ID == 2 {
			matches++
			assert.Equal(t, "dolor agudo", it.Reason)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCancelRemovesExactlyOne(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/citas", func(c *gin.Context) {
		apitest.OK(c, []gin.H{{"id": 5, "estado": "programada"}})
	})
	server.Router.PATCH("/citas/5/cancelar", func(c *gin.Context) {
		apitest.OK(c, nil)
	})

	s := newAppointments(t, server.URL)
	s.Fetch(context.Background(), model.AppointmentFilters{})
	require.Len(t, s.Items(), 1)

	require.NoError(t, s.Cancel(context.Background(), 5, ""))
	assert.Empty(t, s.Items())
}

func TestCreateAppendsServerRecord(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	when := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	server.Router.POST("/citas", func(c *gin.Context) {
		apitest.OK(c, gin.H{
			"id": 11, "estado": "pendiente", "motivo": "control",
			"fecha_hora": when.Format(time.RFC3339),
		})
	})

	s := newAppointments(t, server.URL)
	apt, err := s.Create(context.Background(), model.CreateAppointmentRequest{
		PatientID: 1, DoctorID: 2, DateTime: when, Reason: "control",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 11, apt.ID)
	assert.Equal(t, model.AppointmentStatusPending, apt.Status)
	require.Len(t, s.Items(), 1)
}

func TestFailedMutationSetsErrorAndRethrows(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.PATCH("/citas/5/cancelar", func(c *gin.Context) {
		apitest.Fail(c, http.StatusConflict, "la cita ya fue atendida")
	})

	s := newAppointments(t, server.URL)
	err := s.Cancel(context.Background(), 5, "")
	require.Error(t, err, "mutation failures must propagate to the caller")
	assert.Equal(t, "la cita ya fue atendida", s.Err())
}

func TestFailedFetchRecordsErrorOnly(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/citas", func(c *gin.Context) {
		apitest.Fail(c, http.StatusInternalServerError, "error interno")
	})

	s := newAppointments(t, server.URL)
	s.Fetch(context.Background(), model.AppointmentFilters{})
	assert.Equal(t, "error interno", s.Err())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Items())
}

func TestApproveStoresServerStatus(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/citas", func(c *gin.Context) {
		apitest.OK(c, []gin.H{{"id": 4, "estado": "pendiente"}})
	})
	server.Router.PATCH("/citas/4/aprobar", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 4, "estado": "programada"})
	})

	s := newAppointments(t, server.URL)
	s.Fetch(context.Background(), model.AppointmentFilters{})

	apt, err := s.Approve(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Equal(t, model.AppointmentStatusScheduled, s.Items()[0].Status)
}
