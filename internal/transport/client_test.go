package transport_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmovil/citasmovil/internal/apitest"
	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/transport"
	"github.com/citasmovil/citasmovil/pkg/apierr"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

func newClient(t *testing.T, baseURL string) (*transport.Client, *storage.Store) {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	client := transport.New(transport.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, st, logger.NewLogger(nil), nil)
	return client, st
}

func TestTokenInjection(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	var gotAuth string
	server.Router.GET("/citas", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		apitest.OK(c, []int{})
	})

	client, st := newClient(t, server.URL)

	// Without a stored token the header must be absent.
	_, err := client.Get(context.Background(), "/citas", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	// With a stored token every request carries it.
	require.NoError(t, st.SetToken("tok-123"))
	_, err = client.Get(context.Background(), "/citas", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/pacientes", func(c *gin.Context) {
		apitest.Fail(c, http.StatusUnauthorized, "token inválido")
	})

	client, st := newClient(t, server.URL)
	require.NoError(t, st.SetToken("stale"))

	_, err := client.Get(context.Background(), "/pacientes", nil)
	require.Error(t, err)
	assert.True(t, apierr.IsUnauthorized(err))

	_, ok := st.Token()
	assert.False(t, ok, "401 must clear the stored token")
}

func TestServerMessageSurfaced(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.POST("/citas", func(c *gin.Context) {
		apitest.Fail(c, http.StatusUnprocessableEntity, "el médico no está disponible")
	})

	client, _ := newClient(t, server.URL)
	_, err := client.Post(context.Background(), "/citas", map[string]int{"medico_id": 2})
	require.Error(t, err)
	assert.Equal(t, "el médico no está disponible", apierr.Message(err))
	assert.Equal(t, http.StatusUnprocessableEntity, apierr.Status(err))
}

func TestSuccessFalseIsError(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	// Some endpoints answer 200 with success:false; that still counts as a
	// server-reported failure.
	server.Router.GET("/estadisticas/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, apitest.Envelope{Success: false, Message: "sin datos"})
	})

	client, _ := newClient(t, server.URL)
	_, err := client.Get(context.Background(), "/estadisticas/dashboard", nil)
	require.Error(t, err)
	assert.Equal(t, "sin datos", apierr.Message(err))
}

func TestNetworkErrorIsConnectionError(t *testing.T) {
	client, _ := newClient(t, "http://127.0.0.1:1")
	_, err := client.Get(context.Background(), "/citas", nil)
	require.Error(t, err)
	assert.Equal(t, apierr.MsgConnection, apierr.Message(err))
	assert.Equal(t, 0, apierr.Status(err))
}

func TestGetRaw(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	payload := []byte("%PDF-1.4 fake")
	server.Router.GET("/reportes/citas/exportar", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/pdf", payload)
	})

	client, _ := newClient(t, server.URL)
	data, err := client.GetRaw(context.Background(), "/reportes/citas/exportar", nil)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}
