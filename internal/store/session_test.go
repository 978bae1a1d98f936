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
	"github.com/citasmovil/citasmovil/internal/storage"
	"github.com/citasmovil/citasmovil/internal/store"
	"github.com/citasmovil/citasmovil/internal/transport"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

func newSession(t *testing.T, baseURL string) (*store.Session, *storage.Store) {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	client := transport.New(transport.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, st, logger.NewLogger(nil), nil)
	return store.NewSession(api.NewAuthAPI(client), st, logger.NewLogger(nil)), st
}

func TestLoginSuccess(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.POST("/auth/login", func(c *gin.Context) {
		var body map[string]string
		require.NoError(t, c.BindJSON(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret", body["password"])
		apitest.OK(c, gin.H{
			"access_token": "tok1",
			"user":         gin.H{"id": 1, "rol": "paciente", "nombre": "Ana", "email": "a@b.com"},
		})
	})

	session, st := newSession(t, server.URL)
	require.NoError(t, session.Login(context.Background(), "a@b.com", "secret"))

	token, ok := st.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok1", token)
	assert.Equal(t, store.StateAuthenticated, session.State())
	require.NotNil(t, session.User())
	assert.EqualValues(t, 1, session.User().ID)
	assert.Equal(t, "paciente", session.User().Role)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.POST("/auth/login", func(c *gin.Context) {
		apitest.Fail(c, http.StatusUnauthorized, "credenciales incorrectas")
	})

	session, st := newSession(t, server.URL)
	err := session.Login(context.Background(), "a@b.com", "wrongpass")
	require.Error(t, err)

	assert.Equal(t, store.StateAnonymous, session.State())
	assert.Nil(t, session.User())
	assert.Equal(t, "credenciales incorrectas", session.Err())
	_, ok := st.Token()
	assert.False(t, ok)
}

func TestLoginValidatesInputBeforeSubmitting(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.POST("/auth/login", func(c *gin.Context) { apitest.OK(c, nil) })

	session, _ := newSession(t, server.URL)
	err := session.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.Equal(t, 0, server.Hits("POST /auth/login"), "invalid form must not reach the server")
}

func TestBootstrapWithoutToken(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) { apitest.OK(c, gin.H{"id": 1}) })

	session, _ := newSession(t, server.URL)
	session.Bootstrap(context.Background())

	assert.Equal(t, store.StateAnonymous, session.State())
	assert.Equal(t, 0, server.Hits("GET /auth/perfil"))
}

func TestBootstrapRestoresSession(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 7, "rol": "medico", "nombre": "Luis"})
	})

	session, st := newSession(t, server.URL)
	require.NoError(t, st.SetToken("tok-saved"))

	session.Bootstrap(context.Background())
	assert.Equal(t, store.StateAuthenticated, session.State())
	require.NotNil(t, session.User())
	assert.EqualValues(t, 7, session.User().ID)
}

func TestBootstrapFailureClearsToken(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.GET("/auth/perfil", func(c *gin.Context) {
		apitest.Fail(c, http.StatusUnauthorized, "token expirado")
	})

	session, st := newSession(t, server.URL)
	require.NoError(t, st.SetToken("expired"))

	session.Bootstrap(context.Background())
	assert.Equal(t, store.StateAnonymous, session.State())
	_, ok := st.Token()
	assert.False(t, ok)
}

func TestLogoutAlwaysClearsLocalState(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.POST("/auth/login", func(c *gin.Context) {
		apitest.OK(c, gin.H{"access_token": "tok1", "user": gin.H{"id": 1, "rol": "paciente"}})
	})
	// Server-side logout fails; the client still clears everything.
	server.Router.POST("/auth/logout", func(c *gin.Context) {
		apitest.Fail(c, http.StatusInternalServerError, "no disponible")
	})

	session, st := newSession(t, server.URL)
	require.NoError(t, session.Login(context.Background(), "a@b.com", "secret"))

	session.Logout(context.Background())
	assert.Equal(t, store.StateAnonymous, session.State())
	assert.Nil(t, session.User())
	_, ok := st.Token()
	assert.False(t, ok)
}
