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

func newUsers(t *testing.T, baseURL string) *store.Users {
	t.Helper()
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	client := transport.New(transport.Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}, st, logger.NewLogger(nil), nil)
	return store.NewUsers(api.NewUserAPI(client))
}

func TestUsersCreateAppends(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.POST("/usuarios", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 3, "nombre": "Eva", "email": "eva@clinica.com", "rol": "medico", "activo": true})
	})

	s := newUsers(t, server.URL)
	u, err := s.Create(context.Background(), model.CreateUserRequest{
		Name: "Eva", Email: "eva@clinica.com", Password: "secreta123", Role: model.RoleDoctor,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, u.ID)
	require.Len(t, s.Items(), 1)
}

func TestUsersCreateValidatesForm(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.Router.POST("/usuarios", func(c *gin.Context) { apitest.OK(c, nil) })

	s := newUsers(t, server.URL)
	_, err := s.Create(context.Background(), model.CreateUserRequest{
		Name: "Eva", Email: "eva@clinica.com", Password: "corta", Role: model.RoleDoctor,
	})
	require.Error(t, err, "short password must fail client-side")
	assert.Equal(t, 0, server.Hits("POST /usuarios"))
}

func TestUsersCreateFailureRethrows(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.POST("/usuarios", func(c *gin.Context) {
		apitest.Fail(c, http.StatusConflict, "el email ya está registrado")
	})

	s := newUsers(t, server.URL)
	_, err := s.Create(context.Background(), model.CreateUserRequest{
		Name: "Eva", Email: "eva@clinica.com", Password: "secreta123", Role: model.RoleDoctor,
	})
	require.Error(t, err)
	assert.Equal(t, "el email ya está registrado", s.Err())
	assert.Empty(t, s.Items())
}

func TestUsersToggleActive(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/usuarios", func(c *gin.Context) {
		apitest.OK(c, []gin.H{
			{"id": 1, "nombre": "Ana", "rol": "admin", "activo": true},
			{"id": 2, "nombre": "Luis", "rol": "medico", "activo": true},
		})
	})
	server.Router.PATCH("/usuarios/2/estado", func(c *gin.Context) {
		apitest.OK(c, gin.H{"id": 2, "nombre": "Luis", "rol": "medico", "activo": false})
	})

	s := newUsers(t, server.URL)
	s.Fetch(context.Background(), model.UserFilters{})
	require.Len(t, s.Items(), 2)

	u, err := s.ToggleActive(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, u.Active)

	items := s.Items()
	assert.True(t, items[0].Active, "untouched user keeps its state")
	assert.False(t, items[1].Active)
}

func TestUsersDeleteRemovesExactlyOne(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	server.Router.GET("/usuarios", func(c *gin.Context) {
		apitest.OK(c, []gin.H{
			{"id": 1, "nombre": "Ana"}, {"id": 2, "nombre": "Luis"}, {"id": 3, "nombre": "Eva"},
		})
	})
	server.Router.DELETE("/usuarios/2", func(c *gin.Context) {
		apitest.OK(c, nil)
	})

	s := newUsers(t, server.URL)
	s.Fetch(context.Background(), model.UserFilters{})
	require.Len(t, s.Items(), 3)

	require.NoError(t, s.Delete(context.Background(), 2))
	items := s.Items()
	require.Len(t, items, 2)
	for _, u := range items {
		assert.NotEqualValues(t, 2, u.ID)
	}
}
