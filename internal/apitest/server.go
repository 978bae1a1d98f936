// Package apitest provides a fake CitaSalud server for client tests. Routes
// are registered per test; responses use the production envelope shape.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

// Envelope mirrors the server's response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Server is a fake CitaSalud API backed by httptest.
type Server struct {
	*httptest.Server
	Router *gin.Engine

	mu   sync.Mutex
	hits map[string]int
}

// New starts a fake server. Register routes on Router before issuing
// requests.
func New() *Server {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	s := &Server{Router: router, hits: make(map[string]int)}
	router.Use(func(c *gin.Context) {
		s.mu.Lock()
		s.hits[c.Request.Method+" "+c.Request.URL.Path]++
		s.mu.Unlock()
		c.Next()
	})
	s.Server = httptest.NewServer(router)
	return s
}

// Hits reports how many times a route was called, keyed "METHOD /path".
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// OK writes a success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}
