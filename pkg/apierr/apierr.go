package apierr

import (
	"errors"
	"fmt"
)

// Fallback messages shown when the server did not provide one.
const (
	MsgConnection = "error de conexión con el servidor"
	MsgGeneric    = "ocurrió un error inesperado"
)

// APIError represents a failed call against the CitaSalud API. Status is the
// HTTP status code, or 0 when the request never produced a response
// (network failure, timeout, decode error).
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewServer builds an error from a server response. An empty message falls
// back to the generic one.
func NewServer(status int, message string) *APIError {
	if message == "" {
		message = MsgGeneric
	}
	return &APIError{Status: status, Message: message}
}

// NewConnection builds an error for a request that never reached the server
// or whose response could not be read.
func NewConnection(err error) *APIError {
	return &APIError{Message: MsgConnection, Err: err}
}

// Message extracts the user-facing message from any error, mirroring the
// err.response?.data?.message lookup the mobile screens performed.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return MsgGeneric
}

// Status returns the HTTP status carried by err, or 0 if none.
func Status(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	return Status(err) == 401
}
