// Package store holds the in-memory state containers the screens read.
// Each container owns exactly one slice of state, is its sole mutator, and
// follows the same contract: an operation flips loading on, clears the
// previous error, calls one API module, then either records the failure or
// applies the result. Fetches replace the list wholesale; mutations patch
// it by id. Concurrent identical operations are not coalesced; the last
// response to arrive wins.
package store

import (
	"github.com/go-playground/validator/v10"

	"github.com/citasmovil/citasmovil/pkg/apierr"
)

// validate performs the client-side form checks (required fields, email
// shape, minimum lengths) the screens ran before submitting.
var validate = validator.New(validator.WithRequiredStructEnabled())

// TokenStore is the slice of persistent storage the session writes.
type TokenStore interface {
	Token() (string, bool)
	SetToken(token string) error
	ClearToken() error
}

// errMessage normalizes any failure into the string containers expose.
func errMessage(err error) string {
	return apierr.Message(err)
}
