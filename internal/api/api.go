// Package api holds one module per CitaSalud resource. Each exported method
// performs exactly one HTTP call through the transport adapter and returns
// the decoded payload. No caching, no business logic; callers own state.
package api

import (
	"encoding/json"

	"github.com/citasmovil/citasmovil/internal/model"
)

// decode unmarshals an envelope's data field into out. An empty data field
// leaves out untouched; some endpoints (logout, delete) return no data.
func decode(env *model.Envelope, out interface{}) error {
	if env == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// decodeList unwraps a list payload that may arrive bare or paginated.
func decodeList(env *model.Envelope, out interface{}) error {
	if env == nil {
		return nil
	}
	return model.UnwrapList(env.Data, out)
}
