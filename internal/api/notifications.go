package api

import (
	"context"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// NotificationAPI wraps the /notificaciones endpoints. Preferences are
// read and written as a whole object.
type NotificationAPI struct {
	client *transport.Client
}

func NewNotificationAPI(client *transport.Client) *NotificationAPI {
	return &NotificationAPI{client: client}
}

func (a *NotificationAPI) GetPreferences(ctx context.Context) (*model.NotificationPreferences, error) {
	env, err := a.client.Get(ctx, "/notificaciones/preferencias", nil)
	if err != nil {
		return nil, err
	}
	out := model.DefaultNotificationPreferences()
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *NotificationAPI) UpdatePreferences(ctx context.Context, prefs model.NotificationPreferences) error {
	_, err := a.client.Put(ctx, "/notificaciones/preferencias", prefs)
	return err
}
