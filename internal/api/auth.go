package api

import (
	"context"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/internal/transport"
)

// AuthAPI wraps the /auth endpoints.
type AuthAPI struct {
	client *transport.Client
}

func NewAuthAPI(client *transport.Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// Login exchanges credentials for a bearer token and the user record.
func (a *AuthAPI) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	env, err := a.client.Post(ctx, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	var out model.LoginResponse
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the server-side session for the current token.
func (a *AuthAPI) Logout(ctx context.Context) error {
	_, err := a.client.Post(ctx, "/auth/logout", nil)
	return err
}

// Profile fetches the user record for the current token.
func (a *AuthAPI) Profile(ctx context.Context) (*model.User, error) {
	env, err := a.client.Get(ctx, "/auth/perfil", nil)
	if err != nil {
		return nil, err
	}
	var out model.User
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new patient account.
func (a *AuthAPI) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	env, err := a.client.Post(ctx, "/auth/registro", req)
	if err != nil {
		return nil, err
	}
	var out model.LoginResponse
	if err := decode(env, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword updates the current user's password.
func (a *AuthAPI) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	_, err := a.client.Put(ctx, "/auth/cambiar-password", req)
	return err
}
