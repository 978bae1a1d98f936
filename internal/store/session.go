package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/citasmovil/citasmovil/internal/api"
	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/logger"
)

// SessionState is the auth lifecycle the app moves through.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
)

// Session holds the current user and drives login/logout. The token lives
// in persistent storage; the user record lives only in memory and is
// rehydrated from a profile fetch at startup.
type Session struct {
	auth   *api.AuthAPI
	tokens TokenStore
	log    *logger.Logger

	mu    sync.RWMutex
	state SessionState
	user  *model.User
	err   string
}

func NewSession(auth *api.AuthAPI, tokens TokenStore, log *logger.Logger) *Session {
	return &Session{
		auth:   auth,
		tokens: tokens,
		log:    log,
		state:  StateAnonymous,
	}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the current user record, or nil when anonymous.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Err returns the last auth error message, empty when none.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Bootstrap restores the session from a persisted token. Any failure
// (network, 401, decode) clears the token and lands anonymous.
func (s *Session) Bootstrap(ctx context.Context) {
	if _, ok := s.tokens.Token(); !ok {
		s.setAnonymous("")
		return
	}

	s.setState(StateAuthenticating)
	user, err := s.auth.Profile(ctx)
	if err != nil {
		s.log.Warn("session bootstrap failed", "error", err.Error())
		if clearErr := s.tokens.ClearToken(); clearErr != nil {
			s.log.Error(clearErr, "failed to clear token")
		}
		s.setAnonymous("")
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.err = ""
	s.mu.Unlock()
}

// Login authenticates and stores the returned token and user. On failure
// the server's message is surfaced and the session stays anonymous.
func (s *Session) Login(ctx context.Context, email, password string) error {
	req := model.LoginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		s.setAnonymous("email o contraseña inválidos")
		return err
	}

	s.setState(StateAuthenticating)
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		s.setAnonymous(errMessage(err))
		return err
	}

	if err := s.tokens.SetToken(resp.AccessToken); err != nil {
		s.setAnonymous(errMessage(err))
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	user := resp.User
	s.user = &user
	s.err = ""
	s.mu.Unlock()

	s.log.Info("logged in", "user_id", resp.User.ID, "role", resp.User.Role)
	return nil
}

// Logout best-effort invalidates the server session, then unconditionally
// clears local token and user state.
func (s *Session) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn("server logout failed", "error", err.Error())
	}
	if err := s.tokens.ClearToken(); err != nil {
		s.log.Error(err, "failed to clear token")
	}
	s.setAnonymous("")
}

// Claims decodes the persisted token without verifying it, for display
// only. Returns false when no token is stored or it cannot be parsed.
func (s *Session) Claims() (model.TokenClaims, bool) {
	token, ok := s.tokens.Token()
	if !ok {
		return model.TokenClaims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return model.TokenClaims{}, false
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaims{}, false
	}

	var claims model.TokenClaims
	if sub, err := mapClaims.GetSubject(); err == nil && sub != "" {
		claims.UserID = parseID(sub)
	}
	if role, ok := mapClaims["rol"].(string); ok {
		claims.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, true
}

func parseID(s string) int64 {
	var id int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		id = id*10 + int64(r-'0')
	}
	return id
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.err = ""
	s.mu.Unlock()
}

func (s *Session) setAnonymous(errMsg string) {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.err = errMsg
	s.mu.Unlock()
}

// SessionTTL reports how long the current token remains valid, zero when
// unknown.
func (s *Session) SessionTTL(now time.Time) time.Duration {
	claims, ok := s.Claims()
	if !ok || claims.ExpiresAt.IsZero() {
		return 0
	}
	if claims.ExpiresAt.Before(now) {
		return 0
	}
	return claims.ExpiresAt.Sub(now)
}
