package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/giro-certo-ops/internal/gateway"
	"github.com/example/giro-certo-ops/internal/models"
	"github.com/example/giro-certo-ops/internal/observability"
)

// ErrInvalidCredentials is returned by Login when the platform rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession is returned by Resume when no resumable session exists; the
// caller treats the request as anonymous.
var ErrNoSession = errors.New("no session")

// Session is one operator's authenticated context. API is a gateway client
// bound to this session's token, so every call the session makes carries
// its own bearer token and reacts to its own 401s.
type Session struct {
	ID     string
	User   models.User
	API    *gateway.Client
	holder *tokenHolder
}

func (s *Session) Authenticated() bool { return s.holder.Token() != "" }

// Role flags are pure functions of the current role, recomputed on read.
func (s *Session) Role() models.Role { return s.User.Role }
func (s *Session) IsAdmin() bool     { return s.User.Role == models.RoleAdmin }
func (s *Session) IsModerator() bool {
	return s.User.Role == models.RoleModerator || s.User.Role == models.RoleAdmin
}

// Manager owns session lifecycle against the platform auth endpoints.
// It is dependency-injected everywhere it is needed; there is no package
// level singleton.
type Manager struct {
	api    *gateway.Client
	store  Store
	cookie *CookieCodec
	logger *slog.Logger
}

func NewManager(api *gateway.Client, store Store, cookie *CookieCodec, logger *slog.Logger) *Manager {
	return &Manager{api: api, store: store, cookie: cookie, logger: logger}
}

type loginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type profileResponse struct {
	User models.User `json:"user"`
}

// Login exchanges credentials for a platform token, persists the session
// and returns it together with the signed cookie value for the browser.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, string, error) {
	sid := newSessionID()
	holder := newTokenHolder(m.store, sid)
	api := m.api.WithTokens(holder)

	var resp loginResponse
	err := api.Post(ctx, "/api/auth/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		if gateway.IsStatus(err, http.StatusUnauthorized) || gateway.IsStatus(err, http.StatusBadRequest) || gateway.IsStatus(err, http.StatusForbidden) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", ErrInvalidCredentials
	}

	holder.set(resp.Token)
	if err := m.store.Save(ctx, sid, Record{Token: resp.Token, User: resp.User}); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	cookie, err := m.cookie.Issue(sid)
	if err != nil {
		return nil, "", err
	}

	observability.LoginsTotal.WithLabelValues("success").Inc()
	observability.SessionsActive.Inc()
	m.logger.Info("session_opened", "user", resp.User.Email, "role", string(resp.User.Role))

	return &Session{ID: sid, User: resp.User, API: api, holder: holder}, cookie, nil
}

// Resume rehydrates a session from its cookie: verify the cookie, load the
// persisted token, then confirm it against the profile endpoint. Any failure
// purges the stored token and leaves the caller anonymous; an expired
// platform token must not linger.
func (m *Manager) Resume(ctx context.Context, cookieValue string) (*Session, error) {
	sid, err := m.cookie.Verify(cookieValue)
	if err != nil {
		return nil, ErrNoSession
	}

	rec, ok, err := m.store.Load(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	if !ok || rec.Token == "" {
		return nil, ErrNoSession
	}

	holder := newTokenHolder(m.store, sid)
	holder.set(rec.Token)
	api := m.api.WithTokens(holder)

	var resp profileResponse
	if err := api.Get(ctx, "/api/users/me/profile", &resp); err != nil {
		// A 401 already cleared the holder and purged the record via the
		// gateway contract; clear again for every other failure mode.
		holder.Clear()
		m.logger.Warn("session_resume_failed", "error", err)
		return nil, ErrNoSession
	}

	// Keep the persisted user fresh; role changes take effect on resume.
	rec.User = resp.User
	_ = m.store.Save(ctx, sid, rec)

	return &Session{ID: sid, User: resp.User, API: api, holder: holder}, nil
}

// Logout tells the platform best-effort, then purges locally no matter what.
func (m *Manager) Logout(ctx context.Context, s *Session) {
	if err := s.API.Post(ctx, "/api/auth/logout", nil, nil); err != nil {
		m.logger.Warn("logout_upstream_failed", "error", err)
	}
	s.holder.Clear()
	_ = m.store.Delete(ctx, s.ID)
	observability.SessionsActive.Dec()
	m.logger.Info("session_closed", "user", s.User.Email)
}

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
