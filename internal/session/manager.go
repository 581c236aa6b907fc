// Package session tracks the authenticated user for the lifetime of the
// program: login and registration persist credentials, Init restores a
// previous session from durable storage, and Logout tears everything down.
package session

import (
	"context"
	"sync"

	"github.com/crewdeck/crewdeck/internal/credentials"
	"github.com/crewdeck/crewdeck/internal/logging"
	"github.com/crewdeck/crewdeck/internal/models"
)

// API is the subset of the backend client the session layer depends on.
type API interface {
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

// Manager owns the current-user state. It starts in the loading state
// until Init has decided whether a stored session is still valid.
// Safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	api     API
	tokens  *credentials.TokenStore
	log     logging.Logger
	user    *models.User
	loading bool
}

func NewManager(api API, tokens *credentials.TokenStore, log logging.Logger) *Manager {
	return &Manager{
		api:     api,
		tokens:  tokens,
		log:     log,
		loading: true,
	}
}

// Init restores the session from stored credentials. With no stored token
// it just leaves the loading state. A failed profile fetch clears the
// in-memory user but keeps stored tokens so the next call can retry the
// refresh cycle. Init always ends the loading state.
func (m *Manager) Init(ctx context.Context) {
	defer m.setLoading(false)

	if m.tokens.AccessToken() == "" {
		return
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "session restore failed", "error", err)
		m.SetUser(nil)
		return
	}
	m.SetUser(user)
}

// Login authenticates, persists the returned credentials and sets the
// current user. Nothing is persisted on failure.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, res)
}

// Register creates an account and establishes the session like Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	res, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, res)
}

func (m *Manager) establish(ctx context.Context, res *models.AuthResponse) (*models.User, error) {
	if err := m.tokens.SetTokenPair(ctx, res.AccessToken, res.RefreshToken); err != nil {
		return nil, err
	}
	if err := m.tokens.SetUserID(ctx, res.User.ID); err != nil {
		return nil, err
	}
	user := res.User
	m.SetUser(&user)
	return &user, nil
}

// Logout invalidates the backend session, wipes stored credentials and
// clears the current user. A failed backend call is logged and ignored:
// the local session is torn down regardless.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "backend logout failed", "error", err)
	}
	m.SetUser(nil)
	return m.tokens.Clear(ctx)
}

// User returns the current user, or nil when not authenticated.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Loading reports whether Init has not yet finished.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// SetUser replaces the current user.
func (m *Manager) SetUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}
