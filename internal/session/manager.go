// Package session owns the authenticated session: acquiring the token at
// login, persisting it across restarts, decoding the caller's identity, and
// attaching proof to protected requests.
package session

import (
	"context"
	"errors"
	"net/http"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
	"github.com/spikemate/mobile-core/pkg/logger"
	"github.com/spikemate/mobile-core/pkg/models"
	"github.com/spikemate/mobile-core/pkg/storage"
	"github.com/spikemate/mobile-core/pkg/validators"
)

// tokenSlot is the single named slot in device storage. Absence of this slot
// means the session is anonymous.
const tokenSlot = "token"

type tokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type httpAPI interface {
	Post(ctx context.Context, path string, body, out any) error
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput is the account-creation form. Signup does not log the new
// account in; the caller must call Login afterwards. That mirrors the
// current backend contract.
type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user player coach organizer admin"`
}

// Manager is the single source of truth for who the current user is. It is
// not safe for concurrent use; like the rest of the client core it is
// confined to the UI event loop.
type Manager struct {
	api   httpAPI
	store tokenStore
	logg  *logger.Logger
	token string
}

// NewManager restores any persisted session from the device store.
func NewManager(ctx context.Context, api httpAPI, store tokenStore, logg *logger.Logger) *Manager {
	m := &Manager{api: api, store: store, logg: logg}

	token, err := store.Get(ctx, tokenSlot)
	switch {
	case err == nil:
		m.token = token
	case errors.Is(err, storage.ErrNotFound):
	default:
		if logg != nil {
			logg.Warn(ctx, "could not restore session: "+err.Error())
		}
	}
	return m
}

// Login exchanges credentials for a token and persists it immediately.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	if err := validators.Struct(creds); err != nil {
		return err
	}

	var resp struct {
		MyToken string `json:"mytoken"`
	}
	if err := m.api.Post(ctx, "/api/users/login", creds, &resp); err != nil {
		if pkgerrors.CodeOf(err) == pkgerrors.CodeNetwork {
			return err
		}
		message := "invalid credentials"
		if typed := pkgerrors.As(err); typed != nil && typed.Message() != "" {
			message = typed.Message()
		}
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, message)
	}
	if resp.MyToken == "" {
		return pkgerrors.New(pkgerrors.CodeServer, "login response missing token")
	}

	// Persist before caching so a storage failure never leaves a token that
	// would vanish on restart.
	if err := m.store.Set(ctx, tokenSlot, resp.MyToken); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session token")
	}
	m.token = resp.MyToken

	if m.logg != nil {
		m.logg.Info(m.logg.WithUserID(ctx, m.CurrentUserID()), "session established")
	}
	return nil
}

// Signup creates the account and returns it. It does not establish a
// session; call Login with the same credentials next.
func (m *Manager) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	var user models.User
	if err := m.api.Post(ctx, "/api/users/signup", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// IsAuthenticated reports whether a token is present. It says nothing about
// expiry; an expired token is only discovered when a protected call fails.
func (m *Manager) IsAuthenticated() bool {
	return m.token != ""
}

// CurrentUserID returns the identity claim of the persisted token, or the
// empty string when there is no session or the token does not decode.
func (m *Manager) CurrentUserID() string {
	if m.token == "" {
		return ""
	}
	return userIDFromToken(m.token)
}

// Logout destroys the session. Calling it with no active session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.token = ""
	if err := m.store.Delete(ctx, tokenSlot); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove session token")
	}
	if m.logg != nil {
		m.logg.Info(ctx, "session destroyed")
	}
	return nil
}

// Persist replaces the stored token. Used when a protected endpoint rotates
// the token as part of its response.
func (m *Manager) Persist(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeInternal, "refusing to persist empty token")
	}
	if err := m.store.Set(ctx, tokenSlot, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session token")
	}
	m.token = token
	return nil
}

// AttachAuthHeader adds the bearer header to req when a session exists and
// returns req either way. Without a token the request is left untouched and
// the backend rejects it as unauthorized.
func (m *Manager) AttachAuthHeader(req *http.Request) *http.Request {
	if req != nil && m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}
	return req
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	return m.token
}

// Invalidate implements api.TokenSource: the backend rejected the token, so
// the session transitions to anonymous before the failure surfaces.
func (m *Manager) Invalidate() {
	m.token = ""
	if err := m.store.Delete(context.Background(), tokenSlot); err != nil && m.logg != nil {
		m.logg.Warn(context.Background(), "could not remove rejected token: "+err.Error())
	}
}
