package app

import (
	"context"
	"encoding/json"
	"errors"

	"healthadvisor/internal/domain"
)

// sessionKey is the store key holding the currently logged-in account.
const sessionKey = "loggedInUser"

var (
	// ErrUnknownUser indicates that no account matches the username.
	ErrUnknownUser = errors.New("username does not exist")
	// ErrWrongPassword indicates that the account exists but the password differs.
	ErrWrongPassword = errors.New("invalid password")
	// ErrNoSession indicates that no account is currently logged in.
	ErrNoSession = errors.New("no active session")
)

// SessionService tracks the single currently-authenticated account. The
// session is persisted under its own key so it survives restarts; at most
// one session exists at a time and a later login overwrites it.
type SessionService struct {
	registry *RegistryService
	store    domain.KeyValueStore
}

// NewSessionService creates a session guard over the given registry and store.
func NewSessionService(registry *RegistryService, store domain.KeyValueStore) *SessionService {
	return &SessionService{registry: registry, store: store}
}

// Login authenticates by exact username and password match and persists
// the account as the current session.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.registry.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownUser
	}
	if account.Password != password {
		return nil, ErrWrongPassword
	}

	blob, err := json.Marshal(account)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, sessionKey, string(blob)); err != nil {
		return nil, err
	}
	return account, nil
}

// Current returns the logged-in account, or nil if the session key is
// absent or its blob is malformed.
func (s *SessionService) Current(ctx context.Context) (*domain.Account, error) {
	blob, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var account domain.Account
	if err := json.Unmarshal([]byte(blob), &account); err != nil {
		return nil, nil
	}
	return &account, nil
}

// Require returns the logged-in account or ErrNoSession. Callers gate
// protected content on this and act on ErrNoSession themselves, typically
// by redirecting to the login page.
func (s *SessionService) Require(ctx context.Context) (*domain.Account, error) {
	account, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNoSession
	}
	return account, nil
}

// Logout clears the persisted session. Clearing an absent session is not
// an error.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, sessionKey)
}
