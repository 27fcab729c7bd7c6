// Package app holds the application services and business logic.
package app

import (
	"context"
	"encoding/json"
	"errors"

	"healthadvisor/internal/domain"
)

// accountsKey is the store key holding the serialized account registry.
const accountsKey = "users"

var (
	// ErrInvalidInput indicates that a required signup field was empty.
	ErrInvalidInput = errors.New("all fields are required")
	// ErrDuplicateUsername indicates that the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
)

// RegistryService owns the set of registered accounts. The registry is
// persisted as one JSON array under a fixed key and fully rewritten on
// every mutation, so the persisted and in-memory forms never diverge.
type RegistryService struct {
	store domain.KeyValueStore
}

// NewRegistryService creates a registry backed by the given store.
func NewRegistryService(store domain.KeyValueStore) *RegistryService {
	return &RegistryService{store: store}
}

// Register validates the candidate, enforces username uniqueness and
// appends the new account to the persisted registry.
func (s *RegistryService) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	accounts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	account := domain.Account{Username: username, Email: email, Password: password}
	accounts = append(accounts, account)
	if err := s.save(ctx, accounts); err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUsername looks up an account by exact, case-sensitive username.
// Returns nil if no account matches.
func (s *RegistryService) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	accounts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Username == username {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// Load deserializes the persisted registry in insertion order. An absent
// key or a malformed blob yields an empty registry, never an error; users
// recover from corruption by registering again.
func (s *RegistryService) Load(ctx context.Context) ([]domain.Account, error) {
	blob, ok, err := s.store.Get(ctx, accountsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Account{}, nil
	}

	var accounts []domain.Account
	if err := json.Unmarshal([]byte(blob), &accounts); err != nil {
		return []domain.Account{}, nil
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *RegistryService) save(ctx context.Context, accounts []domain.Account) error {
	blob, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, accountsKey, string(blob))
}
