package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"healthadvisor/internal/adapter/memory"
	"healthadvisor/internal/app"
	"healthadvisor/internal/domain"
)

func newSessionFixture(t *testing.T) (*app.SessionService, *memory.Store) {
	t.Helper()
	store := memory.New()
	registry := app.NewRegistryService(store)

	_, err := registry.Register(context.Background(), "amy", "a@x.com", "p1")
	require.NoError(t, err)

	return app.NewSessionService(registry, store), store
}

func TestLogin(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	account, err := svc.Login(ctx, "amy", "p1")
	require.NoError(t, err)
	require.Equal(t, &domain.Account{Username: "amy", Email: "a@x.com", Password: "p1"}, account)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, account, current)
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "wrong")
	require.ErrorIs(t, err, app.ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody", "p1")
	require.ErrorIs(t, err, app.ErrUnknownUser)

	// Failed logins do not create a session.
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestLogin_OverwritesSession(t *testing.T) {
	store := memory.New()
	registry := app.NewRegistryService(store)
	svc := app.NewSessionService(registry, store)
	ctx := context.Background()

	_, err := registry.Register(ctx, "amy", "a@x.com", "p1")
	require.NoError(t, err)
	_, err = registry.Register(ctx, "bob", "b@x.com", "p2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "amy", "p1")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "bob", "p2")
	require.NoError(t, err)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "bob", current.Username)
}

func TestSession_SurvivesReload(t *testing.T) {
	svc, store := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "p1")
	require.NoError(t, err)

	// A fresh service over the same store sees the persisted session.
	reloaded := app.NewSessionService(app.NewRegistryService(store), store)
	current, err := reloaded.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, "amy", current.Username)
}

func TestLogout(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "amy", "p1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	// Logging out with no session is fine.
	require.NoError(t, svc.Logout(ctx))
}

func TestRequire(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.Require(ctx)
	require.ErrorIs(t, err, app.ErrNoSession)

	_, err = svc.Login(ctx, "amy", "p1")
	require.NoError(t, err)

	account, err := svc.Require(ctx)
	require.NoError(t, err)
	require.Equal(t, "amy", account.Username)
}

func TestCurrent_MalformedSession(t *testing.T) {
	svc, store := newSessionFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "loggedInUser", "{not json"))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, current)
}
