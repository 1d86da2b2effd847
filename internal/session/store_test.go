package session_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/internal/session"
)

func newFileStore(t *testing.T) *session.FileStore {
	t.Helper()

	fs := &session.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	require.NoError(t, fs.Init(t.Context()))
	return fs
}

func newStore(t *testing.T, persister core.SessionPersister) *session.Store {
	t.Helper()

	store := &session.Store{Logger: slog.Default(), Persister: persister}
	require.NoError(t, store.Init(t.Context()))
	return store
}

func testUser() *core.User {
	return &core.User{UserID: 42, UserName: "pola", Followings: []int64{5}}
}

func TestStoreInitialStateIsAnonymous(t *testing.T) {
	t.Parallel()

	store := newStore(t, newFileStore(t))

	require.Equal(t, session.StatusAnonymous, store.State().Status)
	require.Nil(t, store.State().User)
}

func TestStoreLoginTransitions(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newStore(t, newFileStore(t))

	require.NoError(t, store.Dispatch(ctx, session.LoginStart()))
	require.Equal(t, session.StatusFetching, store.State().Status)

	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))
	state := store.State()
	require.Equal(t, session.StatusAuthenticated, state.Status)
	require.Equal(t, int64(42), state.User.UserID)
	require.NoError(t, state.Err)
}

func TestStoreLoginFailureKeepsUser(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newStore(t, newFileStore(t))
	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))

	require.NoError(t, store.Dispatch(ctx, session.LoginStart()))
	failure := errors.New("wrong username or password")
	require.NoError(t, store.Dispatch(ctx, session.LoginFailure(failure)))

	state := store.State()
	require.Equal(t, session.StatusErrored, state.Status)
	require.ErrorIs(t, state.Err, failure)
	require.Equal(t, int64(42), state.User.UserID)
}

func TestStoreRestoresPersistedSession(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fs := newFileStore(t)

	cookies := []*http.Cookie{{Name: "session_id", Value: "abc"}}
	first := newStore(t, fs)
	require.NoError(t, first.Dispatch(ctx, session.LoginSuccess(testUser(), cookies)))

	// A fresh store over the same file simulates a process restart.
	second := newStore(t, fs)

	state := second.State()
	require.Equal(t, session.StatusAuthenticated, state.Status)
	require.Equal(t, "pola", state.User.UserName)
	require.Len(t, second.Cookies(), 1)
	require.Equal(t, "abc", second.Cookies()[0].Value)
}

func TestStoreFollowIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newStore(t, newFileStore(t))
	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))

	require.NoError(t, store.Dispatch(ctx, session.Follow(7)))
	require.NoError(t, store.Dispatch(ctx, session.Follow(7)))

	require.Equal(t, []int64{5, 7}, store.State().User.Followings)
}

func TestStoreUnfollow(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newStore(t, newFileStore(t))
	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))

	require.NoError(t, store.Dispatch(ctx, session.Unfollow(5)))
	require.Empty(t, store.State().User.Followings)

	require.NoError(t, store.Dispatch(ctx, session.Unfollow(5)))
	require.Empty(t, store.State().User.Followings)
}

func TestStoreFollowSurvivesRestart(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fs := newFileStore(t)

	first := newStore(t, fs)
	require.NoError(t, first.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))
	require.NoError(t, first.Dispatch(ctx, session.Follow(7)))

	second := newStore(t, fs)
	require.Equal(t, []int64{5, 7}, second.State().User.Followings)
}

func TestStoreLogout(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fs := newFileStore(t)
	store := newStore(t, fs)
	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))

	require.NoError(t, store.Dispatch(ctx, session.Logout()))
	require.Equal(t, session.StatusAnonymous, store.State().Status)

	_, err := fs.Load(ctx)
	require.ErrorIs(t, err, core.ErrNoSession)
}

type failingPersister struct{}

func (failingPersister) Load(context.Context) (*core.Session, error) {
	return nil, core.ErrNoSession
}

func (failingPersister) Save(context.Context, *core.Session) error {
	return errors.New("disk full")
}

func (failingPersister) Clear(context.Context) error {
	return errors.New("disk full")
}

func TestStorePersistFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	store := newStore(t, failingPersister{})

	err := store.Dispatch(t.Context(), session.LoginSuccess(testUser(), nil))
	require.Error(t, err)
	require.Equal(t, session.StatusAnonymous, store.State().Status)
	require.Nil(t, store.State().User)
}

func TestStoreSubscribe(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	store := newStore(t, newFileStore(t))

	var seen []session.Status
	store.Subscribe(func(s session.State) {
		seen = append(seen, s.Status)
	})

	require.NoError(t, store.Dispatch(ctx, session.LoginStart()))
	require.NoError(t, store.Dispatch(ctx, session.LoginSuccess(testUser(), nil)))

	require.Equal(t, []session.Status{session.StatusFetching, session.StatusAuthenticated}, seen)
}
