package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"socialite/internal/core"
)

// Store holds the session state and is the only cross-component
// mutable resource. All mutations go through Dispatch; transitions
// that change the persisted user are written to the persister first
// and committed in memory only if the write succeeded.
type Store struct {
	Logger    *slog.Logger
	Persister core.SessionPersister

	mu    sync.Mutex
	state State
	subs  []func(State)
}

func (s *Store) Init(ctx context.Context) error {
	s.Logger = s.Logger.With("component", "session.Store")
	s.state = State{Status: StatusAnonymous}

	sess, err := s.Persister.Load(ctx)
	if err != nil {
		if errors.Is(err, core.ErrNoSession) {
			return nil
		}
		return err
	}
	if sess.User != nil {
		s.state = State{Status: StatusAuthenticated, User: sess.User, Cookies: sess.Cookies}
		s.Logger.Debug("restored session", "user_id", sess.User.UserID)
	}
	return nil
}

// Dispatch applies one transition. It returns an error only when the
// durable write failed, in which case neither the in-memory state nor
// the persisted record changed.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	next := reduce(s.state, a)

	if a.persists() {
		var err error
		if next.Status == StatusAuthenticated && next.User != nil {
			err = s.Persister.Save(ctx, &core.Session{User: next.User, Cookies: next.Cookies})
		} else {
			err = s.Persister.Clear(ctx)
		}
		if err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.state = next
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called after every transition.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Viewer returns the authenticated user or core.ErrNoSession.
func (s *Store) Viewer() (*core.User, error) {
	st := s.State()
	if st.Status != StatusAuthenticated || st.User == nil {
		return nil, core.ErrNoSession
	}
	return st.User, nil
}

// Cookies implements snapi.CookieSource so the API client carries the
// session's credentials on every request.
func (s *Store) Cookies() []*http.Cookie {
	return s.State().Cookies
}
