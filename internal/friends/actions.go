package friends

import (
	"context"
	"log/slog"

	"socialite/internal/core"
	"socialite/internal/session"
	"socialite/pkg/snapi"
)

// Actions mutates follow edges. Each mutation is a single request; on
// success the session store's cached following list is updated and the
// panel is re-fetched so the caller renders the server's state.
type Actions struct {
	Logger *slog.Logger
	API    *snapi.Client
	Store  *session.Store
	Panels *Loader
}

func (a *Actions) Init(_ context.Context) error {
	a.Logger = a.Logger.With("component", "friends.Actions")
	return nil
}

func (a *Actions) Follow(ctx context.Context, targetID int64) (*Panel, error) {
	return a.toggle(ctx, targetID, false)
}

func (a *Actions) Unfollow(ctx context.Context, targetID int64) (*Panel, error) {
	return a.toggle(ctx, targetID, true)
}

func (a *Actions) toggle(ctx context.Context, targetID int64, undo bool) (*Panel, error) {
	viewer, err := a.Store.Viewer()
	if err != nil {
		return nil, err
	}
	if viewer.UserID == targetID {
		return nil, core.ErrSelfFollow
	}

	if undo {
		err = a.API.Unfollow(ctx, targetID)
	} else {
		err = a.API.Follow(ctx, targetID)
	}
	if err != nil {
		return nil, err
	}

	action := session.Follow(targetID)
	if undo {
		action = session.Unfollow(targetID)
	}
	if err := a.Store.Dispatch(ctx, action); err != nil {
		return nil, err
	}

	return a.Panels.Load(ctx, targetID, viewer.UserID)
}
