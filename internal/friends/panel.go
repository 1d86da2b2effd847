// Package friends loads follower panels and mutates follow edges.
package friends

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"socialite/internal/core"
	"socialite/pkg/snapi"
)

// Panel is one user's follower view: the resolved follower records
// plus whether the viewer already follows that user. Followed is
// derived from the server's follower-id list every time, it is not a
// client-side entity.
type Panel struct {
	Followed  bool
	Followers []*core.User
}

type Loader struct {
	Logger *slog.Logger
	API    *snapi.Client
}

func (l *Loader) Init(_ context.Context) error {
	l.Logger = l.Logger.With("component", "friends.Loader")
	return nil
}

// Load fetches the target's follower ids, derives Followed for the
// viewer, and resolves each id to a full user record. A follower whose
// fetch fails is logged and dropped while the rest still loads.
func (l *Loader) Load(ctx context.Context, targetID, viewerID int64) (*Panel, error) {
	ids, err := l.API.Followers(ctx, targetID)
	if err != nil {
		return nil, err
	}

	panel := &Panel{Followed: lo.Contains(ids, viewerID)}
	for _, id := range ids {
		user, err := l.API.GetUser(ctx, id)
		if err != nil {
			l.Logger.Warn("dropping follower", "user_id", id, "error", err)
			continue
		}
		panel.Followers = append(panel.Followers, user)
	}
	return panel, nil
}
