// Package feed loads post feeds: a list of post ids for a scope,
// resolved id by id into full records.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialite/internal/core"
	"socialite/pkg/snapi"
)

var (
	postsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialite_feed_posts_loaded_total",
		Help: "The total number of posts resolved into a feed",
	})

	postsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialite_feed_posts_dropped_total",
		Help: "The total number of posts dropped from a feed because their fetch failed",
	})
)

// ErrStale marks a load that was superseded by a newer one before it
// finished. Its result must be discarded, never rendered.
var ErrStale = errors.New("feed load superseded")

type Loader struct {
	Logger *slog.Logger
	API    *snapi.Client

	gen atomic.Int64
}

func (l *Loader) Init(_ context.Context) error {
	l.Logger = l.Logger.With("component", "feed.Loader")
	return nil
}

// Load fetches the post ids for the scope and resolves each id to a
// full record, preserving the id-list order. Scope 0 means the
// viewer's aggregated newsfeed. An id whose fetch fails is logged and
// dropped while the rest of the batch still loads; the batch is never
// atomic.
func (l *Loader) Load(ctx context.Context, scope int64) ([]*core.Post, error) {
	gen := l.gen.Add(1)

	ids, err := l.ids(ctx, scope)
	if err != nil {
		return nil, err
	}

	posts := make([]*core.Post, 0, len(ids))
	for _, id := range ids {
		post, err := l.API.GetPost(ctx, id)
		if err != nil {
			postsDropped.Inc()
			l.Logger.Warn("dropping post", "post_id", id, "error", err)
			continue
		}
		posts = append(posts, post)
	}
	postsLoaded.Add(float64(len(posts)))

	if l.gen.Load() != gen {
		return nil, ErrStale
	}
	return posts, nil
}

func (l *Loader) ids(ctx context.Context, scope int64) ([]int64, error) {
	if scope == 0 {
		return l.API.Newsfeed(ctx)
	}
	return l.API.UserPosts(ctx, scope)
}
