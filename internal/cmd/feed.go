package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/config"
	"socialite/internal/core"
	"socialite/internal/feed"
	"socialite/internal/metrics"
	"socialite/internal/session"
)

var feedCmd = &cli.Command{
	Name:  "feed",
	Usage: "Show the newsfeed, or one user's posts with --user",
	Flags: []cli.Flag{
		flags.User,
		flags.Watch,
		flags.Interval,
		flags.MetricsAddr,
		flags.Dump,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		services := []pal.ServiceDef{
			provideClient(),
			pal.Provide(&feed.Loader{}),
			pal.Provide(&feedRunner{}),
		}
		if c.Bool("watch") {
			services = append(services, pal.Provide(&metrics.Server{}))
		}
		return run(ctx, c, services...)
	},
}

type feedRunner struct {
	Logger *slog.Logger
	Config *config.Config
	App    *core.Config
	Loader *feed.Loader
	Store  *session.Store
}

func (r *feedRunner) Run(ctx context.Context) error {
	// The aggregate newsfeed only exists for an authenticated viewer.
	if r.Config.UserID == 0 {
		if _, err := r.Store.Viewer(); err != nil {
			return err
		}
	}

	if r.Config.Watch {
		w := &feed.Watcher{
			Logger:   r.Logger,
			Loader:   r.Loader,
			Scope:    r.Config.UserID,
			Interval: r.Config.Interval,
			Render:   r.render,
		}
		return w.Run(ctx)
	}

	posts, err := r.Loader.Load(ctx, r.Config.UserID)
	if err != nil {
		if errors.Is(err, feed.ErrStale) {
			return nil
		}
		r.Logger.Error("loading feed", "error", err)
		return err
	}

	r.render(posts)
	return nil
}

func (r *feedRunner) render(posts []*core.Post) {
	if r.Config.Dump {
		dump(posts)
		return
	}
	renderPosts(r.App, posts)
}
