package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	"socialite/internal/core"
)

// Watcher re-fetches a feed on an interval and hands every fresh
// result to Render. A failed cycle is logged and the previous output
// stands.
type Watcher struct {
	Logger *slog.Logger
	Loader *Loader

	Scope    int64
	Interval time.Duration
	Render   func([]*core.Post)
}

func (w *Watcher) Run(ctx context.Context) error {
	ticks := make(chan time.Time, 1)
	go func() {
		defer close(ticks)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()

		ticks <- time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				select {
				case ticks <- t:
				default: // previous cycle still running, skip the tick
				}
			}
		}
	}()

	err := pips.New[time.Time, any]().
		Then(apply.Map(func(ctx context.Context, _ time.Time) (any, error) {
			posts, err := w.Loader.Load(ctx, w.Scope)
			if err != nil {
				if !errors.Is(err, ErrStale) {
					w.Logger.Warn("feed refresh failed", "error", err)
				}
				return nil, nil
			}
			w.Render(posts)
			return nil, nil
		})).
		Run(ctx, pips.MapInputChan(ctx, ticks, func(_ context.Context, t time.Time) (time.Time, error) {
			return t, nil
		})).
		Wait(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
