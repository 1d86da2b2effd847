package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/config"
	"socialite/internal/core"
	"socialite/internal/friends"
	"socialite/internal/session"
)

var followersCmd = &cli.Command{
	Name:  "followers",
	Usage: "Show who follows a user",
	Flags: []cli.Flag{
		flags.User,
		flags.Dump,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&friends.Loader{}),
			pal.Provide(&followersRunner{}),
		)
	},
}

type followersRunner struct {
	Logger *slog.Logger
	Config *config.Config
	App    *core.Config
	Loader *friends.Loader
	Store  *session.Store
}

func (r *followersRunner) Run(ctx context.Context) error {
	viewer, err := r.Store.Viewer()
	if err != nil {
		return err
	}

	target := r.Config.UserID
	if target == 0 {
		target = viewer.UserID
	}

	panel, err := r.Loader.Load(ctx, target, viewer.UserID)
	if err != nil {
		return err
	}

	if r.Config.Dump {
		dump(panel)
		return nil
	}
	renderPanel(r.App, target, panel)
	return nil
}

var followCmd = &cli.Command{
	Name:  "follow",
	Usage: "Follow a user",
	Flags: []cli.Flag{
		flags.User,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&friends.Loader{}),
			pal.Provide(&friends.Actions{}),
			pal.Provide(&followRunner{}),
		)
	},
}

var unfollowCmd = &cli.Command{
	Name:  "unfollow",
	Usage: "Stop following a user",
	Flags: []cli.Flag{
		flags.User,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&friends.Loader{}),
			pal.Provide(&friends.Actions{}),
			pal.Provide(&followRunner{undo: true}),
		)
	},
}

type followRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	App     *core.Config
	Actions *friends.Actions

	undo bool
}

func (r *followRunner) Run(ctx context.Context) error {
	target := r.Config.UserID

	var panel *friends.Panel
	var err error
	if r.undo {
		panel, err = r.Actions.Unfollow(ctx, target)
	} else {
		panel, err = r.Actions.Follow(ctx, target)
	}
	if err != nil {
		return err
	}

	state := "not following"
	if panel.Followed {
		state = "following"
	}
	fmt.Printf("now %s user %d\n", state, target)
	renderPanel(r.App, target, panel)
	return nil
}
