package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/config"
	"socialite/internal/session"
	"socialite/pkg/snapi"
)

var loginCmd = &cli.Command{
	Name:  "login",
	Usage: "Authenticate against the API server and persist the session",
	Flags: []cli.Flag{
		flags.UserName,
		flags.Password,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&session.Dispatcher{}),
			pal.Provide(&loginRunner{}),
		)
	},
}

type loginRunner struct {
	Logger     *slog.Logger
	Config     *config.Config
	Dispatcher *session.Dispatcher
	Store      *session.Store
}

func (r *loginRunner) Run(ctx context.Context) error {
	err := r.Dispatcher.Login(ctx, snapi.Credentials{
		UserName: r.Config.UserName,
		Password: r.Config.Password,
	})
	if err != nil {
		return err
	}

	user, err := r.Store.Viewer()
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (user %d)\n", user.UserName, user.UserID)
	return nil
}

var registerCmd = &cli.Command{
	Name:  "register",
	Usage: "Create a new account",
	Flags: []cli.Flag{
		flags.UserName,
		flags.Password,
		flags.FirstName,
		flags.LastName,
		flags.Email,
		flags.DateOfBirth,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&session.Dispatcher{}),
			pal.Provide(&registerRunner{}),
		)
	},
}

type registerRunner struct {
	Logger     *slog.Logger
	Config     *config.Config
	Dispatcher *session.Dispatcher
}

func (r *registerRunner) Run(ctx context.Context) error {
	r.Dispatcher.Register(ctx, snapi.Registration{
		UserName:    r.Config.UserName,
		Password:    r.Config.Password,
		FirstName:   r.Config.FirstName,
		LastName:    r.Config.LastName,
		Email:       r.Config.Email,
		DateOfBirth: r.Config.DateOfBirth,
	})

	// The signup outcome is only logged; log in either way.
	fmt.Printf("now run: socialite login --user-name %s --password ...\n", r.Config.UserName)
	return nil
}

var logoutCmd = &cli.Command{
	Name:  "logout",
	Usage: "Drop the persisted session",
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&logoutRunner{}),
		)
	},
}

type logoutRunner struct {
	Logger *slog.Logger
	Store  *session.Store
}

func (r *logoutRunner) Run(ctx context.Context) error {
	if err := r.Store.Dispatch(ctx, session.Logout()); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

var whoamiCmd = &cli.Command{
	Name:  "whoami",
	Usage: "Show the current session",
	Flags: []cli.Flag{
		flags.Dump,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&whoamiRunner{}),
		)
	},
}

type whoamiRunner struct {
	Logger *slog.Logger
	Config *config.Config
	Store  *session.Store
}

func (r *whoamiRunner) Run(_ context.Context) error {
	user, err := r.Store.Viewer()
	if err != nil {
		return err
	}

	if r.Config.Dump {
		dump(user)
		return nil
	}
	fmt.Printf("%s (user %d), following %d users\n", user.UserName, user.UserID, len(user.Followings))
	return nil
}
