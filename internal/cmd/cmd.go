// Package cmd is the socialite command tree. Every command assembles
// its service graph with pal and runs it under signal handling;
// fetched records are printed to stdout, logs go to stderr.
package cmd

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/config"
	"socialite/internal/core"
	"socialite/internal/session"
	"socialite/pkg/clicfg"
	"socialite/pkg/snapi"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "socialite",
	Usage:   "A command-line client for the social-network API",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
	},
	Commands: []*cli.Command{
		loginCmd,
		registerCmd,
		logoutCmd,
		whoamiCmd,
		feedCmd,
		followersCmd,
		followCmd,
		unfollowCmd,
		shareCmd,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg := config.Config{}
	if err := clicfg.ParseFlags(c, &cfg); err != nil {
		return err
	}
	services = append(services, pal.Provide(&cfg), pal.Provide(&core.Config{}))

	return pal.New(services...).
		InjectSlog().
		InitTimeout(2*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(10*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// provideClient is the base graph every command needs: the persisted
// session store and the API client carrying its cookies.
func provideClient() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&session.FileStore{}),
		pal.Provide(&session.Store{}),
		pal.Provide(&snapi.Client{}),
	)
}
