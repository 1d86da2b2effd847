package session

import (
	"context"
	"fmt"
	"log/slog"

	"socialite/internal/core"
	"socialite/pkg/snapi"
)

// Dispatcher orchestrates the network round trips that drive store
// transitions.
type Dispatcher struct {
	Logger *slog.Logger
	API    *snapi.Client
	Store  *Store
}

func (d *Dispatcher) Init(_ context.Context) error {
	d.Logger = d.Logger.With("component", "session.Dispatcher")
	return nil
}

// Login drives the store through one full login attempt: LOGIN_START
// first, then exactly one of LOGIN_SUCCESS or LOGIN_FAILURE. A
// returned user id of zero is the contract's "no such user" sentinel
// and counts as a failure carrying the server's message.
func (d *Dispatcher) Login(ctx context.Context, creds snapi.Credentials) error {
	if err := d.Store.Dispatch(ctx, LoginStart()); err != nil {
		return err
	}

	res, err := d.API.Login(ctx, creds)
	if err != nil {
		d.fail(ctx, err)
		return err
	}

	if res.User.UserID == 0 {
		err = fmt.Errorf("%w: %s", core.ErrLoginRejected, res.Message)
		d.fail(ctx, err)
		return err
	}

	return d.Store.Dispatch(ctx, LoginSuccess(&res.User, res.Cookies))
}

func (d *Dispatcher) fail(ctx context.Context, err error) {
	if derr := d.Store.Dispatch(ctx, LoginFailure(err)); derr != nil {
		d.Logger.Error("recording login failure", "error", derr)
	}
}

// Register submits the signup call and only logs the outcome. The
// store is not involved and the caller proceeds to login regardless;
// the server-facing contract stays unchanged.
func (d *Dispatcher) Register(ctx context.Context, info snapi.Registration) {
	if err := d.API.Signup(ctx, info); err != nil {
		d.Logger.Error("error registering account", "error", err)
		return
	}
	d.Logger.Info("registered account", "user_name", info.UserName)
}
