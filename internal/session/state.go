// Package session owns the single source of truth for "who is logged
// in": a reducer-style state machine persisted across process
// restarts.
package session

import (
	"net/http"

	"github.com/samber/lo"

	"socialite/internal/core"
)

type Status string

const (
	StatusAnonymous     Status = "anonymous"
	StatusFetching      Status = "fetching"
	StatusAuthenticated Status = "authenticated"
	StatusErrored       Status = "errored"
)

// State is the store's full in-memory state: the current user plus the
// transient flags of the last login attempt.
type State struct {
	Status  Status
	User    *core.User
	Cookies []*http.Cookie
	Err     error
}

type actionKind int

const (
	actionLoginStart actionKind = iota
	actionLoginSuccess
	actionLoginFailure
	actionFollow
	actionUnfollow
	actionLogout
)

// Action is one requested transition. Build actions with the
// constructors below.
type Action struct {
	kind    actionKind
	user    *core.User
	cookies []*http.Cookie
	err     error
	target  int64
}

func LoginStart() Action { return Action{kind: actionLoginStart} }

func LoginSuccess(user *core.User, cookies []*http.Cookie) Action {
	return Action{kind: actionLoginSuccess, user: user, cookies: cookies}
}

func LoginFailure(err error) Action { return Action{kind: actionLoginFailure, err: err} }

func Follow(target int64) Action { return Action{kind: actionFollow, target: target} }

func Unfollow(target int64) Action { return Action{kind: actionUnfollow, target: target} }

func Logout() Action { return Action{kind: actionLogout} }

// persists reports whether the transition changes the durable record.
func (a Action) persists() bool {
	switch a.kind {
	case actionLoginSuccess, actionFollow, actionUnfollow, actionLogout:
		return true
	default:
		return false
	}
}

// reduce is the pure transition function. It never mutates the current
// state's user record: follow/unfollow produce a fresh copy so that
// previously handed-out states stay valid.
func reduce(s State, a Action) State {
	switch a.kind {
	case actionLoginStart:
		s.Status = StatusFetching
		s.Err = nil

	case actionLoginSuccess:
		s.Status = StatusAuthenticated
		s.User = a.user
		s.Cookies = a.cookies
		s.Err = nil

	case actionLoginFailure:
		s.Status = StatusErrored
		s.Err = a.err

	case actionFollow:
		if s.User == nil || lo.Contains(s.User.Followings, a.target) {
			return s
		}
		u := *s.User
		u.Followings = append(append([]int64{}, s.User.Followings...), a.target)
		s.User = &u

	case actionUnfollow:
		if s.User == nil {
			return s
		}
		u := *s.User
		u.Followings = lo.Without(s.User.Followings, a.target)
		s.User = &u

	case actionLogout:
		return State{Status: StatusAnonymous}
	}

	return s
}
