package core

import "errors"

var (
	// ErrLoginRejected marks an application-level login rejection: the
	// server answered, but with the "no such user" sentinel.
	ErrLoginRejected = errors.New("login rejected")

	// ErrNoSession is returned by commands that need an authenticated
	// viewer when no session record exists.
	ErrNoSession = errors.New("not logged in")

	// ErrSelfFollow rejects follow edges pointing at the viewer.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
