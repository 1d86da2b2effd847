// Package config carries per-command CLI inputs, filled from flags by
// pkg/clicfg. Fields whose flag is not registered on the running
// command keep their zero value.
package config

import "time"

type Config struct {
	LogLevel string `flag:"log-level"`

	UserID int64 `flag:"user"`

	UserName    string `flag:"user-name"`
	Password    string `flag:"password"`
	FirstName   string `flag:"first-name"`
	LastName    string `flag:"last-name"`
	Email       string `flag:"email"`
	DateOfBirth string `flag:"date-of-birth"`

	Text  string `flag:"text"`
	Image string `flag:"image"`

	Watch       bool          `flag:"watch"`
	Interval    time.Duration `flag:"interval"`
	MetricsAddr string        `flag:"metrics-addr"`
	Dump        bool          `flag:"dump"`
}
