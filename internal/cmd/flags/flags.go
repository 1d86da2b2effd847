package flags

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var User = &cli.IntFlag{
	Name:    "user",
	Aliases: []string{"u"},
	Usage:   "A user id; 0 means the current viewer",
}

var UserName = &cli.StringFlag{
	Name:  "user-name",
	Usage: "The account's username",
}

var Password = &cli.StringFlag{
	Name:  "password",
	Usage: "The account's password",
}

var FirstName = &cli.StringFlag{
	Name:  "first-name",
	Usage: "First name for the new account",
}

var LastName = &cli.StringFlag{
	Name:  "last-name",
	Usage: "Last name for the new account",
}

var Email = &cli.StringFlag{
	Name:  "email",
	Usage: "Email for the new account",
}

var DateOfBirth = &cli.StringFlag{
	Name:  "date-of-birth",
	Usage: "Date of birth for the new account, YYYY-MM-DD",
}

var Text = &cli.StringFlag{
	Name:    "text",
	Aliases: []string{"t"},
	Usage:   "The post's text content",
}

var Image = &cli.StringFlag{
	Name:  "image",
	Usage: "Path of an image to attach to the post",
}

var Watch = &cli.BoolFlag{
	Name:    "watch",
	Aliases: []string{"w"},
	Usage:   "Keep re-fetching the feed on an interval",
}

var Interval = &cli.DurationFlag{
	Name:  "interval",
	Usage: "Refresh interval for --watch",
	Value: 10 * time.Second,
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "Listen address of the /metrics endpoint in --watch mode",
	Value:   ":9091",
	Sources: cli.EnvVars("METRICS_ADDR"),
}

var Dump = &cli.BoolFlag{
	Name:  "dump",
	Usage: "Print raw records instead of the rendered view",
}
