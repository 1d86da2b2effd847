package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/config"
	"socialite/internal/share"
)

var shareCmd = &cli.Command{
	Name:  "share",
	Usage: "Publish a new post, optionally with one image",
	Flags: []cli.Flag{
		flags.Text,
		flags.Image,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			provideClient(),
			pal.Provide(&share.Publisher{}),
			pal.Provide(&shareRunner{}),
		)
	},
}

type shareRunner struct {
	Logger    *slog.Logger
	Config    *config.Config
	Publisher *share.Publisher
}

func (r *shareRunner) Run(ctx context.Context) error {
	draft := share.Draft{Text: r.Config.Text}

	if r.Config.Image != "" {
		f, err := os.Open(r.Config.Image)
		if err != nil {
			return err
		}
		defer f.Close()

		draft.Image = &share.Attachment{
			Body:        f,
			ContentType: contentTypeFor(r.Config.Image),
		}
	}

	fmt.Println("posting...")
	if err := r.Publisher.Publish(ctx, draft); err != nil {
		return err
	}
	fmt.Println("posted")
	return nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
