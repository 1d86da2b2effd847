// Package share publishes new posts through the two-phase protocol:
// upload the attachment to a pre-authorized destination, then register
// the post with the API.
package share

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialite/internal/session"
	"socialite/pkg/snapi"
)

var (
	postsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialite_posts_published_total",
		Help: "The total number of posts successfully registered with the API",
	})

	uploadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialite_upload_failures_total",
		Help: "The total number of attachment uploads that failed and were dropped",
	})
)

type Attachment struct {
	Body        io.Reader
	ContentType string
}

type Draft struct {
	Text  string
	Image *Attachment
}

type Publisher struct {
	Logger *slog.Logger
	API    *snapi.Client
	Store  *session.Store
}

func (p *Publisher) Init(_ context.Context) error {
	p.Logger = p.Logger.With("component", "share.Publisher")
	return nil
}

// Publish runs the two-phase publish. An upload failure degrades to a
// text-only post: the reference is dropped, the post is still
// submitted. Only the create call decides the outcome.
func (p *Publisher) Publish(ctx context.Context, draft Draft) error {
	viewer, err := p.Store.Viewer()
	if err != nil {
		return err
	}

	images := []string{}
	if draft.Image != nil {
		ref, err := p.upload(ctx, draft.Image)
		if err != nil {
			uploadFailures.Inc()
			p.Logger.Error("image upload failed, posting text only", "error", err)
		} else {
			images = append(images, ref)
		}
	}

	err = p.API.CreatePost(ctx, snapi.CreatePostRequest{
		UserID:           viewer.UserID,
		ContentText:      draft.Text,
		ContentImagePath: images,
	})
	if err != nil {
		p.Logger.Error("creating post", "error", err)
		return err
	}

	postsPublished.Inc()
	return nil
}

// upload PUTs the attachment to a fresh pre-authorized destination and
// returns the stored reference: the destination URL with its query
// stripped.
func (p *Publisher) upload(ctx context.Context, att *Attachment) (string, error) {
	dest, err := p.API.UploadURL(ctx)
	if err != nil {
		return "", err
	}

	if err := p.API.Upload(ctx, dest, att.Body, att.ContentType); err != nil {
		return "", err
	}

	ref, _, _ := strings.Cut(dest, "?")
	return ref, nil
}
