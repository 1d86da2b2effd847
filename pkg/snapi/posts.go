package snapi

import (
	"context"
	"fmt"
	"io"

	"socialite/internal/core"
)

const (
	newsfeedPath  = "/newsfeed"
	postsPath     = "/posts"
	uploadURLPath = "/posts/url"
)

type CreatePostRequest struct {
	UserID           int64    `json:"user_id"`
	ContentText      string   `json:"content_text"`
	ContentImagePath []string `json:"content_image_path"`
}

// Newsfeed lists the post ids of the viewer's aggregated feed, newest
// first, in the order the server wants them shown.
func (c *Client) Newsfeed(ctx context.Context) ([]int64, error) {
	return c.postIDs(ctx, newsfeedPath)
}

// UserPosts lists the post ids of one specific user.
func (c *Client) UserPosts(ctx context.Context, userID int64) ([]int64, error) {
	return c.postIDs(ctx, fmt.Sprintf("/friends/%d/posts", userID))
}

func (c *Client) postIDs(ctx context.Context, path string) ([]int64, error) {
	type postsResponse struct {
		PostsIDs []int64 `json:"posts_ids"`
	}

	res, err := c.r(ctx).
		SetResult(&postsResponse{}).
		Get(path)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*postsResponse).PostsIDs, nil
}

func (c *Client) GetPost(ctx context.Context, id int64) (*core.Post, error) {
	res, err := c.r(ctx).
		SetResult(&core.Post{}).
		Get(fmt.Sprintf("/posts/%d", id))
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*core.Post), nil
}

// UploadURL asks the API for a pre-authorized write destination for
// one binary object.
func (c *Client) UploadURL(ctx context.Context) (string, error) {
	type urlResponse struct {
		URL string `json:"url"`
	}

	res, err := c.r(ctx).
		SetResult(&urlResponse{}).
		Get(uploadURLPath)
	if err := c.check(res, err); err != nil {
		return "", err
	}

	return res.Result().(*urlResponse).URL, nil
}

// Upload PUTs the binary straight to the pre-authorized destination.
// The destination is absolute and outside the API base; no session
// cookies are attached.
func (c *Client) Upload(ctx context.Context, dest string, body io.Reader, contentType string) error {
	res, err := c.client.R().
		WithContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Put(dest)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("upload: unexpected status %s", res.Status())
	}
	return nil
}

func (c *Client) CreatePost(ctx context.Context, post CreatePostRequest) error {
	if post.ContentImagePath == nil {
		post.ContentImagePath = []string{}
	}
	res, err := c.r(ctx).
		SetBody(post).
		Post(postsPath)
	return c.check(res, err)
}
