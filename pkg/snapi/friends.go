package snapi

import (
	"context"
	"fmt"
)

// Followers lists the ids of users following the given user.
func (c *Client) Followers(ctx context.Context, userID int64) ([]int64, error) {
	type followersResponse struct {
		FollowersIDs []int64 `json:"followers_ids"`
	}

	res, err := c.r(ctx).
		SetResult(&followersResponse{}).
		Get(fmt.Sprintf("/friends/%d/followers", userID))
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*followersResponse).FollowersIDs, nil
}

// Follow creates a follow edge from the viewer to userID.
func (c *Client) Follow(ctx context.Context, userID int64) error {
	res, err := c.r(ctx).Post(fmt.Sprintf("/friends/%d", userID))
	return c.check(res, err)
}

// Unfollow removes the viewer's follow edge to userID.
func (c *Client) Unfollow(ctx context.Context, userID int64) error {
	res, err := c.r(ctx).Delete(fmt.Sprintf("/friends/%d", userID))
	return c.check(res, err)
}
