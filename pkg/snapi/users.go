package snapi

import (
	"context"
	"fmt"
	"net/http"

	"socialite/internal/core"
)

const (
	loginPath  = "/users/login"
	signupPath = "/users/signup"
)

type Credentials struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type Registration struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
}

// LoginResult is the server's answer to a login attempt. A zero
// User.UserID is the contract's "no such user" sentinel; Message then
// explains the rejection. Cookies carries whatever session cookies the
// server set.
type LoginResult struct {
	Message string
	User    core.User
	Cookies []*http.Cookie
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	type loginResponse struct {
		Message string    `json:"message"`
		User    core.User `json:"user"`
	}

	res, err := c.r(ctx).
		SetBody(creds).
		SetResult(&loginResponse{}).
		Post(loginPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	body := res.Result().(*loginResponse)
	return &LoginResult{
		Message: body.Message,
		User:    body.User,
		Cookies: res.Cookies(),
	}, nil
}

func (c *Client) Signup(ctx context.Context, info Registration) error {
	res, err := c.r(ctx).
		SetBody(info).
		Post(signupPath)
	return c.check(res, err)
}

func (c *Client) GetUser(ctx context.Context, id int64) (*core.User, error) {
	res, err := c.r(ctx).
		SetResult(&core.User{}).
		Get(fmt.Sprintf("/users/%d", id))
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*core.User), nil
}
