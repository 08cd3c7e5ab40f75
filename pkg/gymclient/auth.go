package gymclient

import (
	"context"
	"errors"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Register creates the account and keeps its token for later calls.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	var resp struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/a/register", nil, credentials{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.switchUser(resp.Token)
	return &resp.User, nil
}

// Login keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/a/login", nil, credentials{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}

	c.switchUser(resp.Token)
	return nil
}

// Logout ends the server session. The local token and cache are dropped even
// when the server no longer knows the session.
func (c *Client) Logout(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodPost, "/a/logout", nil, nil)
	c.switchUser("")
	if err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if _, err := c.doJSON(ctx, http.MethodGet, "/a/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// switchUser replaces the token. Cached reads belong to the previous user.
func (c *Client) switchUser(token string) {
	c.setToken(token)
	c.cache.Clear()
}
