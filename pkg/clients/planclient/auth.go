package planclient

import (
	"context"
	"net/http"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// Session is the credential and account returned by login and register
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges username/password for a session token
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		credentialsRequest{Username: username, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates a new account and returns its first session
func (c *Client) Register(ctx context.Context, username, password string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil,
		credentialsRequest{Username: username, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates the current session server-side. Callers clear the
// stored credential regardless of the outcome, so errors here are advisory.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
