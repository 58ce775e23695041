package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yashsurani047/workmanagement1-sub000/internal/session"
)

type loginResponse struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	OrganizationID string `json:"organization_id"`
	Token          string `json:"token"`
}

// Login exchanges credentials for a session. No refresh flow exists; an
// expired token means logging in again.
func (c *Client) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Field: "username", Message: "username and password are required"}
	}

	payload := map[string]string{
		"username": username,
		"password": password,
	}
	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "auth/login/", payload, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" || resp.UserID == "" {
		return nil, fmt.Errorf("login: backend returned an incomplete session")
	}

	sess := &session.Session{
		UserID:         resp.UserID,
		Username:       resp.Username,
		OrganizationID: resp.OrganizationID,
		Token:          resp.Token,
	}
	// Subsequent calls on this client use the fresh identity.
	*c.session = *sess
	return sess, nil
}
