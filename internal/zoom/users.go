package zoom

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetUser returns a user profile. userID may be an email, a user ID, or
// "me".
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var u User
	if err := c.GetJSON(ctx, "/users/"+userID, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserRaw returns the raw user profile for pretty-printing.
func (c *Client) GetUserRaw(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, "/users/"+userID, nil, nil)
}

// ListUsers returns the first page of users in the account. Requires admin
// scopes.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var page struct {
		Users []User `json:"users"`
	}
	if err := c.GetJSON(ctx, "/users", pageQuery(defaultPageSize), &page); err != nil {
		return nil, err
	}
	return page.Users, nil
}
