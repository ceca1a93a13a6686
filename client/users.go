package client

import (
	"context"
	"fmt"

	"sufra/model"
)

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.doJSON(ctx, "GET", "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetUserBlocked flips a user's blocked flag, the api enforces who may
// do this.
func (c *Client) SetUserBlocked(ctx context.Context, id int, blocked bool) error {
	body := map[string]bool{"blocked": blocked}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/users/%d/blocked", id), nil, body, nil)
}

func (c *Client) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, "POST", "/users", nil, req, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
