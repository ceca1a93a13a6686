package client

import (
	"context"
	"fmt"

	"sufra/model"
)

// Branches returns the outlet list for the report filter and the admin
// console.
func (c *Client) Branches(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	if err := c.doJSON(ctx, "GET", "/branches", nil, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) BranchByID(ctx context.Context, id int) (model.Branch, error) {
	var branch model.Branch
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/branches/%d", id), nil, nil, &branch); err != nil {
		return model.Branch{}, err
	}
	return branch, nil
}

// UpdateBranchTimes writes a branch's opening hours. times must already
// be shifted for the backend by the caller.
func (c *Client) UpdateBranchTimes(ctx context.Context, id int, opening, closing string) error {
	body := map[string]string{
		"openingTime": opening,
		"closingTime": closing,
	}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/branches/%d/times", id), nil, body, nil)
}
