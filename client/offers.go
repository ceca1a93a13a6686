package client

import (
	"context"
	"fmt"

	"sufra/model"
)

func (c *Client) Offers(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	if err := c.doJSON(ctx, "GET", "/offers", nil, nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateOffer opens an offer window on one menu item. start and end
// instants must already be shifted for the api by the caller.
func (c *Client) CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error) {
	var created model.Offer
	if err := c.doJSON(ctx, "POST", "/offers", nil, offer, &created); err != nil {
		return model.Offer{}, err
	}
	return created, nil
}

func (c *Client) UpdateOffer(ctx context.Context, offer model.Offer) error {
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/offers/%d", offer.ID), nil, offer, nil)
}

func (c *Client) DeleteOffer(ctx context.Context, id int) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/offers/%d", id), nil, nil, nil)
}
