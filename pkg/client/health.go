package client

import "context"

// Health checks whether the API is reachable
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, "GET", "/health", nil, nil)
}
