package opencart

import (
	"context"
	"fmt"
	"net/http"
)

// GetDebugInfo fetches the server's diagnostic endpoint: API version, token
// configuration and table path detection. The envelope carries extra
// top-level members beyond the common fields; read them via Field.
func (c *Client) GetDebugInfo(ctx context.Context) (*Response, error) {
	return c.request(ctx, http.MethodGet, "debugInfo", nil, nil)
}

// TestConnection verifies the server is reachable and the API key is
// accepted by performing a debug round-trip.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.GetDebugInfo(ctx); err != nil {
		return fmt.Errorf("failed to connect to OpenCart: %w", err)
	}
	return nil
}
