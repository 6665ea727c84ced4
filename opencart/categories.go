package opencart

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetAllCategories lists categories, paginated with start and limit; limit
// is capped at MaxPageSize.
func (c *Client) GetAllCategories(ctx context.Context, start, limit int) (*Response, error) {
	if limit > MaxPageSize {
		return nil, newValidationError("limit cannot exceed %d items", MaxPageSize)
	}

	params := url.Values{}
	params.Set("start", strconv.Itoa(start))
	params.Set("limit", strconv.Itoa(limit))

	return c.request(ctx, http.MethodGet, "getAllCategories", nil, params)
}

// SearchCategories finds categories by name.
func (c *Client) SearchCategories(ctx context.Context, name string) (*Response, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("search name cannot be empty")
	}

	params := url.Values{}
	params.Set("name", name)

	return c.request(ctx, http.MethodGet, "searchCategories", nil, params)
}
