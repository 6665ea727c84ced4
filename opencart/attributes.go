package opencart

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchAttributesByKey finds attributes whose name matches key.
func (c *Client) SearchAttributesByKey(ctx context.Context, key string) (*Response, error) {
	if strings.TrimSpace(key) == "" {
		return nil, newValidationError("search key cannot be empty")
	}

	params := url.Values{}
	params.Set("key", key)

	return c.request(ctx, http.MethodGet, "searchAttributeByKey", nil, params)
}

// SearchAttributesByValue finds attributes carrying the given value text.
func (c *Client) SearchAttributesByValue(ctx context.Context, value string) (*Response, error) {
	if strings.TrimSpace(value) == "" {
		return nil, newValidationError("search value cannot be empty")
	}

	params := url.Values{}
	params.Set("value", value)

	return c.request(ctx, http.MethodGet, "searchAttributeByValue", nil, params)
}

// GetAttribute retrieves a single attribute by ID.
func (c *Client) GetAttribute(ctx context.Context, attributeID int) (*Response, error) {
	if attributeID <= 0 {
		return nil, newValidationError("invalid attribute ID: %d", attributeID)
	}

	params := url.Values{}
	params.Set("attribute_id", strconv.Itoa(attributeID))

	return c.request(ctx, http.MethodGet, "getAttribute", nil, params)
}

// AddAttribute creates an attribute from the given record.
func (c *Client) AddAttribute(ctx context.Context, data map[string]any, encodeHTML bool) (*Response, error) {
	if len(data) == 0 {
		return nil, newValidationError("attribute data cannot be empty")
	}

	return c.request(ctx, http.MethodPost, "addAttribute", preparePayload(data, encodeHTML), nil)
}

// UpdateAttribute applies a partial update to an attribute.
func (c *Client) UpdateAttribute(ctx context.Context, attributeID int, data map[string]any, encodeHTML bool) (*Response, error) {
	if attributeID <= 0 {
		return nil, newValidationError("invalid attribute ID: %d", attributeID)
	}
	if len(data) == 0 {
		return nil, newValidationError("attribute data cannot be empty")
	}

	params := url.Values{}
	params.Set("attribute_id", strconv.Itoa(attributeID))

	return c.request(ctx, http.MethodPost, "updateAttribute", preparePayload(data, encodeHTML), params)
}

// DeleteAttribute removes an attribute by ID.
func (c *Client) DeleteAttribute(ctx context.Context, attributeID int) (*Response, error) {
	if attributeID <= 0 {
		return nil, newValidationError("invalid attribute ID: %d", attributeID)
	}

	params := url.Values{}
	params.Set("attribute_id", strconv.Itoa(attributeID))

	return c.request(ctx, http.MethodDelete, "deleteAttribute", nil, params)
}
