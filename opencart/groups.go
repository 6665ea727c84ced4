package opencart

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchAttributeGroups lists attribute groups. A non-empty name narrows the
// listing; an empty name omits the parameter entirely, which the server
// treats as "no filter".
func (c *Client) SearchAttributeGroups(ctx context.Context, name string) (*Response, error) {
	params := url.Values{}
	if name != "" {
		params.Set("name", name)
	}

	return c.request(ctx, http.MethodGet, "searchAttributeGroup", nil, params)
}

// GetAttributeGroup retrieves a single attribute group by ID.
func (c *Client) GetAttributeGroup(ctx context.Context, groupID int) (*Response, error) {
	if groupID <= 0 {
		return nil, newValidationError("invalid attribute group ID: %d", groupID)
	}

	params := url.Values{}
	params.Set("attribute_group_id", strconv.Itoa(groupID))

	return c.request(ctx, http.MethodGet, "getAttributeGroup", nil, params)
}

// AddAttributeGroup creates an attribute group from the given record.
func (c *Client) AddAttributeGroup(ctx context.Context, data map[string]any, encodeHTML bool) (*Response, error) {
	if len(data) == 0 {
		return nil, newValidationError("attribute group data cannot be empty")
	}

	return c.request(ctx, http.MethodPost, "addAttributeGroup", preparePayload(data, encodeHTML), nil)
}

// UpdateAttributeGroup applies a partial update to an attribute group.
func (c *Client) UpdateAttributeGroup(ctx context.Context, groupID int, data map[string]any, encodeHTML bool) (*Response, error) {
	if groupID <= 0 {
		return nil, newValidationError("invalid attribute group ID: %d", groupID)
	}
	if len(data) == 0 {
		return nil, newValidationError("attribute group data cannot be empty")
	}

	params := url.Values{}
	params.Set("attribute_group_id", strconv.Itoa(groupID))

	return c.request(ctx, http.MethodPost, "updateAttributeGroup", preparePayload(data, encodeHTML), params)
}

// DeleteAttributeGroup removes an attribute group by ID.
func (c *Client) DeleteAttributeGroup(ctx context.Context, groupID int) (*Response, error) {
	if groupID <= 0 {
		return nil, newValidationError("invalid attribute group ID: %d", groupID)
	}

	params := url.Values{}
	params.Set("attribute_group_id", strconv.Itoa(groupID))

	return c.request(ctx, http.MethodDelete, "deleteAttributeGroup", nil, params)
}
