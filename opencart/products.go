package opencart

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchProducts looks up products by name. Results are paginated with start
// and limit; limit is capped at MaxPageSize.
func (c *Client) SearchProducts(ctx context.Context, name string, start, limit int) (*Response, error) {
	if limit > MaxPageSize {
		return nil, newValidationError("limit cannot exceed %d items", MaxPageSize)
	}

	params := url.Values{}
	params.Set("name", name)
	params.Set("start", strconv.Itoa(start))
	params.Set("limit", strconv.Itoa(limit))

	return c.request(ctx, http.MethodGet, "searchProduct", nil, params)
}

// GetProduct retrieves a single product by ID. A missing product surfaces as
// an HTTPError with status 404.
func (c *Client) GetProduct(ctx context.Context, productID int) (*Response, error) {
	if productID <= 0 {
		return nil, newValidationError("invalid product ID: %d", productID)
	}

	params := url.Values{}
	params.Set("product_id", strconv.Itoa(productID))

	return c.request(ctx, http.MethodGet, "getProduct", nil, params)
}

// UpdateProduct applies a partial update to a product. Fields absent from
// data are left unchanged server-side. With encodeHTML set, string fields
// are entity-escaped before transmission for servers that store rich text
// escaped.
func (c *Client) UpdateProduct(ctx context.Context, productID int, data map[string]any, encodeHTML bool) (*Response, error) {
	if productID <= 0 {
		return nil, newValidationError("invalid product ID: %d", productID)
	}

	params := url.Values{}
	params.Set("product_id", strconv.Itoa(productID))

	return c.request(ctx, http.MethodPost, "updateProduct", preparePayload(data, encodeHTML), params)
}
