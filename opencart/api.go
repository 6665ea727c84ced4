package opencart

import (
	"context"
)

// API defines the interface for Product API operations
type API interface {
	// TestConnection verifies the server is reachable and the key is accepted
	TestConnection(ctx context.Context) error

	// GetDebugInfo fetches the server's diagnostic endpoint
	GetDebugInfo(ctx context.Context) (*Response, error)

	// SearchProducts looks up products by name with pagination
	SearchProducts(ctx context.Context, name string, start, limit int) (*Response, error)

	// GetProduct retrieves a single product by ID
	GetProduct(ctx context.Context, productID int) (*Response, error)

	// UpdateProduct applies a partial update to a product
	UpdateProduct(ctx context.Context, productID int, data map[string]any, encodeHTML bool) (*Response, error)

	// SearchAttributesByKey finds attributes by name
	SearchAttributesByKey(ctx context.Context, key string) (*Response, error)

	// SearchAttributesByValue finds attributes by value text
	SearchAttributesByValue(ctx context.Context, value string) (*Response, error)

	// GetAttribute retrieves a single attribute by ID
	GetAttribute(ctx context.Context, attributeID int) (*Response, error)

	// AddAttribute creates an attribute
	AddAttribute(ctx context.Context, data map[string]any, encodeHTML bool) (*Response, error)

	// UpdateAttribute applies a partial update to an attribute
	UpdateAttribute(ctx context.Context, attributeID int, data map[string]any, encodeHTML bool) (*Response, error)

	// DeleteAttribute removes an attribute by ID
	DeleteAttribute(ctx context.Context, attributeID int) (*Response, error)

	// SearchAttributeGroups lists attribute groups, optionally filtered by name
	SearchAttributeGroups(ctx context.Context, name string) (*Response, error)

	// GetAttributeGroup retrieves a single attribute group by ID
	GetAttributeGroup(ctx context.Context, groupID int) (*Response, error)

	// AddAttributeGroup creates an attribute group
	AddAttributeGroup(ctx context.Context, data map[string]any, encodeHTML bool) (*Response, error)

	// UpdateAttributeGroup applies a partial update to an attribute group
	UpdateAttributeGroup(ctx context.Context, groupID int, data map[string]any, encodeHTML bool) (*Response, error)

	// DeleteAttributeGroup removes an attribute group by ID
	DeleteAttributeGroup(ctx context.Context, groupID int) (*Response, error)

	// GetAllCategories lists categories with pagination
	GetAllCategories(ctx context.Context, start, limit int) (*Response, error)

	// SearchCategories finds categories by name
	SearchCategories(ctx context.Context, name string) (*Response, error)
}
