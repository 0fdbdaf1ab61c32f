package digikey

import (
	"context"
	"encoding/json"
)

// API defines the DigiKey operations available to tool handlers
type API interface {
	// Authenticate retrieves an OAuth2 access token
	Authenticate(ctx context.Context) error

	// EnsureAuthenticated authenticates on first use only
	EnsureAuthenticated(ctx context.Context) error

	// KeywordSearch searches the catalog by keyword
	KeywordSearch(ctx context.Context, params KeywordSearchParams) (json.RawMessage, error)

	// ProductDetails retrieves details for a single product
	ProductDetails(ctx context.Context, params ProductDetailsParams) (json.RawMessage, error)

	// SearchManufacturers retrieves all manufacturers
	SearchManufacturers(ctx context.Context) (json.RawMessage, error)

	// SearchCategories retrieves all product categories
	SearchCategories(ctx context.Context) (json.RawMessage, error)

	// CategoryByID retrieves a single category
	CategoryByID(ctx context.Context, categoryID int) (json.RawMessage, error)

	// ProductSubstitutions retrieves substitute products
	ProductSubstitutions(ctx context.Context, params SubstitutionsParams) (json.RawMessage, error)

	// ProductMedia retrieves media assets for a product
	ProductMedia(ctx context.Context, productNumber string) (json.RawMessage, error)

	// ProductPricing retrieves pricing for a product
	ProductPricing(ctx context.Context, params PricingParams) (json.RawMessage, error)

	// DigiReelPricing retrieves DigiReel pricing for a product
	DigiReelPricing(ctx context.Context, params DigiReelPricingParams) (json.RawMessage, error)
}
