package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/partstack/digikey-mcp/pkg/digikey"
	"go.uber.org/zap"
)

// KeywordSearchInput defines the input schema for the keyword search tool.
type KeywordSearchInput struct {
	Keywords       string `json:"keywords" jsonschema:"required,Search terms or part numbers"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 5)"`
	ManufacturerID string `json:"manufacturer_id,omitempty" jsonschema:"Filter by specific manufacturer ID"`
	CategoryID     string `json:"category_id,omitempty" jsonschema:"Filter by specific category ID"`
	SearchOptions  string `json:"search_options,omitempty" jsonschema:"Comma-delimited filters like LeadFree RoHSCompliant InStock"`
	SortField      string `json:"sort_field,omitempty" jsonschema:"Field to sort by such as Price Manufacturer or QuantityAvailable"`
	SortOrder      string `json:"sort_order,omitempty" jsonschema:"Sort direction - Ascending or Descending (default Ascending)"`
}

// NewKeywordSearchHandler creates the keyword search tool handler.
func NewKeywordSearchHandler(deps *Dependencies) mcp.ToolHandlerFor[KeywordSearchInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input KeywordSearchInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Keywords == "" {
			return ErrorResult("Keywords cannot be empty", "Provide search terms or a part number"), nil, nil
		}

		raw, err := deps.Client.KeywordSearch(ctx, digikey.KeywordSearchParams{
			Keywords:       input.Keywords,
			Limit:          input.Limit,
			ManufacturerID: input.ManufacturerID,
			CategoryID:     input.CategoryID,
			SearchOptions:  input.SearchOptions,
			SortField:      input.SortField,
			SortOrder:      input.SortOrder,
		})
		if err != nil {
			deps.Logger.Error("keyword search tool failed", zap.Error(err))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// ProductDetailsInput defines the input schema for the product details tool.
type ProductDetailsInput struct {
	ProductNumber  string `json:"product_number" jsonschema:"required,DigiKey or manufacturer part number"`
	ManufacturerID string `json:"manufacturer_id,omitempty" jsonschema:"Optional manufacturer ID for disambiguation"`
	CustomerID     string `json:"customer_id,omitempty" jsonschema:"Customer ID for pricing (default 0)"`
}

// NewProductDetailsHandler creates the product details tool handler.
func NewProductDetailsHandler(deps *Dependencies) mcp.ToolHandlerFor[ProductDetailsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProductDetailsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProductNumber == "" {
			return ErrorResult("Product number cannot be empty", "Provide a DigiKey or manufacturer part number"), nil, nil
		}

		raw, err := deps.Client.ProductDetails(ctx, digikey.ProductDetailsParams{
			ProductNumber:  input.ProductNumber,
			ManufacturerID: input.ManufacturerID,
			CustomerID:     input.CustomerID,
		})
		if err != nil {
			deps.Logger.Error("product details tool failed",
				zap.Error(err),
				zap.String("product_number", input.ProductNumber))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}
