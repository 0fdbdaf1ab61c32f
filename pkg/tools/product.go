package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/partstack/digikey-mcp/pkg/digikey"
	"go.uber.org/zap"
)

// SearchSubstitutionsInput defines the input schema for the substitutions
// tool.
type SearchSubstitutionsInput struct {
	ProductNumber      string `json:"product_number" jsonschema:"required,The product to get substitutions for"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Number of substitutions (default 10)"`
	SearchOptions      string `json:"search_options,omitempty" jsonschema:"Filters like LeadFree RoHSCompliant InStock"`
	ExcludeMarketplace bool   `json:"exclude_marketplace,omitempty" jsonschema:"Exclude marketplace products (default false)"`
}

// NewSearchSubstitutionsHandler creates the substitutions tool handler.
func NewSearchSubstitutionsHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchSubstitutionsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchSubstitutionsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProductNumber == "" {
			return ErrorResult("Product number cannot be empty", "Provide the product to find substitutions for"), nil, nil
		}

		raw, err := deps.Client.ProductSubstitutions(ctx, digikey.SubstitutionsParams{
			ProductNumber:      input.ProductNumber,
			Limit:              input.Limit,
			SearchOptions:      input.SearchOptions,
			ExcludeMarketplace: input.ExcludeMarketplace,
		})
		if err != nil {
			deps.Logger.Error("product substitutions tool failed",
				zap.Error(err),
				zap.String("product_number", input.ProductNumber))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// GetProductMediaInput defines the input schema for the product media tool.
type GetProductMediaInput struct {
	ProductNumber string `json:"product_number" jsonschema:"required,The product to get media for"`
}

// NewGetProductMediaHandler creates the product media tool handler.
func NewGetProductMediaHandler(deps *Dependencies) mcp.ToolHandlerFor[GetProductMediaInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetProductMediaInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProductNumber == "" {
			return ErrorResult("Product number cannot be empty", "Provide the product to get media for"), nil, nil
		}

		raw, err := deps.Client.ProductMedia(ctx, input.ProductNumber)
		if err != nil {
			deps.Logger.Error("product media tool failed",
				zap.Error(err),
				zap.String("product_number", input.ProductNumber))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// GetProductPricingInput defines the input schema for the pricing tool.
type GetProductPricingInput struct {
	ProductNumber     string `json:"product_number" jsonschema:"required,The product to get pricing for"`
	CustomerID        string `json:"customer_id,omitempty" jsonschema:"Customer ID for pricing (default 0)"`
	RequestedQuantity int    `json:"requested_quantity,omitempty" jsonschema:"Quantity for pricing calculation (default 1)"`
}

// NewGetProductPricingHandler creates the pricing tool handler.
func NewGetProductPricingHandler(deps *Dependencies) mcp.ToolHandlerFor[GetProductPricingInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetProductPricingInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProductNumber == "" {
			return ErrorResult("Product number cannot be empty", "Provide the product to get pricing for"), nil, nil
		}

		raw, err := deps.Client.ProductPricing(ctx, digikey.PricingParams{
			ProductNumber:     input.ProductNumber,
			CustomerID:        input.CustomerID,
			RequestedQuantity: input.RequestedQuantity,
		})
		if err != nil {
			deps.Logger.Error("product pricing tool failed",
				zap.Error(err),
				zap.String("product_number", input.ProductNumber))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// GetDigiReelPricingInput defines the input schema for the DigiReel pricing
// tool.
type GetDigiReelPricingInput struct {
	ProductNumber     string `json:"product_number" jsonschema:"required,DigiKey product number (must be DigiReel compatible)"`
	RequestedQuantity int    `json:"requested_quantity" jsonschema:"required,Quantity for DigiReel pricing"`
	CustomerID        string `json:"customer_id,omitempty" jsonschema:"Customer ID for pricing (default 0)"`
}

// NewGetDigiReelPricingHandler creates the DigiReel pricing tool handler.
func NewGetDigiReelPricingHandler(deps *Dependencies) mcp.ToolHandlerFor[GetDigiReelPricingInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetDigiReelPricingInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.ProductNumber == "" {
			return ErrorResult("Product number cannot be empty", "Provide a DigiReel compatible product number"), nil, nil
		}
		if input.RequestedQuantity <= 0 {
			return ErrorResult("Requested quantity must be positive", "Provide the quantity to price"), nil, nil
		}

		raw, err := deps.Client.DigiReelPricing(ctx, digikey.DigiReelPricingParams{
			ProductNumber:     input.ProductNumber,
			RequestedQuantity: input.RequestedQuantity,
			CustomerID:        input.CustomerID,
		})
		if err != nil {
			deps.Logger.Error("digireel pricing tool failed",
				zap.Error(err),
				zap.String("product_number", input.ProductNumber))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}
