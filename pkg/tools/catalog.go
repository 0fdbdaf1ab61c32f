package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// SearchManufacturersInput defines the input schema for the manufacturers
// tool. The tool takes no arguments.
type SearchManufacturersInput struct{}

// NewSearchManufacturersHandler creates the manufacturers listing handler.
func NewSearchManufacturersHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchManufacturersInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchManufacturersInput) (
		*mcp.CallToolResult, any, error,
	) {
		raw, err := deps.Client.SearchManufacturers(ctx)
		if err != nil {
			deps.Logger.Error("search manufacturers tool failed", zap.Error(err))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// SearchCategoriesInput defines the input schema for the categories tool.
// The tool takes no arguments.
type SearchCategoriesInput struct{}

// NewSearchCategoriesHandler creates the categories listing handler.
func NewSearchCategoriesHandler(deps *Dependencies) mcp.ToolHandlerFor[SearchCategoriesInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchCategoriesInput) (
		*mcp.CallToolResult, any, error,
	) {
		raw, err := deps.Client.SearchCategories(ctx)
		if err != nil {
			deps.Logger.Error("search categories tool failed", zap.Error(err))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}

// GetCategoryByIDInput defines the input schema for the category lookup tool.
type GetCategoryByIDInput struct {
	CategoryID int `json:"category_id" jsonschema:"required,The category ID to retrieve"`
}

// NewGetCategoryByIDHandler creates the category lookup handler.
func NewGetCategoryByIDHandler(deps *Dependencies) mcp.ToolHandlerFor[GetCategoryByIDInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetCategoryByIDInput) (
		*mcp.CallToolResult, any, error,
	) {
		raw, err := deps.Client.CategoryByID(ctx, input.CategoryID)
		if err != nil {
			deps.Logger.Error("get category tool failed",
				zap.Error(err),
				zap.Int("category_id", input.CategoryID))
			return ErrorResult(err.Error(), ""), nil, nil
		}

		return TextResult(string(raw)), nil, nil
	}
}
