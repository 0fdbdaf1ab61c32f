package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all DigiKey tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Keyword search - the primary catalog entry point
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_search_tool",
		Description: "Search DigiKey products by keyword",
	}, NewKeywordSearchHandler(deps))

	// Product details by part number
	mcp.AddTool(server, &mcp.Tool{
		Name:        "product_details_tool",
		Description: "Get detailed information for a specific product",
	}, NewProductDetailsHandler(deps))

	// Manufacturer directory
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_manufacturers_tool",
		Description: "Search and retrieve all product manufacturers",
	}, NewSearchManufacturersHandler(deps))

	// Category directory
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_categories_tool",
		Description: "Search and retrieve all product categories",
	}, NewSearchCategoriesHandler(deps))

	// Single category lookup
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_category_by_id_tool",
		Description: "Get specific category details by ID",
	}, NewGetCategoryByIDHandler(deps))

	// Substitute products
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_product_substitutions_tool",
		Description: "Search for product substitutions for a given product",
	}, NewSearchSubstitutionsHandler(deps))

	// Datasheets, images and videos
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product_media_tool",
		Description: "Get media (images, documents, videos) for a product",
	}, NewGetProductMediaHandler(deps))

	// Price breaks at a requested quantity
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product_pricing_tool",
		Description: "Get detailed pricing information for a product",
	}, NewGetProductPricingHandler(deps))

	// Custom reel pricing
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_digi_reel_pricing_tool",
		Description: "Get DigiReel pricing for a product",
	}, NewGetDigiReelPricingHandler(deps))
}
