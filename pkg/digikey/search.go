package digikey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	httpclient "github.com/partstack/digikey-mcp/pkg/http"
	"go.uber.org/zap"
)

// KeywordSearch searches the catalog by keyword
func (c *Client) KeywordSearch(ctx context.Context, params KeywordSearchParams) (json.RawMessage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	c.logger.Info("Searching products by keyword",
		zap.String("keywords", params.Keywords),
		zap.Int("limit", limit))

	body := KeywordSearchRequest{
		Keywords:       params.Keywords,
		Limit:          limit,
		ManufacturerID: params.ManufacturerID,
		CategoryID:     params.CategoryID,
	}
	if params.SearchOptions != "" {
		body.SearchOptionList = strings.Split(params.SearchOptions, ",")
	}
	if params.SortField != "" {
		sortOrder := params.SortOrder
		if sortOrder == "" {
			sortOrder = defaultSortOrder
		}
		body.SortOptions = &SortOptions{Field: params.SortField, SortOrder: sortOrder}
	}

	endpoint := c.baseURL + searchBasePath + "/keyword"
	raw, err := c.request(ctx, http.MethodPost, endpoint, c.Headers(""), body)
	if err != nil {
		c.logger.Error("Keyword search failed",
			zap.Error(err),
			zap.String("keywords", params.Keywords))
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}

	c.logger.Info("Keyword search completed",
		zap.String("keywords", params.Keywords),
		zap.Int("bytes", len(raw)))

	return raw, nil
}

// ProductDetails retrieves details for a single product by DigiKey or
// manufacturer part number
func (c *Client) ProductDetails(ctx context.Context, params ProductDetailsParams) (json.RawMessage, error) {
	c.logger.Info("Getting product details",
		zap.String("product_number", params.ProductNumber))

	query := map[string]string{}
	if params.ManufacturerID != "" {
		query["manufacturerId"] = params.ManufacturerID
	}

	endpoint, err := httpclient.BuildURL(c.baseURL, searchBasePath+"/"+params.ProductNumber+"/productdetails", query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(params.CustomerID), nil)
	if err != nil {
		c.logger.Error("Get product details failed",
			zap.Error(err),
			zap.String("product_number", params.ProductNumber))
		return nil, fmt.Errorf("get product details failed: %w", err)
	}

	c.logger.Info("Successfully retrieved product details",
		zap.String("product_number", params.ProductNumber),
		zap.Int("bytes", len(raw)))

	return raw, nil
}
