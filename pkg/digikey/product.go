package digikey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	httpclient "github.com/partstack/digikey-mcp/pkg/http"
	"go.uber.org/zap"
)

// ProductSubstitutions retrieves substitute products for a part number
func (c *Client) ProductSubstitutions(ctx context.Context, params SubstitutionsParams) (json.RawMessage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSubstitutionLimit
	}

	c.logger.Info("Getting product substitutions",
		zap.String("product_number", params.ProductNumber),
		zap.Int("limit", limit))

	// searchOptionList stays comma-delimited here; only the keyword
	// endpoint expects it split into an array.
	query := map[string]string{
		"limit":                      strconv.Itoa(limit),
		"excludeMarketPlaceProducts": strconv.FormatBool(params.ExcludeMarketplace),
	}
	if params.SearchOptions != "" {
		query["searchOptionList"] = params.SearchOptions
	}

	endpoint, err := httpclient.BuildURL(c.baseURL, searchBasePath+"/"+params.ProductNumber+"/substitutions", query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(""), nil)
	if err != nil {
		c.logger.Error("Get product substitutions failed",
			zap.Error(err),
			zap.String("product_number", params.ProductNumber))
		return nil, fmt.Errorf("get product substitutions failed: %w", err)
	}

	c.logger.Info("Successfully retrieved product substitutions",
		zap.String("product_number", params.ProductNumber),
		zap.Int("bytes", len(raw)))

	return raw, nil
}

// ProductMedia retrieves media assets (datasheets, images) for a product
func (c *Client) ProductMedia(ctx context.Context, productNumber string) (json.RawMessage, error) {
	c.logger.Info("Getting product media", zap.String("product_number", productNumber))

	endpoint := c.baseURL + searchBasePath + "/" + productNumber + "/media"
	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(""), nil)
	if err != nil {
		c.logger.Error("Get product media failed",
			zap.Error(err),
			zap.String("product_number", productNumber))
		return nil, fmt.Errorf("get product media failed: %w", err)
	}

	c.logger.Info("Successfully retrieved product media",
		zap.String("product_number", productNumber),
		zap.Int("bytes", len(raw)))

	return raw, nil
}

// ProductPricing retrieves pricing for a product at a requested quantity
func (c *Client) ProductPricing(ctx context.Context, params PricingParams) (json.RawMessage, error) {
	quantity := params.RequestedQuantity
	if quantity <= 0 {
		quantity = defaultQuantity
	}

	c.logger.Info("Getting product pricing",
		zap.String("product_number", params.ProductNumber),
		zap.Int("requested_quantity", quantity))

	query := map[string]string{
		"requestedQuantity": strconv.Itoa(quantity),
	}

	endpoint, err := httpclient.BuildURL(c.baseURL, searchBasePath+"/"+params.ProductNumber+"/productpricing", query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(params.CustomerID), nil)
	if err != nil {
		c.logger.Error("Get product pricing failed",
			zap.Error(err),
			zap.String("product_number", params.ProductNumber))
		return nil, fmt.Errorf("get product pricing failed: %w", err)
	}

	c.logger.Info("Successfully retrieved product pricing",
		zap.String("product_number", params.ProductNumber),
		zap.Int("bytes", len(raw)))

	return raw, nil
}

// DigiReelPricing retrieves custom reel pricing for a product. The requested
// quantity is sent exactly as given; the endpoint requires it.
func (c *Client) DigiReelPricing(ctx context.Context, params DigiReelPricingParams) (json.RawMessage, error) {
	c.logger.Info("Getting DigiReel pricing",
		zap.String("product_number", params.ProductNumber),
		zap.Int("requested_quantity", params.RequestedQuantity))

	query := map[string]string{
		"requestedQuantity": strconv.Itoa(params.RequestedQuantity),
	}

	endpoint, err := httpclient.BuildURL(c.baseURL, searchBasePath+"/"+params.ProductNumber+"/digireelpricing", query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(params.CustomerID), nil)
	if err != nil {
		c.logger.Error("Get DigiReel pricing failed",
			zap.Error(err),
			zap.String("product_number", params.ProductNumber))
		return nil, fmt.Errorf("get DigiReel pricing failed: %w", err)
	}

	c.logger.Info("Successfully retrieved DigiReel pricing",
		zap.String("product_number", params.ProductNumber),
		zap.Int("bytes", len(raw)))

	return raw, nil
}
