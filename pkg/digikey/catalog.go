package digikey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// SearchManufacturers retrieves all manufacturers known to the catalog
func (c *Client) SearchManufacturers(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Getting manufacturers")

	endpoint := c.baseURL + searchBasePath + "/manufacturers"
	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(""), nil)
	if err != nil {
		c.logger.Error("Get manufacturers failed", zap.Error(err))
		return nil, fmt.Errorf("get manufacturers failed: %w", err)
	}

	c.logger.Info("Successfully retrieved manufacturers", zap.Int("bytes", len(raw)))
	return raw, nil
}

// SearchCategories retrieves all product categories
func (c *Client) SearchCategories(ctx context.Context) (json.RawMessage, error) {
	c.logger.Info("Getting categories")

	endpoint := c.baseURL + searchBasePath + "/categories"
	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(""), nil)
	if err != nil {
		c.logger.Error("Get categories failed", zap.Error(err))
		return nil, fmt.Errorf("get categories failed: %w", err)
	}

	c.logger.Info("Successfully retrieved categories", zap.Int("bytes", len(raw)))
	return raw, nil
}

// CategoryByID retrieves a single category by its numeric ID
func (c *Client) CategoryByID(ctx context.Context, categoryID int) (json.RawMessage, error) {
	c.logger.Info("Getting category", zap.Int("category_id", categoryID))

	endpoint := fmt.Sprintf("%s%s/categories/%d", c.baseURL, searchBasePath, categoryID)
	raw, err := c.request(ctx, http.MethodGet, endpoint, c.Headers(""), nil)
	if err != nil {
		c.logger.Error("Get category failed",
			zap.Error(err),
			zap.Int("category_id", categoryID))
		return nil, fmt.Errorf("get category failed: %w", err)
	}

	c.logger.Info("Successfully retrieved category",
		zap.Int("category_id", categoryID),
		zap.Int("bytes", len(raw)))

	return raw, nil
}
