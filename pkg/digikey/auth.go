package digikey

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Authenticate requests an OAuth2 access token using the client credentials
// grant and stores it for subsequent requests
func (c *Client) Authenticate(ctx context.Context) error {
	if c.config.ClientID == "" || c.config.ClientSecret == "" {
		return ErrMissingCredentials
	}

	environment := "PRODUCTION"
	if c.config.UseSandbox {
		environment = "SANDBOX"
	}
	c.logger.Info("Requesting access token",
		zap.String("environment", environment),
		zap.String("url", c.tokenURL))

	authReq := AuthRequest{
		GrantType:    "client_credentials",
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
	}

	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}

	resp, err := c.httpClient.Post(ctx, c.tokenURL, headers, authReq)
	if err != nil {
		c.logger.Error("Authentication request failed", zap.Error(err), zap.String("url", c.tokenURL))
		return fmt.Errorf("authentication request failed: %w", err)
	}

	if resp.StatusCode != 200 {
		c.logger.Error("Authentication failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(resp.Body)))
		return &AuthError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	var authResp AuthResponse
	if err := json.Unmarshal(resp.Body, &authResp); err != nil {
		c.logger.Error("Failed to parse authentication response", zap.Error(err))
		return fmt.Errorf("failed to parse authentication response: %w", err)
	}

	c.tokenCache.set(authResp.AccessToken)
	c.logger.Info("Successfully obtained access token",
		zap.String("token_type", authResp.TokenType))

	return nil
}

// EnsureAuthenticated authenticates on first use. Concurrent callers share a
// single token request.
func (c *Client) EnsureAuthenticated(ctx context.Context) error {
	if c.tokenCache.get() != "" {
		return nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.tokenCache.get() != "" {
		return nil
	}
	return c.Authenticate(ctx)
}
