package digikey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/partstack/digikey-mcp/pkg/config"
	httpclient "github.com/partstack/digikey-mcp/pkg/http"
	"go.uber.org/zap"
)

const (
	productionBaseURL = "https://api.digikey.com"
	sandboxBaseURL    = "https://sandbox-api.digikey.com"

	tokenPath      = "/v1/oauth2/token"
	searchBasePath = "/products/v4/search"
)

const (
	defaultSearchLimit       = 5
	defaultSubstitutionLimit = 10
	defaultQuantity          = 1
	defaultSortOrder         = "Ascending"
	defaultCustomerID        = "0"
)

// Client is the DigiKey Product Search API client
type Client struct {
	config     *config.Config
	httpClient *httpclient.Client
	tokenCache *tokenCache
	logger     *zap.Logger

	authMu   sync.Mutex
	baseURL  string
	tokenURL string
}

var _ API = (*Client)(nil)

// tokenCache holds the OAuth access token with thread-safe access.
// The token is requested once at startup and kept for the life of the
// process; there is no expiry tracking or refresh.
type tokenCache struct {
	mu          sync.RWMutex
	accessToken string
}

func (t *tokenCache) get() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accessToken
}

func (t *tokenCache) set(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accessToken = token
}

// NewClient creates a new DigiKey client with a default production logger
func NewClient(cfg *config.Config) *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a new DigiKey client with a custom logger
func NewClientWithLogger(cfg *config.Config, logger *zap.Logger) *Client {
	baseURL := productionBaseURL
	if cfg.UseSandbox {
		baseURL = sandboxBaseURL
	}
	return &Client{
		config:     cfg,
		httpClient: httpclient.NewClientWithLogger(logger),
		tokenCache: &tokenCache{},
		logger:     logger,
		baseURL:    baseURL,
		tokenURL:   baseURL + tokenPath,
	}
}

// WithBaseURL points the client at a different API host. Token and product
// requests always share the same host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	c.tokenURL = baseURL + tokenPath
	return c
}

// Headers returns the standard headers for product API requests. An empty
// customerID falls back to "0".
func (c *Client) Headers(customerID string) map[string]string {
	if customerID == "" {
		customerID = defaultCustomerID
	}
	return map[string]string{
		"Authorization":             "Bearer " + c.tokenCache.get(),
		"X-DIGIKEY-Client-Id":       c.config.ClientID,
		"Content-Type":              "application/json",
		"X-DIGIKEY-Locale-Site":     "US",
		"X-DIGIKEY-Locale-Language": "en",
		"X-DIGIKEY-Locale-Currency": "USD",
		"X-DIGIKEY-Customer-Id":     customerID,
	}
}

// request executes a product API call and returns the raw JSON response.
// Upstream payloads are passed through byte for byte, never reshaped.
func (c *Client) request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}) (json.RawMessage, error) {
	var resp *httpclient.Response
	var err error

	switch method {
	case http.MethodGet:
		resp, err = c.httpClient.Get(ctx, endpoint, headers)
	case http.MethodPost:
		resp, err = c.httpClient.Post(ctx, endpoint, headers, body)
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("failed to parse response body: not valid JSON")
	}

	return json.RawMessage(resp.Body), nil
}
