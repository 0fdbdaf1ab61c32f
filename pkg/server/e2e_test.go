package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/partstack/digikey-mcp/pkg/config"
	"github.com/partstack/digikey-mcp/pkg/digikey"
	"github.com/partstack/digikey-mcp/pkg/server"
	"github.com/partstack/digikey-mcp/pkg/tools"
)

// newSessionAgainst wires the full stack the way main does: a real client
// pointed at the given upstream, authenticated, registered on a server, and
// connected over an in-memory transport.
func newSessionAgainst(t *testing.T, upstreamURL string) *mcp.ClientSession {
	t.Helper()

	logger := zaptest.NewLogger(t)
	cfg := &config.Config{ClientID: "e2e-client", ClientSecret: "e2e-secret"}
	client := digikey.NewClientWithLogger(cfg, logger).WithBaseURL(upstreamURL)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, client.EnsureAuthenticated(ctx))

	srv := server.New("0.0.1-test", logger)
	srv.Setup()
	tools.RegisterAll(srv.MCPServer(), &tools.Dependencies{Client: client, Logger: logger})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	go func() {
		_ = srv.MCPServer().Run(ctx, serverTransport)
	}()

	// Give the server a moment to start.
	time.Sleep(50 * time.Millisecond)

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func issueToken(w http.ResponseWriter) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": "tok-e2e",
		"token_type":   "Bearer",
		"expires_in":   599,
	})
}

func TestCategoryByIDPassesBodyThroughUnchanged(t *testing.T) {
	const upstream = `{"Categories":[{"CategoryId":"1"}]}`

	var gotAuth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			issueToken(w)
		case "/products/v4/search/categories/1":
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(upstream))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer api.Close()

	session := newSessionAgainst(t, api.URL)

	ctx := context.Background()
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_category_by_id_tool",
		Arguments: map[string]any{"category_id": 1},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	textContent, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	// The upstream body must survive byte for byte, string IDs included.
	assert.Equal(t, upstream, textContent.Text)
	assert.Equal(t, "Bearer tok-e2e", gotAuth)
}

func TestDigiReelPricingRequestShape(t *testing.T) {
	const upstream = `{"ReelingFee":7.0,"UnitPrice":0.1}`

	var gotPath, gotQuery, gotCustomer string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			issueToken(w)
			return
		}
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCustomer = r.Header.Get("X-DIGIKEY-Customer-Id")
		_, _ = w.Write([]byte(upstream))
	}))
	defer api.Close()

	session := newSessionAgainst(t, api.URL)

	ctx := context.Background()
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "get_digi_reel_pricing_tool",
		Arguments: map[string]any{
			"product_number":     "296-1721-1-ND",
			"requested_quantity": 100,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	textContent, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, upstream, textContent.Text)

	assert.Equal(t, "/products/v4/search/296-1721-1-ND/digireelpricing", gotPath)
	assert.Equal(t, "requestedQuantity=100", gotQuery)
	assert.Equal(t, "0", gotCustomer)
}
