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

	"github.com/partstack/digikey-mcp/pkg/server"
)

func TestServerCreation(t *testing.T) {
	srv := server.New("0.0.1-test", zaptest.NewLogger(t))

	require.NotNil(t, srv)
	require.NotNil(t, srv.MCPServer())
}

func TestHealthEndpoint(t *testing.T) {
	srv := server.New("0.0.1-test", zaptest.NewLogger(t))

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "ok", "service": "digikey-mcp"}, body)
}

func TestServerHandshake(t *testing.T) {
	srv := server.New("0.0.1-test", zaptest.NewLogger(t))
	srv.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	go func() {
		_ = srv.MCPServer().Run(ctx, serverTransport)
	}()

	// Give the server a moment to start.
	time.Sleep(50 * time.Millisecond)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	res := session.InitializeResult()
	require.NotNil(t, res)
	assert.Equal(t, "digikey-mcp", res.ServerInfo.Name)
	assert.Equal(t, "0.0.1-test", res.ServerInfo.Version)

	// The logging middleware must pass requests through untouched.
	require.NoError(t, session.Ping(ctx, nil))
}
