package digikey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/partstack/digikey-mcp/pkg/config"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAuthenticateRequiresCredentials(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewClientWithLogger(&config.Config{}, zaptest.NewLogger(t)).WithBaseURL(srv.URL)

	err := client.Authenticate(context.Background())
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, calls.Load(), "no network call should be made without credentials")
}

func TestAuthenticate(t *testing.T) {
	var gotPath, gotContentType, gotGrantType, gotClientID, gotClientSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = r.ParseForm()
		gotGrantType = r.FormValue("grant_type")
		gotClientID = r.FormValue("client_id")
		gotClientSecret = r.FormValue("client_secret")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"token_type":   "Bearer",
			"expires_in":   599,
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	require.NoError(t, client.Authenticate(context.Background()))

	assert.Equal(t, "/v1/oauth2/token", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "client_credentials", gotGrantType)
	assert.Equal(t, "test-client", gotClientID)
	assert.Equal(t, "test-secret", gotClientSecret)
	assert.Equal(t, "Bearer tok-123", client.Headers("")["Authorization"])
}

func TestAuthenticateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	err := client.Authenticate(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Equal(t, `{"error":"invalid_client"}`, authErr.Body)
}

func TestEnsureAuthenticatedSingleFlight(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	var wg conc.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Go(func() {
			_ = client.EnsureAuthenticated(context.Background())
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent callers should share one token request")

	require.NoError(t, client.EnsureAuthenticated(context.Background()))
	assert.Equal(t, int32(1), calls.Load(), "an existing token should be reused")
}
