package digikey

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when authentication is attempted without
// a client ID and secret configured.
var ErrMissingCredentials = errors.New("CLIENT_ID and CLIENT_SECRET must be provided")

// AuthError is returned when the OAuth2 token endpoint answers with a
// non-200 status.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d: %s", e.StatusCode, e.Body)
}

// RequestError is returned when a product API endpoint answers with a
// non-200 status.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}
