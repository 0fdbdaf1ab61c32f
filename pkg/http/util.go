package http

import (
	"fmt"
	"net/url"
)

// BuildURL joins a base URL, a path, and query parameters into a full URL.
// An empty parameter map produces no query string.
func BuildURL(baseURL, path string, queryParams map[string]string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}
	u.Path = path

	q := url.Values{}
	for key, value := range queryParams {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
