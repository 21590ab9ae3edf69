package myhttp

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// HostnameWithScheme returns the origin the browser used to reach us, so that
// provider redirects land back on the same deployment.
func HostnameWithScheme(r *http.Request) string {
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL != "" {
		return strings.TrimSuffix(baseURL, "/")
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	forwardedProto := r.Header.Get("X-Forwarded-Proto")
	if forwardedProto != "" {
		scheme = forwardedProto
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
