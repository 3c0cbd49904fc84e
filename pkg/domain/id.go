package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// MakeID derives the stable article identity from its URL, falling back to
// the headline when the URL is empty. The ID is the first 16 hex chars of
// the sha256 digest, matching the identity of previously ingested records.
func MakeID(articleURL, headline string) string {
	base := articleURL
	if base == "" {
		base = headline
	}
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])[:16]
}

// NormalizeURL canonicalizes a URL for cross-provider deduplication:
// lowercased scheme and host, no www prefix, no trailing slash, no fragment
// and no query string.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Scheme) + "://" + host + path
}
