// Package content recovers full article bodies for candidates whose
// provider payload was truncated or trail-text only.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// Extractor fetches a page and extracts its main text with trafilatura
type Extractor struct {
	client        *http.Client
	userAgent     string
	minTextLength int
}

// Params holds extractor settings
type Params struct {
	Timeout       time.Duration
	UserAgent     string
	MinTextLength int // extracted text below this length counts as a failure
}

// NewExtractor creates a content extractor
func NewExtractor(params Params) *Extractor {
	if params.Timeout <= 0 {
		params.Timeout = 15 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = "Mozilla/5.0 (compatible; newsinsight/1.0)"
	}
	if params.MinTextLength <= 0 {
		params.MinTextLength = 100
	}
	return &Extractor{
		client:        &http.Client{Timeout: params.Timeout},
		userAgent:     params.UserAgent,
		minTextLength: params.MinTextLength,
	}
}

// Extract fetches the URL and returns the main text of the page
func (e *Extractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, urlStr)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsed,
	})
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", urlStr, err)
	}
	if result == nil || result.ContentText == "" {
		return "", fmt.Errorf("no text extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if len(text) < e.minTextLength {
		return "", fmt.Errorf("extracted text too short (%d chars) from %s", len(text), urlStr)
	}
	return text, nil
}
