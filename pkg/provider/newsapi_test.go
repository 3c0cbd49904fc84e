package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsAPI_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "climate", r.URL.Query().Get("q"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"source": {"name": "Example News"},
					"author": "Jane Reporter",
					"title": "Climate summit opens",
					"description": "Leaders gather.",
					"url": "https://example.com/summit",
					"publishedAt": "2025-06-01T09:00:00Z",
					"content": "Leaders gather in the capital for the annual climate summit. [+2481 chars]"
				},
				{
					"source": {"name": "Other"},
					"title": "",
					"url": "https://example.com/untitled"
				},
				{
					"source": {"name": "Example News"},
					"title": "No content article",
					"description": "Only a description here.",
					"url": "https://example.com/short",
					"publishedAt": "not-a-date",
					"content": ""
				}
			]
		}`))
	}))
	defer ts.Close()

	n := NewNewsAPI(NewsAPIParams{Key: "test-key", Endpoint: ts.URL, PageSize: 20})
	articles, err := n.Fetch(context.Background(), "climate", 10)
	require.NoError(t, err)
	require.Len(t, articles, 2, "untitled article dropped")

	assert.Equal(t, "Climate summit opens", articles[0].Headline)
	assert.Equal(t, "Leaders gather in the capital for the annual climate summit.", articles[0].Body, "truncation marker stripped")
	assert.Equal(t, "Example News", articles[0].Source)
	assert.Equal(t, "Jane Reporter", articles[0].Author)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), articles[0].Published)

	assert.Equal(t, "Only a description here.", articles[1].Body, "description used when content empty")
	assert.True(t, articles[1].Published.IsZero(), "unparseable date stays zero")
}

func TestNewsAPI_FetchLimitCapsPageSize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer ts.Close()

	n := NewNewsAPI(NewsAPIParams{Key: "k", Endpoint: ts.URL, PageSize: 20})
	_, err := n.Fetch(context.Background(), "anything", 3)
	require.NoError(t, err)
}

func TestNewsAPI_FetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","message":"apiKey invalid"}`))
	}))
	defer ts.Close()

	n := NewNewsAPI(NewsAPIParams{Key: "bad", Endpoint: ts.URL})
	_, err := n.Fetch(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "apiKey invalid")
}

func TestNewsAPI_FetchWithoutKey(t *testing.T) {
	n := NewNewsAPI(NewsAPIParams{})
	articles, err := n.Fetch(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, articles, "unconfigured provider yields nothing")
}
