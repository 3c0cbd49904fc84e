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

func TestGuardian_Fetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "elections", r.URL.Query().Get("q"))
		assert.Equal(t, "newest", r.URL.Query().Get("order-by"))
		assert.Equal(t, "headline,trailText,bodyText,byline", r.URL.Query().Get("show-fields"))
		assert.Equal(t, "g-key", r.URL.Query().Get("api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response": {
				"status": "ok",
				"results": [
					{
						"webTitle": "Election results are in",
						"webUrl": "https://www.theguardian.com/politics/results",
						"webPublicationDate": "2025-06-01T08:30:00Z",
						"fields": {
							"headline": "Election night: the results",
							"trailText": "A short trail.",
							"bodyText": "The full body text of the election report.",
							"byline": "Political Staff"
						}
					},
					{
						"webTitle": "Trail only piece",
						"webUrl": "https://www.theguardian.com/politics/trail",
						"webPublicationDate": "2025-06-01T07:00:00Z",
						"fields": {"trailText": "Just the trail text."}
					}
				]
			}
		}`))
	}))
	defer ts.Close()

	g := NewGuardian(GuardianParams{Key: "g-key", Endpoint: ts.URL, PageSize: 20})
	articles, err := g.Fetch(context.Background(), "elections", 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Election night: the results", articles[0].Headline, "fields headline preferred over webTitle")
	assert.Equal(t, "The full body text of the election report.", articles[0].Body)
	assert.Equal(t, "guardian", articles[0].Source)
	assert.Equal(t, "Political Staff", articles[0].Author)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC), articles[0].Published)

	assert.Equal(t, "Trail only piece", articles[1].Headline)
	assert.Equal(t, "Just the trail text.", articles[1].Body, "trail text used when body missing")
}

func TestGuardian_FetchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"response":{"status":"error","message":"invalid api key"}}`))
	}))
	defer ts.Close()

	g := NewGuardian(GuardianParams{Key: "bad", Endpoint: ts.URL})
	_, err := g.Fetch(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGuardian_FetchWithoutKey(t *testing.T) {
	g := NewGuardian(GuardianParams{})
	articles, err := g.Fetch(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
