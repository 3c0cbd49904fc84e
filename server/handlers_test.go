package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/pipeline"
	"github.com/umputun/newsinsight/pkg/search"
	"github.com/umputun/newsinsight/pkg/store"
	"github.com/umputun/newsinsight/server/mocks"
)

func testRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func testServer(searcher *mocks.SearcherMock, ingester *mocks.IngesterMock, st *mocks.StoreMock) *Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	return New(cfg, searcher, ingester, st, "test", false)
}

func TestServer_SearchHandler(t *testing.T) {
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, req search.Request) ([]domain.Article, error) {
			return []domain.Article{
				{ID: "a1", Headline: "first", Summary: "lead line\nsecond line"},
				{ID: "a2", Headline: "second"},
			}, nil
		},
	}
	srv := testServer(searcher, &mocks.IngesterMock{}, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodGet, "/api/v1/search?topic=climate&limit=5&age_days=7&sentiment=positive", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Topic    string           `json:"topic"`
		Count    int              `json:"count"`
		Articles []domain.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "climate", body.Topic)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Articles, 2)
	assert.Contains(t, rec.Body.String(), `"teaser":"lead line"`)

	require.Len(t, searcher.SearchCalls(), 1)
	req := searcher.SearchCalls()[0].Req
	assert.Equal(t, "climate", req.Topic)
	assert.Equal(t, 5, req.Limit)
	assert.Equal(t, 7, req.AgeDays)
	assert.Equal(t, domain.SentimentPositive, req.Sentiment)
}

func TestServer_SearchHandlerValidation(t *testing.T) {
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, &mocks.StoreMock{})

	tbl := []struct {
		name string
		url  string
	}{
		{"missing topic", "/api/v1/search"},
		{"bad limit", "/api/v1/search?topic=x&limit=abc"},
		{"negative limit", "/api/v1/search?topic=x&limit=-1"},
		{"bad age", "/api/v1/search?topic=x&age_days=oops"},
		{"unknown sentiment", "/api/v1/search?topic=x&sentiment=ecstatic"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			rec := testRequest(t, srv, http.MethodGet, tt.url, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_SearchHandlerError(t *testing.T) {
	searcher := &mocks.SearcherMock{
		SearchFunc: func(ctx context.Context, req search.Request) ([]domain.Article, error) {
			return nil, errors.New("store broken")
		},
	}
	srv := testServer(searcher, &mocks.IngesterMock{}, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodGet, "/api/v1/search?topic=climate", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "store broken")
}

func TestServer_IngestHandler(t *testing.T) {
	ingester := &mocks.IngesterMock{
		IngestFunc: func(ctx context.Context, topic string, limit int) (*pipeline.Result, error) {
			return &pipeline.Result{Topic: topic, Fetched: 10, Stored: 4}, nil
		},
	}
	srv := testServer(&mocks.SearcherMock{}, ingester, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodPost, "/api/v1/ingest", `{"topic":"fusion","limit":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "fusion", res.Topic)
	assert.Equal(t, 4, res.Stored)

	require.Len(t, ingester.IngestCalls(), 1)
	assert.Equal(t, 5, ingester.IngestCalls()[0].Limit)
}

func TestServer_IngestHandlerValidation(t *testing.T) {
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodPost, "/api/v1/ingest", `{"limit":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testRequest(t, srv, http.MethodPost, "/api/v1/ingest", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ArticleHandler(t *testing.T) {
	st := &mocks.StoreMock{
		GetArticleFunc: func(ctx context.Context, id string) (*domain.Article, error) {
			if id == "known" {
				return &domain.Article{ID: "known", Headline: "found it"}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, st)

	rec := testRequest(t, srv, http.MethodGet, "/api/v1/articles/known", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "found it")

	rec = testRequest(t, srv, http.MethodGet, "/api/v1/articles/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ExplainHandler(t *testing.T) {
	searcher := &mocks.SearcherMock{
		ExplainFunc: func(ctx context.Context, articleID string) (string, error) {
			if articleID == "known" {
				return "What happened: a thing.", nil
			}
			return "", store.ErrNotFound
		},
	}
	srv := testServer(searcher, &mocks.IngesterMock{}, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodGet, "/api/v1/articles/known/explain", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What happened")

	rec = testRequest(t, srv, http.MethodGet, "/api/v1/articles/missing/explain", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_AddBlacklistHandler(t *testing.T) {
	st := &mocks.StoreMock{
		AddBlacklistEntryFunc: func(ctx context.Context, entry domain.BlacklistEntry) error { return nil },
	}
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, st)

	rec := testRequest(t, srv, http.MethodPost, "/api/v1/blacklist",
		`{"kind":"source","value":"spam.example","reason":"clickbait farm"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, st.AddBlacklistEntryCalls(), 1)
	entry := st.AddBlacklistEntryCalls()[0].Entry
	assert.Equal(t, domain.BlacklistSource, entry.Kind)
	assert.Equal(t, "spam.example", entry.Value)
	assert.False(t, entry.AddedAt.IsZero())
}

func TestServer_AddBlacklistHandlerValidation(t *testing.T) {
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, &mocks.StoreMock{})

	rec := testRequest(t, srv, http.MethodPost, "/api/v1/blacklist", `{"kind":"color","value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testRequest(t, srv, http.MethodPost, "/api/v1/blacklist", `{"kind":"keyword","value":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ListBlacklistHandler(t *testing.T) {
	st := &mocks.StoreMock{
		ListBlacklistFunc: func(ctx context.Context) ([]domain.BlacklistEntry, error) {
			return []domain.BlacklistEntry{
				{Kind: domain.BlacklistKeyword, Value: "casino"},
				{Kind: domain.BlacklistSource, Value: "spam.example"},
			}, nil
		},
	}
	srv := testServer(&mocks.SearcherMock{}, &mocks.IngesterMock{}, st)

	rec := testRequest(t, srv, http.MethodGet, "/api/v1/blacklist", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "casino")
	assert.Contains(t, rec.Body.String(), "spam.example")
}
