package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/enrich/mocks"
	"github.com/umputun/newsinsight/pkg/llm"
)

func testRaw() domain.RawArticle {
	return domain.RawArticle{
		Headline:  "senate passes transit funding bill",
		Body:      "The senate voted 62-38 to approve a transit funding package covering the next five years.",
		Published: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Source:    "example.com",
		URL:       "https://example.com/transit-bill",
	}
}

func TestEnricher_Enrich(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return &llm.Analysis{
				OverallSentiment: "positive",
				Emotions:         map[string]string{"joy": "medium", "trust": "high", "bewilderment": "high"},
				Entities: []llm.Entity{
					{Type: "organization", Text: "Senate"},
					{Type: "organization", Text: "senate"}, // dup, different case
					{Type: "topic", Text: "transit funding"},
				},
				Summary: "Senate approves five-year transit package.",
			}, nil
		},
	}
	e := New(analyzer)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	raw := testRaw()
	article := e.Enrich(context.Background(), raw, 0.85)

	assert.Equal(t, domain.MakeID(raw.URL, raw.Headline), article.ID)
	assert.Equal(t, raw.Headline, article.Headline)
	assert.Equal(t, domain.SentimentPositive, article.Sentiment)
	assert.Equal(t, "Senate approves five-year transit package.", article.Summary)
	assert.InDelta(t, 0.85, article.QualityScore, 0.001)
	assert.Equal(t, now, article.IngestedAt)
	assert.False(t, article.Unenriched)

	// full vocabulary present, unknown emotion dropped
	require.Len(t, article.Emotions, 8)
	assert.Equal(t, domain.EmotionMedium, article.Emotions["joy"])
	assert.Equal(t, domain.EmotionHigh, article.Emotions["trust"])
	assert.Equal(t, domain.EmotionNone, article.Emotions["anger"])
	assert.NotContains(t, article.Emotions, "bewilderment")

	// deduplicated, extraction order kept
	assert.Equal(t, []string{"Senate", "transit funding"}, article.Entities)

	require.Len(t, analyzer.AnalyzeCalls(), 1)
	assert.Contains(t, analyzer.AnalyzeCalls()[0].Text, raw.Headline)
}

func TestEnricher_EntityOrderFollowsExtraction(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return &llm.Analysis{
				OverallSentiment: "neutral",
				Entities: []llm.Entity{
					{Type: "organization", Text: "Zebra Corp"},
					{Type: "organization", Text: "Alpha Inc"},
					{Type: "location", Text: "Midtown"},
				},
				Summary: "summary",
			}, nil
		},
	}
	e := New(analyzer)

	article := e.Enrich(context.Background(), testRaw(), 0.7)

	// extraction order, never alphabetical
	assert.Equal(t, []string{"Zebra Corp", "Alpha Inc", "Midtown"}, article.Entities)
}

func TestEnricher_DegradesOnAnalyzerError(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return nil, errors.New("model unavailable")
		},
	}
	e := New(analyzer)

	raw := testRaw()
	article := e.Enrich(context.Background(), raw, 0.5)

	assert.True(t, article.Unenriched)
	assert.Equal(t, domain.SentimentNeutral, article.Sentiment)
	assert.Empty(t, article.Emotions)
	assert.Nil(t, article.Entities)
	assert.Equal(t, raw.Body, article.Summary, "short body kept whole as summary")
	assert.Equal(t, domain.MakeID(raw.URL, raw.Headline), article.ID, "identity does not depend on enrichment")
}

func TestEnricher_DegradesWithoutAnalyzer(t *testing.T) {
	e := New(nil)
	article := e.Enrich(context.Background(), testRaw(), 0)
	assert.True(t, article.Unenriched)
	assert.Equal(t, domain.SentimentNeutral, article.Sentiment)
}

func TestEnricher_FallbackSummaryTruncated(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return nil, errors.New("boom")
		},
	}
	e := New(analyzer)

	raw := testRaw()
	raw.Body = strings.Repeat("x", 1000)
	article := e.Enrich(context.Background(), raw, 0)
	assert.Equal(t, fallbackSummaryLimit+1, len([]rune(article.Summary)), "limit runes plus ellipsis")
	assert.True(t, strings.HasSuffix(article.Summary, "…"))
}

func TestEnricher_UnknownSentimentDefaultsNeutral(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return &llm.Analysis{OverallSentiment: "ecstatic", Summary: "s"}, nil
		},
	}
	e := New(analyzer)

	article := e.Enrich(context.Background(), testRaw(), 0)
	assert.Equal(t, domain.SentimentNeutral, article.Sentiment)
	assert.False(t, article.Unenriched, "sentiment fallback is not a degraded article")
}

func TestEnricher_EmptySummaryFallsBackToBody(t *testing.T) {
	analyzer := &mocks.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, text string) (*llm.Analysis, error) {
			return &llm.Analysis{OverallSentiment: "neutral"}, nil
		},
	}
	e := New(analyzer)

	raw := testRaw()
	article := e.Enrich(context.Background(), raw, 0)
	assert.Equal(t, raw.Body, article.Summary)
}
