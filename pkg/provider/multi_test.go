package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/provider/mocks"
)

func fixedProvider(name string, articles []domain.RawArticle, err error) *mocks.ProviderMock {
	return &mocks.ProviderMock{
		NameFunc: func() string { return name },
		FetchFunc: func(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
			return articles, err
		},
	}
}

func TestMulti_FetchMergesAndDedups(t *testing.T) {
	first := fixedProvider("first", []domain.RawArticle{
		{Headline: "story A from first", URL: "https://example.com/a"},
		{Headline: "story B", URL: "https://example.com/b"},
	}, nil)
	second := fixedProvider("second", []domain.RawArticle{
		{Headline: "story A from second", URL: "https://WWW.example.com/a/"}, // same after normalization
		{Headline: "story C", URL: "https://example.com/c"},
		{Headline: "no url"},
	}, nil)

	m := NewMulti(5*time.Second, first, second)
	articles, err := m.Fetch(context.Background(), "story", 10)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	// configuration order wins on duplicates
	assert.Equal(t, "story A from first", articles[0].Headline)
	assert.Equal(t, "story B", articles[1].Headline)
	assert.Equal(t, "story C", articles[2].Headline)
}

func TestMulti_FetchToleratesProviderFailure(t *testing.T) {
	failing := fixedProvider("failing", nil, errors.New("rate limited"))
	working := fixedProvider("working", []domain.RawArticle{
		{Headline: "only story", URL: "https://example.com/only"},
	}, nil)

	m := NewMulti(5*time.Second, failing, working)
	articles, err := m.Fetch(context.Background(), "anything", 10)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "only story", articles[0].Headline)
}

func TestMulti_FetchAllFailedIsError(t *testing.T) {
	m := NewMulti(5*time.Second,
		fixedProvider("a", nil, errors.New("down")),
		fixedProvider("b", nil, errors.New("also down")))

	articles, err := m.Fetch(context.Background(), "anything", 10)
	require.Error(t, err, "total provider failure must not look like an empty result")
	assert.Contains(t, err.Error(), "all providers failed")
	assert.Contains(t, err.Error(), "down")
	assert.Empty(t, articles)
}

func TestMulti_FetchSingleProviderFailureIsError(t *testing.T) {
	m := NewMulti(5*time.Second, fixedProvider("only", nil, errors.New("unreachable")))

	articles, err := m.Fetch(context.Background(), "anything", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only: unreachable")
	assert.Empty(t, articles)
}

func TestMulti_FetchNoProvidersConfigured(t *testing.T) {
	m := NewMulti(5 * time.Second)

	articles, err := m.Fetch(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestMulti_FetchSlowProviderCutOff(t *testing.T) {
	slow := &mocks.ProviderMock{
		NameFunc: func() string { return "slow" },
		FetchFunc: func(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return []domain.RawArticle{{Headline: "too late", URL: "https://example.com/late"}}, nil
			}
		},
	}
	fast := fixedProvider("fast", []domain.RawArticle{
		{Headline: "in time", URL: "https://example.com/fast"},
	}, nil)

	m := NewMulti(100*time.Millisecond, slow, fast)
	start := time.Now()
	articles, err := m.Fetch(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, articles, 1)
	assert.Equal(t, "in time", articles[0].Headline)
}
