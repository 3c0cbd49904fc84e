package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/pkg/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	s, err := New(Config{DSN: "file:" + tmpFile.Name() + "?mode=rwc"})
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
		os.Remove(tmpFile.Name())
	})

	return s
}

func makeArticle(id, headline string, published time.Time) *domain.Article {
	return &domain.Article{
		ID:        id,
		Headline:  headline,
		Summary:   "summary of " + headline,
		Source:    "TechDaily",
		URL:       "https://techdaily.example.com/" + id,
		Published: published,
		Sentiment: domain.SentimentNeutral,
		Emotions:  map[string]domain.EmotionLevel{"joy": domain.EmotionLow},
		Entities:  []string{"AI", "technology"},
		IngestedAt: time.Now().UTC(),
	}
}

func TestStore_InitSchema(t *testing.T) {
	s := setupTestStore(t)

	var count int
	err := s.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('articles', 'blacklist', 'review_queue')
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStore_PutGetArticle(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	published := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	article := makeArticle("abc123", "AI Breakthrough", published)
	article.QualityScore = 82.5

	created, err := s.PutArticle(ctx, article)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := s.GetArticle(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "AI Breakthrough", got.Headline)
	assert.Equal(t, domain.SentimentNeutral, got.Sentiment)
	assert.Equal(t, []string{"AI", "technology"}, got.Entities)
	assert.Equal(t, domain.EmotionLow, got.Emotions["joy"])
	assert.InEpsilon(t, 82.5, got.QualityScore, 0.001)
	assert.True(t, published.Equal(got.Published), "published: want %v got %v", published, got.Published)
	assert.Nil(t, got.LastServedAt)
}

func TestStore_PutArticle_Duplicate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	article := makeArticle("dup1", "First Version", time.Now().UTC())

	created, err := s.PutArticle(ctx, article)
	require.NoError(t, err)
	assert.True(t, created)

	// same id again is ignored, original record wins
	article.Headline = "Second Version"
	created, err = s.PutArticle(ctx, article)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := s.GetArticle(ctx, "dup1")
	require.NoError(t, err)
	assert.Equal(t, "First Version", got.Headline)
}

func TestStore_GetArticle_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetArticle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetArticles_TopicAndAge(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	fresh := makeArticle("a1", "AI Breakthrough", now.Add(-time.Hour))
	stale := makeArticle("a2", "AI History Lesson", now.Add(-40*24*time.Hour))
	offTopic := makeArticle("a3", "Gardening Tips", now.Add(-time.Hour))
	offTopic.Entities = []string{"gardening"}
	offTopic.Summary = "tips for gardens"

	for _, a := range []*domain.Article{fresh, stale, offTopic} {
		_, err := s.PutArticle(ctx, a)
		require.NoError(t, err)
	}

	articles, err := s.GetArticles(ctx, "ai", 30*24*time.Hour, 100)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0].ID)

	// empty topic matches everything inside the age window
	articles, err = s.GetArticles(ctx, "", 30*24*time.Hour, 100)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestStore_CountFreshMatches(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, id := range []string{"c1", "c2", "c3"} {
		a := makeArticle(id, "AI update", now.Add(-time.Duration(i)*time.Hour))
		_, err := s.PutArticle(ctx, a)
		require.NoError(t, err)
	}

	count, err := s.CountFreshMatches(ctx, "AI", 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = s.CountFreshMatches(ctx, "blockchain", 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_TouchServed(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.PutArticle(ctx, makeArticle("t1", "Article One", time.Now().UTC()))
	require.NoError(t, err)
	_, err = s.PutArticle(ctx, makeArticle("t2", "Article Two", time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, s.TouchServed(ctx, []string{"t1", "t2"}))

	got, err := s.GetArticle(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got.LastServedAt)
	assert.WithinDuration(t, time.Now().UTC(), *got.LastServedAt, 5*time.Second)

	// empty list is a no-op
	assert.NoError(t, s.TouchServed(ctx, nil))
}

func TestStore_DeleteOlderThan(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := s.PutArticle(ctx, makeArticle("old1", "Ancient News", now.Add(-60*24*time.Hour)))
	require.NoError(t, err)
	_, err = s.PutArticle(ctx, makeArticle("new1", "Fresh News", now.Add(-time.Hour)))
	require.NoError(t, err)

	deleted, err := s.DeleteOlderThan(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.GetArticle(ctx, "old1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetArticle(ctx, "new1")
	assert.NoError(t, err)
}

func TestStore_Blacklist(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.AddBlacklistEntry(ctx, domain.BlacklistEntry{
		Kind: domain.BlacklistSource, Value: "ClickHole", Reason: "satire"})
	require.NoError(t, err)
	err = s.AddBlacklistEntry(ctx, domain.BlacklistEntry{
		Kind: domain.BlacklistKeyword, Value: "sponsored content", Reason: "promotional"})
	require.NoError(t, err)

	entries, err := s.ListBlacklist(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.BlacklistKeyword, entries[0].Kind)
	assert.Equal(t, "clickhole", entries[1].Value, "value stored lowercased")

	// duplicate updates the reason
	err = s.AddBlacklistEntry(ctx, domain.BlacklistEntry{
		Kind: domain.BlacklistSource, Value: "clickhole", Reason: "still satire"})
	require.NoError(t, err)

	entries, err = s.ListBlacklist(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "still satire", entries[1].Reason)
}

func TestStore_SeedBlacklist(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddBlacklistEntry(ctx, domain.BlacklistEntry{
		Kind: domain.BlacklistSource, Value: "clickhole", Reason: "manually added"}))

	seed := []domain.BlacklistEntry{
		{Kind: domain.BlacklistSource, Value: "clickhole", Reason: "seed"},
		{Kind: domain.BlacklistSource, Value: "infowars", Reason: "low credibility"},
	}
	require.NoError(t, s.SeedBlacklist(ctx, seed))

	entries, err := s.ListBlacklist(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// seeding keeps existing reasons intact
	assert.Equal(t, "manually added", entries[0].Reason)
}

func TestStore_ReviewQueue(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	entry := domain.ReviewEntry{
		ID: "rev1",
		Candidate: domain.RawArticle{
			Headline:  "Borderline Piece",
			Body:      "could be news, could be marketing",
			Published: time.Now().UTC().Truncate(time.Second),
			Source:    "TechDaily",
			URL:       "https://techdaily.example.com/borderline",
		},
		Reason:    "ai_uncertain",
		DecidedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.AddReviewEntry(ctx, entry))

	entries, err := s.ListReviewEntries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Borderline Piece", entries[0].Candidate.Headline)
	assert.Equal(t, "ai_uncertain", entries[0].Reason)
	assert.False(t, entries[0].Candidate.Published.IsZero())

	require.NoError(t, s.DeleteReviewEntry(ctx, "rev1"))

	entries, err = s.ListReviewEntries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, s.DeleteReviewEntry(ctx, "rev1"), ErrNotFound)
}
