package filter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/filter/mocks"
	"github.com/umputun/newsinsight/pkg/llm"
)

func testRules() Rules {
	return Rules{MinWords: 10, MaxWords: 100, MaxAge: 48 * time.Hour}
}

func wordsOf(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func acceptingClassifier() *mocks.ClassifierMock {
	return &mocks.ClassifierMock{
		CheckLegitimacyFunc: func(ctx context.Context, article domain.RawArticle) (*llm.Legitimacy, error) {
			return &llm.Legitimacy{Category: "news_article", QualityScore: 0.9, Recommendation: "accept"}, nil
		},
	}
}

func testArticle(now time.Time) domain.RawArticle {
	return domain.RawArticle{
		Headline:  "city council approves budget",
		Body:      wordsOf(50),
		Published: now.Add(-time.Hour),
		Source:    "example.com",
		URL:       "https://example.com/budget",
	}
}

func TestFilter_Accept(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	classifier := acceptingClassifier()
	f := New(testRules(), classifier)
	f.now = func() time.Time { return now }

	decision := f.Check(context.Background(), testArticle(now), NewSnapshot(nil))
	assert.Equal(t, VerdictAccept, decision.Verdict)
	assert.Equal(t, ReasonNone, decision.Reason)
	assert.InDelta(t, 0.9, decision.QualityScore, 0.001)
	assert.Len(t, classifier.CheckLegitimacyCalls(), 1)
}

func TestFilter_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := New(testRules(), acceptingClassifier())
	f.now = func() time.Time { return now }

	article := testArticle(now)
	snapshot := NewSnapshot([]domain.BlacklistEntry{{Kind: domain.BlacklistKeyword, Value: "lottery"}})
	first := f.Check(context.Background(), article, snapshot)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, f.Check(context.Background(), article, snapshot))
	}
}

func TestFilter_LengthBounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := New(testRules(), acceptingClassifier())
	f.now = func() time.Time { return now }

	tbl := []struct {
		name    string
		words   int
		verdict Verdict
	}{
		{"below min", 9, VerdictReject},
		{"at min", 10, VerdictAccept},
		{"at max", 100, VerdictAccept},
		{"above max", 101, VerdictReject},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			article := testArticle(now)
			article.Body = wordsOf(tt.words)
			decision := f.Check(context.Background(), article, NewSnapshot(nil))
			assert.Equal(t, tt.verdict, decision.Verdict)
			if tt.verdict == VerdictReject {
				assert.Equal(t, ReasonLength, decision.Reason)
				assert.Contains(t, decision.Detail, "words")
			}
		})
	}
}

func TestFilter_AgeBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := New(testRules(), acceptingClassifier())
	f.now = func() time.Time { return now }

	t.Run("exactly at max age accepted", func(t *testing.T) {
		article := testArticle(now)
		article.Published = now.Add(-48 * time.Hour)
		decision := f.Check(context.Background(), article, NewSnapshot(nil))
		assert.Equal(t, VerdictAccept, decision.Verdict)
	})

	t.Run("one second older rejected", func(t *testing.T) {
		article := testArticle(now)
		article.Published = now.Add(-48*time.Hour - time.Second)
		decision := f.Check(context.Background(), article, NewSnapshot(nil))
		assert.Equal(t, VerdictReject, decision.Verdict)
		assert.Equal(t, ReasonAge, decision.Reason)
	})

	t.Run("missing date rejected", func(t *testing.T) {
		article := testArticle(now)
		article.Published = time.Time{}
		decision := f.Check(context.Background(), article, NewSnapshot(nil))
		assert.Equal(t, VerdictReject, decision.Verdict)
		assert.Equal(t, ReasonAge, decision.Reason)
		assert.Equal(t, "no publication date", decision.Detail)
	})
}

func TestFilter_BlacklistedSource(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	classifier := acceptingClassifier()
	f := New(testRules(), classifier)
	f.now = func() time.Time { return now }

	snapshot := NewSnapshot([]domain.BlacklistEntry{{Kind: domain.BlacklistSource, Value: "Example.com"}})
	article := testArticle(now)
	article.Source = "www.example.com"

	decision := f.Check(context.Background(), article, snapshot)
	assert.Equal(t, VerdictReject, decision.Verdict)
	assert.Equal(t, ReasonBlacklistedSource, decision.Reason)
	assert.Empty(t, classifier.CheckLegitimacyCalls(), "blacklist must short-circuit the AI stage")
}

func TestFilter_BlacklistedKeyword(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	classifier := acceptingClassifier()
	f := New(testRules(), classifier)
	f.now = func() time.Time { return now }

	snapshot := NewSnapshot([]domain.BlacklistEntry{{Kind: domain.BlacklistKeyword, Value: "Casino"}})

	t.Run("in headline", func(t *testing.T) {
		article := testArticle(now)
		article.Headline = "new CASINO opens downtown"
		decision := f.Check(context.Background(), article, snapshot)
		assert.Equal(t, VerdictReject, decision.Verdict)
		assert.Equal(t, ReasonBlacklistedKeyword, decision.Reason)
		assert.Contains(t, decision.Detail, "casino")
	})

	t.Run("in body", func(t *testing.T) {
		article := testArticle(now)
		article.Body = wordsOf(30) + " visit the casino today " + wordsOf(30)
		decision := f.Check(context.Background(), article, snapshot)
		assert.Equal(t, VerdictReject, decision.Verdict)
		assert.Equal(t, ReasonBlacklistedKeyword, decision.Reason)
	})

	assert.Empty(t, classifier.CheckLegitimacyCalls())
}

func TestFilter_RuleOrder(t *testing.T) {
	// a candidate failing several rules at once reports the earliest one
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := New(testRules(), acceptingClassifier())
	f.now = func() time.Time { return now }

	snapshot := NewSnapshot([]domain.BlacklistEntry{{Kind: domain.BlacklistSource, Value: "spam.example"}})
	article := domain.RawArticle{
		Headline:  "old and short and blacklisted",
		Body:      wordsOf(3),
		Published: now.Add(-30 * 24 * time.Hour),
		Source:    "spam.example",
	}

	decision := f.Check(context.Background(), article, snapshot)
	assert.Equal(t, ReasonLength, decision.Reason, "length runs before age and blacklist")
}

func TestFilter_AIVerdicts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tbl := []struct {
		name    string
		result  *llm.Legitimacy
		err     error
		verdict Verdict
		reason  Reason
	}{
		{"reject recommendation", &llm.Legitimacy{Category: "advertisement", QualityScore: 0.1, Recommendation: "reject", Reasoning: "promo content"}, nil, VerdictReject, ReasonAIRejected},
		{"accept but not news", &llm.Legitimacy{Category: "opinion", QualityScore: 0.6, Recommendation: "accept"}, nil, VerdictNeedsReview, ReasonAIUncertain},
		{"review recommendation", &llm.Legitimacy{Category: "news_article", QualityScore: 0.5, Recommendation: "review"}, nil, VerdictNeedsReview, ReasonAIUncertain},
		{"classifier error", nil, errors.New("llm unavailable"), VerdictNeedsReview, ReasonAIUncertain},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			classifier := &mocks.ClassifierMock{
				CheckLegitimacyFunc: func(ctx context.Context, article domain.RawArticle) (*llm.Legitimacy, error) {
					return tt.result, tt.err
				},
			}
			f := New(testRules(), classifier)
			f.now = func() time.Time { return now }

			decision := f.Check(context.Background(), testArticle(now), NewSnapshot(nil))
			assert.Equal(t, tt.verdict, decision.Verdict)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestFilter_NilClassifier(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := New(testRules(), nil)
	f.now = func() time.Time { return now }

	decision := f.Check(context.Background(), testArticle(now), NewSnapshot(nil))
	assert.Equal(t, VerdictNeedsReview, decision.Verdict)
	assert.Equal(t, ReasonAIUncertain, decision.Reason)
}

func TestSnapshot(t *testing.T) {
	snapshot := NewSnapshot([]domain.BlacklistEntry{
		{Kind: domain.BlacklistSource, Value: "https://WWW.Tabloid.example/"},
		{Kind: domain.BlacklistSource, Value: "spam.example"},
		{Kind: domain.BlacklistKeyword, Value: " Giveaway "},
		{Kind: domain.BlacklistKeyword, Value: ""},
	})
	require.Equal(t, 3, snapshot.Len(), "empty values are dropped")

	assert.True(t, snapshot.BlockedSource("tabloid.example"))
	assert.True(t, snapshot.BlockedSource("www.tabloid.example"))
	assert.True(t, snapshot.BlockedSource("SPAM.example"))
	assert.False(t, snapshot.BlockedSource("news.example"))

	kw, found := snapshot.MatchKeyword("huge GIVEAWAY this weekend")
	assert.True(t, found)
	assert.Equal(t, "giveaway", kw)

	_, found = snapshot.MatchKeyword("regular news text")
	assert.False(t, found)
}
