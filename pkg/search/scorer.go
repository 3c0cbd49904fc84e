package search

import (
	"sort"
	"strings"
	"time"

	"github.com/umputun/newsinsight/pkg/config"
	"github.com/umputun/newsinsight/pkg/domain"
)

// scorer ranks articles for a topic at a fixed point in time. Scoring is a
// pure function of the article, the terms and the clock, so a ranked list
// can be cached and replayed.
type scorer struct {
	weights config.RankWeights
	now     time.Time
	window  time.Duration // age window, recency decays to zero at its edge
}

// score computes the relevance of one article
func (s *scorer) score(a *domain.Article, terms []string) float64 {
	total := s.weights.Recency * s.recency(a.Published)
	total += s.weights.Headline * float64(countTerms(a.Headline, terms))
	total += s.weights.Entity * float64(countTerms(strings.Join(a.Entities, " "), terms))
	total += s.weights.Summary * float64(countTerms(a.Summary, terms))
	if !a.Unenriched {
		total += s.weights.EnrichedBonus
	}
	return total
}

// recency decays linearly from 1 for a just-published article to 0 at the
// window edge
func (s *scorer) recency(published time.Time) float64 {
	if published.IsZero() || s.window <= 0 {
		return 0
	}
	age := s.now.Sub(published)
	if age <= 0 {
		return 1
	}
	if age >= s.window {
		return 0
	}
	return 1 - float64(age)/float64(s.window)
}

// rank sorts articles by score, highest first. Ties break to the newer
// article, then to the lexically smaller ID so equal inputs always produce
// the same order.
func (s *scorer) rank(articles []domain.Article, terms []string) []domain.Article {
	type scored struct {
		article domain.Article
		score   float64
	}
	list := make([]scored, len(articles))
	for i := range articles {
		list[i] = scored{article: articles[i], score: s.score(&articles[i], terms)}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}
		if !list[i].article.Published.Equal(list[j].article.Published) {
			return list[i].article.Published.After(list[j].article.Published)
		}
		return list[i].article.ID < list[j].article.ID
	})
	result := make([]domain.Article, len(list))
	for i := range list {
		result[i] = list[i].article
	}
	return result
}

// countTerms counts occurrences of all terms in the text, case-insensitive
func countTerms(text string, terms []string) int {
	if text == "" || len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for _, term := range terms {
		count += strings.Count(lower, term)
	}
	return count
}

// topicTerms splits a topic into lowercase search terms
func topicTerms(topic string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(topic)))
}
