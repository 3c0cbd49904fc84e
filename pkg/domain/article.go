package domain

import (
	"strings"
	"time"
)

// RawArticle is an unprocessed candidate as returned by a news provider.
// It has no identity beyond its URL and is never persisted directly.
type RawArticle struct {
	Headline  string
	Body      string
	Published time.Time // zero value means missing or unparseable
	Source    string
	URL       string
	Author    string
}

// Text returns the searchable text of the candidate, headline first
func (r *RawArticle) Text() string {
	parts := make([]string, 0, 2)
	if r.Headline != "" {
		parts = append(parts, r.Headline)
	}
	if r.Body != "" {
		parts = append(parts, r.Body)
	}
	return strings.Join(parts, " ")
}

// WordCount counts whitespace-separated words in the body, the headline
// does not contribute to length checks
func (r *RawArticle) WordCount() int {
	return len(strings.Fields(r.Body))
}

// Article is the durable, filtered, enriched record served to consumers.
// Immutable after creation except for LastServedAt bookkeeping.
type Article struct {
	ID           string                  `json:"id"`
	Headline     string                  `json:"headline"`
	Summary      string                  `json:"summary"`
	Source       string                  `json:"source"`
	URL          string                  `json:"url"`
	Published    time.Time               `json:"published"`
	Sentiment    Sentiment               `json:"sentiment"`
	Emotions     map[string]EmotionLevel `json:"emotions,omitempty"`
	Entities     []string                `json:"entities,omitempty"`
	QualityScore float64                 `json:"quality_score"`
	Unenriched   bool                    `json:"unenriched,omitempty"`
	IngestedAt   time.Time               `json:"ingested_at"`
	LastServedAt *time.Time              `json:"last_served_at,omitempty"`
}

// Teaser returns the first line of the summary truncated to limit runes
func (a *Article) Teaser(limit int) string {
	s := strings.TrimSpace(a.Summary)
	if s == "" {
		return ""
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// MatchesTopic reports whether the article's headline, entities or summary
// contain the topic term, case-insensitive. Empty topic matches everything.
func (a *Article) MatchesTopic(topic string) bool {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Headline), topic) {
		return true
	}
	for _, e := range a.Entities {
		if strings.Contains(strings.ToLower(e), topic) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(a.Summary), topic)
}
