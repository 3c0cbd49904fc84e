// Package enrich turns accepted raw candidates into durable articles,
// attaching AI analysis when available and degrading gracefully when not.
package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/llm"
)

//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// Analyzer is the AI analysis capability
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*llm.Analysis, error)
}

// fallbackSummaryLimit bounds the truncated-body summary used when analysis fails
const fallbackSummaryLimit = 400

// Enricher builds articles from accepted candidates. Analysis failure is not
// an ingestion failure: the article is stored unenriched with a truncated
// body as its summary.
type Enricher struct {
	analyzer Analyzer
	now      func() time.Time
}

// New creates an enricher. A nil analyzer produces unenriched articles only.
func New(analyzer Analyzer) *Enricher {
	return &Enricher{analyzer: analyzer, now: time.Now}
}

// Enrich converts an accepted candidate into an article. The quality score
// comes from the filter's AI verdict and is carried through unchanged.
func (e *Enricher) Enrich(ctx context.Context, raw domain.RawArticle, qualityScore float64) domain.Article {
	article := domain.Article{
		ID:           domain.MakeID(raw.URL, raw.Headline),
		Headline:     raw.Headline,
		Source:       raw.Source,
		URL:          raw.URL,
		Published:    raw.Published,
		QualityScore: qualityScore,
		IngestedAt:   e.now(),
	}

	if e.analyzer == nil {
		return e.degrade(article, raw, "analyzer not configured")
	}

	analysis, err := e.analyzer.Analyze(ctx, raw.Text())
	if err != nil {
		return e.degrade(article, raw, err.Error())
	}

	sentiment, ok := domain.ParseSentiment(analysis.OverallSentiment)
	if !ok {
		lgr.Printf("[WARN] unknown sentiment %q for %s, defaulting to neutral", analysis.OverallSentiment, article.ID)
	}
	article.Sentiment = sentiment
	article.Emotions = normalizeEmotions(analysis.Emotions, article.ID)
	article.Entities = flattenEntities(analysis.Entities)
	article.Summary = strings.TrimSpace(analysis.Summary)
	if article.Summary == "" {
		article.Summary = truncateBody(raw.Body)
	}
	return article
}

// degrade fills the unenriched fallback shape, truncated body as summary
func (e *Enricher) degrade(article domain.Article, raw domain.RawArticle, cause string) domain.Article {
	lgr.Printf("[WARN] enrichment skipped for %s: %s", article.ID, cause)
	article.Summary = truncateBody(raw.Body)
	article.Sentiment = domain.SentimentNeutral
	article.Emotions = map[string]domain.EmotionLevel{}
	article.Entities = nil
	article.Unenriched = true
	return article
}

// normalizeEmotions maps model output onto the fixed emotion vocabulary,
// dropping unknown names and filling missing ones with none
func normalizeEmotions(raw map[string]string, id string) map[string]domain.EmotionLevel {
	result := make(map[string]domain.EmotionLevel, len(domain.EmotionNames))
	for _, name := range domain.EmotionNames {
		result[name] = domain.EmotionNone
	}
	for name, level := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		if !domain.ValidEmotion(name) {
			lgr.Printf("[DEBUG] dropping unknown emotion %q for %s", name, id)
			continue
		}
		result[name] = domain.ParseEmotionLevel(level)
	}
	return result
}

// flattenEntities converts typed entities to a deduplicated name list,
// extraction order preserved, first occurrence wins
func flattenEntities(entities []llm.Entity) []string {
	seen := make(map[string]struct{}, len(entities))
	result := make([]string, 0, len(entities))
	for _, ent := range entities {
		text := strings.TrimSpace(ent.Text)
		if text == "" {
			continue
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, text)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// truncateBody cuts the body to the fallback summary limit on a rune boundary
func truncateBody(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= fallbackSummaryLimit {
		return body
	}
	return string(runes[:fallbackSummaryLimit]) + "…"
}
