// Package search serves ranked topic queries over stored articles, backed
// by a short TTL cache of ranked ID lists. When the store can't satisfy a
// request it triggers ingestion and queries again.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsinsight/pkg/config"
	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/pipeline"
	"github.com/umputun/newsinsight/pkg/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/explainer.go -pkg mocks -skip-ensure -fmt goimports . Explainer

// candidatePool bounds how many stored matches feed the ranking pass
const candidatePool = 200

// Store is the persistence surface the search service needs
type Store interface {
	GetArticles(ctx context.Context, topic string, maxAge time.Duration, limit int) ([]domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	TouchServed(ctx context.Context, ids []string) error
}

// Ingester triggers topic ingestion when stored results are insufficient
type Ingester interface {
	Ingest(ctx context.Context, topic string, limit int) (*pipeline.Result, error)
}

// Explainer generates a context explanation for an article
type Explainer interface {
	Explain(ctx context.Context, text string) (string, error)
}

// Request is one search query
type Request struct {
	Topic     string
	Limit     int              // 0 uses the configured default
	AgeDays   int              // 0 uses the configured default
	Sentiment domain.Sentiment // optional, empty means no sentiment filter
}

// Service answers search queries. Safe for concurrent use.
type Service struct {
	store     Store
	ingester  Ingester
	explainer Explainer
	cfg       config.SearchConfig

	ranked   *rankCache
	explains *explainCache
	now      func() time.Time
}

// New creates a search service. A nil ingester disables on-demand ingestion,
// a nil explainer disables the explain operation.
func New(st Store, ingester Ingester, explainer Explainer, cfg config.SearchConfig) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	if cfg.ExplainTTL <= 0 {
		cfg.ExplainTTL = 10 * time.Minute
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 6
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 50
	}
	if cfg.DefaultAge <= 0 {
		cfg.DefaultAge = 30
	}
	return &Service{
		store:     st,
		ingester:  ingester,
		explainer: explainer,
		cfg:       cfg,
		ranked:    newRankCache(cfg.CacheTTL),
		explains:  newExplainCache(cfg.ExplainTTL),
		now:       time.Now,
	}
}

// Search returns ranked articles for the request. The ranked ID list is
// cached per topic, age window and limit; the sentiment filter applies
// after resolution so it never fragments the cache.
func (s *Service) Search(ctx context.Context, req Request) ([]domain.Article, error) {
	req = s.normalize(req)
	maxAge := time.Duration(req.AgeDays) * 24 * time.Hour
	key := fmt.Sprintf("%s|%d|%d", strings.ToLower(strings.TrimSpace(req.Topic)), req.AgeDays, req.Limit)

	if ids, ok := s.ranked.get(key); ok {
		articles, stale := s.resolve(ctx, ids)
		if !stale {
			return s.serve(ctx, articles, req.Sentiment)
		}
		// an ID in the cached list no longer resolves, the list lies
		lgr.Printf("[DEBUG] ranked cache for %q inconsistent, recomputing", key)
		s.ranked.invalidate(key)
	}

	articles, err := s.query(ctx, req, maxAge)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	s.ranked.set(key, ids)

	return s.serve(ctx, articles, req.Sentiment)
}

// Explain returns a generated what-happened context text for the article,
// cached per article ID
func (s *Service) Explain(ctx context.Context, articleID string) (string, error) {
	if s.explainer == nil {
		return "", errors.New("explain not available")
	}
	if text, ok := s.explains.get(articleID); ok {
		return text, nil
	}

	article, err := s.store.GetArticle(ctx, articleID)
	if err != nil {
		return "", fmt.Errorf("load article %s: %w", articleID, err)
	}

	text, err := s.explainer.Explain(ctx, article.Headline+"\n\n"+article.Summary)
	if err != nil {
		return "", fmt.Errorf("generate explanation: %w", err)
	}
	s.explains.set(articleID, text)
	return text, nil
}

// query ranks stored matches, pulling fresh articles in first when the
// store doesn't have enough
func (s *Service) query(ctx context.Context, req Request, maxAge time.Duration) ([]domain.Article, error) {
	pool, err := s.store.GetArticles(ctx, req.Topic, maxAge, candidatePool)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	if len(pool) < req.Limit && s.ingester != nil {
		if _, ingErr := s.ingester.Ingest(ctx, req.Topic, req.Limit); ingErr != nil {
			// stored results still serve, just fewer than asked
			lgr.Printf("[WARN] on-demand ingestion for %q failed: %v", req.Topic, ingErr)
		} else if pool, err = s.store.GetArticles(ctx, req.Topic, maxAge, candidatePool); err != nil {
			return nil, fmt.Errorf("re-query articles: %w", err)
		}
	}

	sc := &scorer{weights: s.cfg.Weights, now: s.now(), window: maxAge}
	ranked := sc.rank(pool, topicTerms(req.Topic))
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}
	return ranked, nil
}

// resolve loads cached IDs live. Any dangling ID marks the list stale.
func (s *Service) resolve(ctx context.Context, ids []string) (articles []domain.Article, stale bool) {
	articles = make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		article, err := s.store.GetArticle(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, true
			}
			lgr.Printf("[WARN] resolve article %s failed: %v", id, err)
			return nil, true
		}
		articles = append(articles, *article)
	}
	return articles, false
}

// serve applies the sentiment filter and records served IDs
func (s *Service) serve(ctx context.Context, articles []domain.Article, sentiment domain.Sentiment) ([]domain.Article, error) {
	result := articles
	if sentiment != "" {
		result = make([]domain.Article, 0, len(articles))
		for _, a := range articles {
			if a.Sentiment == sentiment {
				result = append(result, a)
			}
		}
	}

	if len(result) > 0 {
		ids := make([]string, len(result))
		for i := range result {
			ids[i] = result[i].ID
		}
		if err := s.store.TouchServed(ctx, ids); err != nil {
			lgr.Printf("[WARN] mark served failed: %v", err)
		}
	}
	return result, nil
}

func (s *Service) normalize(req Request) Request {
	if req.Limit <= 0 {
		req.Limit = s.cfg.DefaultLimit
	}
	if req.Limit > s.cfg.MaxLimit {
		req.Limit = s.cfg.MaxLimit
	}
	if req.AgeDays <= 0 {
		req.AgeDays = s.cfg.DefaultAge
	}
	return req
}
