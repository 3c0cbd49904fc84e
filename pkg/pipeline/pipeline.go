// Package pipeline runs topic ingestion: fetch candidates from providers,
// recover truncated bodies, filter, enrich and persist. Concurrent runs for
// the same topic coalesce into one.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/filter"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/checker.go -pkg mocks -skip-ensure -fmt goimports . Checker
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Fetcher retrieves raw candidates for a topic
type Fetcher interface {
	Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error)
}

// Store is the persistence surface the pipeline needs
type Store interface {
	CountFreshMatches(ctx context.Context, topic string, maxAge time.Duration) (int, error)
	ListBlacklist(ctx context.Context) ([]domain.BlacklistEntry, error)
	PutArticle(ctx context.Context, article *domain.Article) (bool, error)
	AddReviewEntry(ctx context.Context, entry domain.ReviewEntry) error
}

// Checker decides accept/reject/needs-review for a candidate
type Checker interface {
	Check(ctx context.Context, article domain.RawArticle, snapshot *filter.Snapshot) filter.Decision
}

// Enricher converts an accepted candidate into a durable article
type Enricher interface {
	Enrich(ctx context.Context, raw domain.RawArticle, qualityScore float64) domain.Article
}

// Extractor recovers the full body for a truncated candidate
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Params holds pipeline dependencies and settings
type Params struct {
	Fetcher   Fetcher
	Store     Store
	Checker   Checker
	Enricher  Enricher
	Extractor Extractor // optional, nil disables body recovery

	MinWords    int           // bodies below this trigger extraction
	MaxWorkers  int           // concurrent candidate processing bound
	FreshWindow time.Duration // stored articles younger than this count as fresh
}

// Pipeline ingests topics. Safe for concurrent use.
type Pipeline struct {
	fetcher   Fetcher
	store     Store
	checker   Checker
	enricher  Enricher
	extractor Extractor

	minWords    int
	maxWorkers  int
	freshWindow time.Duration

	group singleflight.Group
}

// New creates an ingestion pipeline
func New(params Params) *Pipeline {
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 4
	}
	if params.FreshWindow <= 0 {
		params.FreshWindow = 48 * time.Hour
	}
	return &Pipeline{
		fetcher:     params.Fetcher,
		store:       params.Store,
		checker:     params.Checker,
		enricher:    params.Enricher,
		extractor:   params.Extractor,
		minWords:    params.MinWords,
		maxWorkers:  params.MaxWorkers,
		freshWindow: params.FreshWindow,
	}
}

// Ingest runs one ingestion for the topic and returns its summary.
// Concurrent calls for the same topic share a single run.
func (p *Pipeline) Ingest(ctx context.Context, topic string, limit int) (*Result, error) {
	v, err, shared := p.group.Do(topicKey(topic), func() (interface{}, error) {
		// detached from the caller so a dropped request doesn't abort the run
		return p.run(context.WithoutCancel(ctx), topic, limit, nil)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		lgr.Printf("[DEBUG] ingestion for %q coalesced", topic)
	}
	return v.(*Result), nil
}

// Stream runs ingestion for the topic and emits progress events on the
// returned channel. Already-stored matches stream first, then one event per
// newly stored article, then a single complete or error event. The channel
// closes after the terminal event. If another run for the topic is already
// in flight the stream joins it and skips per-article events.
func (p *Pipeline) Stream(ctx context.Context, topic string, limit int) <-chan Event {
	ch := make(chan Event, 8)
	go func() {
		defer close(ch)
		emit := func(e Event) {
			select {
			case ch <- e:
			case <-ctx.Done():
			}
		}

		existing, err := p.listExisting(ctx, topic, limit)
		if err != nil {
			emit(Event{Type: EventError, Message: fmt.Sprintf("load existing articles: %v", err)})
			return
		}
		for i := range existing {
			emit(Event{Type: EventExisting, Article: &existing[i]})
		}

		v, err, _ := p.group.Do(topicKey(topic), func() (interface{}, error) {
			return p.run(context.WithoutCancel(ctx), topic, limit, emit)
		})
		if err != nil {
			emit(Event{Type: EventError, Message: err.Error()})
			return
		}
		emit(Event{Type: EventComplete, Result: v.(*Result)})
	}()
	return ch
}

// ExistingLister is implemented by stores that can list stored matches,
// used by Stream to send already-known articles before ingestion starts
type ExistingLister interface {
	GetArticles(ctx context.Context, topic string, maxAge time.Duration, limit int) ([]domain.Article, error)
}

func (p *Pipeline) listExisting(ctx context.Context, topic string, limit int) ([]domain.Article, error) {
	lister, ok := p.store.(ExistingLister)
	if !ok {
		return nil, nil
	}
	return lister.GetArticles(ctx, topic, p.freshWindow, limit)
}

// run executes one ingestion. emit may be nil for non-streaming callers.
func (p *Pipeline) run(ctx context.Context, topic string, limit int, emit func(Event)) (*Result, error) {
	if emit == nil {
		emit = func(Event) {}
	}
	res := &Result{Topic: topic}

	// cost control: skip provider calls when the store already has enough
	// fresh matches for the request
	if limit > 0 {
		count, err := p.store.CountFreshMatches(ctx, topic, p.freshWindow)
		if err != nil {
			return nil, fmt.Errorf("count fresh matches: %w", err)
		}
		if count >= limit {
			lgr.Printf("[INFO] ingestion for %q skipped, %d fresh matches stored", topic, count)
			res.Skipped = true
			emit(Event{Type: EventStatus, Message: fmt.Sprintf("%d fresh articles already stored, skipping fetch", count)})
			return res, nil
		}
	}

	emit(Event{Type: EventStatus, Message: "fetching from providers"})
	candidates, err := p.fetcher.Fetch(ctx, topic, limit)
	if err != nil {
		// stored matches still serve when every provider is down
		if count, cntErr := p.store.CountFreshMatches(ctx, topic, p.freshWindow); cntErr == nil && count > 0 {
			lgr.Printf("[WARN] fetch for %q failed, %d stored matches still serve: %v", topic, count, err)
			res.Skipped = true
			emit(Event{Type: EventStatus, Message: fmt.Sprintf("providers unavailable, serving %d stored articles", count)})
			return res, nil
		}
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	res.Fetched = len(candidates)
	emit(Event{Type: EventStatus, Message: fmt.Sprintf("fetched %d candidates", len(candidates))})

	entries, err := p.store.ListBlacklist(ctx)
	if err != nil {
		return nil, fmt.Errorf("load blacklist: %w", err)
	}
	snapshot := filter.NewSnapshot(entries)

	// process candidates concurrently, results slot back by index so the
	// final ordering stays deterministic
	outcomes := make([]outcome, len(candidates))
	var wg errgroup.Group
	wg.SetLimit(p.maxWorkers)
	for i, raw := range candidates {
		wg.Go(func() error {
			outcomes[i] = p.process(ctx, raw, snapshot)
			return nil
		})
	}
	_ = wg.Wait() // per-candidate errors live in outcomes

	// accepted count is known before persistence starts, it is the total
	// the per-article events report against
	accepted := 0
	for _, out := range outcomes {
		if out.err == nil && out.decision.Verdict == filter.VerdictAccept {
			accepted++
		}
	}

	// persist sequentially, one bad candidate never fails the run; each
	// stored article streams out right away, enrichment of the next one
	// never holds an already-stored event back
	for i, out := range outcomes {
		switch {
		case out.err != nil:
			res.Failed++
			lgr.Printf("[WARN] candidate %q failed: %v", candidates[i].Headline, out.err)
			continue
		case out.decision.Verdict == filter.VerdictReject:
			res.Rejected++
			continue
		case out.decision.Verdict == filter.VerdictNeedsReview:
			res.NeedsReview++
			p.queueReview(ctx, candidates[i], out.decision)
			continue
		}

		res.Accepted++
		article := p.enricher.Enrich(ctx, out.raw, out.decision.QualityScore)
		ok, err := p.store.PutArticle(ctx, &article)
		if err != nil {
			res.Failed++
			lgr.Printf("[WARN] store article %s failed: %v", article.ID, err)
			continue
		}
		if !ok {
			res.Duplicates++
			continue
		}
		res.Stored++
		emit(Event{Type: EventNewArticle, Article: &article, Progress: res.Stored, Total: accepted})
	}

	lgr.Printf("[INFO] ingestion for %q done: fetched %d, accepted %d, stored %d, rejected %d, review %d",
		topic, res.Fetched, res.Accepted, res.Stored, res.Rejected, res.NeedsReview)
	return res, nil
}

// outcome is the per-candidate processing result. raw carries the possibly
// extracted body forward to enrichment.
type outcome struct {
	raw      domain.RawArticle
	decision filter.Decision
	err      error
}

// process recovers a short body if possible and runs the filter. The filter
// sees the candidate in its final shape, after extraction.
func (p *Pipeline) process(ctx context.Context, raw domain.RawArticle, snapshot *filter.Snapshot) outcome {
	if p.extractor != nil && raw.URL != "" && raw.WordCount() < p.minWords {
		if text, exErr := p.extractor.Extract(ctx, raw.URL); exErr == nil {
			raw.Body = text
		} else {
			lgr.Printf("[DEBUG] extraction failed for %s: %v", raw.URL, exErr)
		}
	}

	return outcome{raw: raw, decision: p.checker.Check(ctx, raw, snapshot)}
}

func topicKey(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// queueReview parks a needs-review candidate for a human decision
func (p *Pipeline) queueReview(ctx context.Context, raw domain.RawArticle, decision filter.Decision) {
	entry := domain.ReviewEntry{
		ID:        uuid.NewString(),
		Candidate: raw,
		Reason:    reviewReason(decision),
		DecidedAt: time.Now(),
	}
	if err := p.store.AddReviewEntry(ctx, entry); err != nil {
		lgr.Printf("[WARN] queue review for %q failed: %v", raw.Headline, err)
	}
}

func reviewReason(decision filter.Decision) string {
	if decision.Detail == "" {
		return string(decision.Reason)
	}
	return fmt.Sprintf("%s: %s", decision.Reason, decision.Detail)
}
