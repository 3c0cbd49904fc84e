package provider

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsinsight/pkg/domain"
)

// Feeds fetches candidates from a fixed set of RSS/Atom feeds and keeps
// only items mentioning the topic. Feed items have no topic search of
// their own, the match happens client-side over title and body.
type Feeds struct {
	parser  *gofeed.Parser
	sources []FeedSource
	timeout time.Duration
}

// FeedSource is one configured feed
type FeedSource struct {
	Name string
	URL  string
}

// NewFeeds creates an RSS/Atom feed provider
func NewFeeds(sources []FeedSource, timeout time.Duration) *Feeds {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Feeds{parser: gofeed.NewParser(), sources: sources, timeout: timeout}
}

// Name returns the provider name
func (f *Feeds) Name() string { return "feeds" }

// Fetch pulls all configured feeds and returns topic-matching items.
// A single broken feed is logged and skipped, not fatal.
func (f *Feeds) Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
	var result []domain.RawArticle
	for _, src := range f.sources {
		items, err := f.fetchOne(ctx, src)
		if err != nil {
			lgr.Printf("[WARN] feed %s failed: %v", src.Name, err)
			continue
		}
		for _, item := range items {
			if !matchesTopic(&item, topic) {
				continue
			}
			result = append(result, item)
			if limit > 0 && len(result) >= limit {
				return result, nil
			}
		}
	}
	return result, nil
}

func (f *Feeds) fetchOne(ctx context.Context, src FeedSource) ([]domain.RawArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		raw := domain.RawArticle{
			Headline: item.Title,
			Body:     item.Content,
			Source:   src.Name,
			URL:      item.Link,
		}
		if raw.Body == "" {
			raw.Body = item.Description
		}
		if item.Author != nil {
			raw.Author = item.Author.Name
		}
		if item.PublishedParsed != nil {
			raw.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			raw.Published = *item.UpdatedParsed
		}
		items = append(items, raw)
	}
	return items, nil
}

func matchesTopic(item *domain.RawArticle, topic string) bool {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Text()), topic)
}
