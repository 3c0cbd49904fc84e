package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsinsight/pkg/domain"
)

// Multi fans a topic query out to all providers in parallel and merges the
// results. A failing or slow provider contributes zero candidates, the rest
// still count. Duplicates across providers collapse by normalized URL,
// first provider in configuration order wins.
type Multi struct {
	providers []Provider
	timeout   time.Duration
}

// NewMulti creates a fan-out provider over the given sources
func NewMulti(timeout time.Duration, providers ...Provider) *Multi {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Multi{providers: providers, timeout: timeout}
}

// Name returns the provider name
func (m *Multi) Name() string { return "multi" }

// Fetch queries all providers concurrently and returns the merged,
// deduplicated candidate list. A single failing provider contributes zero
// candidates; an error returns only when every configured provider failed.
func (m *Multi) Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	perProvider := make([][]domain.RawArticle, len(m.providers))
	failures := make([]error, len(m.providers))
	var wg errgroup.Group
	for i, p := range m.providers {
		wg.Go(func() error {
			items, err := p.Fetch(ctx, topic, limit)
			if err != nil {
				lgr.Printf("[WARN] provider %s failed for %q: %v", p.Name(), topic, err)
				failures[i] = fmt.Errorf("%s: %w", p.Name(), err)
				return nil // isolate provider failures
			}
			perProvider[i] = items
			return nil
		})
	}
	_ = wg.Wait() // goroutines never return errors

	if len(m.providers) > 0 {
		allFailed := true
		for _, f := range failures {
			if f == nil {
				allFailed = false
				break
			}
		}
		if allFailed {
			return nil, fmt.Errorf("all providers failed for %q: %w", topic, errors.Join(failures...))
		}
	}

	// merge in provider order so dedup is deterministic
	seen := make(map[string]struct{})
	var result []domain.RawArticle
	for _, items := range perProvider {
		for _, item := range items {
			if item.URL == "" {
				continue
			}
			key := domain.NormalizeURL(item.URL)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, item)
		}
	}
	return result, nil
}
