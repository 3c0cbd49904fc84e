// Package provider fetches raw article candidates from external news
// sources: NewsAPI, the Guardian open platform and plain RSS/Atom feeds.
package provider

import (
	"context"

	"github.com/umputun/newsinsight/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider

// Provider is a single news source capable of topic search
type Provider interface {
	Name() string
	Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error)
}
