package filter

import (
	"net/url"
	"strings"

	"github.com/umputun/newsinsight/pkg/domain"
)

// Snapshot is an immutable view of the blacklist taken at check time,
// keeping filter decisions deterministic against concurrent blacklist edits
type Snapshot struct {
	sources  map[string]struct{}
	keywords []string
}

// NewSnapshot builds a snapshot from blacklist entries
func NewSnapshot(entries []domain.BlacklistEntry) *Snapshot {
	s := &Snapshot{sources: make(map[string]struct{})}
	for _, entry := range entries {
		value := strings.ToLower(strings.TrimSpace(entry.Value))
		if value == "" {
			continue
		}
		switch entry.Kind {
		case domain.BlacklistSource:
			s.sources[normalizeSource(value)] = struct{}{}
		case domain.BlacklistKeyword:
			s.keywords = append(s.keywords, value)
		}
	}
	return s
}

// BlockedSource reports whether the source name matches a blacklisted source,
// case-insensitive and domain-normalized
func (s *Snapshot) BlockedSource(name string) bool {
	_, blocked := s.sources[normalizeSource(name)]
	return blocked
}

// MatchKeyword returns the first blacklisted keyword contained in the text,
// case-insensitive substring match
func (s *Snapshot) MatchKeyword(text string) (keyword string, found bool) {
	lower := strings.ToLower(text)
	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// Len returns the number of entries in the snapshot
func (s *Snapshot) Len() int {
	return len(s.sources) + len(s.keywords)
}

// normalizeSource lowercases a source name and reduces URL-shaped values
// to their host without the www prefix
func normalizeSource(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.Contains(name, "://") {
		if u, err := url.Parse(name); err == nil && u.Host != "" {
			name = u.Host
		}
	}
	return strings.TrimPrefix(name, "www.")
}
