package domain

import (
	"strings"
	"time"
)

// BlacklistKind tags the type of a blacklist entry
type BlacklistKind string

// blacklist kinds, closed set
const (
	BlacklistSource  BlacklistKind = "source"
	BlacklistKeyword BlacklistKind = "keyword"
)

// ParseBlacklistKind validates a kind string
func ParseBlacklistKind(s string) (BlacklistKind, bool) {
	switch BlacklistKind(strings.ToLower(strings.TrimSpace(s))) {
	case BlacklistSource:
		return BlacklistSource, true
	case BlacklistKeyword:
		return BlacklistKeyword, true
	}
	return "", false
}

// BlacklistEntry is a single disallowed source or keyword.
// Value is stored lowercased, Reason is audit-only.
type BlacklistEntry struct {
	Kind    BlacklistKind
	Value   string
	Reason  string
	AddedAt time.Time
}

// ReviewEntry parks a borderline candidate for manual or batch reclassification
type ReviewEntry struct {
	ID        string
	Candidate RawArticle
	Reason    string
	DecidedAt time.Time
}
