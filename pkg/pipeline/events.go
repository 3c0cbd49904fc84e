package pipeline

import "github.com/umputun/newsinsight/pkg/domain"

// EventType identifies a streaming ingestion event
type EventType string

// event types, in emission order: any number of existing, then status
// and new_article interleaved, then exactly one complete or error
const (
	EventExisting   EventType = "existing"
	EventStatus     EventType = "status"
	EventNewArticle EventType = "new_article"
	EventComplete   EventType = "complete"
	EventError      EventType = "error"
)

// Event is a single streaming ingestion update
type Event struct {
	Type     EventType       `json:"type"`
	Article  *domain.Article `json:"article,omitempty"`  // existing and new_article
	Message  string          `json:"message,omitempty"`  // status and error
	Progress int             `json:"progress,omitempty"` // new_article: stored count so far, 1-based
	Total    int             `json:"total,omitempty"`    // new_article: accepted candidate count
	Result   *Result         `json:"result,omitempty"`   // complete
}

// Result summarizes one ingestion run
type Result struct {
	Topic       string `json:"topic"`
	Fetched     int    `json:"fetched"`
	Accepted    int    `json:"accepted"`
	Rejected    int    `json:"rejected"`
	NeedsReview int    `json:"needs_review"`
	Stored      int    `json:"stored"`     // newly created, duplicates excluded
	Duplicates  int    `json:"duplicates"` // accepted but already present
	Failed      int    `json:"failed"`     // per-article processing errors
	Skipped     bool   `json:"skipped"`    // enough fresh matches, no fetch performed
}
