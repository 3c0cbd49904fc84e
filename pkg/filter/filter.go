package filter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/llm"
)

//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier

// Verdict is the outcome of a filter check
type Verdict string

// verdicts, closed set
const (
	VerdictAccept      Verdict = "accept"
	VerdictReject      Verdict = "reject"
	VerdictNeedsReview Verdict = "needs_review"
)

// Reason is the machine-readable code explaining a non-accept verdict
type Reason string

// reason codes, closed set
const (
	ReasonNone               Reason = ""
	ReasonLength             Reason = "length"
	ReasonAge                Reason = "age"
	ReasonBlacklistedSource  Reason = "blacklisted_source"
	ReasonBlacklistedKeyword Reason = "blacklisted_keyword"
	ReasonAIRejected         Reason = "ai_rejected"
	ReasonAIUncertain        Reason = "ai_uncertain"
)

// Decision is the filter's verdict with its reason and audit detail
type Decision struct {
	Verdict      Verdict
	Reason       Reason
	Detail       string  // human-readable context, audit only
	QualityScore float64 // from the AI verdict when the check ran
}

// Classifier is the AI legitimacy check capability
type Classifier interface {
	CheckLegitimacy(ctx context.Context, article domain.RawArticle) (*llm.Legitimacy, error)
}

// Rules holds the filter thresholds
type Rules struct {
	MinWords int
	MaxWords int
	MaxAge   time.Duration
}

// Filter decides accept/reject/needs-review for raw candidates. It is a pure
// function of the candidate, the blacklist snapshot and the clock; the AI
// stage is the only non-deterministic rule and runs last.
type Filter struct {
	rules      Rules
	classifier Classifier
	now        func() time.Time
}

// New creates a content filter. A nil classifier downgrades the AI stage
// to needs-review for every candidate that passes the static rules.
func New(rules Rules, classifier Classifier) *Filter {
	return &Filter{
		rules:      rules,
		classifier: classifier,
		now:        time.Now,
	}
}

// Check runs the candidate through the ordered rule pipeline,
// first failing rule wins
func (f *Filter) Check(ctx context.Context, article domain.RawArticle, snapshot *Snapshot) Decision {
	// rule 1: word count of the body within bounds
	words := article.WordCount()
	if words < f.rules.MinWords {
		return Decision{Verdict: VerdictReject, Reason: ReasonLength,
			Detail: fmt.Sprintf("too short: %d words (min: %d)", words, f.rules.MinWords)}
	}
	if words > f.rules.MaxWords {
		return Decision{Verdict: VerdictReject, Reason: ReasonLength,
			Detail: fmt.Sprintf("too long: %d words (max: %d)", words, f.rules.MaxWords)}
	}

	// rule 2: freshness, a missing or unparseable date counts as stale
	if article.Published.IsZero() {
		return Decision{Verdict: VerdictReject, Reason: ReasonAge, Detail: "no publication date"}
	}
	if age := f.now().Sub(article.Published); age > f.rules.MaxAge {
		return Decision{Verdict: VerdictReject, Reason: ReasonAge,
			Detail: fmt.Sprintf("too old: %s (max: %s)", age.Truncate(time.Second), f.rules.MaxAge)}
	}

	// rule 3: source blacklist
	if snapshot.BlockedSource(article.Source) {
		return Decision{Verdict: VerdictReject, Reason: ReasonBlacklistedSource,
			Detail: "blacklisted source: " + strings.ToLower(article.Source)}
	}

	// rule 4: keyword blacklist over headline and body
	if keyword, found := snapshot.MatchKeyword(article.Headline + " " + article.Body); found {
		return Decision{Verdict: VerdictReject, Reason: ReasonBlacklistedKeyword,
			Detail: "blacklisted keyword: " + keyword}
	}

	// rule 5: AI legitimacy check; an unavailable or ambiguous classifier
	// parks the candidate for review rather than accepting or rejecting
	if f.classifier == nil {
		return Decision{Verdict: VerdictNeedsReview, Reason: ReasonAIUncertain, Detail: "classifier not configured"}
	}

	verdict, err := f.classifier.CheckLegitimacy(ctx, article)
	if err != nil {
		return Decision{Verdict: VerdictNeedsReview, Reason: ReasonAIUncertain, Detail: "classifier failed: " + err.Error()}
	}

	switch {
	case verdict.Recommendation == "reject":
		return Decision{Verdict: VerdictReject, Reason: ReasonAIRejected,
			Detail: verdict.Reasoning, QualityScore: verdict.QualityScore}
	case verdict.Category == "news_article" && verdict.Recommendation == "accept":
		return Decision{Verdict: VerdictAccept, QualityScore: verdict.QualityScore}
	default:
		return Decision{Verdict: VerdictNeedsReview, Reason: ReasonAIUncertain,
			Detail: verdict.Reasoning, QualityScore: verdict.QualityScore}
	}
}
