package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/newsinsight/pkg/domain"
)

// articleRow is the database representation of domain.Article;
// emotions and entities are stored as JSON text columns
type articleRow struct {
	ID           string         `db:"id"`
	Headline     string         `db:"headline"`
	Summary      string         `db:"summary"`
	Source       string         `db:"source"`
	URL          string         `db:"url"`
	Published    time.Time      `db:"published"`
	Sentiment    string         `db:"sentiment"`
	Emotions     string         `db:"emotions"`
	Entities     string         `db:"entities"`
	QualityScore float64        `db:"quality_score"`
	Unenriched   bool           `db:"unenriched"`
	IngestedAt   time.Time      `db:"ingested_at"`
	LastServedAt sql.NullTime   `db:"last_served_at"`
}

func toRow(a *domain.Article) (*articleRow, error) {
	emotions, err := json.Marshal(a.Emotions)
	if err != nil {
		return nil, fmt.Errorf("marshal emotions: %w", err)
	}
	if a.Emotions == nil {
		emotions = []byte("{}")
	}
	entities, err := json.Marshal(a.Entities)
	if err != nil {
		return nil, fmt.Errorf("marshal entities: %w", err)
	}
	if a.Entities == nil {
		entities = []byte("[]")
	}

	row := &articleRow{
		ID:           a.ID,
		Headline:     a.Headline,
		Summary:      a.Summary,
		Source:       a.Source,
		URL:          a.URL,
		Published:    a.Published.UTC(),
		Sentiment:    string(a.Sentiment),
		Emotions:     string(emotions),
		Entities:     string(entities),
		QualityScore: a.QualityScore,
		Unenriched:   a.Unenriched,
		IngestedAt:   a.IngestedAt.UTC(),
	}
	if a.LastServedAt != nil {
		row.LastServedAt = sql.NullTime{Time: a.LastServedAt.UTC(), Valid: true}
	}
	return row, nil
}

func (r *articleRow) toDomain() (*domain.Article, error) {
	emotions := map[string]domain.EmotionLevel{}
	if r.Emotions != "" {
		if err := json.Unmarshal([]byte(r.Emotions), &emotions); err != nil {
			return nil, fmt.Errorf("unmarshal emotions for %s: %w", r.ID, err)
		}
	}
	var entities []string
	if r.Entities != "" {
		if err := json.Unmarshal([]byte(r.Entities), &entities); err != nil {
			return nil, fmt.Errorf("unmarshal entities for %s: %w", r.ID, err)
		}
	}

	sentiment, _ := domain.ParseSentiment(r.Sentiment)
	a := &domain.Article{
		ID:           r.ID,
		Headline:     r.Headline,
		Summary:      r.Summary,
		Source:       r.Source,
		URL:          r.URL,
		Published:    r.Published.UTC(),
		Sentiment:    sentiment,
		Emotions:     emotions,
		Entities:     entities,
		QualityScore: r.QualityScore,
		Unenriched:   r.Unenriched,
		IngestedAt:   r.IngestedAt.UTC(),
	}
	if r.LastServedAt.Valid {
		t := r.LastServedAt.Time.UTC()
		a.LastServedAt = &t
	}
	return a, nil
}

// blacklistRow is the database representation of domain.BlacklistEntry
type blacklistRow struct {
	Kind    string    `db:"kind"`
	Value   string    `db:"value"`
	Reason  string    `db:"reason"`
	AddedAt time.Time `db:"added_at"`
}

func (r *blacklistRow) toDomain() domain.BlacklistEntry {
	kind, _ := domain.ParseBlacklistKind(r.Kind)
	return domain.BlacklistEntry{
		Kind:    kind,
		Value:   r.Value,
		Reason:  r.Reason,
		AddedAt: r.AddedAt.UTC(),
	}
}

// reviewRow is the database representation of domain.ReviewEntry
type reviewRow struct {
	ID        string       `db:"id"`
	Headline  string       `db:"headline"`
	Body      string       `db:"body"`
	Published sql.NullTime `db:"published"`
	Source    string       `db:"source"`
	URL       string       `db:"url"`
	Author    string       `db:"author"`
	Reason    string       `db:"reason"`
	DecidedAt time.Time    `db:"decided_at"`
}

func (r *reviewRow) toDomain() domain.ReviewEntry {
	entry := domain.ReviewEntry{
		ID: r.ID,
		Candidate: domain.RawArticle{
			Headline: r.Headline,
			Body:     r.Body,
			Source:   r.Source,
			URL:      r.URL,
			Author:   r.Author,
		},
		Reason:    r.Reason,
		DecidedAt: r.DecidedAt.UTC(),
	}
	if r.Published.Valid {
		entry.Candidate.Published = r.Published.Time.UTC()
	}
	return entry
}
