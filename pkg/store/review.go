package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/umputun/newsinsight/pkg/domain"
)

// AddReviewEntry parks a borderline candidate in the review queue
func (s *Store) AddReviewEntry(ctx context.Context, entry domain.ReviewEntry) error {
	query := `
		INSERT INTO review_queue (id, headline, body, published, source, url, author, reason, decided_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	var published sql.NullTime
	if !entry.Candidate.Published.IsZero() {
		published = sql.NullTime{Time: entry.Candidate.Published.UTC(), Valid: true}
	}

	_, err := s.conn.ExecContext(ctx, query, entry.ID, entry.Candidate.Headline, entry.Candidate.Body,
		published, entry.Candidate.Source, entry.Candidate.URL, entry.Candidate.Author,
		entry.Reason, entry.DecidedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert review entry: %w", err)
	}
	return nil
}

// ListReviewEntries returns queued candidates, oldest first
func (s *Store) ListReviewEntries(ctx context.Context, limit int) ([]domain.ReviewEntry, error) {
	var rows []reviewRow
	query := `SELECT * FROM review_queue ORDER BY decided_at LIMIT ?`
	if err := s.conn.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("list review entries: %w", err)
	}

	entries := make([]domain.ReviewEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toDomain())
	}
	return entries, nil
}

// DeleteReviewEntry removes a consumed review entry
func (s *Store) DeleteReviewEntry(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx, `DELETE FROM review_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete review entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
