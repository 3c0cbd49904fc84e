package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsinsight/pkg/domain"
)

// normalizeTerm lowercases and trims a topic term for LIKE matching
func normalizeTerm(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// PutArticle stores an article, ignoring duplicates by id.
// Returns true if a new record was inserted.
func (s *Store) PutArticle(ctx context.Context, article *domain.Article) (created bool, err error) {
	row, err := toRow(article)
	if err != nil {
		return false, err
	}

	query := `
		INSERT INTO articles (id, headline, summary, source, url, published, sentiment,
		                      emotions, entities, quality_score, unenriched, ingested_at)
		VALUES (:id, :headline, :summary, :source, :url, :published, :sentiment,
		        :emotions, :entities, :quality_score, :unenriched, :ingested_at)
		ON CONFLICT(id) DO NOTHING
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		result, execErr := s.conn.NamedExecContext(ctx, query, row)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert article: %w", execErr)}
		}
		affected, raErr := result.RowsAffected()
		if raErr != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", raErr)}
		}
		created = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// GetArticle retrieves an article by ID
func (s *Store) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var row articleRow
	query := `SELECT * FROM articles WHERE id = ?`
	if err := s.conn.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return row.toDomain()
}

// GetArticles retrieves articles matching the topic within the age window,
// newest first. Empty topic matches all articles. The topic is matched
// case-insensitively against headline, entities and summary.
func (s *Store) GetArticles(ctx context.Context, topic string, maxAge time.Duration, limit int) ([]domain.Article, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	var rows []articleRow
	query := `
		SELECT * FROM articles
		WHERE published >= ?
		  AND (? = '' OR lower(headline) LIKE ? OR lower(entities) LIKE ? OR lower(summary) LIKE ?)
		ORDER BY published DESC, id
		LIMIT ?
	`
	term := normalizeTerm(topic)
	pattern := "%" + term + "%"
	if err := s.conn.SelectContext(ctx, &rows, query, cutoff, term, pattern, pattern, pattern, limit); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		article, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, nil
}

// CountFreshMatches counts articles matching the topic within the age window
func (s *Store) CountFreshMatches(ctx context.Context, topic string, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	var count int
	query := `
		SELECT count(*) FROM articles
		WHERE published >= ?
		  AND (? = '' OR lower(headline) LIKE ? OR lower(entities) LIKE ? OR lower(summary) LIKE ?)
	`
	term := normalizeTerm(topic)
	pattern := "%" + term + "%"
	if err := s.conn.GetContext(ctx, &count, query, cutoff, term, pattern, pattern, pattern); err != nil {
		return 0, fmt.Errorf("count fresh matches: %w", err)
	}
	return count, nil
}

// CountArticles returns the total number of stored articles
func (s *Store) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := s.conn.GetContext(ctx, &count, `SELECT count(*) FROM articles`); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// TouchServed updates last_served_at bookkeeping for the given article IDs
func (s *Store) TouchServed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE articles SET last_served_at = ? WHERE id IN (?)`, time.Now().UTC(), ids)
	if err != nil {
		return fmt.Errorf("build touch query: %w", err)
	}
	if _, err := s.conn.ExecContext(ctx, s.conn.Rebind(query), args...); err != nil {
		return fmt.Errorf("touch served: %w", err)
	}
	return nil
}

// DeleteOlderThan removes articles published before the cutoff,
// returning the number of deleted rows
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.conn.ExecContext(ctx, `DELETE FROM articles WHERE published < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old articles: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return deleted, nil
}
