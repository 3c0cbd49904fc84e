package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newsinsight/pkg/domain"
)

// AddBlacklistEntry stores a blacklist entry; value is lowercased for
// case-insensitive matching, duplicates update the audit reason
func (s *Store) AddBlacklistEntry(ctx context.Context, entry domain.BlacklistEntry) error {
	query := `
		INSERT INTO blacklist (kind, value, reason)
		VALUES (?, ?, ?)
		ON CONFLICT(kind, value) DO UPDATE SET reason = excluded.reason
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := s.conn.ExecContext(ctx, query, string(entry.Kind), strings.ToLower(entry.Value), entry.Reason)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert blacklist entry: %w", err)}
		}
		return nil
	})
}

// ListBlacklist returns all blacklist entries, sources first
func (s *Store) ListBlacklist(ctx context.Context) ([]domain.BlacklistEntry, error) {
	var rows []blacklistRow
	query := `SELECT * FROM blacklist ORDER BY kind, value`
	if err := s.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list blacklist: %w", err)
	}

	entries := make([]domain.BlacklistEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toDomain())
	}
	return entries, nil
}

// SeedBlacklist inserts entries that are not present yet, keeping existing
// reasons intact. Used for bootstrap seeding from config.
func (s *Store) SeedBlacklist(ctx context.Context, entries []domain.BlacklistEntry) error {
	query := `
		INSERT INTO blacklist (kind, value, reason)
		VALUES (?, ?, ?)
		ON CONFLICT(kind, value) DO NOTHING
	`
	for _, entry := range entries {
		if _, err := s.conn.ExecContext(ctx, query, string(entry.Kind), strings.ToLower(entry.Value), entry.Reason); err != nil {
			return fmt.Errorf("seed blacklist entry %s/%s: %w", entry.Kind, entry.Value, err)
		}
	}
	return nil
}
