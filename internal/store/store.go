// Package store is the optional sqlite-backed translation memory used by the
// CLI tier. The enrichment core stays stateless; the CLI consults the memory
// before invoking the pipeline and records final results after.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		final_text TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text, target_lang)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text, target_lang);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Lookup returns the remembered translation for (sourceText, targetLang) and
// bumps its usage counter.
func (s *Store) Lookup(ctx context.Context, sourceText, targetLang string) (string, bool, error) {
	key := normalizeKey(sourceText)

	var finalText string
	err := s.db.QueryRowContext(ctx,
		`SELECT final_text FROM translation_memory WHERE source_text = ? AND target_lang = ?`,
		key, targetLang).Scan(&finalText)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ? AND target_lang = ?`,
		time.Now(), key, targetLang)

	return finalText, true, err
}

// Save records a final translation, replacing any previous entry for the
// same source/target pair.
func (s *Store) Save(ctx context.Context, sourceText, targetLang, finalText string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO translation_memory (id, source_text, target_lang, final_text, usage_count, created_at, last_used) VALUES (?, ?, ?, ?, 1, ?, ?)`,
		uuid.NewString(), normalizeKey(sourceText), targetLang, finalText, time.Now(), time.Now())
	return err
}

// Stats summarizes translation memory usage.
type Stats struct {
	TotalEntries int
	TotalUsage   int
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(usage_count), 0) FROM translation_memory`).Scan(&st.TotalEntries, &st.TotalUsage)
	return st, err
}

// Clear removes all entries and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeKey makes lookups insensitive to unicode composition and
// surrounding whitespace.
func normalizeKey(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
