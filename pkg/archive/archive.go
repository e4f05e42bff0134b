// Package archive keeps the history of announced papers in SQLite. The
// known-paper registry in the config file only stores identifiers; the
// archive retains the full record so past announcements stay queryable.
package archive

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store is the SQLite-backed announcement archive
type Store struct {
	db *sqlx.DB
}

// Announcement is a single archived paper announcement
type Announcement struct {
	ID          int64     `db:"id" json:"id"`
	PaperID     string    `db:"paper_id" json:"paper_id"`
	Title       string    `db:"title" json:"title"`
	Summary     string    `db:"summary" json:"summary"`
	Authors     string    `db:"authors" json:"authors"`
	Link        string    `db:"link" json:"link"`
	Category    string    `db:"category" json:"category"`
	Query       string    `db:"query" json:"query"`
	Updated     time.Time `db:"updated" json:"updated"`
	AnnouncedAt time.Time `db:"announced_at" json:"announced_at"`
}

// New opens the archive database and initializes the schema
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("execute schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Record archives an announced paper. Recording an already archived paper
// is a no-op. Lock contention is retried with backoff.
func (s *Store) Record(ctx context.Context, p arxiv.Paper) error {
	category, query := splitAnnotation(p.Annotation)

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO announcements (paper_id, title, summary, authors, link, category, query, updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Summary, strings.Join(p.Authors, ", "), p.Link, category, query, p.Updated)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return fmt.Errorf("insert announcement: %w", err)
		}
		return nil
	})
}

// List returns archived announcements, newest first
func (s *Store) List(ctx context.Context, limit, offset int) ([]Announcement, error) {
	var res []Announcement
	err := s.db.SelectContext(ctx, &res, `
		SELECT * FROM announcements
		ORDER BY announced_at DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return res, nil
}

// ListByCategory returns archived announcements for one category, newest first
func (s *Store) ListByCategory(ctx context.Context, category string, limit, offset int) ([]Announcement, error) {
	var res []Announcement
	err := s.db.SelectContext(ctx, &res, `
		SELECT * FROM announcements
		WHERE category = ?
		ORDER BY announced_at DESC, id DESC
		LIMIT ? OFFSET ?`, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list announcements for %s: %w", category, err)
	}
	return res, nil
}

// Count returns the total number of archived announcements
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM announcements"); err != nil {
		return 0, fmt.Errorf("count announcements: %w", err)
	}
	return count, nil
}

// splitAnnotation takes the "<category>: <query>" annotation apart
func splitAnnotation(annotation string) (category, query string) {
	if i := strings.Index(annotation, ": "); i >= 0 {
		return annotation[:i], annotation[i+2:]
	}
	return annotation, ""
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
