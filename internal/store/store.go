// Package store persists summary document snapshots in SQLite so a
// document can be refined and exported across separate invocations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/recap/internal/document"
)

// ErrNotFound is returned when no document matches.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	videoRef TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	generation INTEGER NOT NULL,
	createdAt REAL NOT NULL,
	updatedAt REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS sections (
	documentId TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	sectionId TEXT NOT NULL,
	title TEXT NOT NULL,
	startSeconds REAL NOT NULL,
	endSeconds REAL NOT NULL,
	originalSummary TEXT NOT NULL,
	transcript TEXT NOT NULL,
	summary TEXT NOT NULL,
	style TEXT NOT NULL,
	PRIMARY KEY (documentId, position)
);
`

// Store reads and writes document snapshots.
type Store struct {
	db *sql.DB
}

// Record is a stored document with its display title.
type Record struct {
	Title     string
	UpdatedAt time.Time
	Snapshot  document.Snapshot
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a document and replaces all of its sections.
func (s *Store) Save(ctx context.Context, title string, snap document.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := unixFromTime(time.Now())
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, videoRef, title, generation, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			videoRef = excluded.videoRef,
			title = excluded.title,
			generation = excluded.generation,
			updatedAt = excluded.updatedAt
	`, snap.ID, snap.VideoRef, title, int64(snap.Generation), unixFromTime(snap.CreatedAt), now); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE documentId = ?`, snap.ID); err != nil {
		return fmt.Errorf("clear sections: %w", err)
	}

	for i, sec := range snap.Sections {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (documentId, position, sectionId, title, startSeconds, endSeconds,
				originalSummary, transcript, summary, style)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, snap.ID, i, sec.ID, sec.Title, sec.Start, sec.End,
			sec.OriginalSummary, sec.Transcript, sec.Summary, string(sec.Style)); err != nil {
			return fmt.Errorf("insert section %s: %w", sec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load returns the document with the given id.
func (s *Store) Load(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, videoRef, title, generation, createdAt, updatedAt
		FROM documents
		WHERE id = ?
	`, id)
	return s.loadRow(ctx, row)
}

// Latest returns the most recently updated document.
func (s *Store) Latest(ctx context.Context) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, videoRef, title, generation, createdAt, updatedAt
		FROM documents
		ORDER BY updatedAt DESC, rowid DESC
		LIMIT 1
	`)
	return s.loadRow(ctx, row)
}

// Summary is one line of List output.
type Summary struct {
	ID        string
	Title     string
	VideoRef  string
	Sections  int
	UpdatedAt time.Time
}

// List returns all documents, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.title, d.videoRef, d.updatedAt, COUNT(s.position)
		FROM documents d
		LEFT JOIN sections s ON s.documentId = d.id
		GROUP BY d.id
		ORDER BY d.updatedAt DESC, d.rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var updatedAt float64
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.VideoRef, &updatedAt, &sum.Sections); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		sum.UpdatedAt = timeFromUnix(updatedAt)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) loadRow(ctx context.Context, row *sql.Row) (*Record, error) {
	var (
		rec                  Record
		generation           int64
		createdAt, updatedAt float64
	)
	if err := row.Scan(&rec.Snapshot.ID, &rec.Snapshot.VideoRef, &rec.Title, &generation, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	rec.Snapshot.Generation = uint64(generation)
	rec.Snapshot.CreatedAt = timeFromUnix(createdAt)
	rec.UpdatedAt = timeFromUnix(updatedAt)

	rows, err := s.db.QueryContext(ctx, `
		SELECT sectionId, title, startSeconds, endSeconds, originalSummary, transcript, summary, style
		FROM sections
		WHERE documentId = ?
		ORDER BY position ASC
	`, rec.Snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sec document.SectionSnapshot
		var style string
		if err := rows.Scan(&sec.ID, &sec.Title, &sec.Start, &sec.End,
			&sec.OriginalSummary, &sec.Transcript, &sec.Summary, &style); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sec.Style = document.Style(style)
		rec.Snapshot.Sections = append(rec.Snapshot.Sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(f float64) time.Time {
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}
