package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// storeTimeLayout keeps stored dates lexically sortable.
const storeTimeLayout = "2006-01-02T15:04:05Z"

// Post is a row of the SQLite post index.
type Post struct {
	PostRecord
	Published bool
}

// Store wraps a SQLite index of post metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the server read while `folio index` writes; busy_timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    description TEXT,
    excerpt TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS posts_date ON posts (date DESC);
`)
	return err
}

const postColumns = `slug, title, date, description, excerpt, published`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var (
		p           Post
		date        string
		description sql.NullString
		published   int
	)
	if err := row.Scan(&p.Slug, &p.Title, &date, &description, &p.Excerpt, &published); err != nil {
		return Post{}, err
	}
	if date != "" {
		t, err := time.Parse(storeTimeLayout, date)
		if err != nil {
			return Post{}, fmt.Errorf("post %s: bad stored date %q: %w", p.Slug, date, err)
		}
		p.PublishedAt = t
	}
	p.Date = FormatDate(p.PublishedAt)
	if description.Valid {
		p.Description = String(description.String)
	}
	p.Published = published == 1
	return p, nil
}

// Posts returns all published posts ordered by date descending.
func (s *Store) Posts(ctx context.Context) ([]PostRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts WHERE published = 1 ORDER BY date DESC, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostRecord
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p.PostRecord)
	}
	return posts, rows.Err()
}

// GetPost returns a post by slug regardless of published status.
func (s *Store) GetPost(ctx context.Context, slug string) (Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	return p, err
}

// SavePost upserts a post.
func (s *Store) SavePost(ctx context.Context, p Post) error {
	return savePost(ctx, s.db, p)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func savePost(ctx context.Context, db execer, p Post) error {
	if strings.TrimSpace(p.Slug) == "" {
		return errors.New("content: post slug is required")
	}
	date := ""
	if !p.PublishedAt.IsZero() {
		date = p.PublishedAt.UTC().Format(storeTimeLayout)
	}
	var description sql.NullString
	if p.Description != nil {
		description = sql.NullString{String: *p.Description, Valid: true}
	}
	published := 0
	if p.Published {
		published = 1
	}
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, date, description, p.Excerpt, published)
	return err
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// ReplaceAll swaps the whole index for posts in one transaction. Every
// record is stored as published.
func (s *Store) ReplaceAll(ctx context.Context, posts []PostRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return err
	}
	for _, p := range posts {
		if err := savePost(ctx, tx, Post{PostRecord: p, Published: true}); err != nil {
			return fmt.Errorf("content: index %s: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}
