// Package content resolves the content query a page is bound to: the site
// metadata and the published posts, ordered newest first.
package content

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: not found")

// DateLayout is the display format of PostRecord.Date.
const DateLayout = "January 02, 2006"

// SiteMetadata is the site-wide part of the query result.
type SiteMetadata struct {
	Title *string // nil when the site has no configured title
}

// PostRecord is the metadata of one published article.
type PostRecord struct {
	Slug        string
	Title       string
	Date        string  // PublishedAt formatted with DateLayout, "" when undated
	Description *string // nil when the frontmatter has none
	Excerpt     string

	PublishedAt time.Time
}

// Bundle is one resolved snapshot of the content query.
type Bundle struct {
	Site  SiteMetadata
	Posts []PostRecord
}

// PostSource yields the published posts. Implementations need not sort.
type PostSource interface {
	Posts(ctx context.Context) ([]PostRecord, error)
}

// String returns a pointer to s, or nil when s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FormatDate renders t with DateLayout. The zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
