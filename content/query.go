package content

import (
	"context"
	"fmt"
	"sort"
)

// Query binds the site metadata to a post source. Resolve runs it.
type Query struct {
	Site  SiteMetadata
	Posts PostSource
}

// Resolve fetches the posts and returns a snapshot sorted by publication
// date descending. Undated posts sort last. A nil Posts source yields an
// empty collection.
func (q Query) Resolve(ctx context.Context) (Bundle, error) {
	b := Bundle{Site: q.Site}
	if q.Posts == nil {
		return b, nil
	}
	posts, err := q.Posts.Posts(ctx)
	if err != nil {
		return Bundle{}, fmt.Errorf("content: resolve posts: %w", err)
	}
	b.Posts = make([]PostRecord, len(posts))
	copy(b.Posts, posts)
	SortNewestFirst(b.Posts)
	return b, nil
}

// SortNewestFirst orders posts by PublishedAt descending, keeping undated
// posts at the end and ties in slug order.
func SortNewestFirst(posts []PostRecord) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].PublishedAt, posts[j].PublishedAt
		switch {
		case a.IsZero() && b.IsZero():
			return posts[i].Slug < posts[j].Slug
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		case a.Equal(b):
			return posts[i].Slug < posts[j].Slug
		}
		return a.After(b)
	})
}
