package folio

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/folio-blog/folio/content"
	"github.com/folio-blog/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Title         string `mapstructure:"title"`         // Site title; optional, pages fall back to "Title"
	URL           string `mapstructure:"url"`           // Canonical URL (default "http://localhost:3000")
	Description   string `mapstructure:"description"`   // Site description for RSS and meta tags
	Author        string `mapstructure:"author"`        // Author name for the bio and JSON-LD
	AuthorSummary string `mapstructure:"authorSummary"` // Short line after the author name in the bio
	Twitter       string `mapstructure:"twitter"`       // Twitter handle for the bio link
	PostsURL      string `mapstructure:"postsURL"`      // Where post slugs are published; feed items link there when set

	ContentDir   string `mapstructure:"contentDir"`   // Markdown posts (default "content/blog")
	DatabasePath string `mapstructure:"databasePath"` // SQLite post index; used instead of ContentDir when set
	StaticDir    string `mapstructure:"staticDir"`    // Static assets served under /public (default "static")
	OutputDir    string `mapstructure:"outputDir"`    // Export target (default "public")
	AvatarPath   string `mapstructure:"avatarPath"`   // Bio picture (default "<StaticDir>/profile-pic.png")

	Addr     string        `mapstructure:"addr"`     // Listen address (default ":3000")
	CacheTTL time.Duration `mapstructure:"cacheTTL"` // Post cache TTL (default 5min)
}

// setDefaults fills in zero values. Title is left alone: an absent title
// is meaningful to the page renderer.
func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	c.PostsURL = strings.TrimSuffix(c.PostsURL, "/")
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.AvatarPath == "" {
		c.AvatarPath = filepath.Join(c.StaticDir, "profile-pic.png")
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

func (c SiteConfig) siteMetadata() content.SiteMetadata {
	return content.SiteMetadata{Title: content.String(c.Title)}
}

func (c SiteConfig) viewConfig(avatarURL string) views.SiteConfig {
	return views.SiteConfig{
		Title:         c.Title,
		URL:           c.URL,
		Description:   c.Description,
		Author:        c.Author,
		AuthorSummary: c.AuthorSummary,
		Twitter:       c.Twitter,
		AvatarURL:     avatarURL,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithPostSource replaces the post source derived from the config.
func WithPostSource(src content.PostSource) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithShell replaces the default layout, SEO and bio collaborators.
func WithShell(shell views.Shell) Option {
	return func(a *App) {
		a.shellOpt = &shell
	}
}
