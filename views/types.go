// Package views serializes page documents to HTML with templ components.
//
// The page shell is supplied through Shell so the layout, SEO and bio
// collaborators can be swapped without touching the page renderer.
package views

import (
	"github.com/a-h/templ"

	"github.com/folio-blog/folio/page"
)

// SiteConfig holds the site-wide settings the collaborators read.
type SiteConfig struct {
	Title         string // may be empty; pages fall back on their own
	URL           string // canonical base URL, no trailing slash
	Description   string
	Author        string
	AuthorSummary string
	Twitter       string // handle without the leading @
	AvatarURL     string // empty when there is no avatar
}

// Shell holds the collaborators every page is rendered through.
type Shell struct {
	Layout func(loc page.Location, title string, children templ.Component) templ.Component
	SEO    func(title string) templ.Component
	Bio    func() templ.Component
}

// NewShell binds the default collaborators to cfg.
func NewShell(cfg SiteConfig) Shell {
	return Shell{
		Layout: func(loc page.Location, title string, children templ.Component) templ.Component {
			return Layout(cfg, loc, title, children)
		},
		SEO: func(title string) templ.Component {
			return SEO(cfg, title)
		},
		Bio: func() templ.Component {
			return Bio(cfg)
		},
	}
}
