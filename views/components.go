package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/folio-blog/folio/page"
)

// rootPath is the path on which the layout shows the large heading.
const rootPath = "/"

// Layout renders the page chrome around children: the header with the site
// title, the main column and the footer.
func Layout(cfg SiteConfig, loc page.Location, title string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		isRoot := loc.Path == rootPath
		if isRoot {
			hw.raw(`<div class="global-wrapper" data-is-root-path="true">`)
		} else {
			hw.raw(`<div class="global-wrapper" data-is-root-path="false">`)
		}
		hw.raw(`<header class="global-header">`)
		if isRoot {
			hw.raw(`<h1 class="main-heading"><a href="/">`)
			hw.text(title)
			hw.raw(`</a></h1>`)
		} else {
			hw.raw(`<a class="header-link-home" href="/">`)
			hw.text(title)
			hw.raw(`</a>`)
		}
		hw.raw(`</header><main>`)
		hw.render(ctx, children)
		hw.raw(`</main><footer>`)
		if cfg.Author != "" {
			hw.raw(`© `)
			hw.text(cfg.Author)
			hw.raw(` · `)
		}
		hw.raw(`<a href="/feed.xml">RSS</a></footer></div>`)
		return hw.err
	})
}

// SEO renders the <head> metadata for a page titled title.
func SEO(cfg SiteConfig, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		full := title
		if cfg.Title != "" {
			full = title + " | " + cfg.Title
		}
		hw.raw(`<title>`)
		hw.text(full)
		hw.raw(`</title>`)
		if cfg.Description != "" {
			hw.raw(`<meta name="description" content="`)
			hw.text(cfg.Description)
			hw.raw(`"><meta property="og:description" content="`)
			hw.text(cfg.Description)
			hw.raw(`">`)
		}
		hw.raw(`<meta property="og:title" content="`)
		hw.text(title)
		hw.raw(`"><meta property="og:type" content="website">`)
		hw.raw(`<meta name="twitter:card" content="summary"><meta name="twitter:title" content="`)
		hw.text(title)
		hw.raw(`">`)
		if cfg.Twitter != "" {
			hw.raw(`<meta name="twitter:creator" content="@`)
			hw.text(cfg.Twitter)
			hw.raw(`">`)
		}
		hw.raw(`<script type="application/ld+json">`, AboutPageJsonLD(cfg, title), `</script>`)
		return hw.err
	})
}

// Bio renders the author block. It takes no page data.
func Bio(cfg SiteConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="bio">`)
		if cfg.AvatarURL != "" {
			hw.raw(`<img class="bio-avatar" src="`)
			hw.text(cfg.AvatarURL)
			hw.raw(`" width="50" height="50" alt="Profile picture">`)
		}
		if cfg.Author != "" {
			hw.raw(`<p>Written by <strong>`)
			hw.text(cfg.Author)
			hw.raw(`</strong>`)
			if cfg.AuthorSummary != "" {
				hw.raw(` `)
				hw.text(cfg.AuthorSummary)
			}
			if cfg.Twitter != "" {
				hw.raw(` <a href="`)
				hw.text(TwitterURL(cfg.Twitter))
				hw.raw(`">You should follow them on Twitter</a>`)
			}
			hw.raw(`</p>`)
		}
		hw.raw(`</div>`)
		return hw.err
	})
}

// Document serializes a page document through shell: head metadata from
// the SEO collaborator, then the layout wrapping the prose and the bio.
func Document(shell Shell, stylesheet string, doc page.Document) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<article class="static-page">`)
		for _, p := range doc.Prose {
			hw.raw(string(p))
		}
		hw.raw(`</article>`)
		hw.render(ctx, shell.Bio())
		return hw.err
	})
	return html(shell, stylesheet, doc.Location, doc.Title, doc.SEO.Title, body)
}

// NotFound renders the 404 page.
func NotFound(shell Shell, stylesheet, title string) templ.Component {
	return html(shell, stylesheet, page.Location{}, title, "404: Not Found", message(
		"404: Not Found",
		"You just hit a route that doesn't exist... the sadness.",
	))
}

// ServerError renders the 500 page.
func ServerError(shell Shell, stylesheet, title string) templ.Component {
	return html(shell, stylesheet, page.Location{}, title, "Server error", message(
		"Something went wrong",
		"Sorry, there was an internal server error.",
	))
}

func message(heading, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h1>`)
		hw.text(heading)
		hw.raw(`</h1><p>`)
		hw.text(body)
		hw.raw(`</p>`)
		return hw.err
	})
}

func html(shell Shell, stylesheet string, loc page.Location, title, seoTitle string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if stylesheet != "" {
			hw.raw(`<link rel="stylesheet" href="`)
			hw.text(stylesheet)
			hw.raw(`">`)
		}
		hw.render(ctx, shell.SEO(seoTitle))
		hw.raw(`</head><body>`)
		hw.render(ctx, shell.Layout(loc, title, children))
		hw.raw(`</body></html>`)
		return hw.err
	})
}

// Redirect renders a page that sends the browser to target. Static exports
// use it where the server would answer with a redirect.
func Redirect(target string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta http-equiv="refresh" content="0; url=`)
		hw.text(target)
		hw.raw(`"><link rel="canonical" href="`)
		hw.text(target)
		hw.raw(`"><title>Redirecting</title></head><body><a href="`)
		hw.text(target)
		hw.raw(`">`)
		hw.text(target)
		hw.raw(`</a></body></html>`)
		return hw.err
	})
}
