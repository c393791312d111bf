// Package page renders static content pages: a fixed block of prose bound
// to a resolved content snapshot. Rendering is a pure function of its
// inputs and performs no I/O.
package page

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/folio-blog/folio/content"
)

// FallbackTitle replaces a missing or empty site title.
const FallbackTitle = "Title"

// AboutSEOTitle is the SEO title of the About page.
const AboutSEOTitle = "All posts"

//go:embed assets/about.md
var aboutAsset []byte

var about = Must(New(aboutAsset, AboutSEOTitle))

// Location is the navigation context of a render. The renderer hands it to
// the layout untouched.
type Location struct {
	Path string
}

// Paragraph is one trusted HTML paragraph compiled from a page asset.
type Paragraph string

// SEO describes the document metadata to inject.
type SEO struct {
	Title string
}

// Document is a rendered page prior to serialization. Layout chrome and the
// author bio are added by the views that serialize it.
type Document struct {
	Location Location
	Title    string // resolved site title, never empty
	SEO      SEO
	Prose    []Paragraph
}

// Template is a static page: an SEO title and compiled prose.
type Template struct {
	seoTitle string
	prose    []Paragraph
}

// New compiles a Markdown asset into a Template. Every top-level block of
// the asset must be a paragraph. Raw HTML in the asset is kept.
func New(asset []byte, seoTitle string) (*Template, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	doc := md.Parser().Parse(text.NewReader(asset))

	var prose []Paragraph
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph {
			return nil, fmt.Errorf("page: unexpected %s block in asset", n.Kind())
		}
		var buf bytes.Buffer
		if err := md.Renderer().Render(&buf, asset, n); err != nil {
			return nil, fmt.Errorf("page: render paragraph: %w", err)
		}
		prose = append(prose, Paragraph(strings.TrimSpace(buf.String())))
	}
	if len(prose) == 0 {
		return nil, errors.New("page: asset has no paragraphs")
	}
	return &Template{seoTitle: seoTitle, prose: prose}, nil
}

// Must panics if err is non-nil. It is meant for package-level templates.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}

// About returns the About page template.
func About() *Template {
	return about
}

// Render binds a content snapshot and navigation context to the template.
// The posts in c are not rendered.
func (t *Template) Render(c content.Bundle, nav Location) Document {
	prose := make([]Paragraph, len(t.prose))
	copy(prose, t.prose)
	return Document{
		Location: nav,
		Title:    ResolveTitle(c.Site),
		SEO:      SEO{Title: t.seoTitle},
		Prose:    prose,
	}
}

// Render renders the About page.
func Render(c content.Bundle, nav Location) Document {
	return about.Render(c, nav)
}

// ResolveTitle returns the site title, or FallbackTitle when it is nil or
// empty. Whitespace-only titles are kept.
func ResolveTitle(site content.SiteMetadata) string {
	if site.Title == nil || *site.Title == "" {
		return FallbackTitle
	}
	return *site.Title
}
