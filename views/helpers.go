package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
// With no segments the base gets a trailing slash too.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// TwitterURL returns the profile URL for a handle, with or without "@".
func TwitterURL(handle string) string {
	return "https://twitter.com/" + url.PathEscape(strings.TrimPrefix(handle, "@"))
}

// AboutPageJsonLD produces a Schema.org AboutPage JSON-LD block using cfg values.
func AboutPageJsonLD(cfg SiteConfig, title string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "AboutPage",
		"name":     title,
		"url":      BuildURL(cfg.URL, "about"),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Title != "" {
		data["isPartOf"] = map[string]string{
			"@type": "WebSite",
			"name":  cfg.Title,
			"url":   BuildURL(cfg.URL),
		}
	}
	if cfg.Author != "" {
		person := map[string]interface{}{
			"@type": "Person",
			"name":  cfg.Author,
		}
		if cfg.Twitter != "" {
			person["sameAs"] = []string{TwitterURL(cfg.Twitter)}
		}
		data["mainEntity"] = person
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// htmlWriter writes markup to w and keeps the first error, so components
// can emit a sequence of writes and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, p)
	}
}

// text writes s escaped for element content and attribute values.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}
