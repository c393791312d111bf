package page

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/folio-blog/folio/content"
)

func samplePosts() []content.PostRecord {
	return []content.PostRecord{
		{Slug: "/b/", Title: "B", Date: "May 06, 2015", Excerpt: "second", PublishedAt: time.Date(2015, 5, 6, 0, 0, 0, 0, time.UTC)},
		{Slug: "/a/", Title: "A", Date: "May 01, 2015", Excerpt: "first", Description: content.String("d")},
	}
}

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    *string
		expected string
	}{
		{"present", content.String("My Blog"), "My Blog"},
		{"absent", nil, FallbackTitle},
		{"empty", new(string), FallbackTitle},
		{"whitespace kept", content.String(" "), " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTitle(content.SiteMetadata{Title: tt.title})
			if got != tt.expected {
				t.Errorf("ResolveTitle = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderScenarioA(t *testing.T) {
	nav := Location{Path: "/about/"}
	doc := Render(content.Bundle{Site: content.SiteMetadata{Title: content.String("My Blog")}}, nav)

	if doc.Title != "My Blog" {
		t.Errorf("Title = %q, want %q", doc.Title, "My Blog")
	}
	if doc.SEO.Title != "All posts" {
		t.Errorf("SEO.Title = %q, want %q", doc.SEO.Title, "All posts")
	}
	if len(doc.Prose) != 5 {
		t.Errorf("Prose has %d paragraphs, want 5", len(doc.Prose))
	}
	if doc.Location != nav {
		t.Errorf("Location = %+v, want %+v", doc.Location, nav)
	}
}

func TestRenderScenarioB(t *testing.T) {
	a := Render(content.Bundle{Site: content.SiteMetadata{Title: content.String("My Blog")}}, Location{Path: "/about/"})
	b := Render(content.Bundle{Posts: samplePosts()}, Location{Path: "/about/"})

	if b.Title != FallbackTitle {
		t.Errorf("Title = %q, want %q", b.Title, FallbackTitle)
	}
	b.Title = a.Title
	if !reflect.DeepEqual(a, b) {
		t.Errorf("documents differ beyond the title:\n%+v\n%+v", a, b)
	}
}

func TestRenderIgnoresPosts(t *testing.T) {
	site := content.SiteMetadata{Title: content.String("Blog")}
	empty := Render(content.Bundle{Site: site}, Location{})
	full := Render(content.Bundle{Site: site, Posts: samplePosts()}, Location{})
	if !reflect.DeepEqual(empty, full) {
		t.Error("posts changed the rendered document")
	}
}

func TestRenderReturnsIndependentProse(t *testing.T) {
	doc := Render(content.Bundle{}, Location{})
	doc.Prose[0] = "mutated"
	if Render(content.Bundle{}, Location{}).Prose[0] == "mutated" {
		t.Error("mutating a document leaked into the template")
	}
}

func TestAboutProse(t *testing.T) {
	prose := Render(content.Bundle{}, Location{}).Prose
	joined := ""
	for _, p := range prose {
		if !strings.HasPrefix(string(p), "<p>") || !strings.HasSuffix(string(p), "</p>") {
			t.Errorf("paragraph not wrapped in <p>: %q", p)
		}
		joined += string(p)
	}
	for _, want := range []string{
		"Hello my name is Sean Davis",
		`href="https://mobiledatatech.com/"`,
		`href="http://conal.net/"`,
		`href="https://rd.microsoft.com/en-us/billy-hollis"`,
		`href="https://pragprog.com/"`,
		"<br />",
		"software\nsafety",
		"runing marathons",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("prose missing %q", want)
		}
	}

	if len(prose) != 5 {
		t.Fatalf("got %d paragraphs, want 5", len(prose))
	}
	exact := map[int]Paragraph{
		0: "<p>Hello my name is Sean Davis, and I am a Senior Software Engineer  at" +
			"<a href=\"https://mobiledatatech.com/\">\u00a0MDT</a><br /></p>",
		2: "<p>On my philosophy of programming my biggest influences have been,\n" +
			"\u00a0<a href=\"http://conal.net/\">Conal Elliott</a>,\n" +
			"\u00a0<a href=\"https://rd.microsoft.com/en-us/billy-hollis\">Billy Hollis</a>, and\n" +
			"\u00a0<a href=\"https://pragprog.com/\">the pragmatic programmers</a></p>",
	}
	for i, want := range exact {
		if prose[i] != want {
			t.Errorf("paragraph %d:\n got %q\nwant %q", i+1, prose[i], want)
		}
	}
	for _, bad := range []string{"Hollis</a>\n,", "at\n<a", " , and"} {
		if strings.Contains(joined, bad) {
			t.Errorf("prose contains stray line break %q", bad)
		}
	}
}

func TestNewRejectsNonParagraphs(t *testing.T) {
	if _, err := New([]byte("# Heading\n\ntext\n"), "x"); err == nil {
		t.Error("expected error for heading block")
	}
	if _, err := New(nil, "x"); err == nil {
		t.Error("expected error for empty asset")
	}
}

func TestNewTemplate(t *testing.T) {
	tmpl, err := New([]byte("First.\n\nSecond with [a link](https://example.com/).\n"), "Now")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	doc := tmpl.Render(content.Bundle{}, Location{Path: "/now/"})
	if doc.SEO.Title != "Now" {
		t.Errorf("SEO.Title = %q, want %q", doc.SEO.Title, "Now")
	}
	want := []Paragraph{
		"<p>First.</p>",
		`<p>Second with <a href="https://example.com/">a link</a>.</p>`,
	}
	if !reflect.DeepEqual(doc.Prose, want) {
		t.Errorf("Prose = %q, want %q", doc.Prose, want)
	}
}
