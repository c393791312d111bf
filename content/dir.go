package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// ExcerptLength is the maximum number of characters in a post excerpt
// before the ellipsis.
const ExcerptLength = 140

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// yamlFrontmatter only accepts "---" delimited YAML blocks.
var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

type postMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// Dir reads posts from a tree of Markdown files with YAML frontmatter.
type Dir struct {
	root string
	md   goldmark.Markdown
}

// NewDir returns a Dir rooted at root. The directory is not read until
// Posts is called.
func NewDir(root string) *Dir {
	return &Dir{
		root: root,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Root returns the directory the posts are read from.
func (d *Dir) Root() string {
	return d.root
}

// Posts walks the tree and returns every non-draft post, unsorted.
// A missing root yields no posts.
func (d *Dir) Posts(ctx context.Context) ([]PostRecord, error) {
	if _, err := os.Stat(d.root); os.IsNotExist(err) {
		return nil, nil
	}
	var posts []PostRecord
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			return nil
		}
		post, draft, err := d.readPost(p)
		if err != nil {
			return err
		}
		if !draft {
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk %s: %w", d.root, err)
	}
	return posts, nil
}

func (d *Dir) readPost(p string) (PostRecord, bool, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return PostRecord{}, false, err
	}
	var fm postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm, yamlFrontmatter)
	if err != nil {
		return PostRecord{}, false, fmt.Errorf("parse frontmatter of %s: %w", p, err)
	}
	rel, err := filepath.Rel(d.root, p)
	if err != nil {
		return PostRecord{}, false, err
	}
	var published time.Time
	if fm.Date != "" {
		published, err = parseDate(fm.Date)
		if err != nil {
			return PostRecord{}, false, fmt.Errorf("%s: %w", p, err)
		}
	}
	slug := SlugFromPath(rel)
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = TitleFromSlug(slug)
	}
	return PostRecord{
		Slug:        slug,
		Title:       title,
		Date:        FormatDate(published),
		Description: String(strings.TrimSpace(fm.Description)),
		Excerpt:     Prune(d.plainText(body), ExcerptLength),
		PublishedAt: published,
	}, fm.Draft, nil
}

// plainText returns the text content of a Markdown document with code
// blocks dropped and whitespace collapsed.
func (d *Dir) plainText(src []byte) string {
	doc := d.md.Parser().Parse(text.NewReader(src))
	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or RFC 3339", s)
}

// SlugFromPath turns a content-relative file path into a URL slug:
// "posts/hello.md" becomes "/posts/hello/" and "hello/index.md" becomes
// "/hello/".
func SlugFromPath(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	if path.Base(rel) == "index" {
		rel = path.Dir(rel)
	}
	if rel == "." || rel == "" {
		return "/"
	}
	return "/" + strings.Trim(rel, "/") + "/"
}

// TitleFromSlug derives a display title from the last slug segment.
func TitleFromSlug(slug string) string {
	name := path.Base(strings.Trim(slug, "/"))
	if name == "." || name == "" {
		return ""
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

// Prune shortens s to at most max characters, cutting at the last word
// boundary and appending an ellipsis. A word that ends exactly at max is
// kept. Strings that fit are returned as is.
func Prune(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max])
	if !unicode.IsSpace(runes[max]) {
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, " ,;:.") + "…"
}
