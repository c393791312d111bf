package folio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/folio-blog/folio/page"
	"github.com/folio-blog/folio/views"
)

// Export resolves the content query once and writes the site to outDir:
// the About page, a root page redirecting to it, feed, sitemap, robots.txt,
// avatar and static assets.
// Existing files in outDir are overwritten; others are left alone.
func (a *App) Export(ctx context.Context, outDir string) error {
	bundle, err := a.Query().Resolve(ctx)
	if err != nil {
		return fmt.Errorf("folio: export: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("folio: export: %w", err)
	}

	publicDir := filepath.Join(outDir, "public")
	if _, err := os.Stat(a.Config.StaticDir); err == nil {
		if err := copyDirContents(a.Config.StaticDir, publicDir); err != nil {
			return fmt.Errorf("folio: copy static assets: %w", err)
		}
		slog.Info("copied static assets", "from", a.Config.StaticDir, "to", publicDir)
	}

	css, err := EmbeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return err
	}

	doc := a.About.Render(bundle, page.Location{Path: AboutPath})
	var html bytes.Buffer
	if err := views.Document(a.Shell, stylesheetURL, doc).Render(ctx, &html); err != nil {
		return fmt.Errorf("folio: render about page: %w", err)
	}

	var home bytes.Buffer
	if err := views.Redirect(AboutPath).Render(ctx, &home); err != nil {
		return fmt.Errorf("folio: render home redirect: %w", err)
	}

	var feed, sitemap bytes.Buffer
	if err := writeXML(&feed, a.buildFeed(bundle)); err != nil {
		return fmt.Errorf("folio: render feed: %w", err)
	}
	if err := writeXML(&sitemap, buildSitemap(a.Config.URL)); err != nil {
		return fmt.Errorf("folio: render sitemap: %w", err)
	}

	files := map[string][]byte{
		"index.html":                         home.Bytes(),
		filepath.Join("about", "index.html"): html.Bytes(),
		"feed.xml":                           feed.Bytes(),
		"sitemap.xml":                        sitemap.Bytes(),
		"robots.txt":                         []byte(robotsTxt(a.Config.URL)),
		filepath.Join("public", "style.css"): css,
	}
	if a.avatar != nil {
		files["avatar.jpg"] = a.avatar
	}
	for name, data := range files {
		if err := writeOutput(outDir, name, data); err != nil {
			return err
		}
	}
	slog.Info("exported site", "dir", outDir, "files", len(files), "posts", len(bundle.Posts))
	return nil
}

func writeOutput(outDir, name string, data []byte) error {
	p := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("folio: create %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("folio: write %s: %w", p, err)
	}
	return nil
}

// copyDirContents recursively copies the contents of src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
