// Package folio serves and exports static content pages for a blog.
// It wires the content query, the page renderer and the view shell into an
// Echo application and a static exporter.
//
// The About page is the built-in page; RSS and sitemap output are derived
// from the same content snapshot.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/folio-blog/folio/content"
	"github.com/folio-blog/folio/page"
	"github.com/folio-blog/folio/views"
)

// AboutPath is where the About page is served and exported.
const AboutPath = "/about/"

// stylesheetURL is the embedded default stylesheet.
const stylesheetURL = "/public/style.css"

// App is the central folio application. It wires together the post source,
// cache, handlers, middleware, and the view shell.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Posts  *content.Cache
	Shell  views.Shell
	About  *page.Template

	source       content.PostSource
	closer       io.Closer
	watchDir     string
	shellOpt     *views.Shell
	avatar       []byte
	customRoutes []func(*App)
}

// New creates an App from cfg. Unless WithPostSource is given, posts come
// from the SQLite index at DatabasePath when set, else from ContentDir.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		About:  page.About(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.source == nil {
		if cfg.DatabasePath != "" {
			store, err := content.NewStore(cfg.DatabasePath)
			if err != nil {
				return nil, fmt.Errorf("folio: open store: %w", err)
			}
			a.source = store
			a.closer = store
		} else {
			a.source = content.NewDir(cfg.ContentDir)
		}
	}
	if dir, ok := a.source.(*content.Dir); ok {
		a.watchDir = dir.Root()
	}
	a.Posts = content.NewCache(a.source, cfg.CacheTTL)

	avatar, err := loadAvatar(cfg.AvatarPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("folio: avatar: %w", err)
	}
	a.avatar = avatar

	if a.shellOpt != nil {
		a.Shell = *a.shellOpt
	} else {
		avatarURL := ""
		if a.avatar != nil {
			avatarURL = "/avatar.jpg"
		}
		a.Shell = views.NewShell(cfg.viewConfig(avatarURL))
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Query returns the content query pages are bound to.
func (a *App) Query() content.Query {
	return content.Query{Site: a.Config.siteMetadata(), Posts: a.Posts}
}

// Start serves until ctx is cancelled or the server fails. When posts come
// from a content directory, edits under it invalidate the post cache.
func (a *App) Start(ctx context.Context) error {
	if a.watchDir != "" {
		if _, err := os.Stat(a.watchDir); err == nil {
			go func() {
				if err := content.Watch(ctx, a.watchDir, a.Posts.Invalidate); err != nil {
					a.Echo.Logger.Errorf("watch %s: %v", a.watchDir, err)
				}
			}()
		}
	}

	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET(stylesheetURL, handleStylesheet)
	e.Static("/public", a.Config.StaticDir)
	e.GET("/avatar.jpg", a.handleAvatar)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", handleHomeRedirect)
	e.GET(AboutPath, a.handleAbout)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
