package folio

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/folio-blog/folio/page"
	"github.com/folio-blog/folio/views"
)

func (a *App) handleAbout(c echo.Context) error {
	bundle, err := a.Query().Resolve(c.Request().Context())
	if err != nil {
		return err
	}
	doc := a.About.Render(bundle, page.Location{Path: c.Request().URL.Path})
	return Render(c, views.Document(a.Shell, stylesheetURL, doc))
}

func (a *App) handleSitemap(c echo.Context) error {
	return renderXML(c, "application/xml; charset=utf-8", buildSitemap(a.Config.URL))
}

func (a *App) handleFeed(c echo.Context) error {
	bundle, err := a.Query().Resolve(c.Request().Context())
	if err != nil {
		return err
	}
	return renderXML(c, "application/rss+xml; charset=utf-8", a.buildFeed(bundle))
}

// handleRobots generates robots.txt using the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Config.URL))
}

func robotsTxt(base string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", views.BuildURL(base)+"sitemap.xml")
}

func (a *App) handleAvatar(c echo.Context) error {
	if a.avatar == nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/jpeg", a.avatar)
}

func handleStylesheet(c echo.Context) error {
	css, err := EmbeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return err
	}
	return c.Stream(http.StatusOK, "text/css; charset=utf-8", bytes.NewReader(css))
}

func handleHomeRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, AboutPath)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Shell, stylesheetURL, page.ResolveTitle(a.Config.siteMetadata())))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Shell, stylesheetURL, page.ResolveTitle(a.Config.siteMetadata())))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
