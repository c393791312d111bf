package folio

import (
	"encoding/xml"

	"github.com/folio-blog/folio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapPaths are the pages this site serves and exports. Posts are
// published elsewhere and are not listed.
var sitemapPaths = []string{AboutPath}

func buildSitemap(base string) sitemapURLSet {
	urls := make([]sitemapURL, 0, len(sitemapPaths))
	for _, p := range sitemapPaths {
		urls = append(urls, sitemapURL{Loc: views.BuildURL(base, p)})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}
