package folio

import (
	"encoding/xml"
	"time"

	"github.com/folio-blog/folio/content"
	"github.com/folio-blog/folio/page"
	"github.com/folio-blog/folio/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link,omitempty"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid,omitempty"`
}

// buildFeed turns a content snapshot into an RSS 2.0 document. Items carry
// the post description, or the excerpt when there is none. Item links
// resolve against PostsURL and are left out when it is not configured.
func (a *App) buildFeed(b content.Bundle) rssXML {
	items := make([]rssItem, 0, len(b.Posts))
	for _, p := range b.Posts {
		pubDate := ""
		if !p.PublishedAt.IsZero() {
			pubDate = p.PublishedAt.Format(time.RFC1123Z)
		}
		desc := p.Excerpt
		if p.Description != nil {
			desc = *p.Description
		}
		postURL := ""
		if a.Config.PostsURL != "" {
			postURL = views.BuildURL(a.Config.PostsURL, p.Slug)
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: desc,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       page.ResolveTitle(b.Site),
			Link:        views.BuildURL(a.Config.URL, AboutPath),
			Description: a.Config.Description,
			Items:       items,
		},
	}
}
