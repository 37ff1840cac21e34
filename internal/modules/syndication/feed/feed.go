// Package feed renders RSS and Atom feeds over the aggregated posts.
package feed

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shourya-8416/portfolio-core/internal/config"
	"github.com/Shourya-8416/portfolio-core/internal/modules/content/blog"
	"github.com/Shourya-8416/portfolio-core/internal/modules/processing/markdown"
)

// maxItems caps the feed to the newest posts.
const maxItems = 20

// RegisterRoutes mounts RSS and Atom feed endpoints.
func RegisterRoutes(r gin.IRouter, svc *blog.Service, site config.SiteConfig) {
	r.GET("/feed", func(c *gin.Context) {
		renderFeed(c, svc, site, c.DefaultQuery("type", "rss")) // rss | atom
	})
	r.GET("/feed.xml", func(c *gin.Context) {
		renderFeed(c, svc, site, "rss")
	})
	r.GET("/atom.xml", func(c *gin.Context) {
		renderFeed(c, svc, site, "atom")
	})
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	PubDate time.Time
	Content string
}

func renderFeed(c *gin.Context, svc *blog.Service, site config.SiteConfig, feedType string) {
	posts := svc.GetAllPosts(c.Request.Context())
	if len(posts) > maxItems {
		posts = posts[:maxItems]
	}

	items := make([]feedItem, len(posts))
	for i, p := range posts {
		items[i] = feedItem{
			Title:   p.Metadata.Title,
			Link:    fmt.Sprintf("%s/posts/%s", site.URL, p.Metadata.Slug),
			GUID:    p.Metadata.Slug,
			PubDate: blog.ParseDate(p.Metadata.Date),
			Content: markdown.Render(p.Content),
		}
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(http.StatusOK, buildAtom(site.Title, site.Description, site.URL, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(http.StatusOK, buildRSS(site.Title, site.Description, site.URL, items))
	}
}

func buildRSS(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC1123Z)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(title), escapeXML(link), escapeXML(desc), now)

	for _, item := range items {
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description>%s</description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC1123Z), cdata(item.Content))
	}

	xml += `  </channel>
</rss>`
	return xml
}

func buildAtom(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC3339)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(title), escapeXML(desc), escapeXML(link), now, escapeXML(link))

	for _, item := range items {
		xml += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html">%s</content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC3339), cdata(item.Content))
	}

	xml += `</feed>`
	return xml
}

// cdata wraps content in a CDATA section. A literal "]]>" inside the
// content would close the section early, so the sequence is split across
// two adjacent sections.
func cdata(content string) string {
	return "<![CDATA[" + strings.ReplaceAll(content, "]]>", "]]]]><![CDATA[>") + "]]>"
}

// escapeXML replaces XML special characters in element content.
func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}
