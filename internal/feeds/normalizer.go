// Package feeds converts heterogeneous feed and search-API payloads into
// the canonical lens.Article shape.
//
// All parsers here fail closed: malformed input yields an empty slice,
// never an error. The pipeline must stay usable with partial data from
// any subset of failing feeds.
package feeds

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tidwall/gjson"

	"github.com/abelbrown/parallax/internal/lens"
)

// maxItemsPerFeed caps how many articles one feed contributes, first-seen order.
const maxItemsPerFeed = 20

// maxDescriptionLen is the canonical description length cap.
const maxDescriptionLen = 300

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// StripHTML replaces markup tags with spaces and trims the result.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, " "))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ParseFeedItems parses a raw RSS 2.0 or Atom document into articles.
//
// Link resolution: RSS items use <link> text falling back to <guid>;
// Atom entries use <link href>. Items whose link does not start with
// "http" are dropped. Descriptions are HTML-stripped and truncated.
func ParseFeedItems(raw string) []lens.Article {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(raw)
	if err != nil || feed == nil {
		return nil
	}

	var articles []lens.Article
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		link := strings.TrimSpace(item.Link)
		if !strings.HasPrefix(link, "http") {
			link = strings.TrimSpace(item.GUID)
		}
		if !strings.HasPrefix(link, "http") {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}

		pubDate := strings.TrimSpace(item.Published)
		if pubDate == "" {
			pubDate = strings.TrimSpace(item.Updated)
		}

		articles = append(articles, lens.Article{
			Title:       strings.TrimSpace(item.Title),
			Link:        link,
			Description: truncate(StripHTML(desc), maxDescriptionLen),
			PubDate:     pubDate,
		})
		if len(articles) >= maxItemsPerFeed {
			break
		}
	}
	return articles
}

// ParseBraveNews maps a Brave news search response onto articles.
// Missing fields become empty strings; invalid JSON yields nil.
func ParseBraveNews(raw []byte) []lens.Article {
	if !gjson.ValidBytes(raw) {
		return nil
	}

	var articles []lens.Article
	for _, r := range gjson.GetBytes(raw, "results").Array() {
		url := r.Get("url").String()
		if !strings.HasPrefix(url, "http") {
			continue
		}
		articles = append(articles, lens.Article{
			Title:       strings.TrimSpace(r.Get("title").String()),
			Link:        url,
			Description: truncate(StripHTML(r.Get("description").String()), maxDescriptionLen),
			PubDate:     r.Get("age").String(),
		})
		if len(articles) >= maxItemsPerFeed {
			break
		}
	}
	return articles
}

// ParseNewsAPI maps a NewsAPI-style response onto articles.
func ParseNewsAPI(raw []byte) []lens.Article {
	if !gjson.ValidBytes(raw) {
		return nil
	}

	var articles []lens.Article
	for _, r := range gjson.GetBytes(raw, "articles").Array() {
		url := r.Get("url").String()
		if !strings.HasPrefix(url, "http") {
			continue
		}
		articles = append(articles, lens.Article{
			Title:       strings.TrimSpace(r.Get("title").String()),
			Link:        url,
			Description: truncate(StripHTML(r.Get("description").String()), maxDescriptionLen),
			PubDate:     r.Get("publishedAt").String(),
		})
		if len(articles) >= maxItemsPerFeed {
			break
		}
	}
	return articles
}

// Normalize picks a parser based on the payload content type and shape.
// XML-ish payloads go through the feed parser; JSON payloads are tried
// against both known search API shapes.
func Normalize(raw []byte, contentType string) []lens.Article {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil
	}

	isJSON := strings.Contains(contentType, "json") || strings.HasPrefix(trimmed, "{")
	if isJSON {
		if articles := ParseBraveNews(raw); len(articles) > 0 {
			return articles
		}
		return ParseNewsAPI(raw)
	}
	return ParseFeedItems(trimmed)
}
