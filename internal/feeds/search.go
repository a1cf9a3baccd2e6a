package feeds

import (
	"net/url"
	"strings"
)

const braveNewsEndpoint = "https://api.search.brave.com/res/v1/news/search"

// SearchURL builds the news search URL for a query. Pure string
// templating; the fetch itself belongs to the caller.
func SearchURL(query, language, country string) string {
	if language == "" {
		language = "en"
	}
	if country == "" {
		country = "us"
	}

	params := url.Values{}
	params.Set("q", strings.TrimSpace(query))
	params.Set("search_lang", language)
	params.Set("country", country)
	params.Set("count", "20")

	return braveNewsEndpoint + "?" + params.Encode()
}
