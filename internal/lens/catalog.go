package lens

// BuiltinCatalog returns the curated lens configurations. Feed lists are
// ordered by preference; multiple feeds per column increase article count.
// The "custom" lens starts empty and is populated at run time.
func BuiltinCatalog() map[string]Lens {
	return map[string]Lens{
		"political": {
			Label: "Political Spectrum",
			Columns: []Column{
				{
					ID: "left", Label: "Left", Color: "#3b82f6",
					Feeds: []string{
						"https://www.theguardian.com/world/rss",
						"https://www.motherjones.com/feed/",
					},
				},
				{
					ID: "center-left", Label: "Center-Left", Color: "#6792d7",
					Feeds: []string{
						"https://feeds.npr.org/1001/rss.xml",
						"https://feeds.washingtonpost.com/rss/world",
					},
				},
				{
					ID: "center", Label: "Center", Color: "#94a3b8",
					Feeds: []string{
						"https://feeds.bbci.co.uk/news/world/rss.xml",
						"https://feeds.reuters.com/reuters/topNews",
					},
				},
				{
					ID: "center-right", Label: "Ctr-Right", Color: "#c1737e",
					Feeds: []string{
						"https://www.economist.com/sections/briefing/rss.xml",
						"https://feeds.a.dj.com/rss/RSSWorldNews.xml",
					},
				},
				{
					ID: "right", Label: "Right", Color: "#ef4444",
					Feeds: []string{
						"https://moxie.foxnews.com/google-publisher/world.xml",
						"https://www.nationalreview.com/feed/",
					},
				},
			},
		},
		"geographic": {
			Label: "Geographic",
			Columns: []Column{
				{
					ID: "na", Label: "N. America", Color: "#3b82f6",
					Feeds: []string{
						"https://feeds.npr.org/1001/rss.xml",
						"https://feeds.a.dj.com/rss/RSSWorldNews.xml",
					},
				},
				{
					ID: "eu", Label: "Europe", Color: "#8b5cf6",
					Feeds: []string{
						"https://feeds.bbci.co.uk/news/world/rss.xml",
						"https://www.theguardian.com/world/rss",
					},
				},
				{
					ID: "ap", Label: "Asia-Pacific", Color: "#06b6d4",
					Feeds: []string{
						"https://www.scmp.com/rss/91/feed",
						"https://www3.nhk.or.jp/nhkworld/en/news/rss/",
					},
				},
				{
					ID: "me", Label: "Mid East & Africa", Color: "#f59e0b",
					Feeds: []string{
						"https://www.aljazeera.com/xml/rss/all.xml",
					},
				},
				{
					ID: "intl", Label: "Global / Intl", Color: "#10b981",
					Feeds: []string{
						"https://news.un.org/feed/subscribe/en/news/all/rss.xml",
						"https://feeds.reuters.com/reuters/topNews",
					},
				},
			},
		},
		"domain": {
			Label: "Domain",
			Columns: []Column{
				{
					ID: "science", Label: "Science", Color: "#06b6d4",
					Feeds: []string{
						"https://www.nature.com/news.rss",
						"https://feeds.sciencedaily.com/sciencedaily/top_news",
					},
				},
				{
					ID: "tech", Label: "Tech", Color: "#8b5cf6",
					Feeds: []string{
						"https://feeds.wired.com/wired/index",
						"https://feeds.arstechnica.com/arstechnica/index",
					},
				},
				{
					ID: "policy", Label: "Policy / Gov", Color: "#f59e0b",
					Feeds: []string{
						"https://news.un.org/feed/subscribe/en/news/all/rss.xml",
					},
				},
				{
					ID: "finance", Label: "Finance", Color: "#10b981",
					Feeds: []string{
						"https://feeds.a.dj.com/rss/RSSMarketsMain.xml",
						"https://feeds.reuters.com/reuters/businessNews",
					},
				},
				{
					ID: "culture", Label: "Culture", Color: "#ec4899",
					Feeds: []string{
						"https://www.theatlantic.com/feed/all/",
						"https://www.newyorker.com/feed/everything",
					},
				},
			},
		},
		"custom": {
			Label:   "Custom",
			Columns: []Column{},
		},
	}
}
