package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/abelbrown/parallax/internal/dedup"
	"github.com/abelbrown/parallax/internal/feeds"
	"github.com/abelbrown/parallax/internal/fetch"
	"github.com/abelbrown/parallax/internal/lens"
	"github.com/abelbrown/parallax/internal/run"
	"github.com/abelbrown/parallax/internal/score"
)

// runDocument is the JSON payload persisted for a saved run.
type runDocument struct {
	Topic   string             `json:"topic"`
	Lens    string             `json:"lens"`
	Mode    string             `json:"mode"`
	Columns []run.ColumnResult `json:"columns"`
	Search  []lens.Article     `json:"search,omitempty"`
}

func runPipeline() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	lensID := fs.String("lens", "political", "Lens to run (see 'parallax lenses')")
	topic := fs.String("topic", "", "Research topic (required)")
	mode := fs.String("mode", "", "Temporal mode: bonus or filter (default from config)")
	window := fs.Int("window", 0, "Temporal window in days (default from config)")
	seedDate := fs.String("date", "", "Seed date YYYY-MM-DD for temporal scoring")
	timeout := fs.Duration("timeout", 60*time.Second, "Overall fetch timeout")
	top := fs.Int("top", 5, "Articles to print per column")
	search := fs.Bool("search", false, "Also query Brave news search for the topic")
	save := fs.Bool("save", false, "Persist the run to history")
	fs.Parse(os.Args[1:])

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "parallax run: -topic is required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig()
	catalog := loadCatalog(cfg)
	l, ok := catalog[*lensID]
	if !ok {
		fmt.Fprintf(os.Stderr, "parallax run: unknown lens %q\n", *lensID)
		os.Exit(1)
	}

	var seed time.Time
	if *seedDate != "" {
		parsed, err := time.Parse("2006-01-02", *seedDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parallax run: bad -date %q: %v\n", *seedDate, err)
			os.Exit(1)
		}
		seed = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fetcher := fetch.NewFetcher(30 * time.Second)
	session := run.NewSession(*topic, l, nil, seed, fetcher)
	if *window > 0 {
		session.WindowDays = *window
	} else if cfg.Pipeline.WindowDays > 0 {
		session.WindowDays = cfg.Pipeline.WindowDays
	}
	switch pick(*mode, cfg.Pipeline.TemporalMode) {
	case "filter":
		session.Mode = run.TemporalFilter
	default:
		session.Mode = run.TemporalBonus
	}

	results, err := session.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parallax run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Topic: %s    Lens: %s    Mode: %s\n", *topic, l.Label, session.Mode)
	fmt.Printf("Fingerprint tokens: %v\n\n", session.Fingerprint.Tokens)

	for _, col := range results {
		fmt.Printf("== %s (%d articles)\n", col.Column.Label, len(col.Articles))
		for i, a := range col.Articles {
			if i >= *top {
				break
			}
			cross := ""
			if a.CrossMentions > 0 {
				cross = fmt.Sprintf("  [+%d columns]", a.CrossMentions)
			}
			fmt.Printf("  %3d  %s%s\n       %s\n", a.Score, a.Title, cross, a.Link)
		}
		fmt.Println()
	}

	var searchResults []lens.Article
	if *search {
		searchResults = braveSearch(ctx, fetcher, cfg.Search.BraveAPIKey, *topic,
			cfg.Search.Language, cfg.Search.Country, session)
		if len(searchResults) > 0 {
			fmt.Printf("== Search (%d articles)\n", len(searchResults))
			for i, a := range searchResults {
				if i >= *top {
					break
				}
				fmt.Printf("  %3d  %s\n       %s\n", score.Exact(a, session.Fingerprint.Tokens), a.Title, a.Link)
			}
			fmt.Println()
		}
	}

	if *save {
		st, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "parallax run: history unavailable: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()

		id, err := st.SaveRun(*topic, *lensID, runDocument{
			Topic:   *topic,
			Lens:    *lensID,
			Mode:    string(session.Mode),
			Columns: results,
			Search:  searchResults,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "parallax run: save failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved as run %d\n", id)
	}
}

// braveSearch fetches topic search results and folds them through the
// same dedup used for feed articles. An unset key degrades to nothing.
func braveSearch(ctx context.Context, fetcher *fetch.Fetcher, apiKey, topic, language, country string, session *run.Session) []lens.Article {
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "parallax run: -search needs BRAVE_API_KEY")
		return nil
	}

	body, _, err := fetcher.Fetch(ctx, feeds.SearchURL(topic, language, country), map[string]string{
		"X-Subscription-Token": apiKey,
		"Accept":               "application/json",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "parallax run: search failed: %v\n", err)
		return nil
	}

	articles := feeds.ParseBraveNews(body)
	if session.Mode == run.TemporalFilter {
		articles = score.FilterByTemporalProximity(articles, session.Fingerprint.SeedDate, session.WindowDays)
	}
	return dedup.Deduplicate(nil, articles)
}

// pick returns the first non-empty choice.
func pick(choices ...string) string {
	for _, c := range choices {
		if c != "" {
			return c
		}
	}
	return ""
}
