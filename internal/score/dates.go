package score

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the formats seen in the wild across RSS, Atom, and
// the search APIs. Tried in order.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
}

// relativeAgeRe matches Brave-style relative ages like "2 hours ago".
var relativeAgeRe = regexp.MustCompile(`^(\d+)\s+(minute|hour|day|week|month)s?\s+ago$`)

// ParseArticleDate parses a raw feed date string. Returns ok=false for
// empty or unrecognized input; callers treat that as "unknown" and take
// the neutral branch.
func ParseArticleDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	if m := relativeAgeRe.FindStringSubmatch(strings.ToLower(raw)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		var unit time.Duration
		switch m[2] {
		case "minute":
			unit = time.Minute
		case "hour":
			unit = time.Hour
		case "day":
			unit = 24 * time.Hour
		case "week":
			unit = 7 * 24 * time.Hour
		case "month":
			unit = 30 * 24 * time.Hour
		}
		return time.Now().Add(-time.Duration(n) * unit), true
	}

	return time.Time{}, false
}
