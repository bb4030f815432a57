package usecase

import (
	"strings"
	"time"

	"pharma-search-srv/internal/query"
)

const day = 24 * time.Hour

var timeframeDays = map[string]int{
	"today":   1,
	"week":    7,
	"month":   30,
	"quarter": 90,
	"year":    365,
}

const defaultTimeframeDays = 30

// resolveTimeframe turns a timeframe keyword into a concrete [From, issuedAt) interval.
// "all time" has no lower bound; unrecognized keywords fall back to 30 days.
func resolveTimeframe(keyword string, issuedAt time.Time) query.Timeframe {
	kw := canonicalTimeframe(keyword)
	tf := query.Timeframe{Keyword: kw, To: issuedAt}
	if kw == query.TimeframeAllTime {
		return tf
	}

	days, ok := timeframeDays[kw]
	if !ok {
		days = defaultTimeframeDays
	}
	from := issuedAt.Add(-time.Duration(days) * day)
	tf.From = &from
	return tf
}

func canonicalTimeframe(keyword string) string {
	kw := strings.ToLower(strings.Join(strings.Fields(keyword), " "))
	for _, prefix := range []string{"this ", "past ", "last ", "the "} {
		kw = strings.TrimPrefix(kw, prefix)
	}
	switch kw {
	case "", "all time", "all", "any", "anytime", "any time":
		return query.TimeframeAllTime
	case "day", "24 hours":
		return "today"
	case "7 days":
		return "week"
	case "30 days":
		return "month"
	case "3 months":
		return "quarter"
	case "12 months", "365 days":
		return "year"
	}
	return kw
}
