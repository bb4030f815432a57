package usecase

import (
	"regexp"

	"pharma-search-srv/internal/query"
)

var timeframeHints = []struct {
	re      *regexp.Regexp
	keyword string
}{
	{regexp.MustCompile(`(?i)\btoday\b|\bpast 24 hours\b`), "today"},
	{regexp.MustCompile(`(?i)\b(this|past|last) week\b`), "week"},
	{regexp.MustCompile(`(?i)\b(this|past|last) month\b`), "month"},
	{regexp.MustCompile(`(?i)\b(this|past|last) quarter\b`), "quarter"},
	{regexp.MustCompile(`(?i)\b(this|past|last) year\b`), "year"},
}

var phaseMention = regexp.MustCompile(`(?i)\bphase\s*(1|2|3|4|iv|i{1,3})\b`)

// extraction is what the local dictionary and pattern extractor finds in the raw text.
type extraction struct {
	Companies   []string
	Drugs       []string
	Indications []string
	Topics      []string
	Phases      []string
	Timeframe   string
}

// extract runs the lexicon and pattern matchers over text. It never calls external services.
func extract(text string, lex *query.Lexicon) extraction {
	var e extraction
	e.Companies, e.Drugs, e.Indications, e.Topics = lex.Match(text)
	e.Phases = phaseMention.FindAllString(text, -1)
	for _, h := range timeframeHints {
		if h.re.MatchString(text) {
			e.Timeframe = h.keyword
			break
		}
	}
	return e
}
