package query

import (
	"regexp"
	"strings"
)

var (
	legalSuffix   = regexp.MustCompile(`(?i)\s+(Inc\.?|Corp\.?|Ltd\.?|LLC|plc|AG|SA|NV)$`)
	phasePattern  = regexp.MustCompile(`(?i)\bphase\s*(1|2|3|4|i{1,3}|iv)\b`)
	romanToArabic = map[string]string{"i": "1", "ii": "2", "iii": "3", "iv": "4"}
)

// LexiconOptions is the raw dictionary configuration.
type LexiconOptions struct {
	CompanyAliases map[string]string
	Companies      []string
	Drugs          []string
	Indications    []string
	Topics         []string
}

type term struct {
	value string
	re    *regexp.Regexp
}

// Lexicon is the read-only dictionary used for local entity extraction and company alias resolution.
// It is built once at startup and shared by all requests.
type Lexicon struct {
	aliases     map[string]string
	companies   []term
	drugs       []term
	indications []term
	topics      []term
}

// NewLexicon compiles the dictionaries. Alias chains are resolved so that NormalizeCompany is idempotent.
func NewLexicon(opts LexiconOptions) *Lexicon {
	l := &Lexicon{aliases: make(map[string]string, len(opts.CompanyAliases))}

	for k, v := range opts.CompanyAliases {
		key, val := baseCompany(k), baseCompany(v)
		if key == "" || val == "" {
			continue
		}
		l.aliases[key] = val
	}
	for k, v := range l.aliases {
		seen := map[string]bool{k: true}
		for {
			next, ok := l.aliases[v]
			if !ok || next == v || seen[v] {
				break
			}
			seen[v] = true
			v = next
		}
		l.aliases[k] = v
	}
	for _, v := range l.aliases {
		delete(l.aliases, v)
	}

	companyNames := append([]string{}, opts.Companies...)
	for k := range l.aliases {
		companyNames = append(companyNames, k)
	}
	l.companies = compileTerms(companyNames, baseCompany)
	l.drugs = compileTerms(opts.Drugs, normalizeTerm)
	l.indications = compileTerms(opts.Indications, normalizeTerm)
	l.topics = compileTerms(opts.Topics, normalizeTerm)
	return l
}

func compileTerms(values []string, norm func(string) string) []term {
	out := make([]term, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		n := norm(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, term{value: n, re: regexp.MustCompile(`(?i)(^|[^\pL\pN])` + regexp.QuoteMeta(n) + `($|[^\pL\pN])`)})
	}
	return out
}

// NormalizeCompany strips trailing legal suffixes, collapses whitespace, lowercases
// and resolves the result through the alias table.
func (l *Lexicon) NormalizeCompany(name string) string {
	s := baseCompany(name)
	if l != nil {
		if canon, ok := l.aliases[s]; ok {
			return canon
		}
	}
	return s
}

// NormalizeCompanies normalizes and deduplicates company names, keeping first-seen order.
func (l *Lexicon) NormalizeCompanies(names []string) []string {
	return dedupe(names, l.NormalizeCompany)
}

func baseCompany(name string) string {
	s := strings.TrimSpace(name)
	for {
		t := strings.TrimRight(strings.TrimSpace(legalSuffix.ReplaceAllString(s, "")), ",")
		t = strings.TrimSpace(t)
		if t == s {
			break
		}
		s = t
	}
	return normalizeTerm(s)
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizeTerms trims, lowercases and deduplicates values, keeping first-seen order.
func NormalizeTerms(values []string) []string {
	return dedupe(values, normalizeTerm)
}

// NormalizePhases canonicalizes clinical phases to "phase N".
func NormalizePhases(values []string) []string {
	return dedupe(values, normalizePhase)
}

func normalizePhase(s string) string {
	n := normalizeTerm(s)
	m := phasePattern.FindStringSubmatch(n)
	if m == nil {
		return n
	}
	num := strings.ToLower(m[1])
	if a, ok := romanToArabic[num]; ok {
		num = a
	}
	return "phase " + num
}

func dedupe(values []string, norm func(string) string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		n := norm(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// DefaultLexiconOptions returns the built-in dictionaries used when none are configured.
func DefaultLexiconOptions() LexiconOptions {
	return LexiconOptions{
		CompanyAliases: map[string]string{
			"j&j":                       "johnson & johnson",
			"jnj":                       "johnson & johnson",
			"bms":                       "bristol-myers squibb",
			"bristol myers squibb":      "bristol-myers squibb",
			"msd":                       "merck",
			"merck sharp & dohme":       "merck",
			"glaxosmithkline":           "gsk",
			"lilly":                     "eli lilly",
			"roche holding":             "roche",
			"genentech":                 "roche",
			"astra zeneca":              "astrazeneca",
			"novo":                      "novo nordisk",
			"boehringer":                "boehringer ingelheim",
			"takeda pharmaceutical":     "takeda",
			"sanofi-aventis":            "sanofi",
			"abbvie pharmaceuticals":    "abbvie",
			"pfizer pharmaceuticals":    "pfizer",
			"moderna therapeutics":      "moderna",
			"regeneron pharmaceuticals": "regeneron",
		},
		Companies: []string{
			"pfizer", "moderna", "astrazeneca", "novartis", "roche", "merck", "gsk", "sanofi",
			"eli lilly", "novo nordisk", "abbvie", "amgen", "gilead", "biogen", "regeneron",
			"vertex", "takeda", "bayer", "johnson & johnson", "bristol-myers squibb",
		},
		Drugs: []string{
			"keytruda", "ozempic", "wegovy", "mounjaro", "zepbound", "humira", "dupixent",
			"eliquis", "opdivo", "comirnaty", "spikevax", "leqembi", "kisunla", "trikafta",
		},
		Indications: []string{
			"obesity", "diabetes", "type 2 diabetes", "alzheimer's", "alzheimer's disease", "oncology",
			"breast cancer", "lung cancer", "nsclc", "covid-19", "rsv", "psoriasis", "atopic dermatitis",
			"cystic fibrosis", "heart failure",
		},
		Topics: []string{
			"clinical trials", "fda approval", "regulatory", "mergers and acquisitions", "acquisition",
			"partnership", "licensing", "pricing", "earnings", "layoffs", "manufacturing", "recall",
			"patent", "biosimilars", "gene therapy", "cell therapy", "vaccines", "glp-1",
		},
	}
}

// Match returns the dictionary entries mentioned in text, grouped by kind.
func (l *Lexicon) Match(text string) (companies, drugs, indications, topics []string) {
	if l == nil {
		return nil, nil, nil, nil
	}
	return matchTerms(l.companies, text), matchTerms(l.drugs, text), matchTerms(l.indications, text), matchTerms(l.topics, text)
}

func matchTerms(terms []term, text string) []string {
	var out []string
	for _, t := range terms {
		if t.re.MatchString(text) {
			out = append(out, t.value)
		}
	}
	return out
}
