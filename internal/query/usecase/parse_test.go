package usecase

import (
	"testing"

	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnderstanding(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`{
			"intent": "compare",
			"entities": {"companies": ["Pfizer Inc.", "Moderna"], "drugs": ["Comirnaty"], "indications": [], "topics": ["vaccines"]},
			"timeframe": "quarter",
			"filters": {"phase": ["Phase III"], "approval_status": ["approved"], "geography": ["US"]},
			"sentiment": "Positive",
			"relationships": ["competition"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, query.IntentCompare, u.Intent)
		assert.Equal(t, []string{"Pfizer Inc.", "Moderna"}, u.Companies)
		assert.Equal(t, "quarter", u.Timeframe)
		assert.Equal(t, []string{"Phase III"}, u.Phases)
		assert.Equal(t, []string{"approved"}, u.ApprovalStatuses)
		assert.Equal(t, []string{"US"}, u.Geographies)
		assert.Equal(t, query.SentimentPositive, u.Sentiment)
		assert.Equal(t, []string{"competition"}, u.Relationships)
	})

	t.Run("missing fields take defaults", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`{"entities": {"companies": "Novartis"}}`))
		require.NoError(t, err)
		assert.Equal(t, query.IntentSearch, u.Intent)
		assert.Equal(t, query.TimeframeAllTime, u.Timeframe)
		assert.Equal(t, query.SentimentAny, u.Sentiment)
		assert.Equal(t, []string{"Novartis"}, u.Companies)
		assert.Empty(t, u.Drugs)
		assert.Empty(t, u.Phases)
	})

	t.Run("unknown intent and wrong types", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`{"intent": "summarize", "sentiment": 3, "entities": {"drugs": [1, "Keytruda", null]}}`))
		require.NoError(t, err)
		assert.Equal(t, query.IntentSearch, u.Intent)
		assert.Equal(t, query.SentimentAny, u.Sentiment)
		assert.Equal(t, []string{"Keytruda"}, u.Drugs)
	})

	t.Run("repaired once", func(t *testing.T) {
		u, err := parseUnderstanding([]byte("```json\n{\"intent\": \"track\", \"entities\": {\"topics\": [\"recall\",]},}\n```"))
		require.NoError(t, err)
		assert.Equal(t, query.IntentTrack, u.Intent)
		assert.Equal(t, []string{"recall"}, u.Topics)
	})

	t.Run("wrong-typed containers only lose themselves", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`{"intent":"compare","entities":{"companies":["Pfizer","Moderna"]},"timeframe":"week","filters":[]}`))
		require.NoError(t, err)
		assert.Equal(t, query.IntentCompare, u.Intent)
		assert.Equal(t, []string{"Pfizer", "Moderna"}, u.Companies)
		assert.Equal(t, "week", u.Timeframe)
		assert.Empty(t, u.Phases)
		assert.Empty(t, u.Geographies)

		u, err = parseUnderstanding([]byte(`{"intent":"track","entities":"Roche","timeframe":7,"filters":{"geography":"EU"},"relationships":{"x":1}}`))
		require.NoError(t, err)
		assert.Equal(t, query.IntentTrack, u.Intent)
		assert.Empty(t, u.Companies)
		assert.Equal(t, query.TimeframeAllTime, u.Timeframe)
		assert.Equal(t, []string{"EU"}, u.Geographies)
		assert.Empty(t, u.Relationships)
	})

	t.Run("json null", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`null`))
		assert.ErrorIs(t, err, model.ErrMalformedUpstreamResponse)
		assert.Equal(t, defaultUnderstanding(), u)
	})

	t.Run("unrepairable", func(t *testing.T) {
		u, err := parseUnderstanding([]byte(`the query is about pfizer`))
		assert.ErrorIs(t, err, model.ErrMalformedUpstreamResponse)
		assert.Equal(t, defaultUnderstanding(), u)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseUnderstanding(nil)
		assert.ErrorIs(t, err, model.ErrMalformedUpstreamResponse)
	})
}
