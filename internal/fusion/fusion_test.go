package fusion

import (
	"math"
	"testing"
	"time"

	"pharma-search-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestRecencyBoost(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want float64
	}{
		{3 * 24 * time.Hour, 1.5},
		{20 * 24 * time.Hour, 1.2},
		{60 * 24 * time.Hour, 1.0},
		{7 * 24 * time.Hour, 1.2},
		{30 * 24 * time.Hour, 1.0},
		{-time.Hour, 1.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RecencyBoost(tt.age), tt.age.String())
	}
}

func TestCombined(t *testing.T) {
	t.Run("formula", func(t *testing.T) {
		assert.InDelta(t, (0.2*0.3+0.8*0.5+0.5*0.2)*1.2, Combined(0.2, 0.8, 0.5, 1.2), 1e-12)
	})

	t.Run("repeatable", func(t *testing.T) {
		a := Combined(0.42, 0.77, 0.13, 1.5)
		for i := 0; i < 10; i++ {
			assert.Equal(t, a, Combined(0.42, 0.77, 0.13, 1.5))
		}
	})

	t.Run("signals clamped", func(t *testing.T) {
		assert.Equal(t, Combined(1, 1, 1, 1), Combined(3, 2, 7, 1))
		assert.Equal(t, 0.0, Combined(-1, math.NaN(), -0.5, 1.5))
	})
}

func TestTopicConfidence(t *testing.T) {
	a := model.Article{
		Topics:          []string{"Oncology", "fda approval", "pricing"},
		TopicConfidence: map[string]float64{"Oncology": 0.6, "fda approval": 0.9, "pricing": 0.95},
	}

	assert.Equal(t, 0.9, TopicConfidence(a, []string{"oncology", "fda approval"}))
	assert.Equal(t, 0.6, TopicConfidence(a, []string{"ONCOLOGY"}))
	assert.Equal(t, 0.0, TopicConfidence(a, nil))
	assert.Equal(t, 0.0, TopicConfidence(a, []string{"vaccines"}))
}

func TestScenarioOrdering(t *testing.T) {
	// (semantic, lexical), all published 3 days ago, no topic filter
	inputs := []struct{ sem, lex float64 }{{0.9, 0.02}, {0.75, 0.00}, {0.4, 0.05}}

	var cs []model.Candidate
	for i, in := range inputs {
		a := model.Article{ID: string(rune('1' + i)), PublishedAt: daysAgo(3)}
		c := Score(a, in.lex, in.sem, nil, now, i)
		assert.Equal(t, 1.5, c.RecencyBoost)
		assert.Equal(t, 0.0, c.TopicConfidence)
		cs = append(cs, c)
	}

	assert.InDelta(t, 0.684, cs[0].CombinedScore, 1e-9)
	assert.InDelta(t, 0.5625, cs[1].CombinedScore, 1e-9)
	assert.InDelta(t, 0.3225, cs[2].CombinedScore, 1e-9)

	ranked := Rank(cs)
	ids := []string{ranked[0].Article.ID, ranked[1].Article.ID, ranked[2].Article.ID}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestRankTieBreaksOnPosition(t *testing.T) {
	cs := []model.Candidate{
		{Article: model.Article{ID: "b"}, CombinedScore: 0.5, Position: 1},
		{Article: model.Article{ID: "a"}, CombinedScore: 0.5, Position: 0},
		{Article: model.Article{ID: "c"}, CombinedScore: 0.7, Position: 2},
	}
	ranked := Rank(cs)

	assert.Equal(t, "c", ranked[0].Article.ID)
	assert.Equal(t, "a", ranked[1].Article.ID)
	assert.Equal(t, "b", ranked[2].Article.ID)
	assert.Equal(t, "b", cs[0].Article.ID, "input must not be reordered")
}
