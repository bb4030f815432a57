package usecase

import (
	"fmt"
	"strings"

	"pharma-search-srv/internal/model"
	"pharma-search-srv/internal/rerank"
)

const judgeInstruction = "You are a pharmaceutical news relevance expert. Score each article for the search query on a 1-10 scale."

const judgeTemperature = 0.1

// buildJudgePrompt - Numbered article list, 1-based
func buildJudgePrompt(queryText string, candidates []model.Candidate) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Given the search query: %q\n\n", queryText))
	b.WriteString("Rate these articles by relevance (1-10 scale):\n")

	for i, c := range candidates {
		b.WriteString(fmt.Sprintf("\nArticle %d:\n", i+1))
		b.WriteString(fmt.Sprintf("Title: %s\n", c.Article.Title))
		b.WriteString(fmt.Sprintf("Summary: %s\n", truncate(c.Article.Summary, rerank.SummaryLimit)))
		b.WriteString(fmt.Sprintf("Topics: %s\n", strings.Join(c.Article.Topics, ", ")))
	}

	b.WriteString("\nReturn a JSON object {\"rankings\": [{\"id\": <article number>, \"relevance_score\": <1-10>, \"reason\": <short reason>}]}")
	b.WriteString(" ordered by relevance_score descending.")
	return b.String()
}

// truncate cuts s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= limit {
		return string(r)
	}
	return string(r[:limit]) + "..."
}
