package usecase

import (
	"fmt"
	"strings"

	"pharma-search-srv/internal/model"
)

const (
	answerInstruction = "You are a pharmaceutical intelligence analyst. Provide accurate, insightful answers based solely on the provided articles."

	answerTemperature = 0.3
	answerMaxTokens   = 500

	dateLayout = "2006-01-02"
)

func buildAnswerPrompt(queryText string, results []model.RankedResult) string {
	var sb strings.Builder

	sb.WriteString("Based on the following pharmaceutical news articles:\n\n")
	for i, r := range results {
		fmt.Fprintf(&sb, "Article %d: %s\n", i+1, r.Article.Title)
		fmt.Fprintf(&sb, "Published: %s\n", r.Article.PublishedAt.Format(dateLayout))
		fmt.Fprintf(&sb, "Summary: %s\n", r.Article.Summary)
		fmt.Fprintf(&sb, "Topics: %s\n\n", strings.Join(r.Article.Topics, ", "))
	}

	fmt.Fprintf(&sb, "Answer this query comprehensively: %q\n\n", queryText)
	sb.WriteString("Provide:\n")
	sb.WriteString("1. A direct answer to the question\n")
	sb.WriteString("2. Key insights from the articles\n")
	sb.WriteString("3. Any patterns or trends noticed\n")
	sb.WriteString("4. Important caveats or limitations\n\n")
	sb.WriteString("Be specific and cite which articles support each point by their number.")

	return sb.String()
}
