package fusion

import (
	"strings"

	"pharma-search-srv/internal/model"
)

// TopicConfidence returns the highest stored confidence among the article topics that are in
// queryTopics. It is 0 when queryTopics is empty or nothing intersects.
func TopicConfidence(a model.Article, queryTopics []string) float64 {
	if len(queryTopics) == 0 || len(a.TopicConfidence) == 0 {
		return 0
	}

	wanted := make(map[string]bool, len(queryTopics))
	for _, t := range queryTopics {
		wanted[strings.ToLower(strings.TrimSpace(t))] = true
	}

	best := 0.0
	for topic, conf := range a.TopicConfidence {
		if wanted[strings.ToLower(strings.TrimSpace(topic))] && conf > best {
			best = conf
		}
	}
	return best
}
