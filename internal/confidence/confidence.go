// Package confidence derives a single trust scalar for a ranked result set.
package confidence

import (
	"math"

	"pharma-search-srv/internal/model"
)

const (
	relevanceWindow  = 5
	dispersionWindow = 10
	countSaturation  = 10

	// neutralRelevance stands in for results the judge did not score.
	neutralRelevance = 0.5

	weightRelevance  = 0.5
	weightCount      = 0.3
	weightDispersion = 0.2
)

// Estimate returns 0.5*avgRelevance + 0.3*countFactor + 0.2*dispersion, rounded to 2 decimals.
// totalFound is the pre-truncation candidate count. An empty result set yields exactly 0.
func Estimate(results []model.RankedResult, totalFound int) float64 {
	if len(results) == 0 || totalFound <= 0 {
		return 0
	}

	c := weightRelevance*avgRelevance(results) +
		weightCount*countFactor(totalFound) +
		weightDispersion*dispersion(results)
	return math.Round(c*100) / 100
}

// avgRelevance averages judge scores over the top results, normalized to [0,1].
func avgRelevance(results []model.RankedResult) float64 {
	top := head(results, relevanceWindow)
	sum := 0.0
	for _, r := range top {
		if r.AIRelevance == nil {
			sum += neutralRelevance
			continue
		}
		sum += *r.AIRelevance / 10
	}
	return sum / float64(len(top))
}

func countFactor(total int) float64 {
	return math.Min(float64(total), countSaturation) / countSaturation
}

// dispersion is twice the population standard deviation of final scores over the top results, capped at 1.
func dispersion(results []model.RankedResult) float64 {
	top := head(results, dispersionWindow)
	mean := 0.0
	for _, r := range top {
		mean += r.FinalScore
	}
	mean /= float64(len(top))

	variance := 0.0
	for _, r := range top {
		d := r.FinalScore - mean
		variance += d * d
	}
	variance /= float64(len(top))

	return math.Min(math.Sqrt(variance)*2, 1)
}

func head(results []model.RankedResult, n int) []model.RankedResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}
