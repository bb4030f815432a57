package fusion

import "time"

const (
	freshAge  = 7 * 24 * time.Hour
	recentAge = 30 * 24 * time.Hour

	freshBoost  = 1.5
	recentBoost = 1.2
	neutral     = 1.0
)

// RecencyBoost is a step function on publish age.
func RecencyBoost(age time.Duration) float64 {
	switch {
	case age < freshAge:
		return freshBoost
	case age < recentAge:
		return recentBoost
	default:
		return neutral
	}
}
