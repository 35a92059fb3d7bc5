package billing

import "math"

// SecondsPerCredit is the amount of audio a single credit pays for
const SecondsPerCredit = 360

// CalculateCredits returns the credits charged for a file of the given
// duration: one credit per started six minutes, never less than one.
func CalculateCredits(durationSeconds float64) int {
	if durationSeconds <= 0 || math.IsNaN(durationSeconds) {
		return 1
	}
	credits := int(math.Ceil(durationSeconds / SecondsPerCredit))
	if credits < 1 {
		return 1
	}
	return credits
}
