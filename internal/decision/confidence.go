package decision

import (
	"math"
	"time"
)

// DefaultDecayDays is the recency half-life of the confidence
// primitive's freshness component.
const DefaultDecayDays = 90.0

// ConfidenceScore is the shared confidence primitive: up to 0.5 from
// model fit, up to 0.3 from sample volume, up to 0.2 from data
// recency. The sum is clamped to [0,1].
func ConfidenceScore(r2 float64, sampleSize int, referenceDate, now time.Time, decayDays float64) float64 {
	if decayDays <= 0 {
		decayDays = DefaultDecayDays
	}

	fit := 0.5 * clamp01(math.Min(1, r2))

	volume := 0.0
	if sampleSize > 0 {
		volume = 0.3 * math.Min(1, math.Log1p(float64(sampleSize))/7)
	}

	days := now.Sub(referenceDate).Hours() / 24
	if days < 0 {
		days = 0
	}
	recency := 0.2 * math.Pow(0.5, days/decayDays)

	return clamp01(fit + volume + recency)
}

// DecisionConfidence combines attribution confidence, mix-model
// confidence and reconciliation alignment into a single score.
func DecisionConfidence(mtaConfidence, mmmConfidence, alignmentScore float64) float64 {
	return clamp01(mtaConfidence * mmmConfidence * alignmentScore)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
