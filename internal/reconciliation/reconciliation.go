package reconciliation

import (
	"math"

	"channelmix/internal/domain"
)

// ConflictThreshold is the absolute share disagreement beyond which a
// channel is flagged as conflicting between the two attribution
// systems.
const ConflictThreshold = 0.30

// Compute measures per-channel disagreement between MTA contribution
// shares and MMM contribution shares. A channel present in either
// mapping is scored; the overall alignment score is 1 minus the mean
// disagreement, clamped to [0,1]. With no channels, alignment is the
// vacuous 1.0. The alignment confidence is caller-supplied and only
// clamped here.
func Compute(mtaShares, mmmShares map[string]float64, alignmentConfidence float64) domain.ReconciliationResult {
	channels := map[string]bool{}
	for ch := range mtaShares {
		channels[ch] = true
	}
	for ch := range mmmShares {
		channels[ch] = true
	}

	result := domain.ReconciliationResult{
		Channels:            map[string]domain.ChannelReconciliation{},
		AlignmentConfidence: clamp01(alignmentConfidence),
	}

	if len(channels) == 0 {
		result.OverallAlignmentScore = 1
		return result
	}

	totalDelta := 0.0
	for ch := range channels {
		delta := math.Abs(mtaShares[ch] - mmmShares[ch])
		totalDelta += delta
		result.Channels[ch] = domain.ChannelReconciliation{
			MTAShare: mtaShares[ch],
			MMMShare: mmmShares[ch],
			DeltaPct: delta,
			Conflict: delta > ConflictThreshold,
		}
	}

	result.OverallAlignmentScore = clamp01(1 - totalDelta/float64(len(channels)))
	return result
}

// MMMShares converts a fitted mix model into per-channel contribution
// shares comparable to MTA credits. Negative coefficients contribute
// nothing; when every coefficient is non-positive the split is
// uniform.
func MMMShares(result domain.MixModelResult) map[string]float64 {
	shares := map[string]float64{}
	total := 0.0
	for _, ch := range result.Channels {
		c := result.Effects[ch].Coefficient
		if c < 0 {
			c = 0
		}
		shares[ch] = c
		total += c
	}

	if total <= 0 {
		for ch := range shares {
			shares[ch] = 1 / float64(len(shares))
		}
		return shares
	}

	for ch := range shares {
		shares[ch] /= total
	}
	return shares
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
