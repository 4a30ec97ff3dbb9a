package optimizer

import (
	"math"
	"sort"

	"channelmix/internal/domain"
	"channelmix/internal/transform"
)

const (
	// lookbackPeriods is how long steady spend is assumed to run when
	// deriving a channel's response at a spend level.
	lookbackPeriods = 30

	// marginalDelta is the spend increment used by the finite
	// difference marginal ROAS.
	marginalDelta = 1.0
)

// Response derives a channel's saturated response value at a steady
// spend level, by running the adstock carryover over the lookback
// window and saturating the terminal value.
func Response(curve domain.ResponseCurve, spend float64) float64 {
	series := make([]float64, lookbackPeriods)
	for i := range series {
		series[i] = spend
	}
	adstocked := transform.Adstock(series, curve.HalfLife)
	terminal := adstocked[len(adstocked)-1]

	if curve.Saturation == domain.SaturationKind_Hill {
		return transform.SaturationHill(terminal, curve.HillAlpha, curve.HillHalfSaturation)
	}
	return transform.SaturationLog(terminal)
}

// PredictedRevenue sums coefficient × response(spend) across
// channels. Channels without a curve contribute nothing.
func PredictedRevenue(spend map[string]float64, curves map[string]domain.ResponseCurve) float64 {
	total := 0.0
	for ch, curve := range curves {
		total += curve.Coefficient * Response(curve, spend[ch])
	}
	return total
}

// MarginalROAS estimates each channel's revenue gain per extra spend
// unit at the current spend level, by finite difference. Saturation
// makes this decrease as spend grows.
func MarginalROAS(spend map[string]float64, curves map[string]domain.ResponseCurve) map[string]float64 {
	out := make(map[string]float64, len(curves))
	for ch, curve := range curves {
		base := curve.Coefficient * Response(curve, spend[ch])
		bumped := curve.Coefficient * Response(curve, spend[ch]+marginalDelta)
		out[ch] = (bumped - base) / marginalDelta
	}
	return out
}

// AllocateBudgetGreedy distributes totalBudget across channels by
// repeatedly granting a step to whichever channel has the highest
// positive marginal ROAS. It respects diminishing returns but makes
// no claim of global optimality. When current spend already meets or
// exceeds the budget, every channel is scaled down proportionally.
func AllocateBudgetGreedy(totalBudget float64, curves map[string]domain.ResponseCurve, currentSpend map[string]float64, step float64) map[string]float64 {
	if totalBudget <= 0 || len(curves) == 0 {
		return map[string]float64{}
	}
	if step <= 0 {
		step = totalBudget / 100
	}

	allocation := map[string]float64{}
	spent := 0.0
	for ch := range curves {
		allocation[ch] = math.Max(currentSpend[ch], 0)
		spent += allocation[ch]
	}

	if spent >= totalBudget {
		scale := totalBudget / spent
		for ch := range allocation {
			allocation[ch] *= scale
		}
		return allocation
	}

	channels := make([]string, 0, len(curves))
	for ch := range curves {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	for spent < totalBudget {
		increment := math.Min(step, totalBudget-spent)

		marginals := MarginalROAS(allocation, curves)
		best := ""
		bestValue := 0.0
		for _, ch := range channels {
			if marginals[ch] > bestValue {
				best = ch
				bestValue = marginals[ch]
			}
		}
		if best == "" {
			break
		}

		allocation[best] += increment
		spent += increment
	}

	return allocation
}

// ProjectedRevenueDelta is the predicted revenue difference from
// applying fractional spend changes per channel. Channels missing
// from the change map stay unchanged, so an empty map projects zero.
func ProjectedRevenueDelta(currentSpend map[string]float64, fractionalChanges map[string]float64, curves map[string]domain.ResponseCurve) float64 {
	newSpend := make(map[string]float64, len(currentSpend))
	for ch, s := range currentSpend {
		newSpend[ch] = s * (1 + fractionalChanges[ch])
	}

	return PredictedRevenue(newSpend, curves) - PredictedRevenue(currentSpend, curves)
}
