package transform

import "math"

// hillEpsilon floors spend inputs to the hill curve so that a zero
// raised to a fractional power cannot degenerate the denominator.
const hillEpsilon = 1e-9

// Adstock applies geometric carryover to a spend series:
//
//	out[0] = spend[0]
//	out[t] = spend[t] + decay*out[t-1], decay = 0.5^(1/halfLife)
//
// A non-positive half-life or empty input returns the input unchanged.
func Adstock(spend []float64, halfLife float64) []float64 {
	if halfLife <= 0 || len(spend) == 0 {
		return spend
	}

	decay := math.Pow(0.5, 1/halfLife)
	out := make([]float64, len(spend))
	out[0] = spend[0]
	for t := 1; t < len(spend); t++ {
		out[t] = spend[t] + decay*out[t-1]
	}
	return out
}

// SaturationLog is log(1+x) with negative spend floored at zero.
func SaturationLog(x float64) float64 {
	return math.Log1p(math.Max(x, 0))
}

// SaturationLogDerivative is d/dx log(1+x) = 1/(1+x), evaluated with
// the same floor as SaturationLog.
func SaturationLogDerivative(x float64) float64 {
	return 1 / (1 + math.Max(x, 0))
}

// SaturationHill is the hill curve x^a / (x^a + h^a).
func SaturationHill(x, alpha, halfSaturation float64) float64 {
	x = math.Max(x, hillEpsilon)
	h := math.Max(halfSaturation, hillEpsilon)
	xa := math.Pow(x, alpha)
	ha := math.Pow(h, alpha)
	if xa+ha == 0 {
		return 0
	}
	return xa / (xa + ha)
}

// SaturationHillDerivative is the analytic derivative of the hill
// curve, a*h^a*x^(a-1) / (x^a + h^a)^2.
func SaturationHillDerivative(x, alpha, halfSaturation float64) float64 {
	x = math.Max(x, hillEpsilon)
	h := math.Max(halfSaturation, hillEpsilon)
	xa := math.Pow(x, alpha)
	ha := math.Pow(h, alpha)
	denom := (xa + ha) * (xa + ha)
	if denom == 0 {
		return 0
	}
	return alpha * ha * math.Pow(x, alpha-1) / denom
}
