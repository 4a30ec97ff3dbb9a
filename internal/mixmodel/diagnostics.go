package mixmodel

import (
	"math"
	"math/rand"

	"channelmix/internal/domain"

	"github.com/montanaflynn/stats"
)

// vifBound caps variance inflation factors at a large finite value so
// perfectly collinear features never produce Inf.
const vifBound = 1e6

// ComputeVIF calculates the variance inflation factor of every column
// by regressing it on the remaining columns with ordinary least
// squares. Singular or zero-variance cases return the neutral 1.0.
func ComputeVIF(x [][]float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	p := len(x[0])
	vifs := make([]float64, p)

	for j := 0; j < p; j++ {
		vifs[j] = vifForColumn(x, j)
	}
	return vifs
}

func vifForColumn(x [][]float64, j int) float64 {
	p := len(x[0])
	if p < 2 {
		return 1
	}

	others := make([][]float64, len(x))
	target := make([]float64, len(x))
	for i, row := range x {
		others[i] = make([]float64, 0, p-1)
		for k, v := range row {
			if k == j {
				target[i] = v
				continue
			}
			others[i] = append(others[i], v)
		}
	}

	// tiny ridge term keeps near-singular auxiliary systems solvable;
	// truly singular ones fall through to the neutral default
	g := gram(others)
	for i := range g {
		g[i][i] += 1e-9
	}
	coefs, ok := solveLinearSystem(g, matTVec(others, target))
	if !ok {
		return 1
	}

	r2 := rSquared(others, target, coefs, 0)
	if math.IsNaN(r2) || r2 < 0 {
		return 1
	}
	if r2 >= 1 {
		return vifBound
	}

	vif := 1 / (1 - r2)
	if vif < 1 {
		return 1
	}
	if vif > vifBound {
		return vifBound
	}
	return vif
}

// elasticity is the percentage change in predicted revenue per
// percentage change in spend at mean spend, from the analytic
// saturation derivative.
func elasticity(fs featureSet, j int, coef float64, rawSpend []float64, revenue []float64, opts FitOptions) float64 {
	meanSales := meanOf(revenue)
	if meanSales == 0 {
		return 0
	}
	meanSpend := meanOf(rawSpend)
	meanAdstocked := meanOf(fs.adstocked[j])

	rawCoef := fs.rawCoefficient(j, coef)
	e := rawCoef * saturationDerivative(meanAdstocked, opts) * meanSpend / meanSales
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return 0
	}
	return e
}

// bootstrapCoefficients resamples rows with replacement and refits at
// the selected alpha, reporting per-channel {low, mean, high} plus
// variance. The resample count is capped for large inputs and
// reduced for small ones.
func bootstrapCoefficients(method domain.RegressionMethod, x [][]float64, y []float64, alpha float64, nBoot int, rng *rand.Rand) map[int]domain.BootstrapInterval {
	n := len(x)
	if n == 0 {
		return map[int]domain.BootstrapInterval{}
	}
	p := len(x[0])

	switch {
	case n < 30:
		nBoot = minInt(nBoot, 100)
	case n > 1000:
		nBoot = minInt(nBoot, 200)
	}

	samples := make(map[int][]float64, p)
	resampleX := make([][]float64, n)
	resampleY := make([]float64, n)

	for b := 0; b < nBoot; b++ {
		for i := 0; i < n; i++ {
			idx := rng.Intn(n)
			resampleX[i] = x[idx]
			resampleY[i] = y[idx]
		}
		coefs, _, ok := fitMethod(method, resampleX, resampleY, alpha)
		if !ok {
			continue
		}
		for j := 0; j < p; j++ {
			samples[j] = append(samples[j], coefs[j])
		}
	}

	intervals := make(map[int]domain.BootstrapInterval, p)
	for j := 0; j < p; j++ {
		intervals[j] = summarize(samples[j])
	}
	return intervals
}

func summarize(samples []float64) domain.BootstrapInterval {
	if len(samples) == 0 {
		return domain.BootstrapInterval{}
	}
	low, err := stats.Percentile(samples, 2.5)
	if err != nil {
		low = samples[0]
	}
	high, err := stats.Percentile(samples, 97.5)
	if err != nil {
		high = samples[0]
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		mean = samples[0]
	}
	variance, err := stats.Variance(samples)
	if err != nil {
		variance = 0
	}
	return domain.BootstrapInterval{Low: low, Mean: mean, High: high, Variance: variance}
}

// stabilityIndex is 1 − min(1, coefficient of variation across the
// per-channel bootstrap means), clamped to [0,1].
func stabilityIndex(intervals map[int]domain.BootstrapInterval) float64 {
	if len(intervals) == 0 {
		return 0
	}
	means := make([]float64, 0, len(intervals))
	for _, iv := range intervals {
		means = append(means, iv.Mean)
	}

	mean := meanOf(means)
	variance := 0.0
	for _, m := range means {
		variance += (m - mean) * (m - mean)
	}
	variance /= float64(len(means))
	stdev := math.Sqrt(variance)

	cv := 1.0
	if math.Abs(mean) > 1e-12 {
		cv = stdev / math.Abs(mean)
	}
	return clamp01(1 - math.Min(1, cv))
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

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
