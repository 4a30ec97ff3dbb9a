package mixmodel

import (
	"math"
	"math/rand"
	"time"

	"channelmix/internal/domain"
)

const (
	// DefaultHalfLife is the carryover half-life applied when the
	// caller does not tune it.
	DefaultHalfLife = 7.0

	// DefaultNBoot is the default coefficient bootstrap count.
	DefaultNBoot = 300

	// DefaultCVFolds is the default cross-validation fold count.
	DefaultCVFolds = 5

	// fallbackAlpha is the fixed ridge strength used when the grid
	// search cannot produce a fit.
	fallbackAlpha = 1.0

	// predictionFloor clamps model predictions for MAPE; revenue
	// cannot go negative.
	predictionFloor = 0.0
)

// FitOptions tunes the regression pipeline. Zero values take
// defaults.
type FitOptions struct {
	Method             domain.RegressionMethod
	AlphaGrid          []float64
	CVFolds            int
	NBoot              int
	Seed               int64
	HalfLife           float64
	Saturation         domain.SaturationKind
	HillAlpha          float64
	HillHalfSaturation float64
}

func (o FitOptions) withDefaults() FitOptions {
	if o.Method == "" {
		o.Method = domain.RegressionMethod_Ridge
	}
	if len(o.AlphaGrid) == 0 {
		o.AlphaGrid = DefaultAlphaGrid()
	}
	if o.CVFolds <= 0 {
		o.CVFolds = DefaultCVFolds
	}
	if o.NBoot <= 0 {
		o.NBoot = DefaultNBoot
	}
	if o.HalfLife == 0 {
		o.HalfLife = DefaultHalfLife
	}
	if o.Saturation == "" {
		o.Saturation = domain.SaturationKind_Log
	}
	if o.Saturation == domain.SaturationKind_Hill {
		if o.HillAlpha <= 0 {
			o.HillAlpha = 1
		}
		if o.HillHalfSaturation <= 0 {
			o.HillHalfSaturation = 1
		}
	}
	return o
}

// Fit runs the full mix-model pipeline on a date-aligned spend matrix
// and revenue vector: transform, standardize, cross-validated
// regularized regression, then the diagnostics suite. Insufficient
// data returns an all-zero result rather than an error; a failed grid
// search falls back to a fixed-strength ridge fit.
func Fit(matrix domain.SpendMatrix, opts FitOptions) domain.MixModelResult {
	opts = opts.withDefaults()

	result := domain.MixModelResult{
		Method:    opts.Method,
		Channels:  append([]string{}, matrix.Channels...),
		Effects:   map[string]domain.ChannelEffect{},
		Curves:    map[string]domain.ResponseCurve{},
		CreatedAt: time.Now().UTC(),
	}

	n := len(matrix.Dates)
	if n < 2 || len(matrix.Channels) == 0 || len(matrix.Revenue) != n {
		for _, ch := range matrix.Channels {
			result.Effects[ch] = domain.ChannelEffect{VIF: 1}
			result.Curves[ch] = emptyCurve(opts)
		}
		return result
	}

	fs := buildFeatures(matrix, opts)
	y := matrix.Revenue

	rng := rand.New(rand.NewSource(opts.Seed))

	search := crossValidateAlpha(opts.Method, fs.rows, y, opts.AlphaGrid, opts.CVFolds, rng)
	alpha := search.Alpha
	meanCVR2 := search.MeanCVR2

	var coefs []float64
	var intercept float64
	ok := false
	if search.OK {
		coefs, intercept, ok = fitMethod(opts.Method, fs.rows, y, alpha)
	}
	if !ok {
		// degrade to a fixed-strength ridge fit instead of failing
		alpha = fallbackAlpha
		meanCVR2 = 0
		result.Method = domain.RegressionMethod_RidgeFallback
		coefs, intercept, ok = ridgeFit(fs.rows, y, alpha)
		if !ok {
			for _, ch := range matrix.Channels {
				result.Effects[ch] = domain.ChannelEffect{VIF: 1}
				result.Curves[ch] = emptyCurve(opts)
			}
			return result
		}
	}
	result.Alpha = alpha

	result.R2 = rSquared(fs.rows, y, coefs, intercept)
	result.AdjustedR2 = adjustedR2(result.R2, n, len(matrix.Channels))
	result.MAPE = mape(fs.rows, y, coefs, intercept)

	vifs := ComputeVIF(fs.rows)
	intervals := bootstrapCoefficients(opts.Method, fs.rows, y, alpha, opts.NBoot, rng)
	result.StabilityIndex = stabilityIndex(intervals)

	for j, ch := range matrix.Channels {
		result.Effects[ch] = domain.ChannelEffect{
			Coefficient: coefs[j],
			CI:          intervals[j],
			Elasticity:  elasticity(fs, j, coefs[j], matrix.Spend[ch], y, opts),
			VIF:         vifs[j],
		}
		curve := emptyCurve(opts)
		curve.Coefficient = fs.rawCoefficient(j, coefs[j])
		result.Curves[ch] = curve
	}

	result.ConfidenceScore = confidence(result.R2, vifs, result.StabilityIndex, meanCVR2)
	return result
}

func emptyCurve(opts FitOptions) domain.ResponseCurve {
	return domain.ResponseCurve{
		HalfLife:           opts.HalfLife,
		Saturation:         opts.Saturation,
		HillAlpha:          opts.HillAlpha,
		HillHalfSaturation: opts.HillHalfSaturation,
	}
}

// adjustedR2 corrects R² for feature count, guarding against
// near-zero degrees of freedom.
func adjustedR2(r2 float64, n, p int) float64 {
	dof := n - p - 1
	if dof < 1 {
		return r2
	}
	return 1 - (1-r2)*float64(n-1)/float64(dof)
}

func mape(x [][]float64, y []float64, coefs []float64, intercept float64) float64 {
	if len(x) == 0 {
		return 0
	}
	total := 0.0
	counted := 0
	for i := range x {
		pred := math.Max(predict(x[i], coefs, intercept), predictionFloor)
		denom := math.Abs(y[i])
		if denom < 1e-9 {
			continue
		}
		total += math.Abs(y[i]-pred) / denom
		counted++
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}

// confidence blends fit quality, collinearity, coefficient stability
// and out-of-fold performance into one [0,1] score.
func confidence(r2 float64, vifs []float64, stability, meanCVR2 float64) float64 {
	meanVIF := meanOf(vifs)
	// VIF of 1 is no inflation; treat 11+ as fully penalized
	normalizedVIF := clamp01((meanVIF - 1) / 10)

	cvQuality := math.Max(0, meanCVR2)

	return clamp01(clamp01(r2) * (1 - normalizedVIF) * stability * cvQuality)
}
