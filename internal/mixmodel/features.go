package mixmodel

import (
	"math"

	"channelmix/internal/domain"
	"channelmix/internal/transform"
)

// featureSet is the transformed, standardized design matrix for one
// fit, plus everything needed to map coefficients back to raw spend.
type featureSet struct {
	channels []string
	// rows is the standardized row-major design matrix
	rows [][]float64
	// adstocked[j] is channel j's adstocked raw series, pre-saturation
	adstocked [][]float64
	means     []float64
	stds      []float64
}

// buildFeatures applies adstock then saturation per channel column
// and standardizes each column to zero mean and unit variance.
// Zero-variance columns standardize to all zeros.
func buildFeatures(matrix domain.SpendMatrix, opts FitOptions) featureSet {
	n := len(matrix.Dates)
	p := len(matrix.Channels)

	fs := featureSet{
		channels:  matrix.Channels,
		rows:      make([][]float64, n),
		adstocked: make([][]float64, p),
		means:     make([]float64, p),
		stds:      make([]float64, p),
	}
	for i := range fs.rows {
		fs.rows[i] = make([]float64, p)
	}

	for j, ch := range matrix.Channels {
		adstocked := transform.Adstock(matrix.Spend[ch], opts.HalfLife)
		fs.adstocked[j] = adstocked

		column := make([]float64, n)
		for i, v := range adstocked {
			column[i] = saturate(v, opts)
		}

		mean := meanOf(column)
		variance := 0.0
		for _, v := range column {
			variance += (v - mean) * (v - mean)
		}
		if n > 0 {
			variance /= float64(n)
		}
		std := math.Sqrt(variance)

		fs.means[j] = mean
		fs.stds[j] = std

		for i, v := range column {
			if std > 1e-12 {
				fs.rows[i][j] = (v - mean) / std
			}
		}
	}

	return fs
}

func saturate(x float64, opts FitOptions) float64 {
	if opts.Saturation == domain.SaturationKind_Hill {
		return transform.SaturationHill(x, opts.HillAlpha, opts.HillHalfSaturation)
	}
	return transform.SaturationLog(x)
}

func saturationDerivative(x float64, opts FitOptions) float64 {
	if opts.Saturation == domain.SaturationKind_Hill {
		return transform.SaturationHillDerivative(x, opts.HillAlpha, opts.HillHalfSaturation)
	}
	return transform.SaturationLogDerivative(x)
}

// rawCoefficient converts a standardized-space coefficient back to
// the raw feature space. A zero-variance feature has no usable
// coefficient.
func (fs featureSet) rawCoefficient(j int, standardized float64) float64 {
	if fs.stds[j] <= 1e-12 {
		return 0
	}
	return standardized / fs.stds[j]
}
