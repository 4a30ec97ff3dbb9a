package mixmodel

import (
	"math"
	"math/rand"

	"channelmix/internal/domain"
)

const (
	lassoSweeps    = 200
	lassoTolerance = 1e-7
)

// DefaultAlphaGrid is the regularization strength candidate set for
// cross-validated grid search.
func DefaultAlphaGrid() []float64 {
	return []float64{0.01, 0.1, 1, 10, 100}
}

// ridgeFit solves the L2-regularized least squares problem on
// standardized features: (XᵀX + αI)β = Xᵀ(y − ȳ). The intercept is
// the response mean because the features are centered.
func ridgeFit(x [][]float64, y []float64, alpha float64) (coefs []float64, intercept float64, ok bool) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, 0, false
	}

	intercept = meanOf(y)
	centered := make([]float64, len(y))
	for i := range y {
		centered[i] = y[i] - intercept
	}

	g := gram(x)
	for i := range g {
		g[i][i] += alpha
	}

	coefs, ok = solveLinearSystem(g, matTVec(x, centered))
	return coefs, intercept, ok
}

// lassoFit runs cyclic coordinate descent for the L1-regularized
// problem (1/2n)||y − Xβ||² + α·||β||₁ on standardized features.
func lassoFit(x [][]float64, y []float64, alpha float64) (coefs []float64, intercept float64, ok bool) {
	n := len(x)
	if n == 0 || n != len(y) {
		return nil, 0, false
	}
	p := len(x[0])

	intercept = meanOf(y)

	beta := make([]float64, p)
	residual := make([]float64, n)
	for i := range y {
		residual[i] = y[i] - intercept
	}

	colNorms := make([]float64, p)
	for _, row := range x {
		for j := 0; j < p; j++ {
			colNorms[j] += row[j] * row[j]
		}
	}

	nf := float64(n)
	for sweep := 0; sweep < lassoSweeps; sweep++ {
		maxDelta := 0.0
		for j := 0; j < p; j++ {
			if colNorms[j] == 0 {
				continue
			}
			rho := 0.0
			for i := range x {
				rho += x[i][j] * (residual[i] + x[i][j]*beta[j])
			}
			updated := softThreshold(rho/nf, alpha) / (colNorms[j] / nf)
			delta := updated - beta[j]
			if delta != 0 {
				for i := range x {
					residual[i] -= x[i][j] * delta
				}
				beta[j] = updated
			}
			if math.Abs(delta) > maxDelta {
				maxDelta = math.Abs(delta)
			}
		}
		if maxDelta < lassoTolerance {
			break
		}
	}

	for j := range beta {
		if math.IsNaN(beta[j]) || math.IsInf(beta[j], 0) {
			return nil, 0, false
		}
	}
	return beta, intercept, true
}

func softThreshold(v, threshold float64) float64 {
	switch {
	case v > threshold:
		return v - threshold
	case v < -threshold:
		return v + threshold
	default:
		return 0
	}
}

func fitMethod(method domain.RegressionMethod, x [][]float64, y []float64, alpha float64) ([]float64, float64, bool) {
	if method == domain.RegressionMethod_Lasso {
		return lassoFit(x, y, alpha)
	}
	return ridgeFit(x, y, alpha)
}

// gridSearchResult reports the winning regularization strength and
// the mean out-of-fold R² that picked it.
type gridSearchResult struct {
	Alpha    float64
	MeanCVR2 float64
	OK       bool
}

// crossValidateAlpha selects the regularization strength from the
// candidate grid by k-fold cross validation. Folds are assigned from
// a seeded shuffle so results are reproducible.
func crossValidateAlpha(method domain.RegressionMethod, x [][]float64, y []float64, grid []float64, folds int, rng *rand.Rand) gridSearchResult {
	n := len(x)
	if folds < 2 {
		folds = 2
	}
	if n < folds {
		return gridSearchResult{}
	}

	order := rng.Perm(n)

	best := gridSearchResult{MeanCVR2: math.Inf(-1)}
	for _, alpha := range grid {
		foldR2s := []float64{}
		for fold := 0; fold < folds; fold++ {
			trainX, trainY, testX, testY := splitFold(x, y, order, folds, fold)
			if len(trainX) == 0 || len(testX) == 0 {
				continue
			}
			coefs, intercept, ok := fitMethod(method, trainX, trainY, alpha)
			if !ok {
				continue
			}
			foldR2s = append(foldR2s, rSquared(testX, testY, coefs, intercept))
		}
		if len(foldR2s) == 0 {
			continue
		}
		mean := meanOf(foldR2s)
		if mean > best.MeanCVR2 {
			best = gridSearchResult{Alpha: alpha, MeanCVR2: mean, OK: true}
		}
	}

	return best
}

func splitFold(x [][]float64, y []float64, order []int, folds, fold int) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	for pos, idx := range order {
		if pos%folds == fold {
			testX = append(testX, x[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, x[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}

func predict(x []float64, coefs []float64, intercept float64) float64 {
	out := intercept
	for j := range coefs {
		out += coefs[j] * x[j]
	}
	return out
}

func rSquared(x [][]float64, y []float64, coefs []float64, intercept float64) float64 {
	if len(x) == 0 {
		return 0
	}
	yMean := meanOf(y)
	ssTot := 0.0
	ssRes := 0.0
	for i := range x {
		pred := predict(x[i], coefs, intercept)
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - yMean) * (y[i] - yMean)
	}
	if ssTot < 1e-12 {
		return 0
	}
	return 1 - ssRes/ssTot
}
