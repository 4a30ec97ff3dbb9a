package mixmodel

import (
	"math"
	"math/rand"
	"testing"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func syntheticXY(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		f1 := rng.NormFloat64()
		f2 := rng.NormFloat64()
		x[i] = []float64{f1, f2}
		y[i] = 5 + 3*f1 - 2*f2 + 0.01*rng.NormFloat64()
	}
	return x, y
}

func Test_ridgeFit(t *testing.T) {
	t.Run("recovers coefficients on near-noiseless data", func(t *testing.T) {
		x, y := syntheticXY(200, 1)
		coefs, intercept, ok := ridgeFit(x, y, 0.01)
		require.True(t, ok)
		require.InDelta(t, 5, intercept, 0.2)
		require.InDelta(t, 3, coefs[0], 0.1)
		require.InDelta(t, -2, coefs[1], 0.1)
	})

	t.Run("large alpha shrinks coefficients toward zero", func(t *testing.T) {
		x, y := syntheticXY(200, 2)
		small, _, ok := ridgeFit(x, y, 0.01)
		require.True(t, ok)
		big, _, ok := ridgeFit(x, y, 1e6)
		require.True(t, ok)
		require.Less(t, math.Abs(big[0]), math.Abs(small[0]))
		require.Less(t, math.Abs(big[1]), math.Abs(small[1]))
	})

	t.Run("empty input fails cleanly", func(t *testing.T) {
		_, _, ok := ridgeFit(nil, nil, 1)
		require.False(t, ok)
	})
}

func Test_lassoFit(t *testing.T) {
	t.Run("recovers sparse structure", func(t *testing.T) {
		x, y := syntheticXY(200, 3)
		coefs, _, ok := lassoFit(x, y, 0.01)
		require.True(t, ok)
		require.InDelta(t, 3, coefs[0], 0.2)
		require.InDelta(t, -2, coefs[1], 0.2)
	})

	t.Run("huge alpha zeroes every coefficient", func(t *testing.T) {
		x, y := syntheticXY(100, 4)
		coefs, _, ok := lassoFit(x, y, 1e6)
		require.True(t, ok)
		for _, c := range coefs {
			require.Equal(t, 0.0, c)
		}
	})
}

func Test_crossValidateAlpha(t *testing.T) {
	x, y := syntheticXY(100, 5)

	t.Run("prefers light regularization on clean linear data", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		result := crossValidateAlpha(domain.RegressionMethod_Ridge, x, y, DefaultAlphaGrid(), 5, rng)
		require.True(t, result.OK)
		require.LessOrEqual(t, result.Alpha, 1.0)
		require.Greater(t, result.MeanCVR2, 0.9)
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := crossValidateAlpha(domain.RegressionMethod_Ridge, x, y, DefaultAlphaGrid(), 5, rand.New(rand.NewSource(11)))
		b := crossValidateAlpha(domain.RegressionMethod_Ridge, x, y, DefaultAlphaGrid(), 5, rand.New(rand.NewSource(11)))
		require.Equal(t, a, b)
	})

	t.Run("too few rows for folds reports not ok", func(t *testing.T) {
		result := crossValidateAlpha(domain.RegressionMethod_Ridge, x[:2], y[:2], DefaultAlphaGrid(), 5, rand.New(rand.NewSource(1)))
		require.False(t, result.OK)
	})
}

func Test_solveLinearSystem(t *testing.T) {
	t.Run("solves a well-posed system", func(t *testing.T) {
		x, ok := solveLinearSystem([][]float64{{2, 1}, {1, 3}}, []float64{5, 10})
		require.True(t, ok)
		require.InDelta(t, 1, x[0], 1e-9)
		require.InDelta(t, 3, x[1], 1e-9)
	})

	t.Run("reports singularity instead of dividing by zero", func(t *testing.T) {
		_, ok := solveLinearSystem([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
		require.False(t, ok)
	})
}
