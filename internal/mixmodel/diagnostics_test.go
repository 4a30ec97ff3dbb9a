package mixmodel

import (
	"math"
	"math/rand"
	"testing"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_ComputeVIF(t *testing.T) {
	t.Run("independent columns stay near 1", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		x := make([][]float64, 500)
		for i := range x {
			x[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
		}
		vifs := ComputeVIF(x)
		require.Len(t, vifs, 2)
		for _, v := range vifs {
			require.GreaterOrEqual(t, v, 1.0)
			require.Less(t, v, 1.5)
		}
	})

	t.Run("perfectly collinear columns return a finite value", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		x := make([][]float64, 100)
		for i := range x {
			v := rng.NormFloat64()
			x[i] = []float64{v, v}
		}
		vifs := ComputeVIF(x)
		for _, v := range vifs {
			require.False(t, math.IsNaN(v))
			require.False(t, math.IsInf(v, 0))
			require.LessOrEqual(t, v, vifBound)
			require.Greater(t, v, 100.0)
		}
	})

	t.Run("zero-variance column gets the neutral default", func(t *testing.T) {
		x := make([][]float64, 50)
		rng := rand.New(rand.NewSource(3))
		for i := range x {
			x[i] = []float64{0, rng.NormFloat64()}
		}
		vifs := ComputeVIF(x)
		require.Equal(t, 1.0, vifs[0])
	})

	t.Run("single column is neutral", func(t *testing.T) {
		vifs := ComputeVIF([][]float64{{1}, {2}, {3}})
		require.Equal(t, []float64{1}, vifs)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Nil(t, ComputeVIF(nil))
	})
}

func Test_stabilityIndex(t *testing.T) {
	t.Run("identical means score 1", func(t *testing.T) {
		intervals := map[int]domain.BootstrapInterval{
			0: {Mean: 2},
			1: {Mean: 2},
		}
		require.InDelta(t, 1.0, stabilityIndex(intervals), 1e-9)
	})

	t.Run("wildly varying means score near 0", func(t *testing.T) {
		intervals := map[int]domain.BootstrapInterval{
			0: {Mean: 100},
			1: {Mean: -100},
		}
		require.InDelta(t, 0.0, stabilityIndex(intervals), 1e-9)
	})

	t.Run("empty is 0", func(t *testing.T) {
		require.Equal(t, 0.0, stabilityIndex(nil))
	})
}

func Test_bootstrapCoefficients_deterministic(t *testing.T) {
	x, y := syntheticXY(60, 8)
	a := bootstrapCoefficients(domain.RegressionMethod_Ridge, x, y, 0.1, 50, rand.New(rand.NewSource(4)))
	b := bootstrapCoefficients(domain.RegressionMethod_Ridge, x, y, 0.1, 50, rand.New(rand.NewSource(4)))
	require.Equal(t, a, b)

	for _, iv := range a {
		require.LessOrEqual(t, iv.Low, iv.Mean)
		require.LessOrEqual(t, iv.Mean, iv.High)
	}
}
