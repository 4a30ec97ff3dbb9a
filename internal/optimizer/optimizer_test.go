package optimizer

import (
	"testing"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func logCurve(coefficient float64) domain.ResponseCurve {
	return domain.ResponseCurve{
		HalfLife:    7,
		Saturation:  domain.SaturationKind_Log,
		Coefficient: coefficient,
	}
}

func Test_PredictedRevenue(t *testing.T) {
	curves := map[string]domain.ResponseCurve{
		"meta":   logCurve(2),
		"google": logCurve(1),
	}

	t.Run("zero spend predicts zero", func(t *testing.T) {
		require.InDelta(t, 0, PredictedRevenue(map[string]float64{}, curves), 1e-9)
	})

	t.Run("more spend predicts more revenue", func(t *testing.T) {
		low := PredictedRevenue(map[string]float64{"meta": 100}, curves)
		high := PredictedRevenue(map[string]float64{"meta": 1000}, curves)
		require.Greater(t, high, low)
		require.Greater(t, low, 0.0)
	})
}

func Test_MarginalROAS(t *testing.T) {
	curves := map[string]domain.ResponseCurve{"meta": logCurve(2)}

	t.Run("diminishes as spend grows", func(t *testing.T) {
		atLow := MarginalROAS(map[string]float64{"meta": 10}, curves)["meta"]
		atHigh := MarginalROAS(map[string]float64{"meta": 10000}, curves)["meta"]
		require.Greater(t, atLow, atHigh)
		require.Greater(t, atHigh, 0.0)
	})
}

func Test_AllocateBudgetGreedy(t *testing.T) {
	curves := map[string]domain.ResponseCurve{
		"meta":   logCurve(2),
		"google": logCurve(1),
	}

	t.Run("never exceeds the budget and favors the stronger channel", func(t *testing.T) {
		allocation := AllocateBudgetGreedy(100, curves, nil, 10)

		total := 0.0
		for _, v := range allocation {
			total += v
		}
		require.LessOrEqual(t, total, 100+1e-9)
		require.Greater(t, allocation["meta"], allocation["google"])
	})

	t.Run("scales down proportionally when already over budget", func(t *testing.T) {
		current := map[string]float64{"meta": 150, "google": 50}
		allocation := AllocateBudgetGreedy(100, curves, current, 10)

		require.InDelta(t, 75, allocation["meta"], 1e-9)
		require.InDelta(t, 25, allocation["google"], 1e-9)
	})

	t.Run("empty inputs return empty allocation", func(t *testing.T) {
		require.Empty(t, AllocateBudgetGreedy(0, curves, nil, 10))
		require.Empty(t, AllocateBudgetGreedy(100, map[string]domain.ResponseCurve{}, nil, 10))
	})

	t.Run("stops when no channel has positive marginal ROAS", func(t *testing.T) {
		dead := map[string]domain.ResponseCurve{
			"meta": logCurve(0),
		}
		allocation := AllocateBudgetGreedy(100, dead, nil, 10)
		require.InDelta(t, 0, allocation["meta"], 1e-9)
	})

	t.Run("zero step falls back to a sane default", func(t *testing.T) {
		allocation := AllocateBudgetGreedy(100, curves, nil, 0)
		total := 0.0
		for _, v := range allocation {
			total += v
		}
		require.LessOrEqual(t, total, 100+1e-9)
		require.Greater(t, total, 0.0)
	})
}

func Test_ProjectedRevenueDelta(t *testing.T) {
	curves := map[string]domain.ResponseCurve{
		"meta":   logCurve(2),
		"google": logCurve(1),
	}
	current := map[string]float64{"meta": 500, "google": 300}

	t.Run("no change projects zero delta", func(t *testing.T) {
		require.Equal(t, 0.0, ProjectedRevenueDelta(current, map[string]float64{}, curves))
	})

	t.Run("increase projects positive delta, cut projects negative", func(t *testing.T) {
		up := ProjectedRevenueDelta(current, map[string]float64{"meta": 0.2}, curves)
		down := ProjectedRevenueDelta(current, map[string]float64{"meta": -0.2}, curves)
		require.Greater(t, up, 0.0)
		require.Less(t, down, 0.0)
	})
}
