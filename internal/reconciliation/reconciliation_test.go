package reconciliation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Compute(t *testing.T) {
	t.Run("scores disagreement per channel", func(t *testing.T) {
		result := Compute(
			map[string]float64{"meta": 0.4, "google": 0.6},
			map[string]float64{"meta": 0.0, "google": 1.0},
			0.8,
		)

		meta := result.Channels["meta"]
		require.InDelta(t, 0.4, meta.DeltaPct, 1e-9)
		require.True(t, meta.Conflict)

		google := result.Channels["google"]
		require.InDelta(t, 0.4, google.DeltaPct, 1e-9)
		require.True(t, google.Conflict)

		require.InDelta(t, 0.6, result.OverallAlignmentScore, 1e-9)
		require.InDelta(t, 0.8, result.AlignmentConfidence, 1e-9)
	})

	t.Run("delta at exactly the threshold is not a conflict", func(t *testing.T) {
		result := Compute(
			map[string]float64{"meta": 0.3},
			map[string]float64{"meta": 0.0},
			1,
		)
		require.False(t, result.Channels["meta"].Conflict)
	})

	t.Run("channel present in only one mapping counts fully", func(t *testing.T) {
		result := Compute(
			map[string]float64{"meta": 1.0},
			map[string]float64{"google": 1.0},
			1,
		)
		require.Len(t, result.Channels, 2)
		require.True(t, result.Channels["meta"].Conflict)
		require.True(t, result.Channels["google"].Conflict)
		require.InDelta(t, 0.0, result.OverallAlignmentScore, 1e-9)
	})

	t.Run("no channels means vacuous agreement", func(t *testing.T) {
		result := Compute(nil, nil, 0.5)
		require.Equal(t, 1.0, result.OverallAlignmentScore)
		require.Empty(t, result.Channels)
	})

	t.Run("alignment confidence is clamped", func(t *testing.T) {
		require.Equal(t, 1.0, Compute(nil, nil, 5).AlignmentConfidence)
		require.Equal(t, 0.0, Compute(nil, nil, -2).AlignmentConfidence)
		require.Equal(t, 0.0, Compute(nil, nil, math.NaN()).AlignmentConfidence)
	})
}
