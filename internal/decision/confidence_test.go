package decision

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DecisionConfidence(t *testing.T) {
	require.Equal(t, 1.0, DecisionConfidence(1.5, 1.0, 1.0))
	require.Equal(t, 0.0, DecisionConfidence(0.0, 0.5, 0.5))
	require.InDelta(t, 0.125, DecisionConfidence(0.5, 0.5, 0.5), 1e-9)
	require.Equal(t, 0.0, DecisionConfidence(-1, 0.5, 0.5))
	require.Equal(t, 0.0, DecisionConfidence(math.NaN(), 1, 1))
}

func Test_ConfidenceScore(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("perfect inputs approach 1", func(t *testing.T) {
		score := ConfidenceScore(1.0, 100000, now, now, DefaultDecayDays)
		require.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("fit component caps at 0.5", func(t *testing.T) {
		withHuge := ConfidenceScore(50, 0, now.AddDate(-10, 0, 0), now, DefaultDecayDays)
		withOne := ConfidenceScore(1, 0, now.AddDate(-10, 0, 0), now, DefaultDecayDays)
		require.InDelta(t, withOne, withHuge, 1e-9)
		require.InDelta(t, 0.5, withOne, 0.01)
	})

	t.Run("recency decays with a 90 day half life", func(t *testing.T) {
		fresh := ConfidenceScore(0, 0, now, now, 90)
		stale := ConfidenceScore(0, 0, now.AddDate(0, 0, -90), now, 90)
		require.InDelta(t, 0.2, fresh, 1e-9)
		require.InDelta(t, 0.1, stale, 1e-9)
	})

	t.Run("volume component caps at 0.3", func(t *testing.T) {
		old := now.AddDate(-30, 0, 0)
		score := ConfidenceScore(0, 1<<30, old, now, 90)
		require.InDelta(t, 0.3, score, 1e-6)
	})

	t.Run("always within [0,1] on adversarial input", func(t *testing.T) {
		for _, r2 := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5, 7} {
			score := ConfidenceScore(r2, -10, now.AddDate(5, 0, 0), now, -1)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}
	})
}
