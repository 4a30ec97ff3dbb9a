package decision

import (
	"testing"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Enrich(t *testing.T) {
	impact := 0.25
	base := domain.Decision{
		EntityType:      "channel",
		EntityID:        "meta",
		DecisionType:    domain.DecisionType_ScaleUp,
		ProjectedImpact: &impact,
		ConfidenceScore: 0.8,
	}

	t.Run("adds label, budget change and reasoning", func(t *testing.T) {
		enriched := Enrich(EnrichInput{
			Decision:      base,
			MTAConfidence: 0.9,
			MMMConfidence: 0.8,
			Reconciliation: domain.ReconciliationResult{
				OverallAlignmentScore: 0.95,
				Channels:              map[string]domain.ChannelReconciliation{},
			},
		})

		require.Equal(t, "scale up", enriched.RecommendedAction)
		require.NotNil(t, enriched.BudgetChangePct)
		require.InDelta(t, 25, *enriched.BudgetChangePct, 1e-9)
		require.InDelta(t, 0.9, enriched.Reasoning.MTAConfidence, 1e-9)
		require.InDelta(t, 0.9*0.8*0.95, enriched.ConfidenceScore, 1e-9)
		require.Empty(t, enriched.RiskFlags)
	})

	t.Run("flags reconciliation conflict for the decision channel", func(t *testing.T) {
		enriched := Enrich(EnrichInput{
			Decision:      base,
			MTAConfidence: 0.9,
			MMMConfidence: 0.9,
			Reconciliation: domain.ReconciliationResult{
				OverallAlignmentScore: 0.5,
				Channels: map[string]domain.ChannelReconciliation{
					"meta": {DeltaPct: 0.5, Conflict: true},
				},
			},
		})
		require.Contains(t, enriched.RiskFlags, domain.RiskFlag_MTAMMMConflict)
	})

	t.Run("flags stored low confidence", func(t *testing.T) {
		weak := base
		weak.ConfidenceScore = 0.2
		enriched := Enrich(EnrichInput{
			Decision:       weak,
			MTAConfidence:  1,
			MMMConfidence:  1,
			Reconciliation: domain.ReconciliationResult{OverallAlignmentScore: 1},
		})
		require.Contains(t, enriched.RiskFlags, domain.RiskFlag_LowConfidence)
	})

	t.Run("no projected impact leaves budget change unset", func(t *testing.T) {
		bare := base
		bare.ProjectedImpact = nil
		enriched := Enrich(EnrichInput{
			Decision:       bare,
			MTAConfidence:  1,
			MMMConfidence:  1,
			Reconciliation: domain.ReconciliationResult{OverallAlignmentScore: 1},
		})
		require.Nil(t, enriched.BudgetChangePct)
	})

	t.Run("does not duplicate existing flags", func(t *testing.T) {
		flagged := base
		flagged.ConfidenceScore = 0.1
		flagged.RiskFlags = []string{domain.RiskFlag_LowConfidence}
		enriched := Enrich(EnrichInput{
			Decision:       flagged,
			MTAConfidence:  1,
			MMMConfidence:  1,
			Reconciliation: domain.ReconciliationResult{OverallAlignmentScore: 1},
		})
		require.Equal(t, []string{domain.RiskFlag_LowConfidence}, enriched.RiskFlags)
	})
}
