package decision

import (
	"channelmix/internal/domain"
)

// lowConfidenceThreshold flags stored decisions whose confidence is
// too weak to act on without review.
const lowConfidenceThreshold = 0.3

// EnrichInput carries the stored decision row plus the three
// confidence signals and the reconciliation it should be audited
// against.
type EnrichInput struct {
	Decision       domain.Decision
	MTAConfidence  float64
	MMMConfidence  float64
	Reconciliation domain.ReconciliationResult
}

// Enrich augments a stored decision with the human-facing fields: a
// recommended action label, the budget change percentage, the
// reasoning inputs, and risk flags for MTA/MMM conflict and low
// confidence.
func Enrich(in EnrichInput) domain.EnrichedDecision {
	enriched := domain.EnrichedDecision{
		Decision:          in.Decision,
		RecommendedAction: in.Decision.DecisionType.HumanLabel(),
		Reasoning: domain.DecisionReasoning{
			MTAConfidence:  clamp01(in.MTAConfidence),
			MMMConfidence:  clamp01(in.MMMConfidence),
			AlignmentScore: in.Reconciliation.OverallAlignmentScore,
		},
	}

	enriched.ConfidenceScore = DecisionConfidence(
		in.MTAConfidence,
		in.MMMConfidence,
		in.Reconciliation.OverallAlignmentScore,
	)

	if in.Decision.ProjectedImpact != nil {
		pct := *in.Decision.ProjectedImpact * 100
		enriched.BudgetChangePct = &pct
	}

	flags := append([]string{}, in.Decision.RiskFlags...)
	if channel, ok := in.Reconciliation.Channels[in.Decision.EntityID]; ok && channel.Conflict {
		flags = appendUnique(flags, domain.RiskFlag_MTAMMMConflict)
	}
	if in.Decision.ConfidenceScore < lowConfidenceThreshold {
		flags = appendUnique(flags, domain.RiskFlag_LowConfidence)
	}
	enriched.RiskFlags = flags

	return enriched
}

func appendUnique(flags []string, flag string) []string {
	for _, f := range flags {
		if f == flag {
			return flags
		}
	}
	return append(flags, flag)
}
