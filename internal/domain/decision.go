package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DecisionType string

const (
	DecisionType_ScaleUp          DecisionType = "scale_up"
	DecisionType_ScaleDown        DecisionType = "scale_down"
	DecisionType_ReallocateBudget DecisionType = "reallocate_budget"
	DecisionType_Pause            DecisionType = "pause"
)

// HumanLabel converts a decision type to the label shown to operators.
func (d DecisionType) HumanLabel() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

type DecisionStatus string

const (
	DecisionStatus_Pending  DecisionStatus = "pending"
	DecisionStatus_Applied  DecisionStatus = "applied"
	DecisionStatus_Rejected DecisionStatus = "rejected"
)

// NewDecisionStatus parses a stored status string.
func NewDecisionStatus(s string) (*DecisionStatus, error) {
	m := map[string]DecisionStatus{
		"pending":  DecisionStatus_Pending,
		"applied":  DecisionStatus_Applied,
		"rejected": DecisionStatus_Rejected,
	}
	if v, ok := m[strings.ToLower(s)]; ok {
		return &v, nil
	}
	return nil, fmt.Errorf("could not convert '%s' to known decision status", s)
}

// CanTransitionTo reports whether a status change is legal. The only
// mutation a decision allows after creation is pending → applied or
// pending → rejected.
func (s DecisionStatus) CanTransitionTo(next DecisionStatus) bool {
	return s == DecisionStatus_Pending &&
		(next == DecisionStatus_Applied || next == DecisionStatus_Rejected)
}

// Decision is one ranked, explained budget recommendation. Created by
// the rule evaluator or the enrichment step; after creation only its
// status may change.
type Decision struct {
	DecisionID      uuid.UUID
	EntityType      string
	EntityID        string
	DecisionType    DecisionType
	ReasonCode      string
	ExplanationText string
	ProjectedImpact *float64
	ConfidenceScore float64
	RiskFlags       []string
	Status          DecisionStatus
	ModelVersions   ModelVersions
	RunID           string
	CreatedAt       time.Time
}

// ModelVersions tags a decision with the engine versions that
// produced it, for reproducibility and audit.
type ModelVersions struct {
	MTA      string `json:"mta"`
	MMM      string `json:"mmm"`
	Decision string `json:"decision"`
}

// EnrichedDecision is a stored decision augmented with the
// human-facing fields the dashboard renders.
type EnrichedDecision struct {
	Decision

	RecommendedAction string
	BudgetChangePct   *float64
	Reasoning         DecisionReasoning
}

// DecisionReasoning carries the three inputs that produced the
// decision confidence, so a reviewer can audit the number.
type DecisionReasoning struct {
	MTAConfidence  float64
	MMMConfidence  float64
	AlignmentScore float64
}

const (
	RiskFlag_MTAMMMConflict = "mta_mmm_conflict"
	RiskFlag_LowConfidence  = "low_confidence"
)
