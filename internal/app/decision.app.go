package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"channelmix/internal/decision"
	"channelmix/internal/domain"
	"channelmix/internal/governance"
	"channelmix/internal/logger"
	"channelmix/internal/reconciliation"
	"channelmix/internal/repository"

	"github.com/google/uuid"
)

// DecisionApp runs the threshold rule evaluator over a performance
// window, persists the emitted decisions, and serves enriched
// decisions reconciled against both attribution systems.
type DecisionApp interface {
	EvaluateDecisions(ctx context.Context, in EvaluateDecisionsInput) ([]domain.Decision, error)
	EnrichDecision(ctx context.Context, in EnrichDecisionInput) (*domain.EnrichedDecision, error)
	UpdateDecisionStatus(ctx context.Context, decisionID uuid.UUID, status domain.DecisionStatus) (*domain.Decision, error)
}

type decisionAppHandler struct {
	ChannelSpendRepository repository.ChannelSpendRepository
	DecisionRepository     repository.DecisionRepository
}

func NewDecisionApp(
	channelSpendRepository repository.ChannelSpendRepository,
	decisionRepository repository.DecisionRepository,
) DecisionApp {
	return &decisionAppHandler{
		ChannelSpendRepository: channelSpendRepository,
		DecisionRepository:     decisionRepository,
	}
}

type EvaluateDecisionsInput struct {
	Start      time.Time
	End        time.Time
	R2         float64
	SampleSize int
	RunID      string
	Rules      decision.RuleConfig
}

func (h *decisionAppHandler) EvaluateDecisions(ctx context.Context, in EvaluateDecisionsInput) ([]domain.Decision, error) {
	log := logger.FromContext(ctx)

	rows, err := h.ChannelSpendRepository.ListRange(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance window: %w", err)
	}

	runID := in.RunID
	if runID == "" {
		runID = governance.NewRunID()
	}

	decisions, err := decision.Evaluate(decision.EvaluateInput{
		Performance:   domain.AggregatePerformance(rows),
		R2:            in.R2,
		SampleSize:    in.SampleSize,
		ReferenceDate: in.End,
		Now:           time.Now().UTC(),
		RunID:         runID,
		Versions:      governance.Versions(),
	}, in.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate decision rules: %w", err)
	}

	stored := make([]domain.Decision, 0, len(decisions))
	for _, d := range decisions {
		out, err := h.DecisionRepository.Add(nil, d)
		if err != nil {
			return nil, fmt.Errorf("failed to store decision: %w", err)
		}
		stored = append(stored, *out)
	}

	log.Infow("decision evaluation complete",
		"runId", runID,
		"decisions", len(stored),
	)

	return stored, nil
}

type EnrichDecisionInput struct {
	DecisionID  uuid.UUID
	Attribution domain.AttributionResult
	MixModel    domain.MixModelResult
}

func (h *decisionAppHandler) EnrichDecision(ctx context.Context, in EnrichDecisionInput) (*domain.EnrichedDecision, error) {
	stored, err := h.DecisionRepository.Get(in.DecisionID)
	if err != nil {
		return nil, err
	}

	mtaConfidence := in.Attribution.Diagnostics.ConfidenceScore
	mmmConfidence := in.MixModel.ConfidenceScore

	recon := reconciliation.Compute(
		in.Attribution.Credits,
		reconciliation.MMMShares(in.MixModel),
		math.Min(mtaConfidence, mmmConfidence),
	)

	enriched := decision.Enrich(decision.EnrichInput{
		Decision:       *stored,
		MTAConfidence:  mtaConfidence,
		MMMConfidence:  mmmConfidence,
		Reconciliation: recon,
	})

	return &enriched, nil
}

func (h *decisionAppHandler) UpdateDecisionStatus(ctx context.Context, decisionID uuid.UUID, status domain.DecisionStatus) (*domain.Decision, error) {
	return h.DecisionRepository.UpdateStatus(nil, decisionID, status)
}
