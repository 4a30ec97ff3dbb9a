package decision

import (
	"fmt"
	"sort"
	"time"

	"channelmix/internal/domain"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

const (
	DefaultScaleUpThreshold   = 2.0
	DefaultScaleDownThreshold = 0.5

	// suggested budget moves attached to threshold decisions
	scaleUpImpact   = 0.2
	scaleDownImpact = -0.3

	ReasonCode_ROASAboveTarget = "roas_above_target"
	ReasonCode_ROASBelowFloor  = "roas_below_floor"
	ReasonCode_NoSignal        = "no_signal"
)

// CustomRule is a caller-defined trigger evaluated per channel with
// the variables roas, spend and revenue in scope, e.g.
// "roas >= 3.0 && spend > 1000".
type CustomRule struct {
	Name         string
	Expression   string
	DecisionType domain.DecisionType
	ReasonCode   string
}

// RuleConfig tunes the threshold rule evaluator. Zero thresholds take
// defaults.
type RuleConfig struct {
	ScaleUpThreshold   float64
	ScaleDownThreshold float64
	// MinSpend mutes scale-up triggers for channels below a spend
	// floor, where ROAS is noise
	MinSpend float64
	// ConfidenceDecayDays overrides the recency half-life of the
	// confidence score
	ConfidenceDecayDays float64
	CustomRules         []CustomRule
}

func (c RuleConfig) withDefaults() RuleConfig {
	if c.ScaleUpThreshold == 0 {
		c.ScaleUpThreshold = DefaultScaleUpThreshold
	}
	if c.ScaleDownThreshold == 0 {
		c.ScaleDownThreshold = DefaultScaleDownThreshold
	}
	return c
}

// EvaluateInput carries per-channel performance over a date window
// plus the context stamped onto emitted decisions.
type EvaluateInput struct {
	Performance   []domain.ChannelPerformance
	R2            float64
	SampleSize    int
	ReferenceDate time.Time
	Now           time.Time
	RunID         string
	Versions      domain.ModelVersions
}

// Evaluate applies the ROAS threshold rules (and any custom rules) to
// every channel. When nothing triggers, it emits a single fallback
// reallocate-budget decision so a run never ends silent. All
// decisions from one pass share the same confidence score.
func Evaluate(in EvaluateInput, cfg RuleConfig) ([]domain.Decision, error) {
	cfg = cfg.withDefaults()

	confidence := ConfidenceScore(in.R2, in.SampleSize, in.ReferenceDate, in.Now, cfg.ConfidenceDecayDays)

	performance := append([]domain.ChannelPerformance{}, in.Performance...)
	sort.Slice(performance, func(i, j int) bool {
		return performance[i].Channel < performance[j].Channel
	})

	decisions := []domain.Decision{}
	for _, perf := range performance {
		roas := perf.ROAS()

		switch {
		case roas >= cfg.ScaleUpThreshold && perf.Spend >= cfg.MinSpend:
			impact := scaleUpImpact
			decisions = append(decisions, in.newDecision(
				perf.Channel,
				domain.DecisionType_ScaleUp,
				ReasonCode_ROASAboveTarget,
				fmt.Sprintf("%s ROAS %.2f meets the %.2f scale-up threshold", perf.Channel, roas, cfg.ScaleUpThreshold),
				&impact,
				confidence,
			))
		case roas <= cfg.ScaleDownThreshold && perf.Spend > 0:
			impact := scaleDownImpact
			decisions = append(decisions, in.newDecision(
				perf.Channel,
				domain.DecisionType_ScaleDown,
				ReasonCode_ROASBelowFloor,
				fmt.Sprintf("%s ROAS %.2f is at or below the %.2f scale-down floor", perf.Channel, roas, cfg.ScaleDownThreshold),
				&impact,
				confidence,
			))
		}

		custom, err := evaluateCustomRules(in, cfg.CustomRules, perf, confidence)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, custom...)
	}

	if len(decisions) == 0 {
		decisions = append(decisions, in.newDecision(
			"all",
			domain.DecisionType_ReallocateBudget,
			ReasonCode_NoSignal,
			"no channel met a scale threshold; review allocation across the portfolio",
			nil,
			confidence,
		))
	}

	return decisions, nil
}

func evaluateCustomRules(in EvaluateInput, rules []CustomRule, perf domain.ChannelPerformance, confidence float64) ([]domain.Decision, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	eval := goval.NewEvaluator()
	variables := map[string]interface{}{
		"roas":    perf.ROAS(),
		"spend":   perf.Spend,
		"revenue": perf.Revenue,
	}

	decisions := []domain.Decision{}
	for _, rule := range rules {
		value, err := eval.Evaluate(rule.Expression, variables, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate rule '%s': %w", rule.Name, err)
		}
		triggered, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("rule '%s' did not evaluate to a boolean", rule.Name)
		}
		if !triggered {
			continue
		}
		decisions = append(decisions, in.newDecision(
			perf.Channel,
			rule.DecisionType,
			rule.ReasonCode,
			fmt.Sprintf("%s triggered custom rule '%s'", perf.Channel, rule.Name),
			nil,
			confidence,
		))
	}
	return decisions, nil
}

func (in EvaluateInput) newDecision(
	entityID string,
	decisionType domain.DecisionType,
	reasonCode string,
	explanation string,
	projectedImpact *float64,
	confidence float64,
) domain.Decision {
	entityType := "channel"
	if entityID == "all" {
		entityType = "portfolio"
	}
	return domain.Decision{
		DecisionID:      uuid.New(),
		EntityType:      entityType,
		EntityID:        entityID,
		DecisionType:    decisionType,
		ReasonCode:      reasonCode,
		ExplanationText: explanation,
		ProjectedImpact: projectedImpact,
		ConfidenceScore: confidence,
		Status:          domain.DecisionStatus_Pending,
		ModelVersions:   in.Versions,
		RunID:           in.RunID,
		CreatedAt:       in.Now,
	}
}
