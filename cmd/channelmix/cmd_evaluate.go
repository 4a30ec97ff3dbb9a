package main

import (
	"context"

	"channelmix/internal"
	"channelmix/internal/app"
	"channelmix/internal/decision"

	"github.com/spf13/cobra"
)

var (
	evaluateR2         float64
	evaluateSampleSize int
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate threshold rules and store the resulting decisions",
	Long: `Aggregates channel performance over the window, applies the ROAS
scale-up/scale-down thresholds, and persists each emitted decision as
pending. A quiet window yields a single portfolio review decision.`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().Float64Var(&evaluateR2, "r2", 0, "Model fit quality feeding the confidence score")
	evaluateCmd.Flags().IntVar(&evaluateSampleSize, "sample-size", 0, "Observation count feeding the confidence score")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	start, end, err := window()
	if err != nil {
		return err
	}

	decisions, err := e.DecisionApp.EvaluateDecisions(context.Background(), app.EvaluateDecisionsInput{
		Start:      start,
		End:        end,
		R2:         evaluateR2,
		SampleSize: evaluateSampleSize,
		Rules: decision.RuleConfig{
			ScaleUpThreshold:    e.Config.Decision.ScaleUpThreshold,
			ScaleDownThreshold:  e.Config.Decision.ScaleDownThreshold,
			MinSpend:            e.Config.Decision.MinSpend,
			ConfidenceDecayDays: e.Config.Decision.ConfidenceDecay,
		},
	})
	if err != nil {
		return err
	}

	internal.Pprint(decisions)
	return nil
}
