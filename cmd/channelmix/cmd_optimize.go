package main

import (
	"context"
	"fmt"

	"channelmix/internal"
	"channelmix/internal/app"

	"github.com/spf13/cobra"
)

var (
	optimizeRunID  string
	optimizeBudget float64
	optimizeStep   float64
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Allocate a budget across channels using fitted response curves",
	Long: `Greedily assigns budget increments to whichever channel has the
highest marginal return under its saturating response curve, and prints
the allocation with per-channel marginal ROAS.`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVar(&optimizeRunID, "run-id", "", "Mix model run whose response curves to use")
	optimizeCmd.Flags().Float64Var(&optimizeBudget, "budget", 0, "Total budget to allocate")
	optimizeCmd.Flags().Float64Var(&optimizeStep, "step", 0, "Allocation step size (defaults to budget/100)")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if optimizeRunID == "" {
		return fmt.Errorf("--run-id is required")
	}
	if optimizeBudget <= 0 {
		return fmt.Errorf("--budget must be positive")
	}

	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	result, err := e.OptimizerApp.OptimizeBudget(context.Background(), app.OptimizeBudgetInput{
		RunID:       optimizeRunID,
		TotalBudget: optimizeBudget,
		Step:        optimizeStep,
	})
	if err != nil {
		return err
	}

	internal.Pprint(result)
	return nil
}
