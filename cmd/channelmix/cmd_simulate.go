package main

import (
	"context"
	"fmt"

	"channelmix/internal"
	"channelmix/internal/app"

	"github.com/spf13/cobra"
)

var (
	simulateRunID    string
	simulateChanges  map[string]string
	simulateLookback int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the revenue impact of hypothetical spend changes",
	Long: `Applies fractional spend changes (e.g. meta=+0.2 for +20%) on top of
the recent mean daily spend and projects the revenue delta through the
fitted response curves.`,
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateRunID, "run-id", "", "Mix model run whose response curves to use")
	simulateCmd.Flags().StringToStringVar(&simulateChanges, "change", nil, "Per-channel fractional spend change, e.g. --change meta=0.2")
	simulateCmd.Flags().IntVar(&simulateLookback, "lookback", 30, "Days of history to average for current spend")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simulateRunID == "" {
		return fmt.Errorf("--run-id is required")
	}
	if len(simulateChanges) == 0 {
		return fmt.Errorf("at least one --change is required")
	}

	changes := map[string]float64{}
	for channel, raw := range simulateChanges {
		var v float64
		if _, err := fmt.Sscanf(raw, "%f", &v); err != nil {
			return fmt.Errorf("invalid change for %s: %q", channel, raw)
		}
		changes[channel] = v
	}

	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	result, err := e.OptimizerApp.SimulateSpend(context.Background(), app.SimulateSpendInput{
		RunID:             simulateRunID,
		FractionalChanges: changes,
		LookbackDays:      simulateLookback,
	})
	if err != nil {
		return err
	}

	internal.Pprint(result)
	return nil
}
