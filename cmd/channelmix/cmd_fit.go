package main

import (
	"context"

	"channelmix/internal"
	"channelmix/internal/app"
	"channelmix/internal/domain"
	"channelmix/internal/mixmodel"

	"github.com/spf13/cobra"
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the media mix model over a date window",
	Long: `Builds the date-aligned spend matrix, runs the adstock/saturation
transforms and the cross-validated regularized regression, persists the
fitted response curves, and prints the fit with its diagnostics.`,
	RunE: runFit,
}

func init() {
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.Db.Close()

	start, end, err := window()
	if err != nil {
		return err
	}

	result, err := e.MixModelApp.FitMixModel(context.Background(), app.FitMixModelInput{
		Start: start,
		End:   end,
		Options: mixmodel.FitOptions{
			Method:     domain.RegressionMethod(e.Config.MixModel.Method),
			AlphaGrid:  e.Config.MixModel.AlphaGrid,
			CVFolds:    e.Config.MixModel.CVFolds,
			NBoot:      e.Config.MixModel.NBoot,
			Seed:       e.Config.MixModel.Seed,
			HalfLife:   e.Config.MixModel.HalfLife,
			Saturation: domain.SaturationKind(e.Config.MixModel.Saturation),
		},
	})
	if err != nil {
		return err
	}

	internal.Pprint(result)
	return nil
}
