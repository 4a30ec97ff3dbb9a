package main

import (
	"database/sql"
	"fmt"
	"time"

	"channelmix/internal"
	"channelmix/internal/app"
	"channelmix/internal/config"
	"channelmix/internal/governance"
	"channelmix/internal/repository"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	configPath string
	startFlag  string
	endFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "channelmix",
	Short: "Marketing attribution and mix-modeling decision engine",
	Long: `channelmix reconciles multi-touch attribution with top-down mix
modeling and turns the result into ranked, explained budget decisions.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (defaults apply when omitted)")
	rootCmd.PersistentFlags().StringVar(&startFlag, "start", "", "Window start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&endFlag, "end", "", "Window end date (YYYY-MM-DD)")
}

// engine bundles everything a subcommand needs.
type engine struct {
	Config         *config.Config
	Db             *sql.DB
	AttributionApp app.AttributionApp
	MixModelApp    app.MixModelApp
	DecisionApp    app.DecisionApp
	OptimizerApp   app.OptimizerApp

	SpendRepository       repository.ChannelSpendRepository
	ConversionRepository  repository.ConversionRepository
	DecisionRepository    repository.DecisionRepository
	CoefficientRepository repository.CoefficientRepository
}

func newEngine() (*engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	spendRepository := repository.NewChannelSpendRepository(db)
	conversionRepository := repository.NewConversionRepository(db)
	decisionRepository := repository.NewDecisionRepository(db)
	coefficientRepository := repository.NewCoefficientRepository(db)
	runHistory := governance.NewRunHistory(cfg.Governance.HistoryCap)

	return &engine{
		Config:                cfg,
		Db:                    db,
		AttributionApp:        app.NewAttributionApp(conversionRepository, spendRepository, runHistory),
		MixModelApp:           app.NewMixModelApp(spendRepository, coefficientRepository, runHistory),
		DecisionApp:           app.NewDecisionApp(spendRepository, decisionRepository),
		OptimizerApp:          app.NewOptimizerApp(coefficientRepository, spendRepository),
		SpendRepository:       spendRepository,
		ConversionRepository:  conversionRepository,
		DecisionRepository:    decisionRepository,
		CoefficientRepository: coefficientRepository,
	}, nil
}

// window parses --start/--end, defaulting to the trailing 90 days.
func window() (time.Time, time.Time, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -90)

	var err error
	if startFlag != "" {
		start, err = time.Parse(time.DateOnly, startFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if endFlag != "" {
		end, err = time.Parse(time.DateOnly, endFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--end precedes --start")
	}
	return start, end, nil
}
