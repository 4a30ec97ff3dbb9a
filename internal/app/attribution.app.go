package app

import (
	"context"
	"fmt"
	"time"

	"channelmix/internal/attribution"
	"channelmix/internal/domain"
	"channelmix/internal/governance"
	"channelmix/internal/logger"
	"channelmix/internal/repository"
)

// AttributionApp orchestrates one multi-touch attribution run:
// 1. Load converting orders and their touch paths for a date range
// 2. Apply the click/view attribution window
// 3. Compute Markov removal-effect credits, falling back to
//    fractional spend-share allocation when paths are too sparse
// 4. Run the diagnostics suite and stamp governance metadata
type AttributionApp interface {
	RunAttribution(ctx context.Context, in RunAttributionInput) (*domain.AttributionResult, error)
}

type attributionAppHandler struct {
	ConversionRepository   repository.ConversionRepository
	ChannelSpendRepository repository.ChannelSpendRepository
	RunHistory             *governance.RunHistory
}

func NewAttributionApp(
	conversionRepository repository.ConversionRepository,
	channelSpendRepository repository.ChannelSpendRepository,
	runHistory *governance.RunHistory,
) AttributionApp {
	return &attributionAppHandler{
		ConversionRepository:   conversionRepository,
		ChannelSpendRepository: channelSpendRepository,
		RunHistory:             runHistory,
	}
}

type RunAttributionInput struct {
	Start          time.Time
	End            time.Time
	Window         string
	MinSequences   int
	NBoot          int
	Seed           int64
	WindowDays     []int
	LagBucketCount int
}

func (h *attributionAppHandler) RunAttribution(ctx context.Context, in RunAttributionInput) (*domain.AttributionResult, error) {
	log := logger.FromContext(ctx)

	events, err := h.ConversionRepository.ListRange(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversions: %w", err)
	}

	window := attribution.DefaultWindow()
	if in.Window != "" {
		window = attribution.ParseWindow(in.Window)
	}
	events = window.FilterEvents(events)

	sequences := make([][]string, 0, len(events))
	for _, e := range events {
		sequences = append(sequences, e.Path())
	}

	result := domain.AttributionResult{
		RunID:        governance.NewRunID(),
		Method:       domain.AttributionMethod_Markov,
		ModelVersion: governance.MTAVersion,
		CreatedAt:    time.Now().UTC(),
	}

	credits := attribution.MarkovCredits(sequences, in.MinSequences)
	if credits == nil {
		log.Infow("too few paths for markov attribution, falling back to fractional",
			"paths", len(sequences))

		spend, err := h.ChannelSpendRepository.ListRange(in.Start, in.End)
		if err != nil {
			return nil, fmt.Errorf("failed to load spend for fractional fallback: %w", err)
		}
		fractional := attribution.FractionalAllocate(attribution.FractionalAllocateInput{
			Events: events,
			Spend:  spend,
		})
		result.Method = domain.AttributionMethod_Fractional
		credits = fractional.Credits
	}
	result.Credits = credits

	result.Diagnostics = attribution.RunDiagnostics(sequences, attribution.DiagnosticsOptions{
		NBoot:          in.NBoot,
		Seed:           in.Seed,
		MinSequences:   in.MinSequences,
		Windows:        in.WindowDays,
		LagBucketCount: in.LagBucketCount,
	})

	h.RunHistory.Append(domain.RunMetadata{
		RunID:      result.RunID,
		Timestamp:  result.CreatedAt,
		MTAVersion: result.ModelVersion,
	})

	log.Infow("attribution run complete",
		"runId", result.RunID,
		"method", result.Method,
		"paths", len(sequences),
		"confidence", result.Diagnostics.ConfidenceScore,
	)

	return &result, nil
}
