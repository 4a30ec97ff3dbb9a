package app

import (
	"context"
	"fmt"
	"time"

	"channelmix/internal/domain"
	"channelmix/internal/governance"
	"channelmix/internal/logger"
	"channelmix/internal/mixmodel"
	"channelmix/internal/repository"
)

// MixModelApp orchestrates one mix-model fit: load the daily spend
// series, run the regression pipeline, persist the fitted response
// curves and record the run.
type MixModelApp interface {
	FitMixModel(ctx context.Context, in FitMixModelInput) (*domain.MixModelResult, error)
}

type mixModelAppHandler struct {
	ChannelSpendRepository repository.ChannelSpendRepository
	CoefficientRepository  repository.CoefficientRepository
	RunHistory             *governance.RunHistory
}

func NewMixModelApp(
	channelSpendRepository repository.ChannelSpendRepository,
	coefficientRepository repository.CoefficientRepository,
	runHistory *governance.RunHistory,
) MixModelApp {
	return &mixModelAppHandler{
		ChannelSpendRepository: channelSpendRepository,
		CoefficientRepository:  coefficientRepository,
		RunHistory:             runHistory,
	}
}

type FitMixModelInput struct {
	Start   time.Time
	End     time.Time
	Options mixmodel.FitOptions
}

func (h *mixModelAppHandler) FitMixModel(ctx context.Context, in FitMixModelInput) (*domain.MixModelResult, error) {
	log := logger.FromContext(ctx)

	rows, err := h.ChannelSpendRepository.ListRange(in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load spend series: %w", err)
	}

	matrix := domain.NewSpendMatrix(rows)
	result := mixmodel.Fit(matrix, in.Options)
	result.RunID = governance.NewRunID()
	result.ModelVersion = governance.MMMVersion
	result.CreatedAt = time.Now().UTC()

	err = h.CoefficientRepository.AddMany(nil, result.RunID, result.ModelVersion, result.Curves)
	if err != nil {
		return nil, fmt.Errorf("failed to persist response curves: %w", err)
	}

	h.RunHistory.Append(domain.RunMetadata{
		RunID:      result.RunID,
		Timestamp:  result.CreatedAt,
		MMMVersion: result.ModelVersion,
	})

	log.Infow("mix model fit complete",
		"runId", result.RunID,
		"method", result.Method,
		"alpha", result.Alpha,
		"r2", result.R2,
		"confidence", result.ConfidenceScore,
	)

	return &result, nil
}
