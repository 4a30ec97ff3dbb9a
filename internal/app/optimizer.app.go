package app

import (
	"context"
	"fmt"
	"time"

	"channelmix/internal/domain"
	"channelmix/internal/logger"
	"channelmix/internal/optimizer"
	"channelmix/internal/repository"
)

// OptimizerApp serves budget planning on top of persisted response
// curves: greedy budget allocation, marginal ROAS and what-if spend
// simulation.
type OptimizerApp interface {
	OptimizeBudget(ctx context.Context, in OptimizeBudgetInput) (*OptimizeBudgetResult, error)
	SimulateSpend(ctx context.Context, in SimulateSpendInput) (*SimulateSpendResult, error)
}

type optimizerAppHandler struct {
	CoefficientRepository  repository.CoefficientRepository
	ChannelSpendRepository repository.ChannelSpendRepository
}

func NewOptimizerApp(
	coefficientRepository repository.CoefficientRepository,
	channelSpendRepository repository.ChannelSpendRepository,
) OptimizerApp {
	return &optimizerAppHandler{
		CoefficientRepository:  coefficientRepository,
		ChannelSpendRepository: channelSpendRepository,
	}
}

type OptimizeBudgetInput struct {
	RunID        string
	TotalBudget  float64
	Step         float64
	CurrentSpend map[string]float64
}

type OptimizeBudgetResult struct {
	Allocation       map[string]float64
	MarginalROAS     map[string]float64
	ProjectedRevenue float64
}

func (h *optimizerAppHandler) OptimizeBudget(ctx context.Context, in OptimizeBudgetInput) (*OptimizeBudgetResult, error) {
	log := logger.FromContext(ctx)

	curves, err := h.loadCurves(in.RunID)
	if err != nil {
		return nil, err
	}

	allocation := optimizer.AllocateBudgetGreedy(in.TotalBudget, curves, in.CurrentSpend, in.Step)

	log.Infow("budget optimization complete",
		"runId", in.RunID,
		"budget", in.TotalBudget,
		"channels", len(allocation),
	)

	return &OptimizeBudgetResult{
		Allocation:       allocation,
		MarginalROAS:     optimizer.MarginalROAS(allocation, curves),
		ProjectedRevenue: optimizer.PredictedRevenue(allocation, curves),
	}, nil
}

type SimulateSpendInput struct {
	RunID string
	// FractionalChanges maps channel to a relative spend change, e.g.
	// 0.2 for +20%
	FractionalChanges map[string]float64
	LookbackDays      int
}

type SimulateSpendResult struct {
	CurrentSpend     map[string]float64
	ProjectedDelta   float64
	CurrentRevenue   float64
	ProjectedRevenue float64
}

func (h *optimizerAppHandler) SimulateSpend(ctx context.Context, in SimulateSpendInput) (*SimulateSpendResult, error) {
	curves, err := h.loadCurves(in.RunID)
	if err != nil {
		return nil, err
	}

	lookback := in.LookbackDays
	if lookback <= 0 {
		lookback = 30
	}
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -lookback)

	rows, err := h.ChannelSpendRepository.ListRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent spend: %w", err)
	}

	// mean daily spend per channel over the lookback window
	currentSpend := map[string]float64{}
	for _, p := range domain.AggregatePerformance(rows) {
		currentSpend[p.Channel] = p.Spend / float64(lookback)
	}

	currentRevenue := optimizer.PredictedRevenue(currentSpend, curves)
	delta := optimizer.ProjectedRevenueDelta(currentSpend, in.FractionalChanges, curves)

	return &SimulateSpendResult{
		CurrentSpend:     currentSpend,
		ProjectedDelta:   delta,
		CurrentRevenue:   currentRevenue,
		ProjectedRevenue: currentRevenue + delta,
	}, nil
}

func (h *optimizerAppHandler) loadCurves(runID string) (map[string]domain.ResponseCurve, error) {
	curves, err := h.CoefficientRepository.GetByRunID(runID)
	if err != nil {
		return nil, err
	}
	if len(curves) == 0 {
		return nil, fmt.Errorf("no response curves found for run %s", runID)
	}
	return curves, nil
}
