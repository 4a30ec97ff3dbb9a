package app

import (
	"context"
	"testing"
	"time"

	"channelmix/internal/domain"
	mock_repository "channelmix/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_OptimizeBudget(t *testing.T) {
	curves := map[string]domain.ResponseCurve{
		"meta":   {HalfLife: 7, Saturation: domain.SaturationKind_Log, Coefficient: 500},
		"google": {HalfLife: 7, Saturation: domain.SaturationKind_Log, Coefficient: 100},
	}

	t.Run("allocates the full budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coefficientRepository := mock_repository.NewMockCoefficientRepository(ctrl)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)

		coefficientRepository.EXPECT().
			GetByRunID("run-1").
			Return(curves, nil)

		handler := NewOptimizerApp(coefficientRepository, spendRepository)

		result, err := handler.OptimizeBudget(context.Background(), OptimizeBudgetInput{
			RunID:       "run-1",
			TotalBudget: 1000,
			Step:        10,
		})
		require.NoError(t, err)

		total := 0.0
		for _, v := range result.Allocation {
			total += v
		}
		require.InDelta(t, 1000, total, 1e-6)
		require.Greater(t, result.ProjectedRevenue, 0.0)
		// the stronger curve should win the larger share
		require.Greater(t, result.Allocation["meta"], result.Allocation["google"])
	})

	t.Run("unknown run errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coefficientRepository := mock_repository.NewMockCoefficientRepository(ctrl)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)

		coefficientRepository.EXPECT().
			GetByRunID("missing").
			Return(map[string]domain.ResponseCurve{}, nil)

		handler := NewOptimizerApp(coefficientRepository, spendRepository)

		_, err := handler.OptimizeBudget(context.Background(), OptimizeBudgetInput{
			RunID:       "missing",
			TotalBudget: 1000,
		})
		require.Error(t, err)
	})
}

func Test_SimulateSpend(t *testing.T) {
	curves := map[string]domain.ResponseCurve{
		"meta": {HalfLife: 7, Saturation: domain.SaturationKind_Log, Coefficient: 500},
	}

	t.Run("projects delta for a spend increase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coefficientRepository := mock_repository.NewMockCoefficientRepository(ctrl)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)

		coefficientRepository.EXPECT().
			GetByRunID("run-1").
			Return(curves, nil)

		rows := []domain.DailyChannelSpend{}
		now := time.Now().UTC()
		for i := 0; i < 30; i++ {
			rows = append(rows, domain.DailyChannelSpend{
				Date:    now.AddDate(0, 0, -i),
				Channel: "meta",
				Spend:   150,
				Revenue: 400,
			})
		}
		spendRepository.EXPECT().
			ListRange(gomock.Any(), gomock.Any()).
			Return(rows, nil)

		handler := NewOptimizerApp(coefficientRepository, spendRepository)

		result, err := handler.SimulateSpend(context.Background(), SimulateSpendInput{
			RunID:             "run-1",
			FractionalChanges: map[string]float64{"meta": 0.5},
			LookbackDays:      30,
		})
		require.NoError(t, err)

		require.InDelta(t, 150, result.CurrentSpend["meta"], 1e-9)
		require.Greater(t, result.ProjectedDelta, 0.0)
		require.Greater(t, result.ProjectedRevenue, result.CurrentRevenue)
	})
}
