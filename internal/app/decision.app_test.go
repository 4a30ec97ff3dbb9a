package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"channelmix/internal/decision"
	"channelmix/internal/domain"
	mock_repository "channelmix/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_EvaluateDecisions(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("stores a decision per triggered channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)

		spendRepository.EXPECT().
			ListRange(start, end).
			Return([]domain.DailyChannelSpend{
				{Date: start, Channel: "meta", Spend: 100, Revenue: 500},
				{Date: start, Channel: "google", Spend: 100, Revenue: 20},
			}, nil)

		stored := []domain.Decision{}
		decisionRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, d domain.Decision) (*domain.Decision, error) {
				stored = append(stored, d)
				return &d, nil
			}).
			Times(2)

		handler := NewDecisionApp(spendRepository, decisionRepository)

		decisions, err := handler.EvaluateDecisions(context.Background(), EvaluateDecisionsInput{
			Start:      start,
			End:        end,
			R2:         0.8,
			SampleSize: 200,
			Rules: decision.RuleConfig{
				ScaleUpThreshold:   3.0,
				ScaleDownThreshold: 0.5,
			},
		})
		require.NoError(t, err)
		require.Len(t, decisions, 2)

		// sorted by channel: google scale-down, meta scale-up
		require.Equal(t, domain.DecisionType_ScaleDown, stored[0].DecisionType)
		require.Equal(t, "google", stored[0].EntityID)
		require.Equal(t, domain.DecisionType_ScaleUp, stored[1].DecisionType)
		require.Equal(t, "meta", stored[1].EntityID)

		require.Equal(t, "mta_v2", stored[0].ModelVersions.MTA)
		require.NotEmpty(t, stored[0].RunID)
	})

	t.Run("quiet window falls back to portfolio review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)

		spendRepository.EXPECT().
			ListRange(start, end).
			Return([]domain.DailyChannelSpend{
				{Date: start, Channel: "meta", Spend: 100, Revenue: 150},
			}, nil)

		decisionRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, d domain.Decision) (*domain.Decision, error) {
				return &d, nil
			})

		handler := NewDecisionApp(spendRepository, decisionRepository)

		decisions, err := handler.EvaluateDecisions(context.Background(), EvaluateDecisionsInput{
			Start:      start,
			End:        end,
			R2:         0.8,
			SampleSize: 200,
		})
		require.NoError(t, err)
		require.Len(t, decisions, 1)
		require.Equal(t, domain.DecisionType_ReallocateBudget, decisions[0].DecisionType)
		require.Equal(t, "portfolio", decisions[0].EntityType)
	})
}

func Test_EnrichDecision(t *testing.T) {
	t.Run("flags conflict between attribution systems", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)
		decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)

		decisionID := uuid.New()
		impact := 0.2
		decisionRepository.EXPECT().
			Get(decisionID).
			Return(&domain.Decision{
				DecisionID:      decisionID,
				EntityType:      "channel",
				EntityID:        "meta",
				DecisionType:    domain.DecisionType_ScaleUp,
				ProjectedImpact: &impact,
				ConfidenceScore: 0.7,
				Status:          domain.DecisionStatus_Pending,
			}, nil)

		handler := NewDecisionApp(spendRepository, decisionRepository)

		enriched, err := handler.EnrichDecision(context.Background(), EnrichDecisionInput{
			DecisionID: decisionID,
			Attribution: domain.AttributionResult{
				Credits:     map[string]float64{"meta": 0.9, "google": 0.1},
				Diagnostics: domain.AttributionDiagnostics{ConfidenceScore: 0.8},
			},
			MixModel: domain.MixModelResult{
				Channels: []string{"meta", "google"},
				Effects: map[string]domain.ChannelEffect{
					"meta":   {Coefficient: 1},
					"google": {Coefficient: 9},
				},
				ConfidenceScore: 0.6,
			},
		})
		require.NoError(t, err)

		require.Equal(t, "scale up", enriched.RecommendedAction)
		require.Contains(t, enriched.RiskFlags, domain.RiskFlag_MTAMMMConflict)
		require.NotNil(t, enriched.BudgetChangePct)
		require.InDelta(t, 20.0, *enriched.BudgetChangePct, 1e-9)
		require.InDelta(t, 0.8, enriched.Reasoning.MTAConfidence, 1e-9)
	})
}

func Test_UpdateDecisionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	spendRepository := mock_repository.NewMockChannelSpendRepository(ctrl)
	decisionRepository := mock_repository.NewMockDecisionRepository(ctrl)

	decisionID := uuid.New()
	decisionRepository.EXPECT().
		UpdateStatus(gomock.Nil(), decisionID, domain.DecisionStatus_Applied).
		Return(&domain.Decision{DecisionID: decisionID, Status: domain.DecisionStatus_Applied}, nil)

	handler := NewDecisionApp(spendRepository, decisionRepository)

	out, err := handler.UpdateDecisionStatus(context.Background(), decisionID, domain.DecisionStatus_Applied)
	require.NoError(t, err)
	require.Equal(t, domain.DecisionStatus_Applied, out.Status)
}
