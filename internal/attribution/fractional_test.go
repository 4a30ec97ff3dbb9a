package attribution

import (
	"testing"
	"time"

	"channelmix/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_FractionalAllocate(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("allocates by day spend share and conserves revenue exactly", func(t *testing.T) {
		result := FractionalAllocate(FractionalAllocateInput{
			Events: []domain.ConversionEvent{
				{EventID: uuid.New(), Revenue: 100, OccurredAt: day.Add(10 * time.Hour)},
			},
			Spend: []domain.DailyChannelSpend{
				{Date: day, Channel: "meta", Spend: 75},
				{Date: day, Channel: "google", Spend: 25},
			},
		})

		require.Len(t, result.Orders, 1)
		byChannel := result.Orders[0].ByChannel
		require.True(t, byChannel["meta"].Add(byChannel["google"]).Equal(decimal.NewFromInt(100)))
		require.True(t, byChannel["google"].Equal(decimal.NewFromInt(25)))
		require.InDelta(t, 0.75, result.Credits["meta"], 1e-9)
	})

	t.Run("explicit weights override spend share and are renormalized", func(t *testing.T) {
		result := FractionalAllocate(FractionalAllocateInput{
			Events: []domain.ConversionEvent{
				{EventID: uuid.New(), Revenue: 90, OccurredAt: day},
			},
			Spend: []domain.DailyChannelSpend{
				{Date: day, Channel: "meta", Spend: 1000},
			},
			Weights: map[string]float64{"meta": 2, "google": 4},
		})

		byChannel := result.Orders[0].ByChannel
		require.True(t, byChannel["meta"].Equal(decimal.NewFromInt(30)))
		require.True(t, byChannel["google"].Equal(decimal.NewFromInt(60)))
	})

	t.Run("every order conserves revenue with awkward fractions", func(t *testing.T) {
		events := []domain.ConversionEvent{
			{EventID: uuid.New(), Revenue: 99.99, OccurredAt: day},
			{EventID: uuid.New(), Revenue: 0.01, OccurredAt: day},
			{EventID: uuid.New(), Revenue: 1234.567, OccurredAt: day},
		}
		result := FractionalAllocate(FractionalAllocateInput{
			Events: events,
			Weights: map[string]float64{
				"meta": 1, "google": 1, "email": 1,
			},
		})

		require.Len(t, result.Orders, len(events))
		for i, alloc := range result.Orders {
			sum := decimal.Zero
			for _, amount := range alloc.ByChannel {
				sum = sum.Add(amount)
			}
			require.True(t, sum.Equal(decimal.NewFromFloat(events[i].Revenue)),
				"order %d: allocated %s, revenue %f", i, sum, events[i].Revenue)
		}
	})

	t.Run("day with no spend falls back to touched channels", func(t *testing.T) {
		result := FractionalAllocate(FractionalAllocateInput{
			Events: []domain.ConversionEvent{
				{
					EventID:    uuid.New(),
					Revenue:    50,
					OccurredAt: day,
					Touches: []domain.Touch{
						{Channel: "email", OccurredAt: day.Add(-time.Hour)},
					},
				},
			},
		})

		require.Len(t, result.Orders, 1)
		require.True(t, result.Orders[0].ByChannel["email"].Equal(decimal.NewFromInt(50)))
	})

	t.Run("no signal at all yields empty result", func(t *testing.T) {
		result := FractionalAllocate(FractionalAllocateInput{
			Events: []domain.ConversionEvent{
				{EventID: uuid.New(), Revenue: 50, OccurredAt: day},
			},
		})
		require.Empty(t, result.Orders)
		require.Empty(t, result.Credits)
	})

	t.Run("credits sum to 1", func(t *testing.T) {
		result := FractionalAllocate(FractionalAllocateInput{
			Events: []domain.ConversionEvent{
				{EventID: uuid.New(), Revenue: 10, OccurredAt: day},
				{EventID: uuid.New(), Revenue: 20, OccurredAt: day.AddDate(0, 0, 1)},
			},
			Spend: []domain.DailyChannelSpend{
				{Date: day, Channel: "meta", Spend: 10},
				{Date: day, Channel: "google", Spend: 30},
				{Date: day.AddDate(0, 0, 1), Channel: "meta", Spend: 40},
			},
		})

		sum := 0.0
		for _, c := range result.Credits {
			sum += c
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}
