package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_NewSpendMatrix(t *testing.T) {
	d1 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	t.Run("aligns channels on a shared date axis", func(t *testing.T) {
		matrix := NewSpendMatrix([]DailyChannelSpend{
			{Date: d2, Channel: "meta", Spend: 10, Revenue: 40},
			{Date: d1, Channel: "google", Spend: 5, Revenue: 15},
			{Date: d1, Channel: "meta", Spend: 20, Revenue: 60},
		})

		require.Equal(t, []time.Time{d1, d2}, matrix.Dates)
		require.Equal(t, []string{"google", "meta"}, matrix.Channels)
		require.Equal(t, []float64{20, 10}, matrix.Spend["meta"])
		// google has no spend on d2
		require.Equal(t, []float64{5, 0}, matrix.Spend["google"])
		// revenue sums across channels per day
		require.Equal(t, []float64{75, 40}, matrix.Revenue)
	})

	t.Run("empty rows produce an empty matrix", func(t *testing.T) {
		matrix := NewSpendMatrix(nil)
		require.Empty(t, matrix.Dates)
		require.Empty(t, matrix.Channels)
	})
}

func Test_AggregatePerformance(t *testing.T) {
	d := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	out := AggregatePerformance([]DailyChannelSpend{
		{Date: d, Channel: "meta", Spend: 100, Revenue: 300},
		{Date: d.AddDate(0, 0, 1), Channel: "meta", Spend: 50, Revenue: 150},
		{Date: d, Channel: "google", Spend: 80, Revenue: 40},
	})

	require.Len(t, out, 2)
	require.Equal(t, "google", out[0].Channel)
	require.Equal(t, "meta", out[1].Channel)
	require.Equal(t, 150.0, out[1].Spend)
	require.Equal(t, 450.0, out[1].Revenue)
	require.Equal(t, 3.0, out[1].ROAS())
}

func Test_ROAS(t *testing.T) {
	require.Equal(t, 0.0, ChannelPerformance{Channel: "meta"}.ROAS())
	require.Equal(t, 2.5, ChannelPerformance{Channel: "meta", Spend: 100, Revenue: 250}.ROAS())
}
