package domain

import (
	"sort"
	"time"
)

// DailyChannelSpend is one row of the canonical spend/revenue time
// series: spend and attributed revenue for a single channel on a
// single day. Computed once per run and never mutated afterwards.
type DailyChannelSpend struct {
	Date    time.Time
	Channel string
	Spend   float64
	Revenue float64
}

// ChannelPerformance aggregates spend and revenue for one channel
// over a date window. Used by the threshold rule evaluator.
type ChannelPerformance struct {
	Channel string
	Spend   float64
	Revenue float64
}

// ROAS returns revenue over spend, or 0 when spend is 0.
func (p ChannelPerformance) ROAS() float64 {
	if p.Spend == 0 {
		return 0
	}
	return p.Revenue / p.Spend
}

// AggregatePerformance rolls daily rows up into per-channel totals,
// sorted by channel name.
func AggregatePerformance(rows []DailyChannelSpend) []ChannelPerformance {
	totals := map[string]*ChannelPerformance{}
	for _, r := range rows {
		p, ok := totals[r.Channel]
		if !ok {
			p = &ChannelPerformance{Channel: r.Channel}
			totals[r.Channel] = p
		}
		p.Spend += r.Spend
		p.Revenue += r.Revenue
	}

	out := make([]ChannelPerformance, 0, len(totals))
	for _, p := range totals {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Channel < out[j].Channel
	})
	return out
}

// SpendMatrix groups daily spend rows into a per-channel series
// aligned on a shared, sorted date axis. Missing (date, channel)
// cells are zero.
type SpendMatrix struct {
	Dates    []time.Time
	Channels []string
	// Spend[channel][i] is spend on Dates[i]
	Spend   map[string][]float64
	Revenue []float64
}

// NewSpendMatrix builds an aligned matrix from raw daily rows.
// Revenue is summed across channels per day.
func NewSpendMatrix(rows []DailyChannelSpend) SpendMatrix {
	dateSet := map[time.Time]bool{}
	channelSet := map[string]bool{}
	for _, r := range rows {
		dateSet[r.Date] = true
		channelSet[r.Channel] = true
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	channels := make([]string, 0, len(channelSet))
	for c := range channelSet {
		channels = append(channels, c)
	}
	sort.Strings(channels)

	dateIndex := map[time.Time]int{}
	for i, d := range dates {
		dateIndex[d] = i
	}

	spend := map[string][]float64{}
	for _, c := range channels {
		spend[c] = make([]float64, len(dates))
	}
	revenue := make([]float64, len(dates))

	for _, r := range rows {
		i := dateIndex[r.Date]
		spend[r.Channel][i] += r.Spend
		revenue[i] += r.Revenue
	}

	return SpendMatrix{
		Dates:    dates,
		Channels: channels,
		Spend:    spend,
		Revenue:  revenue,
	}
}
