package attribution

import (
	"sort"
	"time"

	"channelmix/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderAllocation is one order's revenue split across channels. The
// per-channel amounts always sum exactly to the order's revenue.
type OrderAllocation struct {
	EventID   uuid.UUID
	ByChannel map[string]decimal.Decimal
}

// FractionalResult is the output of the fallback allocator.
type FractionalResult struct {
	Orders []OrderAllocation
	// Revenue is the aggregate allocated amount per channel
	Revenue map[string]decimal.Decimal
	// Credits is Revenue normalized to shares summing to 1
	Credits map[string]float64
}

// FractionalAllocateInput carries orders plus whatever weighting
// signal the caller has. Explicit weights, when supplied, override
// spend-share weighting for every order.
type FractionalAllocateInput struct {
	Events  []domain.ConversionEvent
	Spend   []domain.DailyChannelSpend
	Weights map[string]float64
}

// FractionalAllocate splits each order's revenue across channels in
// proportion to that day's channel spend share, or the caller's
// explicit weights renormalized to sum 1. Used whenever Markov credit
// is unavailable, or always when explicit weights are supplied.
func FractionalAllocate(in FractionalAllocateInput) FractionalResult {
	spendByDay := map[time.Time]map[string]float64{}
	allChannels := map[string]bool{}
	for _, s := range in.Spend {
		day := truncateToDay(s.Date)
		if _, ok := spendByDay[day]; !ok {
			spendByDay[day] = map[string]float64{}
		}
		spendByDay[day][s.Channel] += s.Spend
		allChannels[s.Channel] = true
	}

	result := FractionalResult{
		Orders:  []OrderAllocation{},
		Revenue: map[string]decimal.Decimal{},
		Credits: map[string]float64{},
	}

	for _, event := range in.Events {
		weights := orderWeights(event, spendByDay, allChannels, in.Weights)
		if len(weights) == 0 {
			continue
		}

		allocation := splitRevenue(event, weights)
		result.Orders = append(result.Orders, allocation)
		for ch, amount := range allocation.ByChannel {
			result.Revenue[ch] = result.Revenue[ch].Add(amount)
		}
	}

	total := decimal.Zero
	for _, amount := range result.Revenue {
		total = total.Add(amount)
	}
	if total.IsPositive() {
		for ch, amount := range result.Revenue {
			result.Credits[ch] = amount.Div(total).InexactFloat64()
		}
	}

	return result
}

// orderWeights resolves the weighting for one order: explicit caller
// weights, else the conversion day's spend share, else a uniform
// split across the order's own touched channels, else a uniform split
// across all known channels.
func orderWeights(
	event domain.ConversionEvent,
	spendByDay map[time.Time]map[string]float64,
	allChannels map[string]bool,
	explicit map[string]float64,
) map[string]float64 {
	if len(explicit) > 0 {
		return normalizeWeights(explicit)
	}

	if daySpend, ok := spendByDay[truncateToDay(event.OccurredAt)]; ok {
		if w := normalizeWeights(daySpend); len(w) > 0 {
			return w
		}
	}

	touched := map[string]float64{}
	for _, t := range event.Touches {
		touched[t.Channel] = 1
	}
	if len(touched) > 0 {
		return normalizeWeights(touched)
	}

	uniform := map[string]float64{}
	for ch := range allChannels {
		uniform[ch] = 1
	}
	return normalizeWeights(uniform)
}

func normalizeWeights(raw map[string]float64) map[string]float64 {
	total := 0.0
	for _, w := range raw {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return nil
	}
	normalized := make(map[string]float64, len(raw))
	for ch, w := range raw {
		if w > 0 {
			normalized[ch] = w / total
		}
	}
	return normalized
}

// splitRevenue allocates the order's revenue by weight. The final
// channel receives the remainder so the amounts conserve the order's
// revenue exactly, with no rounding drift.
func splitRevenue(event domain.ConversionEvent, weights map[string]float64) OrderAllocation {
	revenue := decimal.NewFromFloat(event.Revenue)

	channels := make([]string, 0, len(weights))
	for ch := range weights {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	byChannel := make(map[string]decimal.Decimal, len(channels))
	allocated := decimal.Zero
	for i, ch := range channels {
		if i == len(channels)-1 {
			byChannel[ch] = revenue.Sub(allocated)
			break
		}
		amount := revenue.Mul(decimal.NewFromFloat(weights[ch])).Round(6)
		byChannel[ch] = amount
		allocated = allocated.Add(amount)
	}

	return OrderAllocation{EventID: event.EventID, ByChannel: byChannel}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
