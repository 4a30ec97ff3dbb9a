package attribution

import (
	"strconv"
	"strings"
	"time"

	"channelmix/internal/domain"
)

// AttributionWindow bounds how long before a conversion a touch still
// counts toward it.
type AttributionWindow struct {
	Click time.Duration
	View  time.Duration
}

// DefaultWindow is 30-day click, 1-day view.
func DefaultWindow() AttributionWindow {
	return AttributionWindow{
		Click: 30 * 24 * time.Hour,
		View:  1 * 24 * time.Hour,
	}
}

// ParseWindow reads a platform window setting string like
// "7d_click_1d_view". Tokens it cannot parse leave the corresponding
// default in place.
func ParseWindow(setting string) AttributionWindow {
	window := DefaultWindow()

	tokens := strings.Split(strings.ToLower(setting), "_")
	for i := 1; i < len(tokens); i++ {
		days, ok := parseDays(tokens[i-1])
		if !ok {
			continue
		}
		switch tokens[i] {
		case "click":
			window.Click = time.Duration(days) * 24 * time.Hour
		case "view":
			window.View = time.Duration(days) * 24 * time.Hour
		}
	}

	return window
}

func parseDays(token string) (int, bool) {
	if !strings.HasSuffix(token, "d") {
		return 0, false
	}
	days, err := strconv.Atoi(strings.TrimSuffix(token, "d"))
	if err != nil || days < 0 {
		return 0, false
	}
	return days, true
}

// FilterTouches drops touches whose gap to the conversion exceeds the
// window for their kind. Unknown kinds use the click window.
func (w AttributionWindow) FilterTouches(event domain.ConversionEvent) []domain.Touch {
	kept := make([]domain.Touch, 0, len(event.Touches))
	for _, t := range event.Touches {
		gap := event.OccurredAt.Sub(t.OccurredAt)
		if gap < 0 {
			continue
		}
		limit := w.Click
		if t.Kind == domain.TouchKind_View {
			limit = w.View
		}
		if gap <= limit {
			kept = append(kept, t)
		}
	}
	return kept
}

// FilterEvents applies the window to every event, returning copies
// with out-of-window touches removed.
func (w AttributionWindow) FilterEvents(events []domain.ConversionEvent) []domain.ConversionEvent {
	out := make([]domain.ConversionEvent, 0, len(events))
	for _, e := range events {
		filtered := e
		filtered.Touches = w.FilterTouches(e)
		out = append(out, filtered)
	}
	return out
}
