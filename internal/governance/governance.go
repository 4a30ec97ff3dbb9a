package governance

import (
	"sync"

	"channelmix/internal/domain"

	"github.com/google/uuid"
)

// Version tags stamped onto every artifact so results can be traced
// back to the exact engine revision that produced them.
const (
	MTAVersion      = "mta_v2"
	MMMVersion      = "mmm_v1"
	DecisionVersion = "decision_v1"
)

// Versions returns the current model version tags as one bundle.
func Versions() domain.ModelVersions {
	return domain.ModelVersions{
		MTA:      MTAVersion,
		MMM:      MMMVersion,
		Decision: DecisionVersion,
	}
}

// NewRunID generates an opaque unique identifier for one engine run.
func NewRunID() string {
	return uuid.NewString()
}

// DefaultHistoryCap bounds the run-metadata audit trail.
const DefaultHistoryCap = 100

// RunHistory is a bounded, append-only record of recent runs. When
// full, the oldest entry is evicted first. Safe for concurrent use;
// purely for audit, never for control flow.
type RunHistory struct {
	mu      sync.Mutex
	cap     int
	entries []domain.RunMetadata
}

// NewRunHistory creates a history bounded at cap entries; a
// non-positive cap uses the default.
func NewRunHistory(cap int) *RunHistory {
	if cap <= 0 {
		cap = DefaultHistoryCap
	}
	return &RunHistory{cap: cap}
}

// Append records one run, evicting the oldest entry once the cap is
// reached.
func (h *RunHistory) Append(meta domain.RunMetadata) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, meta)
	if len(h.entries) > h.cap {
		h.entries = h.entries[len(h.entries)-h.cap:]
	}
}

// List returns a copy of the recorded runs, oldest first.
func (h *RunHistory) List() []domain.RunMetadata {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.RunMetadata, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports how many runs are currently retained.
func (h *RunHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
