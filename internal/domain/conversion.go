package domain

import (
	"time"

	"github.com/google/uuid"
)

type TouchKind string

const (
	TouchKind_Click TouchKind = "click"
	TouchKind_View  TouchKind = "view"
)

// Touch is a single marketing interaction on a conversion path.
type Touch struct {
	Channel    string
	Kind       TouchKind
	OccurredAt time.Time
}

// ConversionEvent is one converting order together with its ordered
// touch history. Touches are sorted by occurrence time, earliest
// first; the sequence is constructed once per run and never mutated.
type ConversionEvent struct {
	EventID    uuid.UUID
	Revenue    float64
	OccurredAt time.Time
	Touches    []Touch
}

// Path returns the ordered channel labels of the event's touches.
func (e ConversionEvent) Path() []string {
	path := make([]string, 0, len(e.Touches))
	for _, t := range e.Touches {
		path = append(path, t.Channel)
	}
	return path
}
