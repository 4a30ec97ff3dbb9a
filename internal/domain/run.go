package domain

import "time"

// RunMetadata records one engine run for audit. Append-only; never
// used for control flow.
type RunMetadata struct {
	RunID          string
	Timestamp      time.Time
	MTAVersion     string
	MMMVersion     string
	DataSnapshotID string
}
