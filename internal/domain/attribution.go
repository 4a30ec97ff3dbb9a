package domain

import "time"

type AttributionMethod string

const (
	AttributionMethod_Markov     AttributionMethod = "markov"
	AttributionMethod_Fractional AttributionMethod = "fractional"
)

// BootstrapInterval summarizes the resampled distribution of a single
// statistic: 2.5th percentile, mean, 97.5th percentile and variance.
type BootstrapInterval struct {
	Low      float64
	Mean     float64
	High     float64
	Variance float64
}

// LagDistribution is a histogram of where touches fall within paths.
type LagDistribution struct {
	// PositionCounts[i] is how many touches occurred at index i
	// across all paths
	PositionCounts  map[int]int
	FirstTouchShare float64
	LastTouchShare  float64
}

// AttributionDiagnostics bundles every sanity check we run alongside
// an attribution pass. All scores in it are clamped to [0,1].
type AttributionDiagnostics struct {
	// PathFrequency maps the ">"-joined path to its occurrence count
	PathFrequency     map[string]int
	RemovalEffects    map[string]float64
	BootstrapCI       map[string]BootstrapInterval
	LagDistribution   LagDistribution
	WindowSensitivity map[int]map[string]float64
	ConfidenceScore   float64
}

// AttributionResult maps each channel to its contribution share.
// Shares sum to 1 across channels within one run. Immutable once
// created; keyed by run id.
type AttributionResult struct {
	RunID        string
	Method       AttributionMethod
	Credits      map[string]float64
	Diagnostics  AttributionDiagnostics
	ModelVersion string
	CreatedAt    time.Time
}
