package domain

import "time"

type SaturationKind string

const (
	SaturationKind_Log  SaturationKind = "log"
	SaturationKind_Hill SaturationKind = "hill"
)

type RegressionMethod string

const (
	RegressionMethod_Ridge         RegressionMethod = "ridge"
	RegressionMethod_Lasso         RegressionMethod = "lasso"
	RegressionMethod_RidgeFallback RegressionMethod = "ridge_fallback"
)

// ResponseCurve fully determines a channel's spend → incremental
// revenue function: carryover half-life, saturation form and
// parameters, and the fitted coefficient. Owned by the mix-model
// engine; the optimizer and simulator consume it read-only.
type ResponseCurve struct {
	HalfLife           float64
	Saturation         SaturationKind
	HillAlpha          float64
	HillHalfSaturation float64
	Coefficient        float64
}

// ChannelEffect is the fitted per-channel output of one mix-model run.
type ChannelEffect struct {
	Coefficient float64
	CI          BootstrapInterval
	Elasticity  float64
	VIF         float64
}

// MixModelResult is the full output of one regression fit. Immutable
// once created; keyed by run id.
type MixModelResult struct {
	RunID           string
	Method          RegressionMethod
	Alpha           float64
	Channels        []string
	Effects         map[string]ChannelEffect
	Curves          map[string]ResponseCurve
	R2              float64
	AdjustedR2      float64
	MAPE            float64
	StabilityIndex  float64
	ConfidenceScore float64
	ModelVersion    string
	CreatedAt       time.Time
}
