package domain

// ChannelReconciliation measures how far the two attribution systems
// disagree on one channel's contribution share.
type ChannelReconciliation struct {
	MTAShare float64
	MMMShare float64
	DeltaPct float64
	Conflict bool
}

// ReconciliationResult is derived on demand from an attribution result
// and a mix-model result; it is never persisted independently of the
// decision it supports.
type ReconciliationResult struct {
	Channels              map[string]ChannelReconciliation
	OverallAlignmentScore float64
	AlignmentConfidence   float64
}
