package attribution

import (
	"math"
	"math/rand"
	"strings"

	"channelmix/internal/domain"

	"github.com/montanaflynn/stats"
)

// DefaultNBoot is the default bootstrap resample count.
const DefaultNBoot = 500

// DefaultLagBucketCount caps the lag histogram: positions at or past
// the last bucket are folded into it.
const DefaultLagBucketCount = 15

// DiagnosticsOptions tunes the attribution diagnostics suite. Zero
// values fall back to defaults.
type DiagnosticsOptions struct {
	NBoot        int
	Seed         int64
	MinSequences int
	// Windows are path-truncation lengths for sensitivity analysis
	Windows []int
	// LagBucketCount bounds the position histogram of lagDistribution
	LagBucketCount int
}

func (o DiagnosticsOptions) withDefaults() DiagnosticsOptions {
	if o.NBoot <= 0 {
		o.NBoot = DefaultNBoot
	}
	if o.MinSequences <= 0 {
		o.MinSequences = DefaultMinSequences
	}
	if len(o.Windows) == 0 {
		o.Windows = []int{7, 14, 30}
	}
	if o.LagBucketCount <= 0 {
		o.LagBucketCount = DefaultLagBucketCount
	}
	return o
}

// RunDiagnostics computes the full diagnostics bundle for a set of
// conversion paths: path frequency, removal effects, bootstrap CI,
// lag distribution, window sensitivity and a [0,1] confidence score.
// Degenerate inputs produce zeroed diagnostics, never an error.
func RunDiagnostics(sequences [][]string, opts DiagnosticsOptions) domain.AttributionDiagnostics {
	opts = opts.withDefaults()

	diagnostics := domain.AttributionDiagnostics{
		PathFrequency:     pathFrequency(sequences),
		RemovalEffects:    map[string]float64{},
		BootstrapCI:       map[string]domain.BootstrapInterval{},
		WindowSensitivity: map[int]map[string]float64{},
	}

	if len(sequences) == 0 {
		return diagnostics
	}

	matrix := BuildTransitionMatrix(sequences)
	diagnostics.RemovalEffects = RemovalEffects(matrix)
	diagnostics.BootstrapCI = bootstrapCredits(sequences, matrix.Channels(), opts)
	diagnostics.LagDistribution = lagDistribution(sequences, opts.LagBucketCount)

	for _, n := range opts.Windows {
		diagnostics.WindowSensitivity[n] = windowCredits(sequences, n, opts.MinSequences)
	}

	diagnostics.ConfidenceScore = confidenceScore(sequences, diagnostics.BootstrapCI)

	return diagnostics
}

func pathFrequency(sequences [][]string) map[string]int {
	freq := map[string]int{}
	for _, seq := range sequences {
		if len(seq) == 0 {
			continue
		}
		freq[strings.Join(seq, ">")]++
	}
	return freq
}

// bootstrapCredits resamples paths with replacement and recomputes
// Markov credit per resample. Resamples too sparse for a Markov
// estimate use a uniform credit split rather than being dropped.
func bootstrapCredits(sequences [][]string, channels []string, opts DiagnosticsOptions) map[string]domain.BootstrapInterval {
	if len(channels) == 0 {
		return map[string]domain.BootstrapInterval{}
	}

	nBoot := adaptiveNBoot(opts.NBoot, len(sequences))
	rng := rand.New(rand.NewSource(opts.Seed))

	samples := make(map[string][]float64, len(channels))
	for _, ch := range channels {
		samples[ch] = make([]float64, 0, nBoot)
	}

	resample := make([][]string, len(sequences))
	for b := 0; b < nBoot; b++ {
		for i := range resample {
			resample[i] = sequences[rng.Intn(len(sequences))]
		}

		credits := MarkovCredits(resample, opts.MinSequences)
		if credits == nil {
			credits = uniformCredits(channels)
		}
		for _, ch := range channels {
			samples[ch] = append(samples[ch], credits[ch])
		}
	}

	intervals := make(map[string]domain.BootstrapInterval, len(channels))
	for _, ch := range channels {
		intervals[ch] = summarizeSamples(samples[ch])
	}
	return intervals
}

// adaptiveNBoot trims the resample count at the extremes: tiny inputs
// cannot support many distinct resamples, huge ones make the full
// count needlessly slow.
func adaptiveNBoot(nBoot, sampleCount int) int {
	switch {
	case sampleCount < 30:
		return minInt(nBoot, 100)
	case sampleCount > 2000:
		return minInt(nBoot, 200)
	default:
		return nBoot
	}
}

func summarizeSamples(samples []float64) domain.BootstrapInterval {
	if len(samples) == 0 {
		return domain.BootstrapInterval{}
	}

	low, err := stats.Percentile(samples, 2.5)
	if err != nil {
		low = samples[0]
	}
	high, err := stats.Percentile(samples, 97.5)
	if err != nil {
		high = samples[0]
	}
	mean, err := stats.Mean(samples)
	if err != nil {
		mean = samples[0]
	}
	variance, err := stats.Variance(samples)
	if err != nil {
		variance = 0
	}

	return domain.BootstrapInterval{Low: low, Mean: mean, High: high, Variance: variance}
}

func lagDistribution(sequences [][]string, bucketCount int) domain.LagDistribution {
	positionCounts := map[int]int{}
	totalTouches := 0
	firstTouches := 0
	lastTouches := 0

	for _, seq := range sequences {
		for i := range seq {
			positionCounts[minInt(i, bucketCount-1)]++
			totalTouches++
			if i == 0 {
				firstTouches++
			}
			if i == len(seq)-1 {
				lastTouches++
			}
		}
	}

	dist := domain.LagDistribution{PositionCounts: positionCounts}
	if totalTouches > 0 {
		dist.FirstTouchShare = float64(firstTouches) / float64(totalTouches)
		dist.LastTouchShare = float64(lastTouches) / float64(totalTouches)
	}
	return dist
}

// windowCredits recomputes credits after truncating every path to its
// first n touches.
func windowCredits(sequences [][]string, n, minSequences int) map[string]float64 {
	truncated := make([][]string, len(sequences))
	for i, seq := range sequences {
		if len(seq) > n {
			truncated[i] = seq[:n]
		} else {
			truncated[i] = seq
		}
	}

	credits := MarkovCredits(truncated, minSequences)
	if credits == nil {
		// uniformCredits yields an empty map when the truncated set
		// has no channels at all
		credits = uniformCredits(BuildTransitionMatrix(truncated).Channels())
	}
	return credits
}

// confidenceScore blends bootstrap variance, path volume, and
// conversion density into a single [0,1] score. Zero paths scores 0.
func confidenceScore(sequences [][]string, intervals map[string]domain.BootstrapInterval) float64 {
	totalPaths := 0
	totalTouches := 0
	for _, seq := range sequences {
		if len(seq) == 0 {
			continue
		}
		totalPaths++
		totalTouches += len(seq)
	}
	if totalPaths == 0 {
		return 0
	}

	meanVariance := 0.0
	if len(intervals) > 0 {
		for _, iv := range intervals {
			meanVariance += iv.Variance
		}
		meanVariance /= float64(len(intervals))
	}

	volumeScore := math.Min(1, math.Log1p(float64(totalPaths))/10)

	// density rewards concentrated paths: one conversion per touch
	// scores 1, long meandering paths score lower
	density := clamp01(float64(totalPaths) / float64(totalTouches))

	return clamp01((1 - meanVariance) * volumeScore * density)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
