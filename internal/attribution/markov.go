package attribution

import (
	"math"
	"sort"
)

const (
	startState = "__start__"
	endState   = "__end__"

	// convergenceTolerance bounds the early exit of the reachability
	// power iteration.
	convergenceTolerance = 1e-9
)

// DefaultMinSequences is the minimum number of conversion paths we
// require before trusting Markov removal-effect estimates.
const DefaultMinSequences = 10

// TransitionMatrix holds transition counts over the state space
// {channels ∪ start ∪ end} built from conversion paths.
type TransitionMatrix struct {
	States []string
	Index  map[string]int
	Counts [][]float64
}

// BuildTransitionMatrix counts state transitions across the given
// paths. Start transitions into each path's first touch; each path's
// last touch transitions into the end state.
func BuildTransitionMatrix(sequences [][]string) *TransitionMatrix {
	channelSet := map[string]bool{}
	for _, seq := range sequences {
		for _, ch := range seq {
			channelSet[ch] = true
		}
	}

	channels := make([]string, 0, len(channelSet))
	for ch := range channelSet {
		channels = append(channels, ch)
	}
	sort.Strings(channels)

	states := append([]string{startState}, channels...)
	states = append(states, endState)

	index := map[string]int{}
	for i, s := range states {
		index[s] = i
	}

	n := len(states)
	counts := make([][]float64, n)
	for i := range counts {
		counts[i] = make([]float64, n)
	}

	for _, seq := range sequences {
		if len(seq) == 0 {
			continue
		}
		counts[index[startState]][index[seq[0]]]++
		for i := 1; i < len(seq); i++ {
			counts[index[seq[i-1]]][index[seq[i]]]++
		}
		counts[index[seq[len(seq)-1]]][index[endState]]++
	}

	return &TransitionMatrix{States: states, Index: index, Counts: counts}
}

// Probabilities row-normalizes the count matrix. Rows with a zero sum
// stay all-zero rather than dividing by zero. The end state is
// absorbing.
func (m *TransitionMatrix) Probabilities() [][]float64 {
	n := len(m.States)
	probs := make([][]float64, n)
	for i := range probs {
		probs[i] = make([]float64, n)
		rowSum := 0.0
		for j := range m.Counts[i] {
			rowSum += m.Counts[i][j]
		}
		if rowSum == 0 {
			continue
		}
		for j := range m.Counts[i] {
			probs[i][j] = m.Counts[i][j] / rowSum
		}
	}
	probs[m.Index[endState]] = make([]float64, n)
	probs[m.Index[endState]][m.Index[endState]] = 1
	return probs
}

// Channels returns the channel states, excluding start and end.
func (m *TransitionMatrix) Channels() []string {
	return m.States[1 : len(m.States)-1]
}

// MarkovCredits computes each channel's contribution share as its
// normalized removal effect. Returns nil when fewer than minSequences
// paths are available; Markov estimates are unreliable on sparse data
// and the caller should fall back to fractional allocation.
func MarkovCredits(sequences [][]string, minSequences int) map[string]float64 {
	if minSequences <= 0 {
		minSequences = DefaultMinSequences
	}
	if len(sequences) < minSequences {
		return nil
	}

	matrix := BuildTransitionMatrix(sequences)
	return creditsFromMatrix(matrix)
}

func creditsFromMatrix(matrix *TransitionMatrix) map[string]float64 {
	channels := matrix.Channels()
	if len(channels) == 0 {
		return nil
	}

	effects := RemovalEffects(matrix)

	total := 0.0
	for _, e := range effects {
		total += e
	}
	if total <= 0 {
		// zero signal, split credit evenly
		return uniformCredits(channels)
	}

	credits := make(map[string]float64, len(effects))
	for ch, e := range effects {
		credits[ch] = e / total
	}
	return credits
}

// RemovalEffects computes 1 − P(reach end without channel) for every
// channel in the matrix.
func RemovalEffects(matrix *TransitionMatrix) map[string]float64 {
	probs := matrix.Probabilities()
	effects := map[string]float64{}
	for _, ch := range matrix.Channels() {
		removed := removeState(probs, matrix.Index[ch])
		pEnd := reachEndProbability(removed, matrix.Index[startState], matrix.Index[endState])
		effects[ch] = 1 - pEnd
	}
	return effects
}

// removeState zeroes the given state's row and column and
// renormalizes the remaining rows. Rows that lose all their mass stay
// zero, which makes them dead ends in the reachability solve.
func removeState(probs [][]float64, idx int) [][]float64 {
	n := len(probs)
	out := make([][]float64, n)
	for i := range probs {
		out[i] = make([]float64, n)
		if i == idx {
			continue
		}
		rowSum := 0.0
		for j := range probs[i] {
			if j == idx {
				continue
			}
			rowSum += probs[i][j]
		}
		if rowSum == 0 {
			continue
		}
		for j := range probs[i] {
			if j == idx {
				continue
			}
			out[i][j] = probs[i][j] / rowSum
		}
	}
	return out
}

// reachEndProbability solves for the probability that a walk started
// at startIdx is absorbed at endIdx, via repeated application of the
// transition matrix to the state distribution. The iteration count is
// capped at 2×(n+1); an early exit fires once the distribution stops
// moving. Explicit iteration keeps the behavior bounded and testable.
func reachEndProbability(probs [][]float64, startIdx, endIdx int) float64 {
	n := len(probs)
	dist := make([]float64, n)
	dist[startIdx] = 1

	maxIterations := 2 * (n + 1)
	for iter := 0; iter < maxIterations; iter++ {
		next := make([]float64, n)
		for i := range dist {
			if dist[i] == 0 {
				continue
			}
			for j := range probs[i] {
				next[j] += dist[i] * probs[i][j]
			}
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - dist[i])
		}
		dist = next
		if delta < convergenceTolerance {
			break
		}
	}

	return dist[endIdx]
}

func uniformCredits(channels []string) map[string]float64 {
	credits := make(map[string]float64, len(channels))
	for _, ch := range channels {
		credits[ch] = 1 / float64(len(channels))
	}
	return credits
}
