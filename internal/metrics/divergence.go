// Package metrics provides the statistical primitives of the explorer:
// smoothed KL divergence between answer distributions, normalized entropy,
// and small helpers over score slices.
package metrics

import (
	"math"
	"sort"

	"github.com/pitehu/simbench/internal/models"
)

// Epsilon is the smoothing constant applied to both distributions so that
// missing or zero probabilities never produce a singular log.
const Epsilon = 1e-10

// KLDivergence computes the smoothed Kullback-Leibler divergence from the
// reference distribution p to the comparison distribution q.
//
// Only keys present in p contribute; keys that appear only in q are ignored.
// A key missing from q is treated as probability 0. Entries with p[k] == 0
// contribute nothing. The result is clamped to a minimum of 0, since the
// per-key smoothing can leave a small negative sum behind.
//
// Neither distribution is normalized here. The function is well-defined for
// arbitrary non-negative mappings and never fails; an empty p yields 0.
//
// Keys are summed in sorted order so the same inputs always produce the
// same floating-point result regardless of map iteration order.
func KLDivergence(p, q models.Distribution) float64 {
	kl := 0.0
	for _, key := range sortedKeys(p) {
		pv := p[key]
		if pv <= 0 {
			continue
		}
		qv := q[key]
		kl += pv * math.Log((pv+Epsilon)/(qv+Epsilon))
	}
	return math.Max(0, kl)
}

// NormalizedEntropy computes the Shannon entropy of a distribution divided by
// the maximum entropy for its support size, yielding a value in [0, 1].
// Distributions with fewer than two options have entropy 0.
func NormalizedEntropy(d models.Distribution) float64 {
	n := len(d)
	if n <= 1 {
		return 0
	}
	entropy := 0.0
	for _, key := range sortedKeys(d) {
		if p := d[key]; p > 0 {
			entropy -= p * math.Log(p)
		}
	}
	return entropy / math.Log(float64(n))
}

func sortedKeys(d models.Distribution) []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
