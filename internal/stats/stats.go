// Package stats computes simple best/mean/std summaries, used to
// report how consistently the GA islands performed across a run.
package stats

import (
	"math"

	"github.com/samber/lo"
)

// IntStats summarises a sample of integer observations (e.g. each
// island's evaluation count or generation count).
type IntStats struct {
	N    int
	Best int
	Mean float64
	Std  float64
}

// Summarize computes IntStats over values. Best is the minimum value,
// matching this repository's minimisation convention.
func Summarize(values []int) IntStats {
	s := IntStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	s.Best = lo.Min(values)
	sum := lo.SumBy(values, func(v int) int { return v })
	mean := float64(sum) / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		sqDiffSum := lo.SumBy(values, func(v int) float64 {
			d := float64(v) - mean
			return d * d
		})
		variance = sqDiffSum / float64(s.N-1)
	}

	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}
