// Package stats provides the goodness-of-fit checks used to validate that
// samples and shuffles are uniform.
package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquare summarises a chi-square goodness-of-fit test of observed bucket
// counts against a uniform expectation.
type ChiSquare struct {
	Statistic float64 // sum of (observed-expected)^2 / expected
	DF        int     // degrees of freedom (buckets - 1)
	PValue    float64 // probability of a statistic at least this large under uniformity
}

// Uniform tests observed counts against a uniform distribution over
// len(observed) buckets. Fewer than two buckets, or no observations at all,
// trivially pass with a p-value of 1.
func Uniform(observed []uint64) ChiSquare {
	if len(observed) < 2 {
		return ChiSquare{PValue: 1}
	}

	var total uint64
	for _, o := range observed {
		total += o
	}
	if total == 0 {
		return ChiSquare{DF: len(observed) - 1, PValue: 1}
	}

	expected := float64(total) / float64(len(observed))
	var x2 float64
	for _, o := range observed {
		d := float64(o) - expected
		x2 += d * d / expected
	}

	df := len(observed) - 1
	dist := distuv.ChiSquared{K: float64(df)}
	return ChiSquare{Statistic: x2, DF: df, PValue: dist.Survival(x2)}
}
