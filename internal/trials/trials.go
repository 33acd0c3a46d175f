// Package trials runs repeated sampling and shuffling rounds for the verify
// and bench commands and for statistical tests.
package trials

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/internal/stats"
	"github.com/ggardner42/card-server/sample"
	"github.com/ggardner42/card-server/shuffle"
)

// PoolFactory returns a fresh entropy pool for one worker. Workers never
// share a pool, so bit consumption needs no locking.
type PoolFactory func() (*entropy.Pool, error)

// Options configure a uniformity or permutation run.
type Options struct {
	Trials  int // total rounds across all workers
	Workers int // 0 means one per CPU
}

// Result holds merged counts from a run and their goodness of fit.
type Result struct {
	Counts []uint64       // observations per bucket
	Bits   uint64         // total entropy bits consumed
	ChiSq  stats.ChiSquare // fit of Counts against uniform
}

func (o Options) workers() int {
	w := o.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > o.Trials {
		w = 1
	}
	return w
}

// run fans opts.Trials rounds out over workers. Each worker gets its own
// sampler and a bucket-count slice; round fills one bucket per call.
func run(ctx context.Context, newPool PoolFactory, opts Options, buckets int, round func(*sample.Sampler, []uint64) error) (*Result, error) {
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", opts.Trials)
	}

	workers := opts.workers()
	counts := make([][]uint64, workers)
	bits := make([]uint64, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := opts.Trials / workers
		if w < opts.Trials%workers {
			n++
		}
		g.Go(func() error {
			pool, err := newPool()
			if err != nil {
				return err
			}
			smp := sample.New(pool)
			mine := make([]uint64, buckets)
			for t := 0; t < n; t++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := round(smp, mine); err != nil {
					return err
				}
			}
			counts[w] = mine
			bits[w] = pool.BitsRead()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Counts: make([]uint64, buckets)}
	for w := 0; w < workers; w++ {
		for i, c := range counts[w] {
			res.Counts[i] += c
		}
		res.Bits += bits[w]
	}
	res.ChiSq = stats.Uniform(res.Counts)
	return res, nil
}

// RunUniformity draws opts.Trials samples in [0, max) across parallel
// workers and tests the counts against uniform.
func RunUniformity(ctx context.Context, newPool PoolFactory, max uint32, opts Options) (*Result, error) {
	if max == 0 {
		return nil, fmt.Errorf("max must be positive")
	}
	if max > 1<<31 {
		return nil, fmt.Errorf("max must not exceed %d, got %d", uint32(1)<<31, max)
	}
	return run(ctx, newPool, opts, int(max), func(smp *sample.Sampler, counts []uint64) error {
		v, err := smp.Uint32n(max)
		if err != nil {
			return err
		}
		counts[v]++
		return nil
	})
}

// RunPermutations shuffles the sequence 0..n-1 opts.Trials times and counts
// each resulting permutation. Only sensible for small n; n above 8 is
// refused to keep the n! bucket table bounded.
func RunPermutations(ctx context.Context, newPool PoolFactory, n int, opts Options) (*Result, error) {
	if n < 1 || n > 8 {
		return nil, fmt.Errorf("sequence length must be in [1, 8], got %d", n)
	}
	return run(ctx, newPool, opts, factorial(n), func(smp *sample.Sampler, counts []uint64) error {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i
		}
		if err := shuffle.Slice(seq, smp); err != nil {
			return err
		}
		counts[PermIndex(seq)]++
		return nil
	})
}

// PermIndex returns the Lehmer code rank of a permutation of 0..n-1, a
// unique index in [0, n!).
func PermIndex(seq []int) int {
	idx := 0
	for i := 0; i < len(seq); i++ {
		smaller := 0
		for j := i + 1; j < len(seq); j++ {
			if seq[j] < seq[i] {
				smaller++
			}
		}
		idx = idx*(len(seq)-i) + smaller
	}
	return idx
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
