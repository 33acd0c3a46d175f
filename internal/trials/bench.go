package trials

import (
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/sample"
	"github.com/ggardner42/card-server/shuffle"
)

// BenchResult reports shuffle throughput and entropy cost. BitsPerShuffle
// is the figure of merit for entropy conservation: a length-52 shuffle needs
// at least ~226 bits of entropy (log2(52!)), and the sampler should stay
// close to that floor.
type BenchResult struct {
	Shuffles       int
	Length         int
	Elapsed        time.Duration
	Bits           uint64
	BitsPerShuffle float64
	PerSecond      float64
}

// RunBench shuffles a length-n sequence the given number of times against
// pool and measures elapsed time on clock. The clock is injectable so tests
// can control time (quartz.NewReal for production use).
func RunBench(clock quartz.Clock, pool *entropy.Pool, n, shuffles int) (*BenchResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("sequence length must be positive, got %d", n)
	}
	if shuffles < 1 {
		return nil, fmt.Errorf("shuffle count must be positive, got %d", shuffles)
	}

	smp := sample.New(pool)
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	start := clock.Now()
	for i := 0; i < shuffles; i++ {
		if err := shuffle.Slice(seq, smp); err != nil {
			return nil, err
		}
	}
	elapsed := clock.Now().Sub(start)

	res := &BenchResult{
		Shuffles:       shuffles,
		Length:         n,
		Elapsed:        elapsed,
		Bits:           pool.BitsRead(),
		BitsPerShuffle: float64(pool.BitsRead()) / float64(shuffles),
	}
	if elapsed > 0 {
		res.PerSecond = float64(shuffles) / elapsed.Seconds()
	}
	return res, nil
}
