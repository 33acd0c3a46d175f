package main

import (
	"context"
	"fmt"

	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/internal/config"
	"github.com/ggardner42/card-server/internal/trials"
)

// VerifyCmd draws many samples from the live entropy source and chi-square
// tests the results against a uniform distribution.
type VerifyCmd struct {
	Max       uint32  `help:"Upper bound of the sample range (0 = config default)"`
	Trials    int     `help:"Total samples to draw (0 = config default)"`
	Workers   int     `help:"Parallel workers (0 = one per CPU)"`
	Perms     int     `help:"Also check permutation frequencies for sequences of this length (0 = off)"`
	Threshold float64 `help:"Reject uniformity below this p-value" default:"0.001"`
	Config    string  `help:"Path to HCL config file" type:"path"`
	Debug     bool    `help:"Enable debug logging"`
}

func (c *VerifyCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	max := c.Max
	if max == 0 {
		max = uint32(cfg.Verify.Max)
	}
	n := c.Trials
	if n == 0 {
		n = cfg.Verify.Trials
	}
	workers := c.Workers
	if workers == 0 {
		workers = cfg.Verify.Workers
	}

	// Every worker opens its own source so no pool is shared between
	// goroutines.
	newPool := func() (*entropy.Pool, error) {
		src, err := entropy.Open(cfg.Source.Path)
		if err != nil {
			return nil, err
		}
		return entropy.NewPool(src, entropy.WithBlockSize(cfg.Source.BlockSize)), nil
	}
	opts := trials.Options{Trials: n, Workers: workers}

	res, err := trials.RunUniformity(context.Background(), newPool, max, opts)
	if err != nil {
		return err
	}
	logger.Info().
		Uint32("max", max).
		Int("trials", n).
		Float64("chi_square", res.ChiSq.Statistic).
		Int("df", res.ChiSq.DF).
		Float64("p_value", res.ChiSq.PValue).
		Uint64("bits", res.Bits).
		Msg("sample uniformity")
	if res.ChiSq.PValue < c.Threshold {
		return fmt.Errorf("sample distribution failed uniformity check: p=%.6f < %.6f", res.ChiSq.PValue, c.Threshold)
	}

	if c.Perms > 1 {
		res, err := trials.RunPermutations(context.Background(), newPool, c.Perms, opts)
		if err != nil {
			return err
		}
		logger.Info().
			Int("length", c.Perms).
			Int("permutations", len(res.Counts)).
			Float64("chi_square", res.ChiSq.Statistic).
			Float64("p_value", res.ChiSq.PValue).
			Msg("permutation uniformity")
		if res.ChiSq.PValue < c.Threshold {
			return fmt.Errorf("permutation distribution failed uniformity check: p=%.6f < %.6f", res.ChiSq.PValue, c.Threshold)
		}
	}

	logger.Info().Msg("uniformity checks passed")
	return nil
}
