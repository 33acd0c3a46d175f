package main

import (
	"github.com/coder/quartz"

	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/internal/config"
	"github.com/ggardner42/card-server/internal/trials"
)

// BenchCmd measures shuffle throughput and the entropy cost per shuffle.
type BenchCmd struct {
	Length   int    `help:"Sequence length to shuffle" default:"52"`
	Shuffles int    `help:"Number of shuffles to run" default:"10000"`
	Config   string `help:"Path to HCL config file" type:"path"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *BenchCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	src, err := entropy.Open(cfg.Source.Path)
	if err != nil {
		return err
	}
	pool := entropy.NewPool(src, entropy.WithBlockSize(cfg.Source.BlockSize))

	res, err := trials.RunBench(quartz.NewReal(), pool, c.Length, c.Shuffles)
	if err != nil {
		return err
	}

	logger.Info().
		Int("length", res.Length).
		Int("shuffles", res.Shuffles).
		Dur("elapsed", res.Elapsed).
		Float64("per_second", res.PerSecond).
		Uint64("bits", res.Bits).
		Float64("bits_per_shuffle", res.BitsPerShuffle).
		Msg("bench complete")
	return nil
}
