package main

import (
	"fmt"

	"github.com/ggardner42/card-server/deck"
	"github.com/ggardner42/card-server/entropy"
	"github.com/ggardner42/card-server/internal/config"
	"github.com/ggardner42/card-server/internal/display"
	"github.com/ggardner42/card-server/sample"
)

// ShuffleCmd shuffles a deck and prints the before and after orders.
type ShuffleCmd struct {
	Count  int    `help:"Number of times to shuffle" default:"1"`
	Plain  bool   `help:"Disable colored output"`
	Config string `help:"Path to HCL config file" type:"path"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ShuffleCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	src, err := entropy.Open(cfg.Source.Path)
	if err != nil {
		return err
	}
	pool := entropy.NewPool(src, entropy.WithBlockSize(cfg.Source.BlockSize))

	d := deck.New(sample.New(pool))
	r := display.NewRenderer(c.Plain)

	fmt.Println("Original deck:")
	fmt.Println(r.Deck(d.Cards()))

	for i := 0; i < c.Count; i++ {
		if err := d.Shuffle(); err != nil {
			return fmt.Errorf("shuffle failed: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("Shuffled deck:")
	fmt.Println(r.Deck(d.Cards()))

	logger.Debug().
		Int("shuffles", c.Count).
		Uint64("bits", pool.BitsRead()).
		Uint64("refills", pool.Refills()).
		Msg("entropy usage")
	return nil
}
