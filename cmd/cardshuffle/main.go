package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Shuffle ShuffleCmd       `cmd:"" default:"withargs" help:"Shuffle a deck and print it"`
	Verify  VerifyCmd        `cmd:"" help:"Check sampler and shuffle uniformity empirically"`
	Bench   BenchCmd         `cmd:"" help:"Measure shuffle throughput and entropy cost"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardshuffle"),
		kong.Description("Cryptographically fair deck shuffling that conserves entropy"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
