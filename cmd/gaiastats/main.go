package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/engine"
	"github.com/tatianab/gaia-stats/internal/models"
	"github.com/tatianab/gaia-stats/internal/report"
)

func main() {
	format := flag.String("format", "", "output format: table, json or yaml (overrides GAIASTATS_FORMAT)")
	verbose := flag.Bool("v", false, "log every recoverable issue")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file or dir>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		if cfg.Format, err = config.ParseFormat(*format); err != nil {
			fmt.Printf("Error: -format: %v\n", err)
			os.Exit(2)
		}
	}
	if *verbose {
		cfg.Verbose = true
	}

	paths, err := models.ResolveInputs(flag.Args())
	if err != nil {
		fmt.Printf("Error resolving inputs: %v\n", err)
		os.Exit(1)
	}
	games, err := models.LoadAll(paths)
	if err != nil {
		fmt.Printf("Error loading games: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng := engine.NewEngine(cfg, log.New(os.Stderr, "", 0))
	res, err := eng.Run(ctx, games)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run interrupted: %v\n", err)
	}

	if err := report.Write(os.Stdout, report.Build(eng.Stats(), res), cfg.Format); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		os.Exit(1)
	}
}
