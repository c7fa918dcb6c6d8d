package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/orcnlabs/certcheck/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath   string
		inputDir     string
		outputDir    string
		equipment    string
		requirements string
		standards    string
		issuers      string
		verbose      bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML/JSON config file (flags win over file values)")
	flag.StringVar(&inputDir, "input", "", "Directory with certificate documents (.txt, .md, .html)")
	flag.StringVar(&outputDir, "output", "", "Directory for per-document analysis JSON and batch summary")
	flag.StringVar(&equipment, "kb.equipment", "", "Path to the equipment catalog table")
	flag.StringVar(&requirements, "kb.requirements", "", "Path to the requirement table")
	flag.StringVar(&standards, "kb.standards", "", "Path to the standards catalog table")
	flag.StringVar(&issuers, "kb.issuers", "", "Path to the issuer registry table")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Verbose:   verbose,
	}
	cfg.Knowledge.Equipment = equipment
	cfg.Knowledge.Requirements = requirements
	cfg.Knowledge.Standards = standards
	cfg.Knowledge.Issuers = issuers

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if verbose || cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "certcheck: -input directory is required (or set input in -config)")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for an unusable batch (nothing to analyze),
		// 1 for I/O failures writing artifacts. Per-document outcomes,
		// compliant or not, are results rather than process errors.
		if errors.Is(err, app.ErrNoDocuments) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
