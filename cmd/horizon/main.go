package main

import (
	_ "embed"
	"flag"
	"os"
	"strings"

	"horizon/pkg/agency"
	"horizon/pkg/config"
	"horizon/pkg/console"
	"horizon/pkg/log"
)

const (
	dataDirPerm = 0750
)

//go:embed VERSION
var Version string

func main() {
	// Initialize logger first
	_ = log.Logger

	configPath := flag.String("config", "", "Config file path")
	dataDir := flag.String("data", "", "Data directory path (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("Failed to load config")
	}

	// The -debug flag wins over the configured level.
	log.SetLevel(cfg.LogLevel)

	if *debug {
		log.SetDebugMode()
	}

	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	if err := os.MkdirAll(cfg.DataDir, dataDirPerm); err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("Failed to create data directory")
	}

	a, err := agency.Bootstrap(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap agency")
	}

	console.New(a, os.Stdin, os.Stdout, strings.TrimSpace(Version)).Run()

	os.Exit(0)
}
