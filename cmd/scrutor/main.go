package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/common"
	"github.com/ternarybob/scrutor/internal/connectors/github"
	"github.com/ternarybob/scrutor/internal/interfaces"
	"github.com/ternarybob/scrutor/internal/models"
	"github.com/ternarybob/scrutor/internal/services/docquality"
	"github.com/ternarybob/scrutor/internal/services/report"
	"github.com/ternarybob/scrutor/internal/services/scheduler"
	"github.com/ternarybob/scrutor/internal/services/scraper"
	"github.com/ternarybob/scrutor/internal/storage/badger"
)

var (
	configFile   = flag.String("config", "", "Configuration file path")
	configFileC  = flag.String("c", "", "Configuration file path (shorthand)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	config *common.Config
	logger arbor.ILogger
)

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Scrutor version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file -> env)
	// 2. Initialize logger
	// 3. Print banner
	configPath := *configFile
	if *configFileC != "" {
		configPath = *configFileC
	}
	if configPath == "" {
		// Auto-discover config file in the current directory
		if _, err := os.Stat("scrutor.toml"); err == nil {
			configPath = "scrutor.toml"
		}
	}

	var err error
	config, err = common.LoadFromFile(configPath)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger = common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	logger.Debug().
		Strs("topics", config.Scraper.Topics).
		Str("output_dir", config.Output.Dir).
		Str("log_level", config.Logging.Level).
		Bool("storage_enabled", config.Storage.Badger.Enabled).
		Msg("Configuration loaded")

	if err := run(); err != nil {
		logger.Fatal().Err(err).Msg("Scrutor exited with error")
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	connector, err := github.NewConnector(&config.GitHub, logger)
	if err != nil {
		return fmt.Errorf("failed to create github connector: %w", err)
	}
	if err := connector.TestConnection(ctx); err != nil {
		return err
	}
	logger.Info().Msg("GitHub connection verified")

	var runStorage interfaces.RunStorage
	if config.Storage.Badger.Enabled {
		db, err := badger.NewBadgerDB(logger, &config.Storage.Badger)
		if err != nil {
			return fmt.Errorf("failed to open run storage: %w", err)
		}
		defer db.Close()
		runStorage = badger.NewRunStorage(db, logger)
	}

	analyzer := docquality.NewAnalyzer(connector, &config.Filter, logger)
	scrape := scraper.NewService(connector, analyzer, runStorage, config, logger)
	writer := report.NewWriter(&config.Output, logger)

	runOnce := func(ctx context.Context) (*models.ScrapeRun, error) {
		run, err := scrape.Run(ctx)
		if err != nil {
			return nil, err
		}
		if err := writer.Write(run); err != nil {
			return nil, err
		}
		return run, nil
	}

	if config.Scraper.Schedule == "" {
		_, err := runOnce(ctx)
		return err
	}

	sched := scheduler.NewService(runOnce, logger)
	if err := sched.Start(config.Scraper.Schedule); err != nil {
		return err
	}

	// Block until interrupted; the scheduler drives all further runs.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info().Str("signal", sig.String()).Msg("Shutting down")

	return sched.Stop()
}
