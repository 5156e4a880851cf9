// FILE: chanlog/src/cmd/chanlog/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chanlog/src/internal/config"
	"chanlog/src/internal/plugin"
	"chanlog/src/internal/service"
	"chanlog/src/internal/source"
	"chanlog/src/internal/version"

	"golang.org/x/term"
)

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	InitOutputHandler(*quiet)

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Set config file environment if specified
	if *configFile != "" {
		os.Setenv("CHANLOG_CONFIG_FILE", *configFile)
	}

	cfg, err := config.LoadWithCLI(os.Args[1:])
	if err != nil {
		if *configFile != "" && strings.Contains(err.Error(), "not found") {
			FatalError(2, "Config file not found: %s\n", *configFile)
		}
		FatalError(1, "Failed to load config: %v\n", err)
	}

	if *botNick != "" {
		cfg.BotNick = *botNick
	}

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "chanlog starting",
		"version", version.String(),
		"bot_nick", cfg.BotNick,
		"log_path", cfg.Plugin.LogPath)

	// The harness expects a piped event stream
	if term.IsTerminal(int(os.Stdin.Fd())) {
		Error("Reading events from an interactive terminal; pipe an event stream or type lines:\n")
		Error("  msg <channel> <who> <text...> | join <channel> <who> | part <channel> <who>\n")
	}

	store, err := buildOptionStore(cfg)
	if err != nil {
		logger.Error("msg", "Failed to build option store", "error", err)
		FatalError(1, "Failed to build option store: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := plugin.New(cfg.BotNick, store, logger)
	src := source.NewStdinSource(logger)
	svc := service.New(ctx, p, src, logger)

	if err := svc.Start(); err != nil {
		logger.Error("msg", "Failed to start service", "error", err)
		FatalError(1, "Failed to start service: %v\n", err)
	}

	sig := <-sigChan
	logger.Info("msg", "Shutdown signal received, starting graceful shutdown...",
		"signal", sig.String())

	// Shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		svc.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("msg", "Shutdown complete")
	case <-shutdownCtx.Done():
		logger.Error("msg", "Shutdown timeout exceeded - forcing exit")
		os.Exit(1)
	}
}

// buildOptionStore returns the persistent store when configured, or an
// in-memory store seeded from the [plugin] config table.
func buildOptionStore(cfg *config.Config) (config.OptionStore, error) {
	if cfg.StoreFile != "" {
		return config.NewFileStore(cfg.StoreFile)
	}
	return config.NewMemoryStoreWith(cfg.Plugin), nil
}
