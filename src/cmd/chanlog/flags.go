// FILE: chanlog/src/cmd/chanlog/flags.go
package main

import (
	"flag"
	"fmt"
	"os"

	"chanlog/src/internal/plugin"
)

// Command-line flags
var (
	// General flags
	configFile  = flag.String("config", "", "Config file path")
	botNick     = flag.String("nick", "", "Bot nickname (overrides config)")
	quiet       = flag.Bool("quiet", false, "Suppress console output")
	showVersion = flag.Bool("version", false, "Show version information")

	// Logging flags
	logOutput = flag.String("log-output", "", "Log output: file, stdout, stderr, both, none (overrides config)")
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "chanlog - %s\n\n", plugin.HelpText)
	fmt.Fprintf(os.Stderr, "Usage: %s [options] < events\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Reads one event per line from stdin:\n")
	fmt.Fprintf(os.Stderr, "  msg <channel> <who> <text...>\n")
	fmt.Fprintf(os.Stderr, "  join <channel> <who>\n")
	fmt.Fprintf(os.Stderr, "  part <channel> <who>\n")

	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -nick string\n\tBot nickname (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress console output\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tLog output: file, stdout, stderr, both, none (overrides config)\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tLog level: debug, info, warn, error (overrides config)\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Replay an event stream into ./\n")
	fmt.Fprintf(os.Stderr, "  %s < events.txt\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Custom config and debug logging\n")
	fmt.Fprintf(os.Stderr, "  %s --config /etc/chanlog.toml --log-level debug < events.txt\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  CHANLOG_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  CHANLOG_CONFIG_DIR   Config directory\n")
}

func parseFlags() error {
	flag.Parse()

	// Validate log-output flag if provided
	if *logOutput != "" {
		validOutputs := map[string]bool{
			"file": true, "stdout": true, "stderr": true,
			"both": true, "none": true,
		}
		if !validOutputs[*logOutput] {
			return fmt.Errorf("invalid log-output: %s (valid: file, stdout, stderr, both, none)", *logOutput)
		}
	}

	// Validate log-level flag if provided
	if *logLevel != "" {
		validLevels := map[string]bool{
			"debug": true, "info": true, "warn": true, "error": true,
		}
		if !validLevels[*logLevel] {
			return fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", *logLevel)
		}
	}

	return nil
}
