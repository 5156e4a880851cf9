// FILE: chanlog/src/internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

type Config struct {
	// BotNick is the nickname the bot presents on the network; used to
	// detect self-authored or self-addressed messages
	BotNick string `toml:"bot_nick"`

	// StoreFile is the path of the persistent option store.
	// Empty means an in-memory store seeded from [plugin].
	StoreFile string `toml:"store_file"`

	// Plugin holds the initial option values seeded into the store
	Plugin Options `toml:"plugin"`

	Logging *LogConfig `toml:"logging"`
}

func defaults() *Config {
	return &Config{
		BotNick:   "chanlog",
		StoreFile: "",
		Plugin:    DefaultOptions(),
		Logging:   DefaultLogConfig(),
	}
}

func LoadWithCLI(cliArgs []string) (*Config, error) {
	configPath := GetConfigPath()

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("CHANLOG_").
		WithFile(configPath).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig, ""); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.validate()
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.BotNick) == "" {
		return fmt.Errorf("bot_nick must not be empty")
	}

	if c.Plugin.LogPath == "" {
		return fmt.Errorf("plugin.log_path must not be empty")
	}
	if c.Plugin.TimestampFmt == "" {
		return fmt.Errorf("plugin.timestamp_fmt must not be empty")
	}
	// plugin.ignore_pattern is deliberately not validated here; a bad
	// pattern surfaces per-event from the filter.

	if c.Logging != nil {
		if err := validateLogConfig(c.Logging); err != nil {
			return err
		}
	}

	return nil
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	env = "CHANLOG_" + env
	return env
}

func GetConfigPath() string {
	if configFile := os.Getenv("CHANLOG_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("CHANLOG_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("CHANLOG_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "chanlog.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "chanlog.toml")
	}

	return "chanlog.toml"
}
