package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".cognisupport"
	envPrefix  = "COGNI"

	AnalysisBaseURLKey   = "analysis.base_url"
	AnalysisPathKey      = "analysis.path"
	AnalysisTimeoutKey   = "analysis.timeout"
	AnalysisCacheSizeKey = "analysis.cache_size"
	DebounceDelayKey     = "debounce.delay"
	TicketsSeedPathKey   = "tickets.seed_path"
	LogLevelKey          = "log.level"
	LogFormatKey         = "log.format"
	LogFileKey           = "log.file"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Analysis AnalysisConfig
	Debounce DebounceConfig
	Tickets  TicketsConfig
	Log      LogConfig
}

type AnalysisConfig struct {
	BaseURL   string
	Path      string
	Timeout   time.Duration
	CacheSize int
}

type DebounceConfig struct {
	Delay time.Duration
}

type TicketsConfig struct {
	SeedPath string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load layers a .env file, ~/.cognisupport/config.toml and COGNI_* environment
// variables over the built-in defaults. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Analysis: AnalysisConfig{
			BaseURL:   strings.TrimSpace(cfg.GetString(AnalysisBaseURLKey)),
			Path:      strings.TrimSpace(cfg.GetString(AnalysisPathKey)),
			Timeout:   cfg.GetDuration(AnalysisTimeoutKey),
			CacheSize: cfg.GetInt(AnalysisCacheSizeKey),
		},
		Debounce: DebounceConfig{
			Delay: cfg.GetDuration(DebounceDelayKey),
		},
		Tickets: TicketsConfig{
			SeedPath: strings.TrimSpace(cfg.GetString(TicketsSeedPathKey)),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(cfg.GetString(LogLevelKey))),
			Format: strings.ToLower(strings.TrimSpace(cfg.GetString(LogFormatKey))),
			File:   strings.TrimSpace(cfg.GetString(LogFileKey)),
		},
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(AnalysisBaseURLKey, "http://localhost:8000")
	cfg.SetDefault(AnalysisPathKey, "/api/v1/tickets/analyze")
	cfg.SetDefault(AnalysisTimeoutKey, time.Duration(0))
	cfg.SetDefault(AnalysisCacheSizeKey, 0)
	cfg.SetDefault(DebounceDelayKey, 500*time.Millisecond)
	cfg.SetDefault(TicketsSeedPathKey, "")
	cfg.SetDefault(LogLevelKey, "info")
	cfg.SetDefault(LogFormatKey, "text")
	cfg.SetDefault(LogFileKey, "")
}

func (c Config) Validate() error {
	if c.Analysis.BaseURL == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, AnalysisBaseURLKey)
	}
	if c.Analysis.Timeout < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, AnalysisTimeoutKey)
	}
	if c.Analysis.CacheSize < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, AnalysisCacheSizeKey)
	}
	if c.Debounce.Delay < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, DebounceDelayKey)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, LogFormatKey, c.Log.Format)
	}

	return nil
}
