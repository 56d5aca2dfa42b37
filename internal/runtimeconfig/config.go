package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrStorageProviderUnknown = errors.New("doclane config: storage provider is invalid")
var ErrWalkerConcurrencyInvalid = errors.New("doclane config: walker concurrency must be zero or positive")
var ErrCommandsTimeoutInvalid = errors.New("doclane config: command timeout must be zero or positive")
var ErrAIFeatureRequired = errors.New("doclane config: ai feature must be enabled to configure a provider")
var ErrLoggingProviderRequired = errors.New("doclane config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("doclane config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("doclane config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("doclane config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the Doclane module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool           `yaml:"enabled"`
	DefaultLocale string         `yaml:"default_locale"`
	Storage       StorageConfig  `yaml:"storage"`
	Cache         CacheConfig    `yaml:"cache"`
	Walker        WalkerConfig   `yaml:"walker"`
	AI            AIConfig       `yaml:"ai"`
	Features      Features       `yaml:"features"`
	Commands      CommandsConfig `yaml:"commands"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string `yaml:"provider"`
	DSN      string `yaml:"dsn"`
}

// CacheConfig captures cache behaviour toggles for the repository layer.
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

// WalkerConfig controls how documents are traversed during exports.
type WalkerConfig struct {
	// FailFast aborts the walk on the first unit failure instead of
	// collecting warnings.
	FailFast bool `yaml:"fail_fast"`
	// Concurrency bounds parallel translation lookups per section. Zero
	// selects the built-in default.
	Concurrency int `yaml:"concurrency"`
}

// AIConfig captures behaviour for the translation suggestion pass.
type AIConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"`
}

// Features toggles module functionality.
type Features struct {
	AISuggestions bool `yaml:"ai_suggestions"`
	Audit         bool `yaml:"audit"`
	Logger        bool `yaml:"logger"`
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Walker: WalkerConfig{},
		AI: AIConfig{
			Provider: "mock",
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Walker.Concurrency < 0 {
		return ErrWalkerConcurrencyInvalid
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandsTimeoutInvalid
	}
	if cfg.AI.Enabled && !cfg.Features.AISuggestions {
		return ErrAIFeatureRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "bun", "memory":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
