package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrLoggingProviderRequired = errors.New("post config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("post config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("post config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("post config: logging format is invalid")

const (
	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"
)

var (
	supportedProviders = []any{LoggingProviderConsole, LoggingProviderGoLogger}
	supportedLevels    = []any{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	supportedFormats   = []any{"json", "console", "pretty"}
)

// Config aggregates feature flags and logging bindings for the post module.
type Config struct {
	Features Features
	Logging  LoggingConfig
}

// Features toggles optional runtime behaviour.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
// Format and Focus only apply to the gologger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns logging disabled with console defaults ready to switch on.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks. Logging settings are only
// inspected when the logger feature is enabled.
func (cfg Config) Validate() error {
	if !cfg.Features.Logger {
		return nil
	}

	provider := NormalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if err := validation.Validate(provider, validation.In(supportedProviders...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}

	level := normalize(cfg.Logging.Level)
	if err := validation.Validate(level, validation.In(supportedLevels...)); err != nil {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}

	if provider == LoggingProviderGoLogger {
		format := normalize(cfg.Logging.Format)
		if err := validation.Validate(format, validation.In(supportedFormats...)); err != nil {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a provider name.
func NormalizeProvider(provider string) string {
	return normalize(provider)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
