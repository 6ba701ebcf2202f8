package post

import "github.com/goliatone/go-post/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	Features      = runtimeconfig.Features
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns logging disabled with console defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
