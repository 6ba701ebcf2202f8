package di

import (
	"fmt"

	"github.com/goliatone/go-post/internal/lifecycle"
	"github.com/goliatone/go-post/internal/logging"
	"github.com/goliatone/go-post/internal/logging/console"
	"github.com/goliatone/go-post/internal/logging/gologger"
	"github.com/goliatone/go-post/internal/posts"
	"github.com/goliatone/go-post/internal/runtimeconfig"
	"github.com/goliatone/go-post/pkg/interfaces"
)

// Container wires logging for posts created through the module.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider  interfaces.LoggerProvider
	providerName    string
	consoleOptions  console.Options
	lifecycleLogger interfaces.Logger
}

// Option mutates the container before providers are resolved.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
			c.providerName = "custom"
		}
	}
}

// WithConsoleOptions sets the writer and clock used when the console provider
// is selected.
func WithConsoleOptions(opts console.Options) Option {
	return func(c *Container) {
		c.consoleOptions = opts
	}
}

// NewContainer validates cfg and resolves the logger provider.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogger(); err != nil {
		return nil, err
	}
	c.lifecycleLogger = logging.LifecycleLogger(c.loggerProvider)

	logging.RuntimeLogger(c.loggerProvider).Info("runtime.configured",
		"logger_provider", c.providerName,
		"states", len(lifecycle.Definitions()),
	)
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.providerName = "noop"
		return nil
	}

	cfg := c.Config.Logging
	switch name := runtimeconfig.NormalizeProvider(cfg.Provider); name {
	case runtimeconfig.LoggingProviderConsole:
		opts := c.consoleOptions
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
		c.providerName = name
	case runtimeconfig.LoggingProviderGoLogger:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("configure go-logger: %w", err)
		}
		c.loggerProvider = provider
		c.providerName = name
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, name)
	}
	return nil
}

// NewPost returns a draft post logging to the lifecycle namespace. Caller
// options are applied after the container's logger so they can replace it.
func (c *Container) NewPost(opts ...posts.Option) *posts.Post {
	all := make([]posts.Option, 0, len(opts)+1)
	all = append(all, posts.WithLogger(c.lifecycleLogger))
	all = append(all, opts...)
	return posts.New(all...)
}
