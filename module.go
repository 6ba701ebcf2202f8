package post

import (
	"github.com/goliatone/go-post/internal/di"
)

// ModuleOption exports the container overrides.
type ModuleOption = di.Option

// WithLoggerProvider replaces the provider chosen by Config.Logging.
func WithLoggerProvider(provider LoggerProvider) ModuleOption {
	return di.WithLoggerProvider(provider)
}

// Module builds posts sharing the configured logging runtime.
type Module struct {
	container *di.Container
}

// NewModule validates cfg and resolves its logger provider.
func NewModule(cfg Config, opts ...ModuleOption) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// NewPost returns a draft post wired to the module's lifecycle logger.
func (m *Module) NewPost(opts ...Option) *Post {
	if m == nil || m.container == nil {
		return New(opts...)
	}
	return m.container.NewPost(opts...)
}

// States lists the lifecycle stages known to the module.
func (m *Module) States() []StateDefinition {
	return States()
}
