package di

import (
	"testing"

	"github.com/goliatone/go-post/internal/logging/gologger"
	"github.com/goliatone/go-post/internal/runtimeconfig"
)

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}
	if container.providerName != runtimeconfig.LoggingProviderGoLogger {
		t.Fatalf("expected provider name gologger, got %q", container.providerName)
	}

	if logger := provider.GetLogger("post.test"); logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}
