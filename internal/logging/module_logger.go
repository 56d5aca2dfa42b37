package logging

import (
	"context"

	"github.com/doclane/doclane/pkg/interfaces"
)

const (
	rootModule     = "doclane"
	documentModule = "doclane.document"
	exchangeModule = "doclane.exchange"
	applierModule  = "doclane.exchange.applier"
	walkerModule   = "doclane.exchange.walker"
	aiModule       = "doclane.ai"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DocumentLogger returns the logger namespace reserved for document services.
func DocumentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentModule)
}

// ExchangeLogger returns the logger namespace reserved for the translation
// export/import engine.
func ExchangeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exchangeModule)
}

// WalkerLogger returns the logger namespace reserved for document walking.
func WalkerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, walkerModule)
}

// ApplierLogger returns the logger namespace reserved for the sync applier.
func ApplierLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, applierModule)
}

// AILogger returns the logger namespace reserved for the AI suggester.
func AILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, aiModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }

func (n noopLogger) WithFields(map[string]any) interfaces.Logger { return n }
