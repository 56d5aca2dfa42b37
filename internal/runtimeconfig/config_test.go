package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if !cfg.Enabled || cfg.DefaultLocale != "en" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Cache.DefaultTTL != time.Minute {
		t.Fatalf("unexpected cache ttl: %s", cfg.Cache.DefaultTTL)
	}
}

func TestValidateStorageProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Provider = "mongo"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestValidateWalkerConcurrency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Walker.Concurrency = -1
	if err := cfg.Validate(); !errors.Is(err, ErrWalkerConcurrencyInvalid) {
		t.Fatalf("expected ErrWalkerConcurrencyInvalid, got %v", err)
	}
}

func TestValidateAIRequiresFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AI.Enabled = true
	if err := cfg.Validate(); !errors.Is(err, ErrAIFeatureRequired) {
		t.Fatalf("expected ErrAIFeatureRequired, got %v", err)
	}

	cfg.Features.AISuggestions = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true

	cfg.Logging.Provider = " "
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}
