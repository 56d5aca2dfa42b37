package bootstrap

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/doclane/doclane"
	"github.com/doclane/doclane/internal/di"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/internal/logging/gologger"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"gopkg.in/yaml.v3"
)

// Options captures configuration for translations CLI bootstraps.
type Options struct {
	ConfigPath     string
	DSN            string
	FailFast       *bool
	Concurrency    int
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the doclane module and the handles CLI commands need.
type Module struct {
	Module   *doclane.Module
	Exchange doclane.ExchangeService
	Logger   interfaces.Logger
	DB       *bun.DB
}

// LoadConfig reads a YAML configuration file on top of the defaults. An empty
// path returns the defaults untouched.
func LoadConfig(path string) (doclane.Config, error) {
	cfg := doclane.DefaultConfig()

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(trimmed)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", trimmed, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", trimmed, err)
	}
	return cfg, nil
}

// OpenDB connects a bun handle to the SQLite database at dsn.
func OpenDB(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// BuildModule constructs a doclane module configured for CLI usage.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if dsn := strings.TrimSpace(opts.DSN); dsn != "" {
		cfg.Storage.DSN = dsn
		cfg.Storage.Provider = "bun"
	}
	if opts.FailFast != nil {
		cfg.Walker.FailFast = *opts.FailFast
	}
	if opts.Concurrency > 0 {
		cfg.Walker.Concurrency = opts.Concurrency
	}

	provider := opts.LoggerProvider
	if provider == nil && cfg.Features.Logger {
		provider, err = buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
	}

	diOpts := []di.Option{}
	if provider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(provider))
	}

	var db *bun.DB
	if strings.TrimSpace(cfg.Storage.DSN) != "" {
		db, err = OpenDB(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		diOpts = append(diOpts, di.WithBunDB(db))
	}

	module, err := doclane.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise doclane module: %w", err)
	}

	return &Module{
		Module:   module,
		Exchange: module.Exchange(),
		Logger:   logging.ExchangeLogger(module.Container().LoggerProvider()),
		DB:       db,
	}, nil
}

// Close releases the database handle when one was opened.
func (m *Module) Close() error {
	if m == nil || m.DB == nil {
		return nil
	}
	return m.DB.Close()
}

func buildLoggerProvider(cfg doclane.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console", "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, fmt.Errorf("unsupported logging provider %q", cfg.Provider)
	}
}

// ParseUUID converts the supplied string into a UUID, returning uuid.Nil when
// the input is empty.
func ParseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(trimmed)
}
