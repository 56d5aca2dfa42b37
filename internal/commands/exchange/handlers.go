package exchangecmd

import (
	"context"

	"github.com/doclane/doclane/exchange"
	"github.com/doclane/doclane/internal/ai"
	"github.com/doclane/doclane/internal/commands"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	exportOperation  = "translations.export_document"
	importOperation  = "translations.import_document"
	suggestOperation = "translations.suggest_document"
)

var (
	_ command.Commander[ExportTranslationsCommand]  = (*ExportTranslationsHandler)(nil)
	_ command.Commander[ImportTranslationsCommand]  = (*ImportTranslationsHandler)(nil)
	_ command.Commander[SuggestTranslationsCommand] = (*SuggestTranslationsHandler)(nil)
)

// ExportTranslationsHandler runs CSV exports via the shared command handler foundation.
type ExportTranslationsHandler struct {
	inner *commands.Handler[ExportTranslationsCommand]
}

// NewExportTranslationsHandler creates a handler bound to the supplied exchange service.
func NewExportTranslationsHandler(service *exchange.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExportTranslationsCommand]) *ExportTranslationsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportTranslationsCommand) error {
		result, err := service.Export(ctx, exchange.ExportRequest{
			DocumentID: msg.DocumentID,
			LanguageID: msg.LanguageID,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"filename": result.Filename,
			"records":  result.Records,
			"warnings": len(result.Warnings),
		}).Info("translations.command.export_document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportTranslationsCommand]{
		commands.WithLogger[ExportTranslationsCommand](baseLogger),
		commands.WithOperation[ExportTranslationsCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportTranslationsCommand) map[string]any {
			return map[string]any{
				"document_id": msg.DocumentID,
				"language_id": msg.LanguageID,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportTranslationsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportTranslationsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportTranslationsCommand].
func (h *ExportTranslationsHandler) Execute(ctx context.Context, msg ExportTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ImportTranslationsHandler runs CSV imports via the shared command handler foundation.
type ImportTranslationsHandler struct {
	inner *commands.Handler[ImportTranslationsCommand]
}

// NewImportTranslationsHandler creates a handler bound to the supplied exchange service.
func NewImportTranslationsHandler(service *exchange.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportTranslationsCommand]) *ImportTranslationsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ImportTranslationsCommand) error {
		result, err := service.Import(ctx, exchange.ImportRequest{
			DocumentID: msg.DocumentID,
			LanguageID: msg.LanguageID,
			CSV:        msg.CSV,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"success":  result.Success,
			"inserted": result.Inserted,
			"updated":  result.Updated,
			"errors":   len(result.Errors),
			"skipped":  len(result.SkippedRows),
		}).Info("translations.command.import_document.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportTranslationsCommand]{
		commands.WithLogger[ImportTranslationsCommand](baseLogger),
		commands.WithOperation[ImportTranslationsCommand](importOperation),
		commands.WithMessageFields(func(msg ImportTranslationsCommand) map[string]any {
			return map[string]any{
				"document_id": msg.DocumentID,
				"language_id": msg.LanguageID,
				"csv_bytes":   len(msg.CSV),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportTranslationsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportTranslationsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportTranslationsCommand].
func (h *ImportTranslationsHandler) Execute(ctx context.Context, msg ImportTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SuggestTranslationsHandler runs AI suggestion passes via the shared command handler foundation.
type SuggestTranslationsHandler struct {
	inner *commands.Handler[SuggestTranslationsCommand]
}

// NewSuggestTranslationsHandler creates a handler bound to the supplied suggester.
func NewSuggestTranslationsHandler(suggester *ai.Suggester, logger interfaces.Logger, opts ...commands.HandlerOption[SuggestTranslationsCommand]) *SuggestTranslationsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SuggestTranslationsCommand) error {
		return suggester.Run(ctx, msg.DocumentID, msg.LanguageID, msg.LanguageCode)
	}

	handlerOpts := []commands.HandlerOption[SuggestTranslationsCommand]{
		commands.WithLogger[SuggestTranslationsCommand](baseLogger),
		commands.WithOperation[SuggestTranslationsCommand](suggestOperation),
		commands.WithMessageFields(func(msg SuggestTranslationsCommand) map[string]any {
			return map[string]any{
				"document_id":   msg.DocumentID,
				"language_id":   msg.LanguageID,
				"language_code": msg.LanguageCode,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SuggestTranslationsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SuggestTranslationsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SuggestTranslationsCommand].
func (h *SuggestTranslationsHandler) Execute(ctx context.Context, msg SuggestTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}
