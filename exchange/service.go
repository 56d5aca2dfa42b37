package exchange

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/google/uuid"
)

// ExportRequest identifies the (document, language) pair to export.
type ExportRequest struct {
	DocumentID uuid.UUID
	LanguageID uuid.UUID
}

// Validate checks the export request.
func (r ExportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentID, validation.Required.Error(ErrDocumentIDRequired.Error())),
		validation.Field(&r.LanguageID, validation.Required.Error(ErrLanguageIDRequired.Error())),
	)
}

// ExportResult carries the rendered CSV, the suggested download filename,
// and any per-unit warnings collected during the walk.
type ExportResult struct {
	Filename string
	CSV      string
	Records  int
	Warnings []Warning
}

// ImportRequest carries an edited CSV blob back for synchronization.
type ImportRequest struct {
	DocumentID uuid.UUID
	LanguageID uuid.UUID
	CSV        string
}

// Validate checks the import request.
func (r ImportRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LanguageID, validation.Required.Error(ErrLanguageIDRequired.Error())),
		validation.Field(&r.CSV, validation.Required.Error(ErrCSVRequired.Error())),
	)
}

// ImportResult is the structured summary every import returns: upsert
// accounting plus the rows the decoder skipped.
type ImportResult struct {
	Success     bool
	Inserted    int
	Updated     int
	Errors      []ItemError
	SkippedRows []RowWarning
}

// ServiceOption mutates the service configuration.
type ServiceOption func(*Service)

// ServiceWithLogger injects the logger used by the service.
func ServiceWithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// ServiceWithClock overrides the clock used for filenames and audit entries.
func ServiceWithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// ServiceWithAuditRecorder attaches an audit trail for export/import runs.
func ServiceWithAuditRecorder(recorder jobs.AuditRecorder) ServiceOption {
	return func(s *Service) {
		s.audit = recorder
	}
}

// Service orchestrates the full export and import flows: walk → encode for
// exports, decode → group → apply for imports.
type Service struct {
	walker  *Walker
	applier *Applier
	audit   jobs.AuditRecorder
	logger  interfaces.Logger
	clock   func() time.Time
}

// NewService constructs the translation exchange service.
func NewService(walker *Walker, applier *Applier, opts ...ServiceOption) *Service {
	s := &Service{
		walker:  walker,
		applier: applier,
		logger:  logging.NoOp(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export walks the document and renders every translatable slot as CSV.
// Failing to reach the section list is the only hard failure; narrower fetch
// problems surface as warnings on the result.
func (s *Service) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, warnings, err := s.walker.Walk(ctx, req.DocumentID, req.LanguageID)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Filename: exportFilename(req.DocumentID, req.LanguageID, s.clock()),
		CSV:      EncodeCSV(records),
		Records:  len(records),
		Warnings: warnings,
	}

	s.recordAudit(ctx, jobs.AuditEvent{
		EntityType: "document",
		EntityID:   req.DocumentID.String(),
		Action:     "translations_exported",
		Metadata: map[string]any{
			"language_id": req.LanguageID.String(),
			"records":     len(records),
			"warnings":    len(warnings),
		},
	})
	s.logger.Info("exchange.export.completed",
		"document_id", req.DocumentID,
		"language_id", req.LanguageID,
		"records", len(records),
		"warnings", len(warnings),
	)
	return result, nil
}

// Import decodes an edited CSV blob, reconstitutes the nested translations,
// and upserts them. Only a CSV that cannot be parsed at all fails hard;
// everything past that point is reported in the summary, including per-item
// write failures.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, skipped, err := DecodeCSV(req.CSV)
	if err != nil {
		return nil, fmt.Errorf("exchange: parse csv: %w", err)
	}

	items := Group(records)
	applied := s.applier.Apply(ctx, req.LanguageID, items)

	result := &ImportResult{
		Success:     applied.Success,
		Inserted:    applied.Inserted,
		Updated:     applied.Updated,
		Errors:      applied.Errors,
		SkippedRows: skipped,
	}

	s.recordAudit(ctx, jobs.AuditEvent{
		EntityType: "document",
		EntityID:   req.DocumentID.String(),
		Action:     "translations_imported",
		Metadata: map[string]any{
			"language_id": req.LanguageID.String(),
			"inserted":    applied.Inserted,
			"updated":     applied.Updated,
			"errors":      len(applied.Errors),
			"skipped":     len(skipped),
		},
	})
	s.logger.Info("exchange.import.completed",
		"language_id", req.LanguageID,
		"inserted", applied.Inserted,
		"updated", applied.Updated,
		"errors", len(applied.Errors),
	)
	return result, nil
}

func exportFilename(documentID, languageID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("translations_doc_%s_lang_%s_%s.csv", documentID, languageID, now.Format("2006-01-02"))
}

func (s *Service) recordAudit(ctx context.Context, event jobs.AuditEvent) {
	if s.audit == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.clock()
	}
	_ = s.audit.Record(ctx, event)
}
