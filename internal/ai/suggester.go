package ai

import (
	"context"
	"fmt"

	"github.com/doclane/doclane/domain"
	"github.com/doclane/doclane/exchange"
	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
)

// Provider produces a suggested translation for one source value.
type Provider interface {
	Suggest(ctx context.Context, original, languageCode string) (string, error)
}

// MockProvider is the only shipped provider: it tags the source text so
// suggestions are recognizable in the UI and in tests. Real providers are a
// host-application concern.
type MockProvider struct{}

// Suggest returns a deterministic placeholder translation.
func (MockProvider) Suggest(_ context.Context, original, languageCode string) (string, error) {
	return fmt.Sprintf("[%s] %s", languageCode, original), nil
}

// SuggesterOption mutates the suggester configuration.
type SuggesterOption func(*Suggester)

// WithLogger injects the logger used by the suggester.
func WithLogger(logger interfaces.Logger) SuggesterOption {
	return func(s *Suggester) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAuditRecorder attaches an audit trail for suggestion runs.
func WithAuditRecorder(recorder jobs.AuditRecorder) SuggesterOption {
	return func(s *Suggester) {
		s.audit = recorder
	}
}

// Suggester fills untranslated slots of a document with provider output and
// writes them back through the standard upsert path with ai_suggested
// status. Existing translated values are never overwritten.
type Suggester struct {
	walker   *exchange.Walker
	store    translation.Store
	provider Provider
	logger   interfaces.Logger
	audit    jobs.AuditRecorder
}

// NewSuggester constructs an AI translation suggester.
func NewSuggester(walker *exchange.Walker, store translation.Store, provider Provider, opts ...SuggesterOption) *Suggester {
	s := &Suggester{
		walker:   walker,
		store:    store,
		provider: provider,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue starts a suggestion run in the background and returns immediately.
// The run owns its own context: aborting the surrounding request does not
// cancel it.
func (s *Suggester) Enqueue(documentID, languageID uuid.UUID, languageCode string) {
	go func() {
		if err := s.Run(context.Background(), documentID, languageID, languageCode); err != nil {
			s.logger.Error("ai.suggest.failed", "document_id", documentID, "error", err)
		}
	}()
}

// Run walks the document, asks the provider for every untranslated slot, and
// upserts the reconstituted suggestions.
func (s *Suggester) Run(ctx context.Context, documentID, languageID uuid.UUID, languageCode string) error {
	records, _, err := s.walker.Walk(ctx, documentID, languageID)
	if err != nil {
		return err
	}

	suggested := 0
	touched := make(map[exchange.RecordKey]struct{})
	for i := range records {
		if records[i].Translated != "" || records[i].Original == "" {
			continue
		}
		value, err := s.provider.Suggest(ctx, records[i].Original, languageCode)
		if err != nil {
			s.logger.Warn("ai.suggest.provider_failed", "record", records[i].Path, "error", err)
			continue
		}
		records[i].Translated = value
		touched[exchange.RecordKey{Kind: records[i].Kind, ID: records[i].ID}] = struct{}{}
		suggested++
	}
	if suggested == 0 {
		return nil
	}

	// Only items that actually received a suggestion are written back, so
	// fully translated sections and modules keep their status.
	batch := records[:0:0]
	for _, record := range records {
		if _, ok := touched[exchange.RecordKey{Kind: record.Kind, ID: record.ID}]; ok {
			batch = append(batch, record)
		}
	}

	applier := exchange.NewApplier(s.store,
		exchange.ApplierWithLogger(s.logger),
		exchange.ApplierWithStatus(domain.StatusAISuggested),
	)
	result := applier.Apply(ctx, languageID, exchange.Group(batch))

	if s.audit != nil {
		_ = s.audit.Record(ctx, jobs.AuditEvent{
			EntityType: "document",
			EntityID:   documentID.String(),
			Action:     "translations_ai_suggested",
			Metadata: map[string]any{
				"language_id": languageID.String(),
				"suggested":   suggested,
				"inserted":    result.Inserted,
				"updated":     result.Updated,
				"errors":      len(result.Errors),
			},
		})
	}
	s.logger.Info("ai.suggest.completed",
		"document_id", documentID,
		"suggested", suggested,
		"errors", len(result.Errors),
	)
	return nil
}
