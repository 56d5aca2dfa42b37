package exchange

import (
	"context"
	"fmt"

	"github.com/doclane/doclane/document"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Policy controls how the walker reacts to per-unit fetch failures.
type Policy string

const (
	// PolicyBestEffort skips failed sections/modules and reports them as
	// warnings. This is the default.
	PolicyBestEffort Policy = "best_effort"
	// PolicyFailFast aborts the walk on the first fetch failure.
	PolicyFailFast Policy = "fail_fast"
)

const defaultWalkConcurrency = 4

// Warning reports one unit the walker had to skip.
type Warning struct {
	SectionID uuid.UUID
	ModuleID  *uuid.UUID
	Stage     string
	Err       error
}

func (w Warning) String() string {
	if w.ModuleID != nil {
		return fmt.Sprintf("section %s module %s (%s): %v", w.SectionID, *w.ModuleID, w.Stage, w.Err)
	}
	return fmt.Sprintf("section %s (%s): %v", w.SectionID, w.Stage, w.Err)
}

// WalkerOption mutates the walker configuration.
type WalkerOption func(*Walker)

// WalkerWithLogger injects the logger used by the walker.
func WalkerWithLogger(logger interfaces.Logger) WalkerOption {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithPolicy selects best-effort or fail-fast walking.
func WithPolicy(policy Policy) WalkerOption {
	return func(w *Walker) {
		if policy == PolicyBestEffort || policy == PolicyFailFast {
			w.policy = policy
		}
	}
}

// WithConcurrency bounds the translation-lookup fan-out per section.
func WithConcurrency(n int) WalkerOption {
	return func(w *Walker) {
		if n > 0 {
			w.concurrency = n
		}
	}
}

// Walker traverses a document's section tree and flattens every translatable
// leaf into records. Section and module ordering follows the store's
// deterministic ordering so path strings are stable across exports.
type Walker struct {
	documents    document.Reader
	translations translation.Reader
	extractor    *Extractor
	logger       interfaces.Logger
	policy       Policy
	concurrency  int
}

// NewWalker constructs a document walker.
func NewWalker(documents document.Reader, translations translation.Reader, extractor *Extractor, opts ...WalkerOption) *Walker {
	w := &Walker{
		documents:    documents,
		translations: translations,
		extractor:    extractor,
		logger:       logging.NoOp(),
		policy:       PolicyBestEffort,
		concurrency:  defaultWalkConcurrency,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk produces the flat record list for one (document, language) pair. A
// failure to list the document's sections is the only hard failure; every
// narrower fetch error is either collected as a warning (best effort) or
// returned immediately (fail fast).
func (w *Walker) Walk(ctx context.Context, documentID, languageID uuid.UUID) ([]Record, []Warning, error) {
	sections, err := w.documents.GetSections(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("exchange: list sections for document %s: %w", documentID, err)
	}

	var records []Record
	var warnings []Warning

	for _, section := range sections {
		sectionRecords, sectionWarnings, err := w.walkSection(ctx, section, languageID)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, sectionRecords...)
		warnings = append(warnings, sectionWarnings...)
	}

	w.logger.Debug("exchange.walk.completed",
		"document_id", documentID,
		"language_id", languageID,
		"records", len(records),
		"warnings", len(warnings),
	)
	return records, warnings, nil
}

func (w *Walker) walkSection(ctx context.Context, section *document.Section, languageID uuid.UUID) ([]Record, []Warning, error) {
	var records []Record
	var warnings []Warning

	sectionPath := "/" + section.Title

	existing, err := w.translations.GetSectionTranslation(ctx, section.ID, languageID)
	if err != nil && !translation.IsNotFound(err) {
		if w.policy == PolicyFailFast {
			return nil, nil, fmt.Errorf("exchange: fetch section translation %s: %w", section.ID, err)
		}
		warnings = append(warnings, Warning{SectionID: section.ID, Stage: "section_translation", Err: err})
		w.logger.Warn("exchange.walk.section_translation_failed", "section_id", section.ID, "error", err)
		existing = nil
	}

	titleTranslated := ""
	descriptionTranslated := ""
	if existing != nil {
		titleTranslated = existing.Title
		if existing.Description != nil {
			descriptionTranslated = *existing.Description
		}
	}

	records = append(records, Record{
		ID:         section.ID.String(),
		Kind:       KindSection,
		Field:      "title",
		Path:       sectionPath + "/title",
		Original:   section.Title,
		Translated: titleTranslated,
	})
	if section.Description != nil {
		records = append(records, Record{
			ID:         section.ID.String(),
			Kind:       KindSection,
			Field:      "description",
			Path:       sectionPath + "/description",
			Original:   *section.Description,
			Translated: descriptionTranslated,
		})
	}

	modules, err := w.documents.GetModules(ctx, section.ID)
	if err != nil {
		if w.policy == PolicyFailFast {
			return nil, nil, fmt.Errorf("exchange: list modules for section %s: %w", section.ID, err)
		}
		// The section still contributes its title/description records.
		warnings = append(warnings, Warning{SectionID: section.ID, Stage: "modules", Err: err})
		w.logger.Warn("exchange.walk.modules_failed", "section_id", section.ID, "error", err)
		return records, warnings, nil
	}

	existingTranslations, fetchWarnings, err := w.fetchModuleTranslations(ctx, modules, languageID)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, fetchWarnings...)

	for i, module := range modules {
		var translatedContent any
		if existingTranslations[i] != nil {
			translatedContent = existingTranslations[i].Content
		}
		modulePath := sectionPath + "/" + module.Type
		moduleRecords, err := w.extractor.Extract(ctx, module.ID.String(), module.Type, module.Content, translatedContent, modulePath)
		if err != nil {
			if w.policy == PolicyFailFast {
				return nil, nil, err
			}
			moduleID := module.ID
			warnings = append(warnings, Warning{SectionID: section.ID, ModuleID: &moduleID, Stage: "bom_resolve", Err: err})
			w.logger.Warn("exchange.walk.bom_resolve_failed", "module_id", module.ID, "error", err)
		}
		records = append(records, moduleRecords...)
	}

	return records, warnings, nil
}

// fetchModuleTranslations loads existing translations for the section's
// modules with a bounded fan-out. Results are joined back in module order so
// downstream extraction stays deterministic.
func (w *Walker) fetchModuleTranslations(ctx context.Context, modules []*document.Module, languageID uuid.UUID) ([]*translation.ModuleTranslation, []Warning, error) {
	results := make([]*translation.ModuleTranslation, len(modules))
	failures := make([]error, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for i, module := range modules {
		g.Go(func() error {
			existing, err := w.translations.GetModuleTranslation(gctx, module.ID, languageID)
			if err != nil {
				if translation.IsNotFound(err) {
					return nil
				}
				if w.policy == PolicyFailFast {
					return fmt.Errorf("exchange: fetch module translation %s: %w", module.ID, err)
				}
				failures[i] = err
				return nil
			}
			results[i] = existing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for i, err := range failures {
		if err == nil {
			continue
		}
		moduleID := modules[i].ID
		warnings = append(warnings, Warning{SectionID: modules[i].SectionID, ModuleID: &moduleID, Stage: "module_translation", Err: err})
		w.logger.Warn("exchange.walk.module_translation_failed", "module_id", moduleID, "error", err)
	}
	return results, warnings, nil
}
