package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/doclane/doclane/document"
	"github.com/doclane/doclane/domain"
	"github.com/doclane/doclane/exchange"
	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
)

type staticReader struct {
	sections []*document.Section
	modules  map[uuid.UUID][]*document.Module
}

func (s *staticReader) GetSections(context.Context, uuid.UUID) ([]*document.Section, error) {
	return s.sections, nil
}

func (s *staticReader) GetModules(_ context.Context, sectionID uuid.UUID) ([]*document.Module, error) {
	return s.modules[sectionID], nil
}

type failingProvider struct{}

func (failingProvider) Suggest(context.Context, string, string) (string, error) {
	return "", errors.New("provider unavailable")
}

func newSuggestFixture(t *testing.T) (*exchange.Walker, *translation.MemoryStore, uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	documentID := uuid.New()
	languageID := uuid.New()
	sectionID := uuid.New()
	moduleID := uuid.New()

	docs := &staticReader{
		sections: []*document.Section{
			{ID: sectionID, DocumentID: documentID, Title: "Install"},
		},
		modules: map[uuid.UUID][]*document.Module{
			sectionID: {
				{ID: moduleID, SectionID: sectionID, Type: "text", Content: map[string]any{"text": "Tighten the bolts."}},
			},
		},
	}

	store := translation.NewMemoryStore()
	walker := exchange.NewWalker(docs, store, exchange.NewExtractor(nil))
	return walker, store, documentID, languageID, sectionID, moduleID
}

func TestRunFillsUntranslatedSlots(t *testing.T) {
	walker, store, documentID, languageID, sectionID, moduleID := newSuggestFixture(t)
	ctx := context.Background()

	// The section already has a human translation; only the module should
	// receive a suggestion.
	if _, err := store.CreateSectionTranslation(ctx, &translation.SectionTranslation{
		SectionID:  sectionID,
		LanguageID: languageID,
		Title:      "Einbau",
		Status:     domain.StatusApproved,
	}); err != nil {
		t.Fatalf("CreateSectionTranslation() error = %v", err)
	}

	audit := jobs.NewInMemoryAuditRecorder()
	s := NewSuggester(walker, store, MockProvider{}, WithAuditRecorder(audit))

	if err := s.Run(ctx, documentID, languageID, "de"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	module, err := store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil {
		t.Fatalf("GetModuleTranslation() error = %v", err)
	}
	if module.Content["text"] != "[de] Tighten the bolts." {
		t.Fatalf("unexpected suggestion: %#v", module.Content)
	}
	if module.Status != domain.StatusAISuggested {
		t.Fatalf("expected ai_suggested status, got %s", module.Status)
	}

	section, err := store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil {
		t.Fatalf("GetSectionTranslation() error = %v", err)
	}
	if section.Title != "Einbau" {
		t.Fatalf("expected human translation to survive, got %q", section.Title)
	}

	events := audit.Events()
	if len(events) != 1 || events[0].Action != "translations_ai_suggested" {
		t.Fatalf("expected suggestion audit event, got %#v", events)
	}
}

func TestRunSkipsWhenEverythingTranslated(t *testing.T) {
	walker, store, documentID, languageID, sectionID, moduleID := newSuggestFixture(t)
	ctx := context.Background()

	if _, err := store.CreateSectionTranslation(ctx, &translation.SectionTranslation{
		SectionID:  sectionID,
		LanguageID: languageID,
		Title:      "Einbau",
		Status:     domain.StatusTranslated,
	}); err != nil {
		t.Fatalf("CreateSectionTranslation() error = %v", err)
	}
	if _, err := store.CreateModuleTranslation(ctx, &translation.ModuleTranslation{
		ModuleID:   moduleID,
		LanguageID: languageID,
		Content:    map[string]any{"text": "Ziehen Sie die Schrauben an."},
		Status:     domain.StatusTranslated,
	}); err != nil {
		t.Fatalf("CreateModuleTranslation() error = %v", err)
	}

	audit := jobs.NewInMemoryAuditRecorder()
	s := NewSuggester(walker, store, MockProvider{}, WithAuditRecorder(audit))
	if err := s.Run(ctx, documentID, languageID, "de"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	module, err := store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil {
		t.Fatalf("GetModuleTranslation() error = %v", err)
	}
	if module.Status != domain.StatusTranslated {
		t.Fatalf("expected existing translation untouched, got %s", module.Status)
	}
	if len(audit.Events()) != 0 {
		t.Fatal("expected no audit event when nothing was suggested")
	}
}

func TestRunToleratesProviderFailures(t *testing.T) {
	walker, store, documentID, languageID, _, moduleID := newSuggestFixture(t)
	ctx := context.Background()

	s := NewSuggester(walker, store, failingProvider{})
	if err := s.Run(ctx, documentID, languageID, "de"); err != nil {
		t.Fatalf("expected provider failures to be tolerated, got %v", err)
	}

	if _, err := store.GetModuleTranslation(ctx, moduleID, languageID); !translation.IsNotFound(err) {
		t.Fatalf("expected no translation to be written, got %v", err)
	}
}
