package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(
		NewMemoryDocumentRepository(),
		NewMemorySectionRepository(),
		NewMemoryModuleRepository(),
		WithClock(func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }),
	)
}

func TestCreateDocumentGeneratesSlug(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.CreateDocument(context.Background(), CreateDocumentRequest{Title: "Mower X200 Manual"})
	if err != nil {
		t.Fatalf("CreateDocument() error = %v", err)
	}
	if doc.Slug != "mower-x200-manual" {
		t.Fatalf("unexpected slug: %q", doc.Slug)
	}
	if doc.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
}

func TestCreateDocumentRejectsEmptyTitle(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CreateDocument(context.Background(), CreateDocumentRequest{Title: "   "}); !errors.Is(err, ErrDocumentTitleRequired) {
		t.Fatalf("expected ErrDocumentTitleRequired, got %v", err)
	}
}

func TestCreateDocumentRejectsInvalidSlug(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CreateDocument(context.Background(), CreateDocumentRequest{Title: "Manual", Slug: "Not A Slug!"}); !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestSectionsAndModulesListInOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.CreateDocument(ctx, CreateDocumentRequest{Title: "Manual"})
	if err != nil {
		t.Fatalf("CreateDocument() error = %v", err)
	}

	second, err := svc.CreateSection(ctx, CreateSectionRequest{DocumentID: doc.ID, Title: "Service", Position: 1})
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	first, err := svc.CreateSection(ctx, CreateSectionRequest{DocumentID: doc.ID, Title: "Install", Position: 0})
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}

	sections, err := svc.GetSections(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetSections() error = %v", err)
	}
	if len(sections) != 2 || sections[0].ID != first.ID || sections[1].ID != second.ID {
		t.Fatalf("expected sections ordered by position, got %#v", sections)
	}

	if _, err := svc.CreateModule(ctx, CreateModuleRequest{
		SectionID: first.ID,
		Type:      "text",
		Content:   map[string]any{"text": "Tighten the bolts."},
	}); err != nil {
		t.Fatalf("CreateModule() error = %v", err)
	}

	modules, err := svc.GetModules(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetModules() error = %v", err)
	}
	if len(modules) != 1 || modules[0].Type != "text" {
		t.Fatalf("unexpected modules: %#v", modules)
	}
}

func TestCreateModuleValidatesContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.CreateDocument(ctx, CreateDocumentRequest{Title: "Manual"})
	if err != nil {
		t.Fatalf("CreateDocument() error = %v", err)
	}
	section, err := svc.CreateSection(ctx, CreateSectionRequest{DocumentID: doc.ID, Title: "Install"})
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}

	_, err = svc.CreateModule(ctx, CreateModuleRequest{
		SectionID: section.ID,
		Type:      "text",
		Content:   map[string]any{"text": 42},
	})
	if !errors.Is(err, ErrModuleContentInvalid) {
		t.Fatalf("expected ErrModuleContentInvalid, got %v", err)
	}

	// Unknown types carry free-form payloads.
	if _, err := svc.CreateModule(ctx, CreateModuleRequest{
		SectionID: section.ID,
		Type:      "diagram",
		Content:   map[string]any{"anything": true},
	}); err != nil {
		t.Fatalf("expected free-form payload to pass, got %v", err)
	}
}

func TestUpdateModuleContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, _ := svc.CreateDocument(ctx, CreateDocumentRequest{Title: "Manual"})
	section, _ := svc.CreateSection(ctx, CreateSectionRequest{DocumentID: doc.ID, Title: "Install"})
	module, err := svc.CreateModule(ctx, CreateModuleRequest{
		SectionID: section.ID,
		Type:      "text",
		Content:   map[string]any{"text": "before"},
	})
	if err != nil {
		t.Fatalf("CreateModule() error = %v", err)
	}

	updated, err := svc.UpdateModuleContent(ctx, UpdateModuleContentRequest{
		ModuleID: module.ID,
		Content:  map[string]any{"text": "after"},
	})
	if err != nil {
		t.Fatalf("UpdateModuleContent() error = %v", err)
	}
	if updated.Content["text"] != "after" {
		t.Fatalf("unexpected content: %#v", updated.Content)
	}

	if _, err := svc.UpdateModuleContent(ctx, UpdateModuleContentRequest{
		ModuleID: module.ID,
		Content:  map[string]any{"text": false},
	}); !errors.Is(err, ErrModuleContentInvalid) {
		t.Fatalf("expected ErrModuleContentInvalid, got %v", err)
	}

	if _, err := svc.UpdateModuleContent(ctx, UpdateModuleContentRequest{
		ModuleID: uuid.New(),
		Content:  map[string]any{"text": "x"},
	}); !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
