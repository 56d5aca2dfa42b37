package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/doclane/doclane/domain"
	"github.com/google/uuid"
)

func TestMemoryStoreSectionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sectionID := uuid.New()
	languageID := uuid.New()

	if _, err := store.GetSectionTranslation(ctx, sectionID, languageID); !IsNotFound(err) {
		t.Fatalf("expected not-found before create, got %v", err)
	}

	created, err := store.CreateSectionTranslation(ctx, &SectionTranslation{
		SectionID:  sectionID,
		LanguageID: languageID,
		Title:      "Einbau",
		Status:     domain.StatusTranslated,
	})
	if err != nil {
		t.Fatalf("CreateSectionTranslation() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	created.Title = "Montage"
	if _, err := store.UpdateSectionTranslation(ctx, created); err != nil {
		t.Fatalf("UpdateSectionTranslation() error = %v", err)
	}

	fetched, err := store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil {
		t.Fatalf("GetSectionTranslation() error = %v", err)
	}
	if fetched.Title != "Montage" {
		t.Fatalf("unexpected title: %q", fetched.Title)
	}
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	moduleID := uuid.New()
	languageID := uuid.New()

	if _, err := store.CreateModuleTranslation(ctx, &ModuleTranslation{
		ModuleID:   moduleID,
		LanguageID: languageID,
		Content:    map[string]any{"text": "original"},
		Status:     domain.StatusTranslated,
	}); err != nil {
		t.Fatalf("CreateModuleTranslation() error = %v", err)
	}

	first, err := store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil {
		t.Fatalf("GetModuleTranslation() error = %v", err)
	}
	first.Content["text"] = "mutated"

	second, err := store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil {
		t.Fatalf("GetModuleTranslation() error = %v", err)
	}
	if second.Content["text"] != "original" {
		t.Fatal("expected stored content to be isolated from caller mutation")
	}
}

func TestMemoryStoreWriteFailureHooks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	moduleID := uuid.New()
	languageID := uuid.New()
	boom := errors.New("disk full")

	store.FailModuleWrites(moduleID, boom)
	if _, err := store.CreateModuleTranslation(ctx, &ModuleTranslation{
		ModuleID:   moduleID,
		LanguageID: languageID,
	}); !errors.Is(err, boom) {
		t.Fatalf("expected configured failure, got %v", err)
	}
}

func TestMemoryLanguageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryLanguageRepository()

	created, err := repo.Create(ctx, &Language{Code: "de", Name: "German"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	byCode, err := repo.GetByCode(ctx, "de")
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if byCode.ID != created.ID {
		t.Fatalf("expected matching id, got %s != %s", byCode.ID, created.ID)
	}

	if _, err := repo.GetByCode(ctx, "fr"); !IsNotFound(err) {
		t.Fatalf("expected not-found for unknown code, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("List() = %v, %v", all, err)
	}
}
