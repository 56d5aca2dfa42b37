package translation_test

import (
	"context"
	"testing"
	"time"

	"github.com/doclane/doclane/domain"
	"github.com/doclane/doclane/pkg/testsupport"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T, name string) *bun.DB {
	t.Helper()

	db, err := testsupport.NewSQLiteMemoryDB(name)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = testsupport.CreateTables(ctx, db,
		(*translation.Language)(nil),
		(*translation.SectionTranslation)(nil),
		(*translation.ModuleTranslation)(nil),
	)
	if err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func TestBunStoreSectionTranslationLifecycle(t *testing.T) {
	db := newTestDB(t, "translation_section_test")
	store := translation.NewBunStore(db)
	ctx := context.Background()

	sectionID := uuid.New()
	languageID := uuid.New()

	if _, err := store.GetSectionTranslation(ctx, sectionID, languageID); !translation.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	created, err := store.CreateSectionTranslation(ctx, &translation.SectionTranslation{
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

	fetched, err := store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil {
		t.Fatalf("GetSectionTranslation() error = %v", err)
	}
	if fetched.Title != "Einbau" || fetched.Status != domain.StatusTranslated {
		t.Fatalf("unexpected record: %+v", fetched)
	}

	fetched.Title = "Montage"
	fetched.Status = domain.StatusApproved
	if _, err := store.UpdateSectionTranslation(ctx, fetched); err != nil {
		t.Fatalf("UpdateSectionTranslation() error = %v", err)
	}

	updated, err := store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil {
		t.Fatalf("GetSectionTranslation() after update error = %v", err)
	}
	if updated.Title != "Montage" || updated.Status != domain.StatusApproved {
		t.Fatalf("update not persisted: %+v", updated)
	}
}

func TestBunStoreModuleTranslationContentRoundTrip(t *testing.T) {
	db := newTestDB(t, "translation_module_test")
	store := translation.NewBunStore(db)
	ctx := context.Background()

	moduleID := uuid.New()
	languageID := uuid.New()

	content := map[string]any{
		"text":    "Ziehen Sie die Schrauben an.",
		"headers": []any{"Code", "Menge"},
	}
	if _, err := store.CreateModuleTranslation(ctx, &translation.ModuleTranslation{
		ModuleID:   moduleID,
		LanguageID: languageID,
		Content:    content,
		Status:     domain.StatusTranslated,
	}); err != nil {
		t.Fatalf("CreateModuleTranslation() error = %v", err)
	}

	fetched, err := store.GetModuleTranslation(ctx, moduleID, languageID)
	if err != nil {
		t.Fatalf("GetModuleTranslation() error = %v", err)
	}
	if fetched.Content["text"] != "Ziehen Sie die Schrauben an." {
		t.Fatalf("unexpected content: %#v", fetched.Content)
	}

	if _, err := store.GetModuleTranslation(ctx, moduleID, uuid.New()); !translation.IsNotFound(err) {
		t.Fatalf("expected not found for other language, got %v", err)
	}
}

func TestBunLanguageRepositoryGetByCode(t *testing.T) {
	db := newTestDB(t, "translation_language_test")
	repo := translation.NewBunLanguageRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &translation.Language{Code: "de", Name: "German"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	language, err := repo.GetByCode(ctx, "de")
	if err != nil {
		t.Fatalf("GetByCode() error = %v", err)
	}
	if language.Name != "German" {
		t.Fatalf("unexpected language: %+v", language)
	}

	if _, err := repo.GetByCode(ctx, "fr"); !translation.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
