package exchange

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/doclane/doclane/internal/jobs"
	"github.com/doclane/doclane/translation"
	"github.com/google/uuid"
)

func newServiceFixture(t *testing.T) (*Service, *translation.MemoryStore, *jobs.InMemoryAuditRecorder, uuid.UUID, uuid.UUID) {
	t.Helper()

	docs, store, documentID, languageID, _ := newWalkFixture(t)
	walker := NewWalker(docs, store, NewExtractor(nil))
	applier := NewApplier(store)
	audit := jobs.NewInMemoryAuditRecorder()

	svc := NewService(walker, applier,
		ServiceWithClock(fixedClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))),
		ServiceWithAuditRecorder(audit),
	)
	return svc, store, audit, documentID, languageID
}

func TestExportRendersCSV(t *testing.T) {
	svc, _, audit, documentID, languageID := newServiceFixture(t)

	result, err := svc.Export(context.Background(), ExportRequest{DocumentID: documentID, LanguageID: languageID})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if result.Records != 3 {
		t.Fatalf("expected three records, got %d", result.Records)
	}

	wantName := "translations_doc_" + documentID.String() + "_lang_" + languageID.String() + "_2026-03-14.csv"
	if result.Filename != wantName {
		t.Fatalf("unexpected filename: %q", result.Filename)
	}
	if !strings.HasPrefix(result.CSV, "ID,Type,Field,SubID,Path,Original,Translated\n") {
		t.Fatalf("unexpected csv header: %q", result.CSV)
	}

	events := audit.Events()
	if len(events) != 1 || events[0].Action != "translations_exported" {
		t.Fatalf("expected export audit event, got %#v", events)
	}
}

func TestExportValidatesRequest(t *testing.T) {
	svc, _, _, documentID, _ := newServiceFixture(t)
	if _, err := svc.Export(context.Background(), ExportRequest{DocumentID: documentID}); err == nil {
		t.Fatal("expected missing language id to fail validation")
	}
}

func TestImportRoundTrip(t *testing.T) {
	svc, store, audit, documentID, languageID := newServiceFixture(t)
	ctx := context.Background()

	exported, err := svc.Export(ctx, ExportRequest{DocumentID: documentID, LanguageID: languageID})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// Translators edit the last column; simulate by replacing the empty
	// description translation.
	edited := strings.Replace(exported.CSV, `"How to install",""`, `"How to install","Einbauanleitung"`, 1)

	result, err := svc.Import(ctx, ImportRequest{DocumentID: documentID, LanguageID: languageID, CSV: edited})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if !result.Success {
		t.Fatalf("expected successful import, got %#v", result)
	}
	if result.Inserted+result.Updated != 2 {
		t.Fatalf("expected section and module items applied, got %#v", result)
	}

	sectionID := uuid.MustParse(strings.SplitN(exported.CSV, "\n", 3)[1][:36])
	section, err := store.GetSectionTranslation(ctx, sectionID, languageID)
	if err != nil {
		t.Fatalf("GetSectionTranslation() error = %v", err)
	}
	if section.Description == nil || *section.Description != "Einbauanleitung" {
		t.Fatalf("expected description to be synchronized, got %#v", section)
	}

	events := audit.Events()
	if len(events) != 2 || events[1].Action != "translations_imported" {
		t.Fatalf("expected import audit event, got %#v", events)
	}
}

func TestImportRejectsUnparsableCSV(t *testing.T) {
	svc, _, _, documentID, languageID := newServiceFixture(t)
	_, err := svc.Import(context.Background(), ImportRequest{
		DocumentID: documentID,
		LanguageID: languageID,
		CSV:        "not,a,valid,header\nrow",
	})
	if err == nil {
		t.Fatal("expected unparsable csv to fail hard")
	}
}

func TestImportValidatesRequest(t *testing.T) {
	svc, _, _, _, languageID := newServiceFixture(t)
	if _, err := svc.Import(context.Background(), ImportRequest{LanguageID: languageID}); err == nil {
		t.Fatal("expected missing csv payload to fail validation")
	}
}
