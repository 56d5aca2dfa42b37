package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/doclane/doclane/cmd/translations/internal/bootstrap"
	"github.com/doclane/doclane/exchange"
	"github.com/google/uuid"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("translations import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("translations-import", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	dsn := fs.String("dsn", "", "SQLite DSN (overrides the config storage DSN)")
	documentID := fs.String("document", "", "Document ID the CSV belongs to (recorded in the audit trail)")
	languageID := fs.String("language", "", "Target language ID")
	filePath := fs.String("file", "", "Path to the edited CSV file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	langID, err := bootstrap.ParseUUID(*languageID)
	if err != nil {
		return fmt.Errorf("parse language: %w", err)
	}
	if langID == uuid.Nil {
		return fmt.Errorf("language is required")
	}
	docID, err := bootstrap.ParseUUID(*documentID)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if *filePath == "" {
		return fmt.Errorf("file is required")
	}

	payload, err := os.ReadFile(*filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", *filePath, err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: *configPath,
		DSN:        *dsn,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	result, err := module.Exchange.Import(context.Background(), exchange.ImportRequest{
		DocumentID: docID,
		LanguageID: langID,
		CSV:        string(payload),
	})
	if err != nil {
		return fmt.Errorf("import csv: %w", err)
	}

	fmt.Fprintf(os.Stdout, "inserted %d, updated %d translations\n", result.Inserted, result.Updated)
	for _, skipped := range result.SkippedRows {
		fmt.Fprintf(os.Stderr, "skipped line %d: %s\n", skipped.Line, skipped.Reason)
	}
	for _, itemErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "failed: %s\n", itemErr.String())
	}
	if !result.Success {
		return fmt.Errorf("import completed with %d item errors", len(result.Errors))
	}
	return nil
}
