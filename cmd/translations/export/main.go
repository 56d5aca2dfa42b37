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
	if err := runExport(os.Args[1:]); err != nil {
		log.Fatalf("translations export: %v", err)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("translations-export", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	dsn := fs.String("dsn", "", "SQLite DSN (overrides the config storage DSN)")
	documentID := fs.String("document", "", "Document ID to export")
	languageID := fs.String("language", "", "Target language ID")
	outPath := fs.String("out", "", "Output file path (defaults to the generated filename)")
	failFast := fs.Bool("fail-fast", false, "Abort the walk on the first section or module failure")
	concurrency := fs.Int("concurrency", 0, "Parallel translation lookups per section (0 = default)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only an explicitly passed -fail-fast may override the config value.
	var failFastOverride *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "fail-fast" {
			failFastOverride = failFast
		}
	})

	docID, err := bootstrap.ParseUUID(*documentID)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if docID == uuid.Nil {
		return fmt.Errorf("document is required")
	}
	langID, err := bootstrap.ParseUUID(*languageID)
	if err != nil {
		return fmt.Errorf("parse language: %w", err)
	}
	if langID == uuid.Nil {
		return fmt.Errorf("language is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:  *configPath,
		DSN:         *dsn,
		FailFast:    failFastOverride,
		Concurrency: *concurrency,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	result, err := module.Exchange.Export(context.Background(), exchange.ExportRequest{
		DocumentID: docID,
		LanguageID: langID,
	})
	if err != nil {
		return fmt.Errorf("export document: %w", err)
	}

	target := *outPath
	if target == "" {
		target = result.Filename
	}
	if err := os.WriteFile(target, []byte(result.CSV), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	fmt.Fprintf(os.Stdout, "wrote %d records to %s\n", result.Records, target)
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning.String())
	}
	return nil
}
