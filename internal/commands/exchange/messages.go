package exchangecmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	exportMessageType  = "doclane.translations.export_document"
	importMessageType  = "doclane.translations.import_document"
	suggestMessageType = "doclane.translations.suggest_document"
)

// ExportTranslationsCommand renders every translatable slot of a document as
// a CSV exchange file for the target language.
type ExportTranslationsCommand struct {
	// DocumentID selects the document whose sections and modules are walked.
	DocumentID uuid.UUID `json:"document_id"`
	// LanguageID selects the target language whose existing translations pre-fill the file.
	LanguageID uuid.UUID `json:"language_id"`
}

// Type implements command.Message.
func (ExportTranslationsCommand) Type() string { return exportMessageType }

// Validate ensures both identifiers are present before handlers execute.
func (cmd ExportTranslationsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.DocumentID, validation.Required),
		validation.Field(&cmd.LanguageID, validation.Required),
	)
}

// ImportTranslationsCommand synchronizes an edited CSV exchange file back
// into the translation store.
type ImportTranslationsCommand struct {
	// DocumentID identifies the document the CSV belongs to, for auditing.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// LanguageID selects the language the translated values are written under.
	LanguageID uuid.UUID `json:"language_id"`
	// CSV is the raw file content as uploaded.
	CSV string `json:"csv"`
}

// Type implements command.Message.
func (ImportTranslationsCommand) Type() string { return importMessageType }

// Validate ensures the language and payload are present before handlers execute.
func (cmd ImportTranslationsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.LanguageID, validation.Required),
		validation.Field(&cmd.CSV, validation.Required),
	)
}

// SuggestTranslationsCommand fills untranslated slots of a document with
// provider suggestions, stamped ai_suggested.
type SuggestTranslationsCommand struct {
	// DocumentID selects the document to suggest translations for.
	DocumentID uuid.UUID `json:"document_id"`
	// LanguageID selects the target language.
	LanguageID uuid.UUID `json:"language_id"`
	// LanguageCode is the human language code passed to the provider (e.g. "de").
	LanguageCode string `json:"language_code"`
}

// Type implements command.Message.
func (SuggestTranslationsCommand) Type() string { return suggestMessageType }

// Validate ensures identifiers and language code are present before handlers execute.
func (cmd SuggestTranslationsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.DocumentID, validation.Required),
		validation.Field(&cmd.LanguageID, validation.Required),
		validation.Field(&cmd.LanguageCode, validation.Required),
	)
}
