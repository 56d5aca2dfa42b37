package exchange

// Kind discriminates the owner of a translation record.
type Kind string

const (
	// KindSection marks records owned by a section (title/description).
	KindSection Kind = "section"
	// KindModule marks records owned by a content module.
	KindModule Kind = "module"
)

// Record is the flattened, addressable unit used for translation
// export/import. Records are transient: they exist only between a document
// walk and a CSV round trip, never in storage.
//
// The tuple (Kind, ID, Field, SubID) is unique within one export for one
// (document, language) pair and is the addressing key used to reassemble
// nested content.
type Record struct {
	// ID identifies the owning section or module.
	ID string
	// Kind is section or module.
	Kind Kind
	// Field is a dotted logical slot name within the module-type schema
	// (title, headers.code, items.text, descriptions.<componentCode>), not a
	// literal structural path.
	Field string
	// SubID disambiguates repeated slots: a bare index for array items, a
	// "row,col" pair for table cells. Empty otherwise.
	SubID string
	// Path is a human-readable breadcrumb for display and debugging only; it
	// carries no addressing semantics.
	Path string
	// Original is the source-language value. Never mutated by imports.
	Original string
	// Translated is the target-language value. Empty means not yet translated.
	Translated string
}

// Key returns the addressing tuple for the record.
func (r Record) Key() RecordKey {
	return RecordKey{Kind: r.Kind, ID: r.ID, Field: r.Field, SubID: r.SubID}
}

// RecordKey is the unique address of a translatable slot within one export.
type RecordKey struct {
	Kind  Kind
	ID    string
	Field string
	SubID string
}
