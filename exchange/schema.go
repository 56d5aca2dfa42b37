package exchange

import "sort"

// Rule describes how one translatable slot of a module type is read from the
// original content and written back into translated content. The set of rule
// shapes is closed: the extractor and grouper dispatch on the concrete types
// below, so adding a shape is a localized, compile-checked change.
type Rule interface {
	// RecordField is the Field value stamped on emitted records.
	RecordField() string

	rule()
}

// ScalarRule extracts a single string slot (content.<field>).
type ScalarRule struct {
	Field string
	// Optional slots are emitted only when present and non-empty in the
	// original content (image captions, link descriptions).
	Optional bool
}

// ArrayRule extracts one record per element of content.<field>. When Elem is
// set the elements are objects and Elem names the translatable property
// (checklist items carry {text, checked}).
type ArrayRule struct {
	Field string
	Elem  string
}

// GridRule extracts one record per cell of a 2-D array (table rows), with a
// "row,col" SubID.
type GridRule struct {
	Field string
}

// KeyedRule extracts one record per key of the content.<field> object, with
// the key folded into the record field name (headers.code).
type KeyedRule struct {
	Field string
}

// ResolverRule extracts one record per component code returned by the BOM
// description resolver. The codes live in the BOM store, not in the module's
// own JSON content.
type ResolverRule struct {
	Field string
}

func (r ScalarRule) RecordField() string { return r.Field }
func (r ArrayRule) RecordField() string {
	if r.Elem == "" {
		return r.Field
	}
	return r.Field + "." + r.Elem
}
func (r GridRule) RecordField() string     { return r.Field }
func (r KeyedRule) RecordField() string    { return r.Field }
func (r ResolverRule) RecordField() string { return r.Field }

func (ScalarRule) rule()   {}
func (ArrayRule) rule()    {}
func (GridRule) rule()     {}
func (KeyedRule) rule()    {}
func (ResolverRule) rule() {}

// moduleSchemas is the fixed registry mapping module type names to their
// ordered extraction rules. Types absent from the table have no translatable
// slots and are skipped silently so unknown types never break an export.
var moduleSchemas = map[string][]Rule{
	"text": {
		ScalarRule{Field: "text"},
	},
	"warning": {
		ScalarRule{Field: "title"},
		ScalarRule{Field: "message"},
	},
	"danger": {
		ScalarRule{Field: "title"},
		ScalarRule{Field: "description"},
	},
	"caution": {
		ScalarRule{Field: "title"},
		ScalarRule{Field: "description"},
	},
	"note": {
		ScalarRule{Field: "title"},
		ScalarRule{Field: "description"},
	},
	"safety-instructions": {
		ScalarRule{Field: "title"},
		ScalarRule{Field: "description"},
	},
	"image": {
		ScalarRule{Field: "caption", Optional: true},
		ScalarRule{Field: "alt", Optional: true},
	},
	"video": {
		ScalarRule{Field: "caption", Optional: true},
	},
	"table": {
		ScalarRule{Field: "caption"},
		ArrayRule{Field: "headers"},
		GridRule{Field: "rows"},
	},
	"checklist": {
		ArrayRule{Field: "items", Elem: "text"},
	},
	"bom": {
		ScalarRule{Field: "title"},
		KeyedRule{Field: "headers"},
		KeyedRule{Field: "messages"},
		ResolverRule{Field: "descriptions"},
	},
	"link": {
		ScalarRule{Field: "text"},
		ScalarRule{Field: "description", Optional: true},
	},
}

// SchemaFor returns the extraction rules for the module type, or nil when the
// type exposes no translatable slots.
func SchemaFor(moduleType string) []Rule {
	return moduleSchemas[moduleType]
}

// RegisteredTypes lists the module types with translatable slots, sorted.
func RegisteredTypes() []string {
	out := make([]string, 0, len(moduleSchemas))
	for name := range moduleSchemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
