package exchange

import (
	"context"
	"fmt"
	"strconv"

	"github.com/doclane/doclane/bom"
	"github.com/doclane/doclane/internal/logging"
	"github.com/doclane/doclane/pkg/interfaces"
	"github.com/google/uuid"
)

// ExtractorOption mutates the extractor configuration.
type ExtractorOption func(*Extractor)

// ExtractorWithLogger injects the logger used by the extractor.
func ExtractorWithLogger(logger interfaces.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Extractor flattens one module's translatable slots into records. It is a
// pure function of its inputs except for a single resolver call on bom
// modules, whose component descriptions live in the BOM store rather than in
// the module's own JSON content.
type Extractor struct {
	boms   bom.DescriptionResolver
	logger interfaces.Logger
}

// NewExtractor constructs a field extractor. The resolver may be nil when no
// bom modules are expected; bom description slots then extract to nothing.
func NewExtractor(boms bom.DescriptionResolver, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		boms:   boms,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract emits one record per translatable slot of the module, reading
// original values from originalContent and existing translations from
// translatedContent. Missing or corrupt content yields zero records rather
// than an error so one bad module never aborts a document export. The
// returned error is non-nil only when the BOM resolver fails; records
// extracted before the failure are still returned.
func (e *Extractor) Extract(ctx context.Context, moduleID, moduleType string, originalContent, translatedContent any, pathPrefix string) ([]Record, error) {
	rules := SchemaFor(moduleType)
	if len(rules) == 0 {
		return nil, nil
	}

	original := ParseContent(originalContent)
	if original == nil {
		return nil, nil
	}
	translated := ParseContent(translatedContent)

	records := make([]Record, 0, len(rules))
	var resolveErr error

	for _, rule := range rules {
		switch r := rule.(type) {
		case ScalarRule:
			value, present := stringAt(original, r.Field)
			if r.Optional && (!present || value == "") {
				continue
			}
			translatedValue, _ := stringAt(translated, r.Field)
			records = append(records, Record{
				ID:         moduleID,
				Kind:       KindModule,
				Field:      r.RecordField(),
				Path:       fmt.Sprintf("%s/%s", pathPrefix, r.Field),
				Original:   value,
				Translated: translatedValue,
			})

		case ArrayRule:
			values := sliceAt(original, r.Field)
			translatedValues := sliceAt(translated, r.Field)
			for i := range values {
				var originalValue, translatedValue, path string
				if r.Elem == "" {
					originalValue = stringIndex(values, i)
					translatedValue = stringIndex(translatedValues, i)
					path = fmt.Sprintf("%s/%s[%d]", pathPrefix, r.Field, i)
				} else {
					originalValue = objectStringIndex(values, i, r.Elem)
					translatedValue = objectStringIndex(translatedValues, i, r.Elem)
					path = fmt.Sprintf("%s/%s[%d].%s", pathPrefix, r.Field, i, r.Elem)
				}
				records = append(records, Record{
					ID:         moduleID,
					Kind:       KindModule,
					Field:      r.RecordField(),
					SubID:      strconv.Itoa(i),
					Path:       path,
					Original:   originalValue,
					Translated: translatedValue,
				})
			}

		case GridRule:
			rows := sliceAt(original, r.Field)
			translatedRows := sliceAt(translated, r.Field)
			for rowIdx := range rows {
				row := rowAt(rows, rowIdx)
				translatedRow := rowAt(translatedRows, rowIdx)
				for colIdx := range row {
					records = append(records, Record{
						ID:         moduleID,
						Kind:       KindModule,
						Field:      r.RecordField(),
						SubID:      fmt.Sprintf("%d,%d", rowIdx, colIdx),
						Path:       fmt.Sprintf("%s/%s[%d][%d]", pathPrefix, r.Field, rowIdx, colIdx),
						Original:   stringIndex(row, colIdx),
						Translated: stringIndex(translatedRow, colIdx),
					})
				}
			}

		case KeyedRule:
			values := mapAt(original, r.Field)
			translatedValues := mapAt(translated, r.Field)
			for _, key := range sortedKeys(values) {
				originalValue, _ := stringAt(values, key)
				translatedValue, _ := stringAt(translatedValues, key)
				records = append(records, Record{
					ID:         moduleID,
					Kind:       KindModule,
					Field:      r.Field + "." + key,
					Path:       fmt.Sprintf("%s/%s.%s", pathPrefix, r.Field, key),
					Original:   originalValue,
					Translated: translatedValue,
				})
			}

		case ResolverRule:
			descriptions, err := e.resolveDescriptions(ctx, original)
			if err != nil {
				resolveErr = err
				continue
			}
			translatedValues := mapAt(translated, r.Field)
			for _, component := range descriptions {
				translatedValue, _ := stringAt(translatedValues, component.Code)
				records = append(records, Record{
					ID:         moduleID,
					Kind:       KindModule,
					Field:      r.Field + "." + component.Code,
					Path:       fmt.Sprintf("%s/%s.%s", pathPrefix, r.Field, component.Code),
					Original:   component.Description,
					Translated: translatedValue,
				})
			}
		}
	}

	return records, resolveErr
}

func (e *Extractor) resolveDescriptions(ctx context.Context, original map[string]any) ([]bom.ComponentDescription, error) {
	if e.boms == nil {
		return nil, nil
	}
	rawID, ok := bomIDFromContent(original)
	if !ok {
		return nil, nil
	}
	bomID, err := uuid.Parse(rawID)
	if err != nil {
		e.logger.Warn("exchange.extract.bom_id_invalid", "bom_id", rawID)
		return nil, nil
	}
	descriptions, err := e.boms.ComponentDescriptions(ctx, bomID)
	if err != nil {
		if bom.IsNotFound(err) {
			// A dangling BOM reference translates to zero description slots.
			return nil, nil
		}
		return nil, fmt.Errorf("exchange: resolve bom descriptions: %w", err)
	}
	return descriptions, nil
}
