package exchange

import (
	"strconv"
	"strings"
)

// Item is one reconstituted translation target: the nested translated
// content for a single section or module, rebuilt from flat records.
type Item struct {
	Kind Kind
	ID   string
	// Content holds the reconstructed nested object. For sections the keys
	// are title/description; for modules it mirrors the module's original
	// JSON shape with translated leaf values.
	Content map[string]any
}

// Group reassembles flat records into one item per (kind, id), inverting the
// extractor's flattening. Items preserve first-appearance order so applies
// stay deterministic. Grouping is pure: the same records always produce
// structurally equal items. Record shapes the grouper does not recognize are
// ignored, keeping old CSV files importable after schema additions.
func Group(records []Record) []*Item {
	index := make(map[RecordKey]*Item)
	itemKey := func(r Record) RecordKey {
		return RecordKey{Kind: r.Kind, ID: r.ID}
	}

	var items []*Item
	for _, record := range records {
		if record.ID == "" {
			continue
		}
		key := itemKey(record)
		item, ok := index[key]
		if !ok {
			item = &Item{
				Kind:    record.Kind,
				ID:      record.ID,
				Content: make(map[string]any),
			}
			index[key] = item
			items = append(items, item)
		}

		switch record.Kind {
		case KindSection:
			applySectionField(item, record)
		case KindModule:
			applyModuleField(item, record)
		}
	}
	return items
}

func applySectionField(item *Item, record Record) {
	switch record.Field {
	case "title", "description":
		item.Content[record.Field] = record.Translated
	}
}

func applyModuleField(item *Item, record Record) {
	content := item.Content

	switch {
	case record.Field == "headers" && record.SubID != "":
		index, err := strconv.Atoi(record.SubID)
		if err != nil || index < 0 {
			return
		}
		headers := growSlice(sliceAt(content, "headers"), index+1, func() any { return "" })
		headers[index] = record.Translated
		content["headers"] = headers

	case record.Field == "rows" && strings.Contains(record.SubID, ","):
		rowIdx, colIdx, ok := parseCellSubID(record.SubID)
		if !ok {
			return
		}
		rows := growSlice(sliceAt(content, "rows"), rowIdx+1, func() any { return []any{} })
		row, _ := rows[rowIdx].([]any)
		row = growSlice(row, colIdx+1, func() any { return "" })
		row[colIdx] = record.Translated
		rows[rowIdx] = row
		content["rows"] = rows

	case record.Field == "items.text" && record.SubID != "":
		index, err := strconv.Atoi(record.SubID)
		if err != nil || index < 0 {
			return
		}
		items := growSlice(sliceAt(content, "items"), index+1, func() any {
			return map[string]any{"checked": false, "text": ""}
		})
		entry, ok := items[index].(map[string]any)
		if !ok {
			entry = map[string]any{"checked": false}
			items[index] = entry
		}
		entry["text"] = record.Translated
		content["items"] = items

	case strings.HasPrefix(record.Field, "descriptions."):
		code := strings.TrimPrefix(record.Field, "descriptions.")
		if code == "" {
			return
		}
		descriptions := ensureMap(content, "descriptions")
		descriptions[code] = record.Translated

	case record.SubID == "" && strings.Contains(record.Field, "."):
		parent, child, _ := strings.Cut(record.Field, ".")
		if parent == "" || child == "" {
			return
		}
		nested := ensureMap(content, parent)
		nested[child] = record.Translated

	case record.SubID == "":
		content[record.Field] = record.Translated

		// Any other shape is a schema addition this build does not know;
		// ignore it rather than corrupting the reconstruction.
	}
}

func parseCellSubID(subID string) (int, int, bool) {
	rowPart, colPart, ok := strings.Cut(subID, ",")
	if !ok {
		return 0, 0, false
	}
	rowIdx, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil || rowIdx < 0 {
		return 0, 0, false
	}
	colIdx, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil || colIdx < 0 {
		return 0, 0, false
	}
	return rowIdx, colIdx, true
}

func growSlice(values []any, size int, fill func() any) []any {
	for len(values) < size {
		values = append(values, fill())
	}
	return values
}

func ensureMap(content map[string]any, field string) map[string]any {
	if nested, ok := content[field].(map[string]any); ok {
		return nested
	}
	nested := make(map[string]any)
	content[field] = nested
	return nested
}
