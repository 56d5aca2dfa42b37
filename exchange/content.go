package exchange

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// ParseContent normalizes a stored content payload into a map. Some host
// stores persist module content as a JSON string rather than a JSON object;
// both shapes are accepted. A nil or unparseable payload yields nil.
func ParseContent(raw any) map[string]any {
	switch typed := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		return typed
	case string:
		return parseJSONObject([]byte(typed))
	case []byte:
		return parseJSONObject(typed)
	case json.RawMessage:
		return parseJSONObject(typed)
	default:
		return nil
	}
}

func parseJSONObject(data []byte) map[string]any {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil
	}
	return out
}

func stringAt(content map[string]any, field string) (string, bool) {
	if content == nil {
		return "", false
	}
	value, ok := content[field]
	if !ok {
		return "", false
	}
	return asString(value)
}

func asString(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case nil:
		return "", false
	default:
		return "", false
	}
}

func sliceAt(content map[string]any, field string) []any {
	if content == nil {
		return nil
	}
	value, ok := content[field].([]any)
	if !ok {
		return nil
	}
	return value
}

func mapAt(content map[string]any, field string) map[string]any {
	if content == nil {
		return nil
	}
	value, ok := content[field].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

func stringIndex(values []any, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	s, _ := asString(values[i])
	return s
}

func objectStringIndex(values []any, i int, field string) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	obj, ok := values[i].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := stringAt(obj, field)
	return s
}

func rowAt(rows []any, r int) []any {
	if r < 0 || r >= len(rows) {
		return nil
	}
	row, ok := rows[r].([]any)
	if !ok {
		return nil
	}
	return row
}

func sortedKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// bomIDFromContent reads the bomId reference out of a bom module's content.
// Host stores serialize it as a string or a JSON number.
func bomIDFromContent(content map[string]any) (string, bool) {
	if content == nil {
		return "", false
	}
	switch typed := content["bomId"].(type) {
	case string:
		trimmed := strings.TrimSpace(typed)
		return trimmed, trimmed != ""
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case int:
		return strconv.Itoa(typed), true
	case json.Number:
		return typed.String(), true
	default:
		return "", false
	}
}
