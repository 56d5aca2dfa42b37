package exchange

import (
	"fmt"
	"strings"
)

// csvColumns is the fixed export header. This is the one bit-exact contract
// in the system: previously exported files must keep decoding.
var csvColumns = [...]string{"ID", "Type", "Field", "SubID", "Path", "Original", "Translated"}

// RowWarning reports one CSV row the decoder had to skip.
type RowWarning struct {
	Line   int
	Reason string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// EncodeCSV renders records as a single CSV blob. Path, Original, and
// Translated are always quoted, even when empty, so the decoder can
// distinguish an empty string from an absent column. ID, Type, Field, and
// SubID stay bare unless their content forces quoting.
func EncodeCSV(records []Record) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns[:], ","))
	b.WriteByte('\n')

	for _, record := range records {
		b.WriteString(encodeBare(record.ID))
		b.WriteByte(',')
		b.WriteString(encodeBare(string(record.Kind)))
		b.WriteByte(',')
		b.WriteString(encodeBare(record.Field))
		b.WriteByte(',')
		b.WriteString(encodeBare(record.SubID))
		b.WriteByte(',')
		b.WriteString(encodeQuoted(record.Path))
		b.WriteByte(',')
		b.WriteString(encodeQuoted(record.Original))
		b.WriteByte(',')
		b.WriteString(encodeQuoted(record.Translated))
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeCSV parses a CSV blob back into records. The decoder is a state
// machine rather than a line split so escaped quotes and embedded delimiters
// or newlines inside quoted values survive the round trip exactly. Every
// column tolerates both bare and quoted forms, which keeps files re-exported
// from spreadsheet tools importable. Rows with fewer columns than the header
// are skipped with a warning, not fatal.
func DecodeCSV(text string) ([]Record, []RowWarning, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, ErrCSVEmpty
	}

	rows, err := splitCSVRows(text)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 || !isHeaderRow(rows[0]) {
		return nil, nil, ErrCSVHeaderInvalid
	}

	records := make([]Record, 0, len(rows)-1)
	var warnings []RowWarning

	for i, row := range rows[1:] {
		line := i + 2
		if len(row) < len(csvColumns) {
			warnings = append(warnings, RowWarning{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", len(csvColumns), len(row)),
			})
			continue
		}
		kind := Kind(row[1])
		if kind != KindSection && kind != KindModule {
			warnings = append(warnings, RowWarning{
				Line:   line,
				Reason: fmt.Sprintf("unknown record type %q", row[1]),
			})
			continue
		}
		records = append(records, Record{
			ID:         row[0],
			Kind:       kind,
			Field:      row[2],
			SubID:      row[3],
			Path:       row[4],
			Original:   row[5],
			Translated: row[6],
		})
	}

	return records, warnings, nil
}

func encodeBare(value string) string {
	if strings.ContainsAny(value, "\",\n\r") {
		return encodeQuoted(value)
	}
	return value
}

func encodeQuoted(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func isHeaderRow(row []string) bool {
	if len(row) < len(csvColumns) {
		return false
	}
	for i, name := range csvColumns {
		if !strings.EqualFold(strings.TrimSpace(row[i]), name) {
			return false
		}
	}
	return true
}

func splitCSVRows(text string) ([][]string, error) {
	var rows [][]string
	var fields []string
	var field strings.Builder

	inQuotes := false
	rowStarted := false

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}
	endRow := func() {
		if !rowStarted && len(fields) == 0 && field.Len() == 0 {
			return
		}
		endField()
		rows = append(rows, fields)
		fields = nil
		rowStarted = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
			rowStarted = true
		case ',':
			endField()
			rowStarted = true
		case '\n':
			endRow()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field.WriteByte(c)
			rowStarted = true
		}
	}
	if inQuotes {
		return nil, ErrCSVUnterminatedQuote
	}
	endRow()

	return rows, nil
}
