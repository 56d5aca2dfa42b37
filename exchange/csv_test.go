package exchange

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeCSVQuotesTextColumns(t *testing.T) {
	records := []Record{
		{
			ID:         "11111111-1111-1111-1111-111111111111",
			Kind:       KindModule,
			Field:      "text",
			Path:       "/Install/text",
			Original:   `He said "hi"`,
			Translated: "",
		},
	}

	out := EncodeCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Type,Field,SubID,Path,Original,Translated" {
		t.Fatalf("unexpected header: %q", lines[0])
	}

	row := lines[1]
	if !strings.Contains(row, `"He said ""hi"""`) {
		t.Fatalf("expected doubled quotes in original column, got %q", row)
	}
	if !strings.Contains(row, `"/Install/text"`) {
		t.Fatalf("expected path column to be quoted, got %q", row)
	}
	if !strings.HasSuffix(row, `,""`) {
		t.Fatalf("expected empty translated column to stay quoted, got %q", row)
	}
	if !strings.HasPrefix(row, "11111111-1111-1111-1111-111111111111,module,text,") {
		t.Fatalf("expected bare id/type/field columns, got %q", row)
	}
}

func TestEncodeCSVQuotesBareColumnsWhenNeeded(t *testing.T) {
	out := EncodeCSV([]Record{{ID: "a,b", Kind: KindSection, Field: "title", Path: "/p", Original: "x"}})
	if !strings.Contains(out, `"a,b",section,`) {
		t.Fatalf("expected id with delimiter to be quoted, got %q", out)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := []Record{
		{ID: "id-1", Kind: KindSection, Field: "title", Path: "/Install/title", Original: "Install", Translated: "Installation"},
		{ID: "id-2", Kind: KindModule, Field: "text", Path: "/Install/text", Original: "Line one\nLine two", Translated: `quoted "value", with comma`},
		{ID: "id-3", Kind: KindModule, Field: "rows", SubID: "1,2", Path: "/Install/table/rows[1][2]", Original: "5 Nm", Translated: ""},
	}

	decoded, warnings, err := DecodeCSV(EncodeCSV(records))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if !reflect.DeepEqual(decoded, records) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", decoded, records)
	}
}

func TestDecodeCSVEmptyInput(t *testing.T) {
	if _, _, err := DecodeCSV("  \n \t"); !errors.Is(err, ErrCSVEmpty) {
		t.Fatalf("expected ErrCSVEmpty, got %v", err)
	}
}

func TestDecodeCSVInvalidHeader(t *testing.T) {
	if _, _, err := DecodeCSV("foo,bar\n1,2\n"); !errors.Is(err, ErrCSVHeaderInvalid) {
		t.Fatalf("expected ErrCSVHeaderInvalid, got %v", err)
	}
}

func TestDecodeCSVHeaderIsCaseInsensitive(t *testing.T) {
	text := "id,type,field,subid,path,original,translated\n" +
		`s1,section,title,,"/A/title","A","B"` + "\n"
	records, warnings, err := DecodeCSV(text)
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(warnings) != 0 || len(records) != 1 {
		t.Fatalf("expected one record, got %d records %d warnings", len(records), len(warnings))
	}
	if records[0].Translated != "B" {
		t.Fatalf("unexpected record: %#v", records[0])
	}
}

func TestDecodeCSVUnterminatedQuote(t *testing.T) {
	text := "ID,Type,Field,SubID,Path,Original,Translated\n" +
		`s1,section,title,,"/A/title","broken` + "\n"
	if _, _, err := DecodeCSV(text); !errors.Is(err, ErrCSVUnterminatedQuote) {
		t.Fatalf("expected ErrCSVUnterminatedQuote, got %v", err)
	}
}

func TestDecodeCSVSkipsMalformedRows(t *testing.T) {
	text := "ID,Type,Field,SubID,Path,Original,Translated\n" +
		"short,row\n" +
		`m1,widget,text,,"/p","a","b"` + "\n" +
		`m2,module,text,,"/p","a","b"` + "\n"

	records, warnings, err := DecodeCSV(text)
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "m2" {
		t.Fatalf("expected only the valid row, got %#v", records)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected two row warnings, got %v", warnings)
	}
	if warnings[0].Line != 2 || warnings[1].Line != 3 {
		t.Fatalf("unexpected warning lines: %v", warnings)
	}
}

func TestDecodeCSVHandlesCRLFAndBlankLines(t *testing.T) {
	text := "ID,Type,Field,SubID,Path,Original,Translated\r\n" +
		"\r\n" +
		`s1,section,title,,"/A/title","A",""` + "\r\n"

	records, warnings, err := DecodeCSV(text)
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(records) != 1 || records[0].Original != "A" {
		t.Fatalf("unexpected records: %#v", records)
	}
}
