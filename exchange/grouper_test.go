package exchange

import (
	"reflect"
	"testing"
)

func TestGroupRebuildsSection(t *testing.T) {
	records := []Record{
		{ID: "s1", Kind: KindSection, Field: "title", Translated: "Wartung"},
		{ID: "s1", Kind: KindSection, Field: "description", Translated: "Alle 100 Stunden"},
		{ID: "s1", Kind: KindSection, Field: "color", Translated: "ignored"},
	}

	items := Group(records)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	want := map[string]any{"title": "Wartung", "description": "Alle 100 Stunden"}
	if !reflect.DeepEqual(items[0].Content, want) {
		t.Fatalf("unexpected content: %#v", items[0].Content)
	}
}

func TestGroupRebuildsTable(t *testing.T) {
	records := []Record{
		{ID: "m1", Kind: KindModule, Field: "caption", Translated: "Anzugswerte"},
		{ID: "m1", Kind: KindModule, Field: "headers", SubID: "0", Translated: "Teil"},
		{ID: "m1", Kind: KindModule, Field: "headers", SubID: "1", Translated: "Drehmoment"},
		{ID: "m1", Kind: KindModule, Field: "rows", SubID: "0,0", Translated: "Schraube"},
		{ID: "m1", Kind: KindModule, Field: "rows", SubID: "0,1", Translated: "20 Nm"},
		{ID: "m1", Kind: KindModule, Field: "rows", SubID: "1,1", Translated: "15 Nm"},
	}

	items := Group(records)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	want := map[string]any{
		"caption": "Anzugswerte",
		"headers": []any{"Teil", "Drehmoment"},
		"rows": []any{
			[]any{"Schraube", "20 Nm"},
			[]any{"", "15 Nm"},
		},
	}
	if !reflect.DeepEqual(items[0].Content, want) {
		t.Fatalf("unexpected content:\n got %#v\nwant %#v", items[0].Content, want)
	}
}

func TestGroupChecklistFillsGaps(t *testing.T) {
	records := []Record{
		{ID: "m1", Kind: KindModule, Field: "items.text", SubID: "1", Translated: "Kühlmittel prüfen"},
	}

	items := Group(records)
	want := map[string]any{
		"items": []any{
			map[string]any{"checked": false, "text": ""},
			map[string]any{"checked": false, "text": "Kühlmittel prüfen"},
		},
	}
	if !reflect.DeepEqual(items[0].Content, want) {
		t.Fatalf("unexpected content: %#v", items[0].Content)
	}
}

func TestGroupBomModule(t *testing.T) {
	records := []Record{
		{ID: "m1", Kind: KindModule, Field: "title", Translated: "Teileliste"},
		{ID: "m1", Kind: KindModule, Field: "headers.part", Translated: "Teil"},
		{ID: "m1", Kind: KindModule, Field: "headers.qty", Translated: "Menge"},
		{ID: "m1", Kind: KindModule, Field: "descriptions.M8-BOLT", Translated: "Sechskantschraube"},
	}

	items := Group(records)
	want := map[string]any{
		"title":        "Teileliste",
		"headers":      map[string]any{"part": "Teil", "qty": "Menge"},
		"descriptions": map[string]any{"M8-BOLT": "Sechskantschraube"},
	}
	if !reflect.DeepEqual(items[0].Content, want) {
		t.Fatalf("unexpected content: %#v", items[0].Content)
	}
}

func TestGroupPreservesFirstAppearanceOrder(t *testing.T) {
	records := []Record{
		{ID: "s1", Kind: KindSection, Field: "title", Translated: "A"},
		{ID: "m1", Kind: KindModule, Field: "text", Translated: "B"},
		{ID: "s1", Kind: KindSection, Field: "description", Translated: "C"},
	}

	items := Group(records)
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	if items[0].ID != "s1" || items[1].ID != "m1" {
		t.Fatalf("unexpected item order: %s, %s", items[0].ID, items[1].ID)
	}
}

func TestGroupIsDeterministic(t *testing.T) {
	records := []Record{
		{ID: "m1", Kind: KindModule, Field: "rows", SubID: "0,1", Translated: "x"},
		{ID: "m1", Kind: KindModule, Field: "headers", SubID: "0", Translated: "y"},
		{ID: "s1", Kind: KindSection, Field: "title", Translated: "z"},
	}

	first := Group(records)
	second := Group(records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grouping is not deterministic:\n%#v\n%#v", first, second)
	}
}

func TestGroupIgnoresUnrecognizedShapes(t *testing.T) {
	records := []Record{
		{ID: "", Kind: KindModule, Field: "text", Translated: "no id"},
		{ID: "m1", Kind: KindModule, Field: "headers", SubID: "bad", Translated: "x"},
		{ID: "m1", Kind: KindModule, Field: "rows", SubID: "1,notanumber", Translated: "x"},
		{ID: "m1", Kind: KindModule, Field: "text", Translated: "kept"},
	}

	items := Group(records)
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	want := map[string]any{"text": "kept"}
	if !reflect.DeepEqual(items[0].Content, want) {
		t.Fatalf("unexpected content: %#v", items[0].Content)
	}
}
