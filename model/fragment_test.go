package model

import (
	"encoding/json"
	"testing"
)

func TestSortReadingOrder(t *testing.T) {
	fragments := []Fragment{
		{Text: "third", X: 10, Y: 200},
		{Text: "second", X: 300, Y: 100},
		{Text: "first", X: 10, Y: 100},
	}

	SortReadingOrder(fragments)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if fragments[i].Text != w {
			t.Errorf("fragment %d = %q, want %q", i, fragments[i].Text, w)
		}
	}
}

func TestSortReadingOrderStable(t *testing.T) {
	fragments := []Fragment{
		{Text: "a", X: 50, Y: 100},
		{Text: "b", X: 50, Y: 100},
	}

	SortReadingOrder(fragments)

	if fragments[0].Text != "a" || fragments[1].Text != "b" {
		t.Errorf("equal positions reordered: got %q, %q", fragments[0].Text, fragments[1].Text)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNone, "none"},
		{LevelH1, "H1"},
		{LevelH2, "H2"},
		{LevelH3, "H3"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelJSONRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelH1, LevelH2, LevelH3} {
		data, err := json.Marshal(level)
		if err != nil {
			t.Fatalf("marshal %v: %v", level, err)
		}

		var got Level
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if got != level {
			t.Errorf("round trip of %v produced %v", level, got)
		}
	}
}

func TestLevelUnmarshalUnknown(t *testing.T) {
	var l Level
	if err := json.Unmarshal([]byte(`"H4"`), &l); err == nil {
		t.Error("expected error for unknown level H4")
	}
}

func TestOutlineJSONShape(t *testing.T) {
	outline := Outline{
		Title: "My Report ",
		Headings: []Heading{
			{Level: LevelH1, Text: "1. Introduction ", Page: 0},
		},
	}

	data, err := json.Marshal(outline)
	if err != nil {
		t.Fatalf("marshal outline: %v", err)
	}

	want := `{"title":"My Report ","outline":[{"level":"H1","text":"1. Introduction ","page":0}]}`
	if string(data) != want {
		t.Errorf("outline JSON = %s, want %s", data, want)
	}
}

func TestNewOutlineSerializesEmptyArray(t *testing.T) {
	data, err := json.Marshal(NewOutline())
	if err != nil {
		t.Fatalf("marshal empty outline: %v", err)
	}

	want := `{"title":"","outline":[]}`
	if string(data) != want {
		t.Errorf("empty outline JSON = %s, want %s", data, want)
	}
}
