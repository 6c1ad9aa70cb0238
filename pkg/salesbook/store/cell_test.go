package store

import "testing"

func TestCellResolve(t *testing.T) {
	shared := []string{"Widget", "Gadget"}

	tests := []struct {
		name     string
		cell     Cell
		expected string
	}{
		{"inline text", Text("hello"), "hello"},
		{"empty inline text", Text(""), ""},
		{"shared ref", SharedRef(1), "Gadget"},
		{"shared ref first", SharedRef(0), "Widget"},
		{"shared ref out of range", SharedRef(5), ""},
		{"shared ref negative", SharedRef(-1), ""},
		{"shared ref malformed index", Cell{Kind: KindSharedRef, Raw: "abc"}, ""},
		{"missing cell", Cell{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Resolve(shared); got != tt.expected {
				t.Errorf("Resolve() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCellPresent(t *testing.T) {
	if (Cell{}).Present() {
		t.Error("missing cell reported present")
	}
	if !Text("").Present() {
		t.Error("empty text cell reported absent; empty and missing must differ")
	}
	if !SharedRef(0).Present() {
		t.Error("shared-ref cell reported absent")
	}
}

func TestResolveRow(t *testing.T) {
	shared := []string{"Acme"}
	row := []Cell{Text("C1"), SharedRef(0), Text(""), {}}

	got := ResolveRow(row, shared)
	want := []string{"C1", "Acme", "", ""}
	if len(got) != len(want) {
		t.Fatalf("ResolveRow() returned %d values, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveRow()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}
