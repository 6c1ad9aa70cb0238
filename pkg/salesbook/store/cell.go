// Package store gives row-oriented access to the workbook that backs the
// sales catalog: ordered rows of cells per sheet, single-cell writes, and
// shared-string resolution.
package store

import "strconv"

// CellKind classifies how a raw cell carries its value.
type CellKind uint8

const (
	// KindMissing marks a cell that is absent from its row.
	KindMissing CellKind = iota
	// KindText marks a cell whose value is stored inline.
	KindText
	// KindSharedRef marks a cell whose value is an index into the
	// workbook's shared-string table.
	KindSharedRef
)

// Cell is one raw cell as read from the document store.
type Cell struct {
	Kind CellKind
	Raw  string
}

// Text returns an inline-text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Raw: s} }

// SharedRef returns a cell referencing the shared-string table by index.
func SharedRef(idx int) Cell {
	return Cell{Kind: KindSharedRef, Raw: strconv.Itoa(idx)}
}

// Present reports whether the cell exists in its row. An empty present
// cell is distinct from a missing one.
func (c Cell) Present() bool { return c.Kind != KindMissing }

// Resolve returns the cell's logical text. Shared-string references are
// looked up in shared; a malformed or out-of-range index resolves to the
// empty string rather than an error. Missing cells resolve to "".
func (c Cell) Resolve(shared []string) string {
	switch c.Kind {
	case KindText:
		return c.Raw
	case KindSharedRef:
		idx, err := strconv.Atoi(c.Raw)
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	default:
		return ""
	}
}

// ResolveRow resolves an ordered row of raw cells against shared.
func ResolveRow(row []Cell, shared []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Resolve(shared)
	}
	return out
}
