package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the workbook path does not exist.
var ErrFileNotFound = errors.New("file not found")

// SheetNotFoundError indicates a required sheet is missing from the
// workbook.
type SheetNotFoundError struct {
	Name string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Name)
}

// Document is the contract the catalog loader and the write-back path
// need from a workbook: ordered rows of raw cells per sheet, a
// single-cell overwrite, and persistence. Row and column indices are
// 0-based throughout.
type Document interface {
	// Rows returns the sheet's rows in physical order. Trailing absent
	// cells are trimmed, so a short row means missing columns.
	Rows(sheet string) ([][]Cell, error)
	// SharedStrings returns the workbook's shared-string table, or nil
	// when the document resolves shared strings itself.
	SharedStrings() []string
	// SetCell overwrites one cell with a plain string value.
	SetCell(sheet string, row, col int, value string) error
	// Save persists all pending cell writes.
	Save() error
}

// Workbook is the excelize-backed Document used in production. It holds
// the file open for the duration of one run.
type Workbook struct {
	f *excelize.File
}

// Open opens the workbook at path for reading and writing.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

// Rows returns the named sheet's rows. Values are raw, so date cells
// keep their serial form instead of a number-format rendering. Shared
// strings are already resolved by excelize, so cells come back as
// inline text.
func (w *Workbook) Rows(sheet string) ([][]Cell, error) {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, &SheetNotFoundError{Name: sheet}
	}
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = Text(v)
		}
		out[i] = cells
	}
	return out, nil
}

// SharedStrings returns nil: excelize resolves the shared-string table
// before rows reach the caller.
func (w *Workbook) SharedStrings() []string { return nil }

// SetCell overwrites one cell with a plain string value.
func (w *Workbook) SetCell(sheet string, row, col int, value string) error {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return w.f.SetCellStr(sheet, name, value)
}

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error { return w.f.Save() }

// Close releases the workbook handle without saving.
func (w *Workbook) Close() error { return w.f.Close() }
