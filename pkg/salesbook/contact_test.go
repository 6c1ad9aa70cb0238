package salesbook

import (
	"testing"

	"github.com/mzaytsev/salesbook/pkg/salesbook/parser"
	"github.com/mzaytsev/salesbook/pkg/salesbook/store"
)

// fakeDocument records single-cell writes so the write-back scan can be
// checked without a workbook on disk.
type fakeDocument struct {
	sheets map[string][][]store.Cell
	writes []cellWrite
	saves  int
}

type cellWrite struct {
	sheet    string
	row, col int
	value    string
}

func (d *fakeDocument) Rows(sheet string) ([][]store.Cell, error) {
	rows, ok := d.sheets[sheet]
	if !ok {
		return nil, &store.SheetNotFoundError{Name: sheet}
	}
	return rows, nil
}

func (d *fakeDocument) SharedStrings() []string { return nil }

func (d *fakeDocument) SetCell(sheet string, row, col int, value string) error {
	d.writes = append(d.writes, cellWrite{sheet, row, col, value})
	return nil
}

func (d *fakeDocument) Save() error {
	d.saves++
	return nil
}

func row(vals ...string) []store.Cell {
	cells := make([]store.Cell, len(vals))
	for i, v := range vals {
		cells[i] = store.Text(v)
	}
	return cells
}

func clientsSheet() [][]store.Cell {
	return [][]store.Cell{
		row("Код", "Организация", "Адрес", "Контакт"),
		row("C1", "Acme Corp", "Москва", "Иванов"),
		row("C2", "ООО Ромашка", "Казань", "Петров"),
		row("C3", "Acme Corp", "Тверь", "Смирнов"), // same name again: first match wins
	}
}

func TestWriteContactCell(t *testing.T) {
	doc := &fakeDocument{sheets: map[string][][]store.Cell{
		parser.SheetClients: clientsSheet(),
	}}

	if err := writeContactCell(doc, "acme corp", "Сидоров"); err != nil {
		t.Fatalf("writeContactCell failed: %v", err)
	}
	if len(doc.writes) != 1 {
		t.Fatalf("Expected exactly one write, got %d", len(doc.writes))
	}
	w := doc.writes[0]
	if w.sheet != parser.SheetClients || w.row != 1 || w.col != 3 || w.value != "Сидоров" {
		t.Errorf("Write = %+v", w)
	}
	if doc.saves != 1 {
		t.Errorf("Expected one save, got %d", doc.saves)
	}
}

func TestWriteContactCellNoMatch(t *testing.T) {
	doc := &fakeDocument{sheets: map[string][][]store.Cell{
		parser.SheetClients: clientsSheet(),
	}}

	// Sheet diverged from the catalog: no matching row means no write
	// and no error.
	if err := writeContactCell(doc, "ЗАО Исчезнувшее", "Кто-то"); err != nil {
		t.Fatalf("writeContactCell failed: %v", err)
	}
	if len(doc.writes) != 0 || doc.saves != 0 {
		t.Errorf("Expected no writes, got writes=%d saves=%d", len(doc.writes), doc.saves)
	}
}

func TestSessionOverFakeDocument(t *testing.T) {
	doc := &fakeDocument{sheets: map[string][][]store.Cell{
		parser.SheetProducts: {
			row("Код", "Наименование", "Ед.", "Цена"),
			row("P1", "Widget", "pcs", "10 ₽"),
		},
		parser.SheetClients: clientsSheet(),
		parser.SheetOrders: {
			row("Код", "Товар", "Клиент", "Номер", "Кол-во", "Дата"),
			row("O1", "P1", "C1", "N-1", "1", "45000"),
		},
	}}

	sess, err := newSession(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	if err := sess.UpdateContactPerson("ООО Ромашка", "Новиков"); err != nil {
		t.Fatalf("UpdateContactPerson failed: %v", err)
	}
	if sess.Catalog.Clients["C2"].ContactPerson != "Новиков" {
		t.Errorf("Catalog record not mutated: %+v", sess.Catalog.Clients["C2"])
	}
	if len(doc.writes) != 1 || doc.writes[0].row != 2 {
		t.Errorf("Writes = %+v", doc.writes)
	}
}
