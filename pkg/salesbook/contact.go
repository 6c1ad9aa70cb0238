package salesbook

import (
	"strings"

	"github.com/mzaytsev/salesbook/pkg/salesbook/parser"
	"github.com/mzaytsev/salesbook/pkg/salesbook/store"
)

// Columns of the clients sheet used by the write-back.
const (
	clientOrgCol     = 1
	clientContactCol = 3
)

// writeContactCell rescans the clients sheet for the first post-header
// row whose organization column matches org case-insensitively,
// overwrites its contact-person cell with contact as a plain string and
// persists the workbook. If no row matches the sheet has diverged from
// the loaded catalog; nothing is written and no error is raised.
func writeContactCell(doc store.Document, org, contact string) error {
	rows, err := doc.Rows(parser.SheetClients)
	if err != nil {
		return err
	}
	shared := doc.SharedStrings()
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cells := store.ResolveRow(row, shared)
		if len(cells) <= clientOrgCol || !strings.EqualFold(cells[clientOrgCol], org) {
			continue
		}
		if err := doc.SetCell(parser.SheetClients, i, clientContactCol, contact); err != nil {
			return err
		}
		return doc.Save()
	}
	return nil
}
