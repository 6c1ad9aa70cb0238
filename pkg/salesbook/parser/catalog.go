package parser

import (
	"go.uber.org/zap"

	"github.com/mzaytsev/salesbook/pkg/salesbook/models"
	"github.com/mzaytsev/salesbook/pkg/salesbook/store"
)

// Sheet names the loader expects in the workbook.
const (
	SheetProducts = "Товары"
	SheetClients  = "Клиенты"
	SheetOrders   = "Заявки"
)

// SheetReport counts the outcome of one sheet scan.
type SheetReport struct {
	Loaded   int
	Rejected int
}

// Report aggregates per-sheet scan outcomes for one catalog build.
type Report struct {
	Products SheetReport
	Clients  SheetReport
	Orders   SheetReport
}

// BuildCatalog scans the three sheets and returns the keyed
// collections. A missing sheet fails the build; a row the decoder
// rejects is counted, logged at debug level and skipped. Later rows
// with a duplicate code overwrite earlier ones.
func BuildCatalog(doc store.Document, logger *zap.Logger) (*models.Catalog, Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat := models.NewCatalog()
	var rep Report

	err := scanSheet(doc, SheetProducts, logger, &rep.Products, func(cells []string) error {
		p, err := DecodeProduct(cells)
		if err != nil {
			return err
		}
		cat.PutProduct(p)
		return nil
	})
	if err != nil {
		return nil, rep, err
	}

	err = scanSheet(doc, SheetClients, logger, &rep.Clients, func(cells []string) error {
		c, err := DecodeClient(cells)
		if err != nil {
			return err
		}
		cat.PutClient(c)
		return nil
	})
	if err != nil {
		return nil, rep, err
	}

	err = scanSheet(doc, SheetOrders, logger, &rep.Orders, func(cells []string) error {
		o, err := DecodeOrder(cells)
		if err != nil {
			return err
		}
		cat.PutOrder(o)
		return nil
	})
	if err != nil {
		return nil, rep, err
	}

	logger.Info("catalog built",
		zap.Int("products", len(cat.Products)),
		zap.Int("clients", len(cat.Clients)),
		zap.Int("orders", len(cat.Orders)))
	return cat, rep, nil
}

// scanSheet walks one sheet in physical row order, skipping the header
// row, and feeds resolved rows to put.
func scanSheet(doc store.Document, sheet string, logger *zap.Logger, rep *SheetReport, put func([]string) error) error {
	rows, err := doc.Rows(sheet)
	if err != nil {
		return err
	}
	shared := doc.SharedStrings()
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cells := store.ResolveRow(row, shared)
		if err := put(cells); err != nil {
			rep.Rejected++
			logger.Debug("row rejected",
				zap.String("sheet", sheet),
				zap.Int("row", i+1),
				zap.Error(err))
			continue
		}
		rep.Loaded++
	}
	return nil
}
