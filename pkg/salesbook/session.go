package salesbook

import (
	"go.uber.org/zap"

	"github.com/mzaytsev/salesbook/pkg/salesbook/models"
	"github.com/mzaytsev/salesbook/pkg/salesbook/parser"
	"github.com/mzaytsev/salesbook/pkg/salesbook/query"
	"github.com/mzaytsev/salesbook/pkg/salesbook/store"
)

// Session owns one workbook for the duration of one run: the open
// document handle plus the catalog built from its full sheet scan. A
// session is single-threaded; queries read the catalog, the contact
// update mutates one record and writes one cell back.
type Session struct {
	doc     store.Document
	wb      *store.Workbook
	log     *zap.Logger
	Catalog *models.Catalog
	Report  parser.Report
}

// Open opens the workbook at path and builds the catalog. The returned
// session must be closed.
func Open(path string, opts Options) (*Session, error) {
	log := opts.logger()
	wb, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	cat, rep, err := parser.BuildCatalog(wb, log)
	if err != nil {
		wb.Close()
		return nil, err
	}
	return &Session{doc: wb, wb: wb, log: log, Catalog: cat, Report: rep}, nil
}

// newSession wraps an already-open document; tests use it to run the
// pipeline against a fake store.
func newSession(doc store.Document, opts Options) (*Session, error) {
	log := opts.logger()
	cat, rep, err := parser.BuildCatalog(doc, log)
	if err != nil {
		return nil, err
	}
	return &Session{doc: doc, log: log, Catalog: cat, Report: rep}, nil
}

// Close releases the workbook handle. Pending writes are already
// persisted by the operations that made them.
func (s *Session) Close() error {
	if s.wb == nil {
		return nil
	}
	return s.wb.Close()
}

// OrdersByProduct runs the product→clients query. It returns
// ErrProductNotFound when no product name matches.
func (s *Session) OrdersByProduct(name string) (models.Product, []query.ProductOrder, error) {
	p, lines, ok := query.OrdersByProduct(s.Catalog, name)
	if !ok {
		return models.Product{}, nil, ErrProductNotFound
	}
	return p, lines, nil
}

// GoldenClient runs the golden-client query for the given year and
// month. It returns ErrNoOrders when the period holds no orders.
func (s *Session) GoldenClient(year, month int) (query.Golden, error) {
	g, ok := query.GoldenClient(s.Catalog, year, month)
	if !ok {
		return query.Golden{}, ErrNoOrders
	}
	return g, nil
}

// UpdateContactPerson sets a new contact person for the client whose
// organization name matches org, both in the catalog and in the backing
// workbook. It returns ErrOrganizationNotFound when no client matches;
// in that case nothing is written.
func (s *Session) UpdateContactPerson(org, contact string) error {
	client, ok := query.ClientByOrganization(s.Catalog, org)
	if !ok {
		return ErrOrganizationNotFound
	}
	client.ContactPerson = contact
	s.Catalog.Clients[client.Code] = client
	s.log.Info("contact person updated",
		zap.String("client", client.Code),
		zap.String("organization", client.Organization))
	return writeContactCell(s.doc, org, contact)
}
