package models

// Catalog holds the three keyed collections built from one workbook
// scan. Each collection maps a record's code to the record; the *Seq
// slices keep the codes in sheet row order (first occurrence) so that
// iteration over a map-backed collection stays deterministic.
type Catalog struct {
	Products map[string]Product
	Clients  map[string]Client
	Orders   map[string]Order

	ProductSeq []string
	ClientSeq  []string
	OrderSeq   []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Products: make(map[string]Product),
		Clients:  make(map[string]Client),
		Orders:   make(map[string]Order),
	}
}

// PutProduct inserts or overwrites a product. Duplicate codes keep their
// original position, last record wins.
func (c *Catalog) PutProduct(p Product) {
	if _, ok := c.Products[p.Code]; !ok {
		c.ProductSeq = append(c.ProductSeq, p.Code)
	}
	c.Products[p.Code] = p
}

// PutClient inserts or overwrites a client.
func (c *Catalog) PutClient(cl Client) {
	if _, ok := c.Clients[cl.Code]; !ok {
		c.ClientSeq = append(c.ClientSeq, cl.Code)
	}
	c.Clients[cl.Code] = cl
}

// PutOrder inserts or overwrites an order.
func (c *Catalog) PutOrder(o Order) {
	if _, ok := c.Orders[o.Code]; !ok {
		c.OrderSeq = append(c.OrderSeq, o.Code)
	}
	c.Orders[o.Code] = o
}
