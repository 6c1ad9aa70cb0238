// Package query implements the read-side queries over a loaded catalog.
// All functions are pure: they take the collections and return results,
// leaving printing and persistence to the caller.
package query

import (
	"strings"
	"time"

	"github.com/mzaytsev/salesbook/pkg/salesbook/models"
)

// ProductOrder is one result line of the product→clients query.
type ProductOrder struct {
	Organization string
	Quantity     int
	Price        float64
	Date         time.Time
}

// OrdersByProduct finds the product whose name equals name
// case-insensitively and returns one line per order of it, in sheet row
// order. Orders whose client code does not resolve are skipped. ok is
// false when no product matches; a matching product with zero orders
// returns ok true and an empty slice.
func OrdersByProduct(cat *models.Catalog, name string) (models.Product, []ProductOrder, bool) {
	var product models.Product
	found := false
	for _, code := range cat.ProductSeq {
		p := cat.Products[code]
		if strings.EqualFold(p.Name, name) {
			product = p
			found = true
			break
		}
	}
	if !found {
		return models.Product{}, nil, false
	}

	var lines []ProductOrder
	for _, code := range cat.OrderSeq {
		o := cat.Orders[code]
		if o.ProductCode != product.Code {
			continue
		}
		client, ok := cat.Clients[o.ClientCode]
		if !ok {
			continue
		}
		lines = append(lines, ProductOrder{
			Organization: client.Organization,
			Quantity:     o.Quantity,
			Price:        product.Price,
			Date:         o.Date,
		})
	}
	return product, lines, true
}

// Golden is the result of the golden-client query.
type Golden struct {
	ClientCode string
	Orders     int
}

// GoldenClient returns the client with the most orders dated in the
// given year and month. Ties go to the smallest client code, so the
// result does not depend on map iteration order. ok is false when the
// period holds no orders.
func GoldenClient(cat *models.Catalog, year, month int) (Golden, bool) {
	counts := make(map[string]int)
	for _, code := range cat.OrderSeq {
		o := cat.Orders[code]
		if o.Date.Year() == year && int(o.Date.Month()) == month {
			counts[o.ClientCode]++
		}
	}

	var best Golden
	found := false
	for client, n := range counts {
		if !found || n > best.Orders || (n == best.Orders && client < best.ClientCode) {
			best = Golden{ClientCode: client, Orders: n}
			found = true
		}
	}
	return best, found
}

// ClientByOrganization finds the client whose organization name equals
// org case-insensitively, in sheet row order.
func ClientByOrganization(cat *models.Catalog, org string) (models.Client, bool) {
	for _, code := range cat.ClientSeq {
		c := cat.Clients[code]
		if strings.EqualFold(c.Organization, org) {
			return c, true
		}
	}
	return models.Client{}, false
}
