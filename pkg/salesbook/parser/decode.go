// Package parser decodes workbook rows into catalog records and builds
// the keyed collections.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mzaytsev/salesbook/pkg/salesbook/models"
)

// Rejection reasons returned by the row decoders. A decoder error means
// the row is excluded from its collection; the load itself continues.
var (
	ErrShortRow    = errors.New("row has too few columns")
	ErrEmptyCode   = errors.New("code column is empty")
	ErrBadPrice    = errors.New("price does not parse")
	ErrBadQuantity = errors.New("quantity does not parse")
	ErrBadDate     = errors.New("date serial does not parse")
	ErrEmptyColumn = errors.New("required column is empty")
)

// Column layouts of the three sheets.
const (
	productCols = 4
	clientCols  = 4
	orderCols   = 6
)

// serialEpoch is the spreadsheet date epoch. Serials carry the
// conventional two-day offset for the 1900 leap-year bug, hence the -2
// correction in dateFromSerial.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeProduct decodes a products-sheet row:
// [0]=code [1]=name [2]=unit [3]=price text.
func DecodeProduct(cells []string) (models.Product, error) {
	if len(cells) < productCols {
		return models.Product{}, ErrShortRow
	}
	if cells[0] == "" {
		return models.Product{}, ErrEmptyCode
	}
	price, err := parsePrice(cells[3])
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %q", ErrBadPrice, cells[3])
	}
	return models.Product{
		Code:  cells[0],
		Name:  cells[1],
		Unit:  cells[2],
		Price: price,
	}, nil
}

// DecodeClient decodes a clients-sheet row:
// [0]=code [1]=organization [2]=address [3]=contact person.
func DecodeClient(cells []string) (models.Client, error) {
	if len(cells) < clientCols {
		return models.Client{}, ErrShortRow
	}
	if cells[0] == "" {
		return models.Client{}, ErrEmptyCode
	}
	return models.Client{
		Code:          cells[0],
		Organization:  cells[1],
		Address:       cells[2],
		ContactPerson: cells[3],
	}, nil
}

// DecodeOrder decodes an orders-sheet row:
// [0]=code [1]=product code [2]=client code [3]=number [4]=quantity
// [5]=date serial.
func DecodeOrder(cells []string) (models.Order, error) {
	if len(cells) < orderCols {
		return models.Order{}, ErrShortRow
	}
	if cells[0] == "" {
		return models.Order{}, ErrEmptyCode
	}
	if cells[1] == "" || cells[2] == "" {
		return models.Order{}, ErrEmptyColumn
	}
	qty, err := strconv.Atoi(strings.TrimSpace(cells[4]))
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %q", ErrBadQuantity, cells[4])
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(cells[5]), 64)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %q", ErrBadDate, cells[5])
	}
	return models.Order{
		Code:        cells[0],
		ProductCode: cells[1],
		ClientCode:  cells[2],
		Number:      cells[3],
		Quantity:    qty,
		Date:        dateFromSerial(serial),
	}, nil
}

// parsePrice parses locale-formatted currency text such as
// "1 234,50 ₽": the trailing ruble marker and every space (including
// non-breaking group separators) are dropped, the decimal comma becomes
// a dot, and the rest must parse as an invariant float.
func parsePrice(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '₽':
			continue
		case r == ',':
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	return strconv.ParseFloat(b.String(), 64)
}

// dateFromSerial converts a spreadsheet date serial to a calendar date,
// truncating any time-of-day fraction.
func dateFromSerial(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(serial)-2)
}
