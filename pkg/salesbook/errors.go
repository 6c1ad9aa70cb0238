package salesbook

import "errors"

// ErrProductNotFound indicates the product→clients query matched no
// product name.
var ErrProductNotFound = errors.New("product not found")

// ErrOrganizationNotFound indicates the contact update matched no
// organization name.
var ErrOrganizationNotFound = errors.New("organization not found")

// ErrNoOrders indicates the golden-client period holds no orders.
var ErrNoOrders = errors.New("no orders in period")
