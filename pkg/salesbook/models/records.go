// Package models defines the sales catalog records and their keyed
// collections.
package models

import "time"

// Product is one row of the products sheet.
type Product struct {
	// Code is the unique product code.
	Code string
	// Name is the product name.
	Name string
	// Unit is the unit of measure.
	Unit string
	// Price is the unit price with the currency marker stripped.
	Price float64
}

// Client is one row of the clients sheet.
type Client struct {
	// Code is the unique client code.
	Code string
	// Organization is the organization name.
	Organization string
	// Address is the legal address.
	Address string
	// ContactPerson is the current contact person.
	ContactPerson string
}

// Order is one row of the orders sheet. ProductCode and ClientCode refer
// into the product and client collections but are not checked at load
// time.
type Order struct {
	Code        string
	ProductCode string
	ClientCode  string
	Number      string
	Quantity    int
	// Date is the order date at day precision.
	Date time.Time
}
