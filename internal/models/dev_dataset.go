package models

// DevDataset is a generated, self-consistent set of receivables records used
// to seed a development database.
type DevDataset struct {
	Customers []Customer
	Invoices  []Invoice
	Payments  []Payment
	Links     []ApplicationLink
}
