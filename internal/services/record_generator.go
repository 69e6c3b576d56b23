package services

import (
	"fmt"
	"math/rand"
	"time"

	"receivables-console/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

const (
	devCustomerCount    = 25
	devMonthsOfHistory  = 6
	maxInvoicesPerMonth = 4
	creditMemoOdds      = 8
)

type recordGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewRecordGenerator creates a development seed data generator. The seed is
// fixed so repeated runs against a fresh database produce the same tree.
func NewRecordGenerator(seed int64) RecordGeneratorInterface {
	return &recordGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GenerateDataset builds a self-consistent receivables history ending at the
// given date: customers, invoices spread over recent months, payments applied
// against those invoices, and the application links tying them together.
func (g *recordGenerator) GenerateDataset(until time.Time) *models.DevDataset {
	customers := g.generateCustomers()

	dataset := &models.DevDataset{Customers: customers}

	end := time.Date(until.Year(), until.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -devMonthsOfHistory, 0)

	invoiceSeq := 1
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		for i := range customers {
			count := g.rng.Intn(maxInvoicesPerMonth + 1)
			for n := 0; n < count; n++ {
				invoice := g.generateInvoice(customers[i].ID, month, invoiceSeq)
				invoiceSeq++
				dataset.Invoices = append(dataset.Invoices, invoice)

				if g.rng.Intn(3) > 0 {
					payment, links := g.generatePayment(customers[i].ID, invoice, month)
					dataset.Payments = append(dataset.Payments, payment)
					dataset.Links = append(dataset.Links, links...)
				}
			}
		}
	}

	return dataset
}

func (g *recordGenerator) generateCustomers() []models.Customer {
	customers := make([]models.Customer, 0, devCustomerCount)
	for i := 0; i < devCustomerCount; i++ {
		status := models.CustomerStatusActive
		if g.rng.Intn(10) == 0 {
			status = models.CustomerStatusInactive
		}
		customers = append(customers, models.Customer{
			ID:          fmt.Sprintf("CUST-%04d", i+1),
			DisplayName: g.faker.Company(),
			Email:       g.faker.Email(),
			Status:      status,
		})
	}
	return customers
}

func (g *recordGenerator) generateInvoice(customerID string, month time.Time, seq int) models.Invoice {
	day := 1 + g.rng.Intn(daysIn(month))
	issued := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(g.faker.Float64Range(50, 9500)).Round(2)

	return models.Invoice{
		Number:     fmt.Sprintf("INV-%06d", seq),
		CustomerID: customerID,
		IssueDate:  &issued,
		Amount:     amount,
		Status:     models.InvoiceStatusOpen,
	}
}

func (g *recordGenerator) generatePayment(customerID string, invoice models.Invoice, month time.Time) (models.Payment, []models.ApplicationLink) {
	// Payments land between the issue date and month end.
	issueDay := invoice.IssueDate.Day()
	day := issueDay + g.rng.Intn(daysIn(month)-issueDay+1)
	received := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)

	payment := models.Payment{
		ID:              fmt.Sprintf("PMT-%s-%06d", g.faker.LetterN(4), g.rng.Intn(1000000)),
		CustomerID:      customerID,
		ReferenceNumber: invoice.Number,
		ReceivedDate:    &received,
		Amount:          invoice.Amount,
	}

	links := []models.ApplicationLink{{
		PaymentID:  payment.ID,
		DocType:    models.DocTypeInvoice,
		AppliedTo:  invoice.Number,
		AmountPaid: invoice.Amount,
	}}

	// A slice of payments carry a credit memo application alongside the
	// invoice, shrinking the net amount.
	if g.rng.Intn(creditMemoOdds) == 0 {
		memoAmount := invoice.Amount.Div(decimal.NewFromInt(4)).Round(2)
		payment.Amount = invoice.Amount.Sub(memoAmount)
		links = append(links, models.ApplicationLink{
			PaymentID:  payment.ID,
			DocType:    models.DocTypeCreditMemo,
			AppliedTo:  fmt.Sprintf("CM-%06d", g.rng.Intn(1000000)),
			AmountPaid: memoAmount.Neg(),
		})
	}

	return payment, links
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
