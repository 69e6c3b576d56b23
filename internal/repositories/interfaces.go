package repositories

import (
	"time"

	"receivables-console/internal/models"

	"github.com/google/uuid"
)

// InvoiceRepositoryInterface defines the contract for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice) error
	GetByID(id uuid.UUID) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	// GetByDateRange returns invoices whose issue date falls in the half-open
	// interval [start, end). Rows with a null issue date are never returned.
	GetByDateRange(start, end time.Time) ([]models.Invoice, error)
	UpsertBatch(invoices []models.Invoice) error
	Count() (int64, error)
}

// PaymentRepositoryInterface defines the contract for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetAll() ([]models.Payment, error)
	// GetByDateRange returns payments whose received date falls in the
	// half-open interval [start, end). Rows with a null date are never returned.
	GetByDateRange(start, end time.Time) ([]models.Payment, error)
	UpsertBatch(payments []models.Payment) error
	Count() (int64, error)
}

// ApplicationLinkRepositoryInterface defines the contract for payment application links
type ApplicationLinkRepositoryInterface interface {
	// GetByPaymentIDs fetches the links for a set of payment ids. The id set
	// is chunked into fixed-size batches and queried sequentially; results are
	// concatenated before being returned.
	GetByPaymentIDs(paymentIDs []string) ([]models.ApplicationLink, error)
	// ReplaceForPayments atomically swaps the stored links for the given
	// payments with the provided set.
	ReplaceForPayments(paymentIDs []string, links []models.ApplicationLink) error
	Count() (int64, error)
}

// CustomerRepositoryInterface defines the contract for customer directory rows
type CustomerRepositoryInterface interface {
	GetByID(id string) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	UpsertBatch(customers []models.Customer) error
	Count() (int64, error)
}
