package repositories

import (
	"errors"
	"fmt"
	"time"

	"receivables-console/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// invoiceRepository implements InvoiceRepositoryInterface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice
func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	if err := r.db.Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by ID
func (r *invoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	invoice := &models.Invoice{ID: id}
	if err := r.db.First(invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// GetAll retrieves every invoice, ordered by issue date
func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Order("issue_date ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return invoices, nil
}

// GetByDateRange retrieves invoices with an issue date in [start, end)
func (r *invoiceRepository) GetByDateRange(start, end time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Where("issue_date >= ? AND issue_date < ?", start, end).
		Order("issue_date ASC").
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoices by date range: %w", err)
	}
	return invoices, nil
}

// UpsertBatch inserts or updates a batch of invoices keyed by number
func (r *invoiceRepository) UpsertBatch(invoices []models.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer_id", "issue_date", "amount", "status", "updated_at"}),
		}).Create(&invoices).Error; err != nil {
			return fmt.Errorf("failed to upsert invoices: %w", err)
		}
		return nil
	})
}

// Count returns the total number of invoices
func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}
