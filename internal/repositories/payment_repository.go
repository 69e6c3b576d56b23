package repositories

import (
	"errors"
	"fmt"
	"time"

	"receivables-console/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

// paymentRepository implements PaymentRepositoryInterface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment
func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by its ERP identifier
func (r *paymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetAll retrieves every payment, ordered by received date
func (r *paymentRepository) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Order("received_date ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, nil
}

// GetByDateRange retrieves payments with a received date in [start, end)
func (r *paymentRepository) GetByDateRange(start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("received_date >= ? AND received_date < ?", start, end).
		Order("received_date ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments by date range: %w", err)
	}
	return payments, nil
}

// UpsertBatch inserts or updates a batch of payments keyed by the ERP id
func (r *paymentRepository) UpsertBatch(payments []models.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer_id", "reference_number", "received_date", "amount", "updated_at"}),
		}).Create(&payments).Error; err != nil {
			return fmt.Errorf("failed to upsert payments: %w", err)
		}
		return nil
	})
}

// Count returns the total number of payments
func (r *paymentRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Payment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}
