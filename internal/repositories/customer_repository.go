package repositories

import (
	"errors"
	"fmt"

	"receivables-console/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{
		db: db,
	}
}

// GetByID retrieves a customer by its ERP identifier
func (r *customerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// GetAll retrieves every customer, ordered by display name
func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order("display_name ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

// UpsertBatch inserts or updates a batch of customers keyed by the ERP id
func (r *customerRepository) UpsertBatch(customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "email", "status", "updated_at"}),
		}).Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to upsert customers: %w", err)
		}
		return nil
	})
}

// Count returns the total number of customers
func (r *customerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
