package repositories

import (
	"fmt"

	"receivables-console/internal/models"

	"gorm.io/gorm"
)

// DefaultLinkBatchSize bounds how many payment ids go into a single IN-clause
// query. The limit keeps individual statements small; it does not bound the
// accumulated result set.
const DefaultLinkBatchSize = 100

// applicationLinkRepository implements ApplicationLinkRepositoryInterface
type applicationLinkRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewApplicationLinkRepository creates a new application link repository with
// the default batch size.
func NewApplicationLinkRepository(db *gorm.DB) ApplicationLinkRepositoryInterface {
	return NewApplicationLinkRepositoryWithBatchSize(db, DefaultLinkBatchSize)
}

// NewApplicationLinkRepositoryWithBatchSize creates a repository with a custom
// id batch size (primarily for tests).
func NewApplicationLinkRepositoryWithBatchSize(db *gorm.DB, batchSize int) ApplicationLinkRepositoryInterface {
	if batchSize <= 0 {
		batchSize = DefaultLinkBatchSize
	}
	return &applicationLinkRepository{
		db:        db,
		batchSize: batchSize,
	}
}

// GetByPaymentIDs fetches application links for the given payment ids,
// issuing one query per id batch and concatenating the results.
func (r *applicationLinkRepository) GetByPaymentIDs(paymentIDs []string) ([]models.ApplicationLink, error) {
	if len(paymentIDs) == 0 {
		return []models.ApplicationLink{}, nil
	}

	links := make([]models.ApplicationLink, 0, len(paymentIDs))

	for start := 0; start < len(paymentIDs); start += r.batchSize {
		end := start + r.batchSize
		if end > len(paymentIDs) {
			end = len(paymentIDs)
		}

		var batch []models.ApplicationLink
		if err := r.db.Where("payment_id IN ?", paymentIDs[start:end]).
			Find(&batch).Error; err != nil {
			return nil, fmt.Errorf("failed to get application links: %w", err)
		}
		links = append(links, batch...)
	}

	return links, nil
}

// ReplaceForPayments swaps the stored links for the given payments in one
// transaction, so readers never observe a partially synced link set.
func (r *applicationLinkRepository) ReplaceForPayments(paymentIDs []string, links []models.ApplicationLink) error {
	if len(paymentIDs) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(paymentIDs); start += r.batchSize {
			end := start + r.batchSize
			if end > len(paymentIDs) {
				end = len(paymentIDs)
			}
			if err := tx.Where("payment_id IN ?", paymentIDs[start:end]).
				Delete(&models.ApplicationLink{}).Error; err != nil {
				return fmt.Errorf("failed to delete stale application links: %w", err)
			}
		}

		if len(links) == 0 {
			return nil
		}
		if err := tx.Create(&links).Error; err != nil {
			return fmt.Errorf("failed to insert application links: %w", err)
		}
		return nil
	})
}

// Count returns the total number of application links
func (r *applicationLinkRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ApplicationLink{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count application links: %w", err)
	}
	return count, nil
}
