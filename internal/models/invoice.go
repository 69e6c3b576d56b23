package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InvoiceStatusOpen   = "open"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoided = "voided"
)

// Invoice is a receivable document synchronized from the ERP.
//
// IssueDate is nullable: the ERP occasionally delivers documents without a
// date, and the aggregator excludes those rows from every bucket rather than
// guessing a period for them.
type Invoice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Number     string          `gorm:"type:varchar(100);uniqueIndex" json:"number"`
	CustomerID string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	IssueDate  *time.Time      `gorm:"type:date;index" json:"issue_date,omitempty"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status     string          `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate hook for Invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InvoiceStatusOpen
	}
	return nil
}
