package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is a customer payment synchronized from the ERP. The primary key is
// the opaque ERP payment identifier; application links reference it.
type Payment struct {
	ID              string          `gorm:"type:varchar(64);primary_key" json:"id"`
	CustomerID      string          `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	ReferenceNumber string          `gorm:"type:varchar(100);index" json:"reference_number,omitempty"`
	ReceivedDate    *time.Time      `gorm:"type:date;index" json:"received_date,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Customer         Customer          `gorm:"foreignKey:CustomerID" json:"-"`
	ApplicationLinks []ApplicationLink `gorm:"foreignKey:PaymentID" json:"-"`
}

// BeforeCreate hook for Payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	return nil
}

// HasCreditMemo reports whether any of the given application links ties this
// payment to a credit memo. A payment with no links vacuously has none.
func (p *Payment) HasCreditMemo(links []ApplicationLink) bool {
	for i := range links {
		if links[i].PaymentID == p.ID && links[i].DocType == DocTypeCreditMemo {
			return true
		}
	}
	return false
}
