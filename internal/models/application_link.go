package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Document types the ERP reports on application links. The credit memo match
// is case-sensitive, mirroring the ERP's own document type strings.
const (
	DocTypeInvoice    = "Invoice"
	DocTypeCreditMemo = "Credit Memo"
)

// ApplicationLink ties a payment to a document it was applied against,
// carrying the applied amount. Many links may reference one payment.
type ApplicationLink struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PaymentID  string          `gorm:"type:varchar(64);not null;index" json:"payment_id"`
	DocType    string          `gorm:"type:varchar(50);not null" json:"doc_type"`
	AppliedTo  string          `gorm:"type:varchar(100)" json:"applied_to,omitempty"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_paid"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

// BeforeCreate hook for ApplicationLink
func (l *ApplicationLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
