package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer is a directory entry synchronized from the ERP. The ERP identifier
// is the primary key so that payments and invoices can reference it directly.
type Customer struct {
	ID          string         `gorm:"type:varchar(64);primary_key" json:"id"`
	DisplayName string         `gorm:"type:varchar(255);not null" json:"display_name"`
	Email       string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status      string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = CustomerStatusActive
	}
	return nil
}
