package database

import (
	"fmt"
	"testing"
	"time"

	"receivables-console/internal/config"
	"receivables-console/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if db == nil {
		return
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

func CreateTestCustomer(t *testing.T, db *DB, id, displayName string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		ID:          id,
		DisplayName: displayName,
		Email:       fmt.Sprintf("%s@example.com", id),
		Status:      models.CustomerStatusActive,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CreateTestInvoice(t *testing.T, db *DB, customerID, number string, issueDate time.Time, amount string) *models.Invoice {
	t.Helper()

	invoice := &models.Invoice{
		Number:     number,
		CustomerID: customerID,
		IssueDate:  &issueDate,
		Amount:     decimal.RequireFromString(amount),
		Status:     models.InvoiceStatusOpen,
	}

	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}

	return invoice
}

func CreateTestPayment(t *testing.T, db *DB, id, customerID, referenceNumber string, receivedDate time.Time, amount string) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		ID:              id,
		CustomerID:      customerID,
		ReferenceNumber: referenceNumber,
		ReceivedDate:    &receivedDate,
		Amount:          decimal.RequireFromString(amount),
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}

	return payment
}

func CreateTestApplicationLink(t *testing.T, db *DB, paymentID, docType, appliedTo, amountPaid string) *models.ApplicationLink {
	t.Helper()

	link := &models.ApplicationLink{
		PaymentID:  paymentID,
		DocType:    docType,
		AppliedTo:  appliedTo,
		AmountPaid: decimal.RequireFromString(amountPaid),
	}

	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to create test application link: %v", err)
	}

	return link
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	return &TestDB{
		DB: SetupTestDB(t),
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"application_links",
		"payments",
		"invoices",
		"customers",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
