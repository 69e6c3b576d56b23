package database

import (
	"fmt"
	"log"
	"time"

	"receivables-console/internal/config"
	"receivables-console/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Payment{},
		&models.ApplicationLink{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Customer indexes
		"CREATE INDEX IF NOT EXISTS idx_customers_status ON customers(status)",
		"CREATE INDEX IF NOT EXISTS idx_customers_display_name_lower ON customers(LOWER(display_name))",
		"CREATE INDEX IF NOT EXISTS idx_customers_deleted_at ON customers(deleted_at) WHERE deleted_at IS NULL",
		// Invoice indexes
		"CREATE INDEX IF NOT EXISTS idx_invoices_customer_id ON invoices(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoices_issue_date ON invoices(issue_date) WHERE issue_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)",
		// Payment indexes
		"CREATE INDEX IF NOT EXISTS idx_payments_customer_id ON payments(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_received_date ON payments(received_date) WHERE received_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_payments_reference_number ON payments(reference_number)",
		// Application link indexes
		"CREATE INDEX IF NOT EXISTS idx_application_links_payment_id ON application_links(payment_id)",
		"CREATE INDEX IF NOT EXISTS idx_application_links_doc_type ON application_links(doc_type)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(&cfg.Database); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
