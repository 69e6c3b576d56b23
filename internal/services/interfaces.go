package services

import (
	"context"
	"time"

	"receivables-console/internal/dto"
	"receivables-console/internal/models"
)

// ReceivablesTreeServiceInterface is the hierarchical drill-down aggregator:
// month, week and day buckets over invoices and payments, with customer
// leaves under each day. Children are materialized lazily on first expansion
// and cached; collapsing and re-expanding never re-fetches.
type ReceivablesTreeServiceInterface interface {
	// ListMonths materializes (or returns the cached) top level of the tree,
	// most recent month first.
	ListMonths() ([]*models.MonthBucket, error)

	// ExpandMonth materializes the month's week buckets on first call and
	// re-derives the month's totals from them.
	ExpandMonth(year int, month time.Month) (*models.MonthBucket, error)

	// CollapseMonth flips the expanded flag without touching children.
	CollapseMonth(year int, month time.Month) (*models.MonthBucket, error)

	// ExpandWeek materializes the week's day buckets, including per-payment
	// customer leaves, on first call.
	ExpandWeek(year int, month time.Month, week int) (*models.WeekBucket, error)

	// CollapseWeek flips the expanded flag without touching children.
	CollapseWeek(year int, month time.Month, week int) (*models.WeekBucket, error)

	// GetDayCustomers projects the customer leaves of an already materialized
	// day bucket. It never fetches.
	GetDayCustomers(isoDate string) ([]models.CustomerLeaf, error)

	// Reload discards the whole tree so the next ListMonths rebuilds it.
	Reload()
}

// CustomerDirectoryInterface resolves customer ids to display names. The
// directory is loaded once and cached; Invalidate forces the next
// EnsureLoaded to re-read the store.
type CustomerDirectoryInterface interface {
	EnsureLoaded() error
	ResolveName(customerID string) string
	Invalidate()
}

// ERPClientInterface is the outbound contract against the hosted ERP
// gateway's export endpoints. All fetches walk the paged endpoints to
// exhaustion with a fixed page size.
type ERPClientInterface interface {
	FetchCustomers(ctx context.Context) ([]dto.ERPCustomer, error)
	FetchInvoices(ctx context.Context) ([]dto.ERPInvoice, error)
	FetchPayments(ctx context.Context) ([]dto.ERPPayment, error)
	FetchApplicationLinks(ctx context.Context) ([]dto.ERPApplicationLink, error)
}

// SyncServiceInterface pulls the ERP exports into the local record store.
type SyncServiceInterface interface {
	Run(ctx context.Context) (*dto.SyncReport, error)
}

// TokenServiceInterface validates dashboard tokens issued by the hosted auth
// service.
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.DashboardClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// RecordGeneratorInterface produces seed data for development environments.
type RecordGeneratorInterface interface {
	GenerateDataset(until time.Time) *models.DevDataset
}

// MetricsRecorderInterface abstracts the metrics backend.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
