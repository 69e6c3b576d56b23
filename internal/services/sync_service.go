package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"receivables-console/internal/dto"
	"receivables-console/internal/models"
	"receivables-console/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrSyncAlreadyRunning = errors.New("a sync run is already in progress")
)

// syncService pulls the ERP exports into the local record store. Raw export
// strings are normalized exactly once here: dates through ParseLocalDate
// (the date component of the string is authoritative, no timezone shifting)
// and amounts through decimal parsing. A record whose amount fails to parse
// is skipped; a record with an unparseable date is kept with a null date and
// excluded by the aggregator downstream.
type syncService struct {
	client       ERPClientInterface
	customerRepo repositories.CustomerRepositoryInterface
	invoiceRepo  repositories.InvoiceRepositoryInterface
	paymentRepo  repositories.PaymentRepositoryInterface
	linkRepo     repositories.ApplicationLinkRepositoryInterface
	directory    CustomerDirectoryInterface
	tree         ReceivablesTreeServiceInterface
	metrics      MetricsRecorderInterface

	running atomic.Bool
}

// NewSyncService creates a new sync service
func NewSyncService(
	client ERPClientInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	linkRepo repositories.ApplicationLinkRepositoryInterface,
	directory CustomerDirectoryInterface,
	tree ReceivablesTreeServiceInterface,
	metrics MetricsRecorderInterface,
) SyncServiceInterface {
	return &syncService{
		client:       client,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		linkRepo:     linkRepo,
		directory:    directory,
		tree:         tree,
		metrics:      metrics,
	}
}

// Run executes one full pull from the ERP gateway. Only one run may be in
// flight at a time.
func (s *syncService) Run(ctx context.Context) (*dto.SyncReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)

	report := &dto.SyncReport{StartedAt: time.Now()}

	if err := s.syncCustomers(ctx, report); err != nil {
		return nil, s.fail("customers", err)
	}
	if err := s.syncInvoices(ctx, report); err != nil {
		return nil, s.fail("invoices", err)
	}
	if err := s.syncPayments(ctx, report); err != nil {
		return nil, s.fail("payments", err)
	}
	if err := s.syncApplicationLinks(ctx, report); err != nil {
		return nil, s.fail("application_links", err)
	}

	// Fresh rows invalidate both caches; the dashboard rebuilds lazily on
	// its next request.
	s.directory.Invalidate()
	s.tree.Reload()

	report.FinishedAt = time.Now()
	report.Duration = report.FinishedAt.Sub(report.StartedAt)
	report.DurationMillis = report.Duration.Milliseconds()

	if s.metrics != nil {
		s.metrics.IncrementCounter("erp_sync_runs", map[string]string{"status": "success"})
		s.metrics.RecordProcessingTime("erp_sync_duration", report.Duration)
		s.metrics.RecordGauge("erp_sync_records", float64(report.Invoices+report.Payments), nil)
	}

	slog.Info("erp sync completed",
		"customers", report.Customers,
		"invoices", report.Invoices,
		"payments", report.Payments,
		"application_links", report.ApplicationLinks,
		"dropped_dateless", report.DroppedDateless,
		"duration_ms", report.DurationMillis)

	return report, nil
}

func (s *syncService) fail(stage string, err error) error {
	if s.metrics != nil {
		s.metrics.IncrementCounter("erp_sync_runs", map[string]string{"status": "error"})
	}
	slog.Error("erp sync failed", "stage", stage, "error", err)
	return fmt.Errorf("sync %s: %w", stage, err)
}

func (s *syncService) syncCustomers(ctx context.Context, report *dto.SyncReport) error {
	exported, err := s.client.FetchCustomers(ctx)
	if err != nil {
		return err
	}

	customers := make([]models.Customer, 0, len(exported))
	for _, c := range exported {
		if c.ID == "" {
			continue
		}
		status := c.Status
		if status == "" {
			status = models.CustomerStatusActive
		}
		customers = append(customers, models.Customer{
			ID:          c.ID,
			DisplayName: c.DisplayName,
			Email:       c.Email,
			Status:      status,
		})
	}

	if err := s.customerRepo.UpsertBatch(customers); err != nil {
		return err
	}
	report.Customers = len(customers)
	return nil
}

func (s *syncService) syncInvoices(ctx context.Context, report *dto.SyncReport) error {
	exported, err := s.client.FetchInvoices(ctx)
	if err != nil {
		return err
	}

	invoices := make([]models.Invoice, 0, len(exported))
	for _, inv := range exported {
		amount, err := decimal.NewFromString(inv.Amount)
		if err != nil {
			slog.Warn("skipping invoice with unparseable amount",
				"number", inv.Number,
				"amount", inv.Amount)
			continue
		}

		var issueDate *time.Time
		if d, ok := ParseLocalDate(inv.Date); ok {
			issueDate = &d
		} else {
			report.DroppedDateless++
		}

		status := inv.Status
		if status == "" {
			status = models.InvoiceStatusOpen
		}
		invoices = append(invoices, models.Invoice{
			Number:     inv.Number,
			CustomerID: inv.CustomerID,
			IssueDate:  issueDate,
			Amount:     amount,
			Status:     status,
		})
	}

	if err := s.invoiceRepo.UpsertBatch(invoices); err != nil {
		return err
	}
	report.Invoices = len(invoices)
	return nil
}

func (s *syncService) syncPayments(ctx context.Context, report *dto.SyncReport) error {
	exported, err := s.client.FetchPayments(ctx)
	if err != nil {
		return err
	}

	payments := make([]models.Payment, 0, len(exported))
	for _, p := range exported {
		if p.ID == "" {
			continue
		}
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			slog.Warn("skipping payment with unparseable amount",
				"payment_id", p.ID,
				"amount", p.Amount)
			continue
		}

		var receivedDate *time.Time
		if d, ok := ParseLocalDate(p.Date); ok {
			receivedDate = &d
		} else {
			report.DroppedDateless++
		}

		payments = append(payments, models.Payment{
			ID:              p.ID,
			CustomerID:      p.CustomerID,
			ReferenceNumber: p.ReferenceNumber,
			ReceivedDate:    receivedDate,
			Amount:          amount,
		})
	}

	if err := s.paymentRepo.UpsertBatch(payments); err != nil {
		return err
	}
	report.Payments = len(payments)
	return nil
}

func (s *syncService) syncApplicationLinks(ctx context.Context, report *dto.SyncReport) error {
	exported, err := s.client.FetchApplicationLinks(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	paymentIDs := make([]string, 0)
	links := make([]models.ApplicationLink, 0, len(exported))
	for _, l := range exported {
		if l.PaymentID == "" {
			continue
		}
		amount, err := decimal.NewFromString(l.AmountPaid)
		if err != nil {
			slog.Warn("skipping application link with unparseable amount",
				"payment_id", l.PaymentID,
				"amount_paid", l.AmountPaid)
			continue
		}

		if !seen[l.PaymentID] {
			seen[l.PaymentID] = true
			paymentIDs = append(paymentIDs, l.PaymentID)
		}
		links = append(links, models.ApplicationLink{
			PaymentID:  l.PaymentID,
			DocType:    l.DocType,
			AppliedTo:  l.AppliedTo,
			AmountPaid: amount,
		})
	}

	if err := s.linkRepo.ReplaceForPayments(paymentIDs, links); err != nil {
		return err
	}
	report.ApplicationLinks = len(links)
	return nil
}
