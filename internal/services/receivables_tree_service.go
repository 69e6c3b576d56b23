package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"receivables-console/internal/models"
	"receivables-console/internal/repositories"
)

var (
	ErrMonthNotFound    = errors.New("month bucket not found")
	ErrWeekNotFound     = errors.New("week bucket not found")
	ErrDayNotFound      = errors.New("day bucket not found")
	ErrNotMaterialized  = errors.New("parent bucket has not been expanded")
	ErrUnbucketedRecord = errors.New("record matches no week span")
)

// rootTokenKey guards the initial month-level load the same way per-bucket
// keys guard expansions.
const rootTokenKey = "root"

// receivablesTreeService implements the hierarchical drill-down aggregator.
//
// The tree is materialized lazily: months on first ListMonths, a month's
// weeks on first ExpandMonth, a week's days (with customer leaves) on first
// ExpandWeek. Materialized children are cached; collapse/re-expand cycles
// only flip the Expanded flag.
//
// Fetch and compute run outside the lock. Every expansion takes a token from
// a monotonic sequence; a result whose token is no longer current for its
// bucket is discarded, so a rapid collapse/re-expand cycle cannot land a
// stale child set. Sibling expansions race independently and each writes only
// its own subtree.
type receivablesTreeService struct {
	invoiceRepo repositories.InvoiceRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	linkRepo    repositories.ApplicationLinkRepositoryInterface
	directory   CustomerDirectoryInterface
	metrics     MetricsRecorderInterface

	mu         sync.Mutex
	months     []*models.MonthBucket
	monthIndex map[models.MonthKey]*models.MonthBucket
	dayIndex   map[string]*models.DayBucket
	tokens     map[string]uint64
	tokenSeq   uint64
}

// NewReceivablesTreeService creates the aggregator over the given record
// store repositories and customer directory.
func NewReceivablesTreeService(
	invoiceRepo repositories.InvoiceRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	linkRepo repositories.ApplicationLinkRepositoryInterface,
	directory CustomerDirectoryInterface,
	metrics MetricsRecorderInterface,
) ReceivablesTreeServiceInterface {
	return &receivablesTreeService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		linkRepo:    linkRepo,
		directory:   directory,
		metrics:     metrics,
		monthIndex:  make(map[models.MonthKey]*models.MonthBucket),
		dayIndex:    make(map[string]*models.DayBucket),
		tokens:      make(map[string]uint64),
	}
}

// bumpTokenLocked issues a fresh token for the bucket key. Callers must hold
// the lock.
func (s *receivablesTreeService) bumpTokenLocked(key string) uint64 {
	s.tokenSeq++
	s.tokens[key] = s.tokenSeq
	return s.tokenSeq
}

// ListMonths returns the month level, building it from one full-range pass on
// first call.
func (s *receivablesTreeService) ListMonths() ([]*models.MonthBucket, error) {
	s.mu.Lock()
	if s.months != nil {
		months := s.months
		s.mu.Unlock()
		return months, nil
	}
	token := s.bumpTokenLocked(rootTokenKey)
	s.mu.Unlock()

	started := time.Now()
	months, index, err := s.buildMonths()
	if err != nil {
		s.recordExpansion("month", "error", started)
		return nil, err
	}

	s.mu.Lock()

	if s.tokens[rootTokenKey] != token {
		cached := s.months
		s.mu.Unlock()
		if cached != nil {
			// A concurrent initial load won the race; serve its result.
			return cached, nil
		}
		// A reload superseded this pass mid-build; the fetched slice predates
		// it and must not be served. Rebuild against the fresh token.
		return s.ListMonths()
	}

	s.months = months
	s.monthIndex = index
	s.recordExpansion("month", "success", started)
	s.mu.Unlock()
	return months, nil
}

func (s *receivablesTreeService) buildMonths() ([]*models.MonthBucket, map[models.MonthKey]*models.MonthBucket, error) {
	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	payments, err := s.paymentRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	creditMemo, err := s.fetchCreditMemoFlags(payments)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[models.MonthKey]*models.MonthBucket)
	bucketFor := func(d time.Time) *models.MonthBucket {
		key := models.MonthKey{Year: d.Year(), Month: d.Month()}
		b, ok := index[key]
		if !ok {
			b = &models.MonthBucket{
				Key:          key,
				Label:        MonthLabel(key.Year, key.Month),
				BucketTotals: models.ZeroTotals(),
			}
			index[key] = b
		}
		return b
	}

	// Records without a date are excluded from every bucket. This is a
	// defined exclusion, not an error.
	for i := range invoices {
		if invoices[i].IssueDate == nil {
			continue
		}
		bucketFor(CivilDate(*invoices[i].IssueDate)).InvoiceCount++
	}

	for i := range payments {
		p := &payments[i]
		if p.ReceivedDate == nil {
			continue
		}
		b := bucketFor(CivilDate(*p.ReceivedDate))
		b.PaymentCount++
		b.TotalAll = b.TotalAll.Add(p.Amount)
		if !creditMemo[p.ID] {
			b.TotalExcludingCreditMemos = b.TotalExcludingCreditMemos.Add(p.Amount)
		}
	}

	months := make([]*models.MonthBucket, 0, len(index))
	for _, b := range index {
		months = append(months, b)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Key.Year != months[j].Key.Year {
			return months[i].Key.Year > months[j].Key.Year
		}
		return months[i].Key.Month > months[j].Key.Month
	})

	slog.Info("month buckets built",
		"months", len(months),
		"invoices", len(invoices),
		"payments", len(payments))

	return months, index, nil
}

// ExpandMonth materializes the month's week buckets on first call.
func (s *receivablesTreeService) ExpandMonth(year int, month time.Month) (*models.MonthBucket, error) {
	if _, err := s.ListMonths(); err != nil {
		return nil, err
	}

	key := models.MonthKey{Year: year, Month: month}

	s.mu.Lock()
	bucket, ok := s.monthIndex[key]
	if !ok {
		s.mu.Unlock()
		return nil, ErrMonthNotFound
	}
	if bucket.Children != nil {
		bucket.Expanded = true
		s.mu.Unlock()
		return bucket, nil
	}
	token := s.bumpTokenLocked(key.String())
	s.mu.Unlock()

	started := time.Now()
	weeks, totals, err := s.materializeWeeks(year, month)
	if err != nil {
		s.recordExpansion("week", "error", started)
		slog.Error("month expansion failed",
			"month", key.String(),
			"error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[key.String()] != token {
		// Stale fetch: a newer expansion owns this bucket.
		return bucket, nil
	}

	if bucket.Children == nil {
		bucket.Children = weeks
		// The month's displayed totals are re-derived from its weeks; the two
		// computations must agree because decimal sums are exact.
		bucket.BucketTotals = totals
		bucket.Expanded = true
	}

	s.recordExpansion("week", "success", started)
	return bucket, nil
}

func (s *receivablesTreeService) materializeWeeks(year int, month time.Month) ([]*models.WeekBucket, models.BucketTotals, error) {
	first, _ := MonthSpan(year, month)
	end := NextMonthStart(year, month)

	invoices, err := s.invoiceRepo.GetByDateRange(first, end)
	if err != nil {
		return nil, models.BucketTotals{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	payments, err := s.paymentRepo.GetByDateRange(first, end)
	if err != nil {
		return nil, models.BucketTotals{}, fmt.Errorf("failed to fetch payments: %w", err)
	}

	creditMemo, err := s.fetchCreditMemoFlags(payments)
	if err != nil {
		return nil, models.BucketTotals{}, err
	}

	spans := WeekSpansForMonth(year, month)
	monthKey := models.MonthKey{Year: year, Month: month}

	byWeek := make(map[int]*models.WeekBucket)
	bucketFor := func(d time.Time) (*models.WeekBucket, error) {
		span, ok := WeekForDate(spans, d)
		if !ok {
			// A queried record outside every span means the boundary walk and
			// the range query disagree; surfacing it beats misfiling it.
			return nil, fmt.Errorf("%w: %s in %s", ErrUnbucketedRecord, d.Format("2006-01-02"), monthKey.String())
		}
		b, ok := byWeek[span.Number]
		if !ok {
			b = &models.WeekBucket{
				Key:          models.WeekKey{MonthKey: monthKey, Week: span.Number},
				Label:        WeekLabel(span),
				SpanStart:    span.SpanStart,
				SpanEnd:      span.SpanEnd,
				DisplayStart: span.DisplayStart,
				DisplayEnd:   span.DisplayEnd,
				BucketTotals: models.ZeroTotals(),
			}
			byWeek[span.Number] = b
		}
		return b, nil
	}

	for i := range invoices {
		if invoices[i].IssueDate == nil {
			continue
		}
		b, err := bucketFor(CivilDate(*invoices[i].IssueDate))
		if err != nil {
			return nil, models.BucketTotals{}, err
		}
		b.InvoiceCount++
	}

	for i := range payments {
		p := &payments[i]
		if p.ReceivedDate == nil {
			continue
		}
		b, err := bucketFor(CivilDate(*p.ReceivedDate))
		if err != nil {
			return nil, models.BucketTotals{}, err
		}
		b.PaymentCount++
		b.TotalAll = b.TotalAll.Add(p.Amount)
		if !creditMemo[p.ID] {
			b.TotalExcludingCreditMemos = b.TotalExcludingCreditMemos.Add(p.Amount)
		}
	}

	// Weeks with no records are not shown at all; iterating the spans in
	// order keeps the result ascending by week number.
	weeks := make([]*models.WeekBucket, 0, len(byWeek))
	totals := models.ZeroTotals()
	for _, span := range spans {
		if b, ok := byWeek[span.Number]; ok {
			weeks = append(weeks, b)
			totals.Add(b.BucketTotals)
		}
	}

	return weeks, totals, nil
}

// CollapseMonth flips the expanded flag; cached children are retained.
func (s *receivablesTreeService) CollapseMonth(year int, month time.Month) (*models.MonthBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.monthIndex[models.MonthKey{Year: year, Month: month}]
	if !ok {
		return nil, ErrMonthNotFound
	}
	bucket.Expanded = false
	return bucket, nil
}

// ExpandWeek materializes the week's day buckets on first call.
func (s *receivablesTreeService) ExpandWeek(year int, month time.Month, week int) (*models.WeekBucket, error) {
	s.mu.Lock()
	monthBucket, ok := s.monthIndex[models.MonthKey{Year: year, Month: month}]
	if !ok {
		s.mu.Unlock()
		return nil, ErrMonthNotFound
	}
	if monthBucket.Children == nil {
		s.mu.Unlock()
		return nil, ErrNotMaterialized
	}

	bucket := findWeek(monthBucket.Children, week)
	if bucket == nil {
		s.mu.Unlock()
		return nil, ErrWeekNotFound
	}
	if bucket.Children != nil {
		bucket.Expanded = true
		s.mu.Unlock()
		return bucket, nil
	}
	token := s.bumpTokenLocked(bucket.Key.String())
	displayStart, displayEnd := bucket.DisplayStart, bucket.DisplayEnd
	s.mu.Unlock()

	started := time.Now()
	days, totals, err := s.materializeDays(displayStart, displayEnd)
	if err != nil {
		s.recordExpansion("day", "error", started)
		slog.Error("week expansion failed",
			"week", bucket.Key.String(),
			"error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens[bucket.Key.String()] != token {
		return bucket, nil
	}

	if bucket.Children == nil {
		bucket.Children = days
		bucket.BucketTotals = totals
		bucket.Expanded = true
		for _, d := range days {
			s.dayIndex[d.ISODate()] = d
		}
	}

	s.recordExpansion("day", "success", started)
	return bucket, nil
}

func (s *receivablesTreeService) materializeDays(displayStart, displayEnd time.Time) ([]*models.DayBucket, models.BucketTotals, error) {
	end := displayEnd.AddDate(0, 0, 1)

	invoices, err := s.invoiceRepo.GetByDateRange(displayStart, end)
	if err != nil {
		return nil, models.BucketTotals{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	payments, err := s.paymentRepo.GetByDateRange(displayStart, end)
	if err != nil {
		return nil, models.BucketTotals{}, fmt.Errorf("failed to fetch payments: %w", err)
	}

	creditMemo, err := s.fetchCreditMemoFlags(payments)
	if err != nil {
		return nil, models.BucketTotals{}, err
	}

	// Leaves carry resolved display names, so the directory has to be warm
	// before the day buckets are assembled.
	if err := s.directory.EnsureLoaded(); err != nil {
		return nil, models.BucketTotals{}, fmt.Errorf("failed to load customer directory: %w", err)
	}

	byDay := make(map[string]*models.DayBucket)
	bucketFor := func(d time.Time) *models.DayBucket {
		iso := d.Format("2006-01-02")
		b, ok := byDay[iso]
		if !ok {
			b = &models.DayBucket{
				Date:         d,
				Label:        DayLabel(d),
				BucketTotals: models.ZeroTotals(),
				Customers:    []models.CustomerLeaf{},
			}
			byDay[iso] = b
		}
		return b
	}

	for i := range invoices {
		if invoices[i].IssueDate == nil {
			continue
		}
		bucketFor(CivilDate(*invoices[i].IssueDate)).InvoiceCount++
	}

	for i := range payments {
		p := &payments[i]
		if p.ReceivedDate == nil {
			continue
		}
		b := bucketFor(CivilDate(*p.ReceivedDate))
		b.PaymentCount++
		b.TotalAll = b.TotalAll.Add(p.Amount)
		hasMemo := creditMemo[p.ID]
		if !hasMemo {
			b.TotalExcludingCreditMemos = b.TotalExcludingCreditMemos.Add(p.Amount)
		}

		refs := []string{}
		if p.ReferenceNumber != "" {
			refs = append(refs, p.ReferenceNumber)
		}
		b.Customers = append(b.Customers, models.CustomerLeaf{
			CustomerID:    p.CustomerID,
			CustomerName:  s.directory.ResolveName(p.CustomerID),
			PaymentID:     p.ID,
			PaymentAmount: p.Amount,
			InvoiceRefs:   refs,
			HasCreditMemo: hasMemo,
		})
	}

	days := make([]*models.DayBucket, 0, len(byDay))
	totals := models.ZeroTotals()
	for _, b := range byDay {
		days = append(days, b)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	for _, b := range days {
		totals.Add(b.BucketTotals)
	}

	return days, totals, nil
}

// CollapseWeek flips the expanded flag; cached children are retained.
func (s *receivablesTreeService) CollapseWeek(year int, month time.Month, week int) (*models.WeekBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	monthBucket, ok := s.monthIndex[models.MonthKey{Year: year, Month: month}]
	if !ok {
		return nil, ErrMonthNotFound
	}
	if monthBucket.Children == nil {
		return nil, ErrNotMaterialized
	}
	bucket := findWeek(monthBucket.Children, week)
	if bucket == nil {
		return nil, ErrWeekNotFound
	}
	bucket.Expanded = false
	return bucket, nil
}

// GetDayCustomers projects the leaves of a materialized day; it never
// fetches. One leaf per payment, not deduplicated by customer.
func (s *receivablesTreeService) GetDayCustomers(isoDate string) ([]models.CustomerLeaf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.dayIndex[isoDate]
	if !ok {
		return nil, ErrDayNotFound
	}

	leaves := make([]models.CustomerLeaf, len(day.Customers))
	copy(leaves, day.Customers)
	return leaves, nil
}

// Reload discards the whole tree. In-flight expansions from before the
// reload carry tokens that no longer match and their results are dropped.
func (s *receivablesTreeService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.months = nil
	s.monthIndex = make(map[models.MonthKey]*models.MonthBucket)
	s.dayIndex = make(map[string]*models.DayBucket)
	s.tokens = make(map[string]uint64)

	slog.Info("receivables tree discarded")
}

// fetchCreditMemoFlags resolves, for each payment, whether any of its
// application links is a credit memo. The id set is batched by the
// repository; a payment with no links is vacuously false.
func (s *receivablesTreeService) fetchCreditMemoFlags(payments []models.Payment) (map[string]bool, error) {
	if len(payments) == 0 {
		return map[string]bool{}, nil
	}

	ids := make([]string, 0, len(payments))
	for i := range payments {
		ids = append(ids, payments[i].ID)
	}

	links, err := s.linkRepo.GetByPaymentIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application links: %w", err)
	}

	flags := make(map[string]bool)
	for i := range links {
		if links[i].DocType == models.DocTypeCreditMemo {
			flags[links[i].PaymentID] = true
		}
	}
	return flags, nil
}

func (s *receivablesTreeService) recordExpansion(level, status string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("tree_expansion", map[string]string{
		"level":  level,
		"status": status,
	})
	s.metrics.RecordProcessingTime("tree_expansion_duration", time.Since(started))
}

func findWeek(weeks []*models.WeekBucket, number int) *models.WeekBucket {
	for _, w := range weeks {
		if w.Key.Week == number {
			return w
		}
	}
	return nil
}
