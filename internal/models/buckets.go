package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey identifies a month bucket.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// WeekKey identifies a week bucket within a month. Week numbering restarts at
// 1 for every month.
type WeekKey struct {
	MonthKey
	Week int `json:"week"`
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%s-W%d", k.MonthKey.String(), k.Week)
}

// BucketTotals holds the counts and the two monetary totals every bucket
// carries. TotalAll sums every payment in the span; TotalExcludingCreditMemos
// zeroes the contribution of payments linked to a credit memo. Both are
// computed together at materialization time so the dashboard's mode toggle
// never needs a re-fetch.
type BucketTotals struct {
	InvoiceCount              int             `json:"invoice_count"`
	PaymentCount              int             `json:"payment_count"`
	TotalAll                  decimal.Decimal `json:"total_all"`
	TotalExcludingCreditMemos decimal.Decimal `json:"total_excluding_credit_memos"`
}

// Add accumulates another set of totals into t.
func (t *BucketTotals) Add(other BucketTotals) {
	t.InvoiceCount += other.InvoiceCount
	t.PaymentCount += other.PaymentCount
	t.TotalAll = t.TotalAll.Add(other.TotalAll)
	t.TotalExcludingCreditMemos = t.TotalExcludingCreditMemos.Add(other.TotalExcludingCreditMemos)
}

// ZeroTotals returns totals with both sums at decimal zero, so JSON renders
// "0" rather than a null decimal.
func ZeroTotals() BucketTotals {
	return BucketTotals{
		TotalAll:                  decimal.Zero,
		TotalExcludingCreditMemos: decimal.Zero,
	}
}

// MonthBucket is the top level of the drill-down tree.
//
// Children is nil until the month has been expanded once; an expanded month
// with no qualifying weeks holds an empty non-nil slice. The distinction is
// what lets re-expansion skip the fetch.
type MonthBucket struct {
	Key      MonthKey `json:"key"`
	Label    string   `json:"label"`
	Expanded bool     `json:"expanded"`
	BucketTotals
	Children []*WeekBucket `json:"children,omitempty"`
}

// WeekBucket is a Sunday-to-Saturday span within a month. SpanStart/SpanEnd
// form the unclipped classification window; DisplayStart/DisplayEnd are
// clipped to the month for presentation.
type WeekBucket struct {
	Key          WeekKey   `json:"key"`
	Label        string    `json:"label"`
	SpanStart    time.Time `json:"span_start"`
	SpanEnd      time.Time `json:"span_end"`
	DisplayStart time.Time `json:"display_start"`
	DisplayEnd   time.Time `json:"display_end"`
	Expanded     bool      `json:"expanded"`
	BucketTotals
	Children []*DayBucket `json:"children,omitempty"`
}

// DayBucket is a single calendar day, keyed by its ISO date. Customer leaves
// are populated together with the day so leaf rendering needs no extra round
// trip.
type DayBucket struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	BucketTotals
	Customers []CustomerLeaf `json:"customers"`
}

// ISODate returns the day bucket's canonical key.
func (d *DayBucket) ISODate() string {
	return d.Date.Format("2006-01-02")
}

// CustomerLeaf is the terminal level: one leaf per payment on the day, not
// deduplicated by customer.
type CustomerLeaf struct {
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	PaymentID     string          `json:"payment_id"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	InvoiceRefs   []string        `json:"invoice_refs"`
	HasCreditMemo bool            `json:"has_credit_memo"`
}
