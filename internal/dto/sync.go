package dto

import "time"

// SyncReport summarizes one synchronization run against the ERP gateway.
type SyncReport struct {
	StartedAt        time.Time     `json:"started_at"`
	FinishedAt       time.Time     `json:"finished_at"`
	Duration         time.Duration `json:"-"`
	DurationMillis   int64         `json:"duration_ms"`
	Customers        int           `json:"customers"`
	Invoices         int           `json:"invoices"`
	Payments         int           `json:"payments"`
	ApplicationLinks int           `json:"application_links"`
	DroppedDateless  int           `json:"dropped_dateless"`
}
