package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekSpan describes one Sunday-to-Saturday stripe of a month.
//
// SpanStart/SpanEnd form the classification window records are bucketed by;
// they may reach into the neighboring months. DisplayStart/DisplayEnd are
// clipped to the month and are what the dashboard shows.
type WeekSpan struct {
	Number       int
	SpanStart    time.Time
	SpanEnd      time.Time
	DisplayStart time.Time
	DisplayEnd   time.Time
}

// ParseLocalDate extracts the calendar date from a raw ERP date string.
//
// The date component is authoritative: the string is cut at the first date/time
// separator and the numeric Y-M-D is parsed directly, so a trailing time or
// zone offset can never shift the day. Returns ok=false for empty or
// malformed input; callers treat those records as dateless and exclude them.
func ParseLocalDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	datePart := raw
	if i := strings.IndexAny(raw, "T "); i >= 0 {
		datePart = raw[:i]
	}

	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30); reject anything that moved.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}

	return d, true
}

// CivilDate truncates a timestamp to its calendar date in UTC.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthSpan returns the first and last calendar day of a month.
func MonthSpan(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// NextMonthStart returns the first day of the following month, the exclusive
// upper bound used by date-range queries.
func NextMonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}

// WeekSpansForMonth walks the month in 7-day strides starting from the Sunday
// on/before its first day. Week numbering restarts at 1 every month. The
// resulting spans partition the month: every day of the month falls in exactly
// one span's display window, while classification windows tile the full
// Sunday-to-Saturday grid.
func WeekSpansForMonth(year int, month time.Month) []WeekSpan {
	first, last := MonthSpan(year, month)

	start := first.AddDate(0, 0, -int(first.Weekday()))

	spans := make([]WeekSpan, 0, 6)
	number := 1
	for spanStart := start; !spanStart.After(last); spanStart = spanStart.AddDate(0, 0, 7) {
		spanEnd := spanStart.AddDate(0, 0, 6)

		displayStart := spanStart
		if displayStart.Before(first) {
			displayStart = first
		}
		displayEnd := spanEnd
		if displayEnd.After(last) {
			displayEnd = last
		}

		spans = append(spans, WeekSpan{
			Number:       number,
			SpanStart:    spanStart,
			SpanEnd:      spanEnd,
			DisplayStart: displayStart,
			DisplayEnd:   displayEnd,
		})
		number++
	}

	return spans
}

// Contains reports whether d falls inside the span's classification window,
// inclusive on both ends.
func (w WeekSpan) Contains(d time.Time) bool {
	d = CivilDate(d)
	return !d.Before(w.SpanStart) && !d.After(w.SpanEnd)
}

// WeekForDate locates the span whose classification window contains d.
func WeekForDate(spans []WeekSpan, d time.Time) (WeekSpan, bool) {
	for _, span := range spans {
		if span.Contains(d) {
			return span, true
		}
	}
	return WeekSpan{}, false
}

// MonthLabel renders a month bucket's display string, e.g. "March 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// WeekLabel renders a week bucket's display string using the clipped dates,
// e.g. "Week 1 (Mar 1 - Mar 2)".
func WeekLabel(span WeekSpan) string {
	return fmt.Sprintf("Week %d (%s - %s)",
		span.Number,
		span.DisplayStart.Format("Jan 2"),
		span.DisplayEnd.Format("Jan 2"))
}

// DayLabel renders a day bucket's display string, e.g. "Mar 3, 2024".
func DayLabel(d time.Time) string {
	return d.Format("Jan 2, 2006")
}
