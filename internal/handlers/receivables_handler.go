package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	apierrors "receivables-console/internal/errors"
	"receivables-console/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceivablesHandler exposes the hierarchical receivables tree: months at the
// top, weeks and days materialized on demand, customer payments as leaves.
type ReceivablesHandler struct {
	treeService services.ReceivablesTreeServiceInterface
}

// NewReceivablesHandler creates a new receivables tree handler
func NewReceivablesHandler(treeService services.ReceivablesTreeServiceInterface) *ReceivablesHandler {
	return &ReceivablesHandler{treeService: treeService}
}

// ListMonths returns the top level of the receivables tree
//
// Method: GET /api/v1/receivables/months
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - data: Array of month buckets, most recent first. Each carries both
//     totals (all applications, and excluding payments with credit memo
//     applications) plus invoice and payment counts.
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 422: A stored record could not be assigned to a bucket
//   - 500: Internal server error
func (h *ReceivablesHandler) ListMonths(c echo.Context) error {
	months, err := h.treeService.ListMonths()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: months,
	})
}

// ExpandMonth materializes a month's week buckets
//
// Method: POST /api/v1/receivables/months/:year/:month/expand
// Authentication: Required (JWT)
//
// Path parameters:
//   - year: Four digit year
//   - month: Month number (1-12)
//
// Success Response: 200 OK
//   - data: The month bucket with its week children attached. Weeks with no
//     activity are omitted and the month totals are re-derived from the
//     remaining weeks.
//
// Error Responses:
//   - 400: Invalid year or month
//   - 401: Unauthorized (missing JWT)
//   - 404: Month bucket not found
//   - 422: A stored record could not be assigned to a bucket
//   - 500: Internal server error
func (h *ReceivablesHandler) ExpandMonth(c echo.Context) error {
	year, month, err := h.parseMonthParams(c)
	if err != nil {
		return err
	}

	bucket, err := h.treeService.ExpandMonth(year, month)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: bucket,
	})
}

// CollapseMonth marks a month as collapsed without discarding its children
//
// Method: POST /api/v1/receivables/months/:year/:month/collapse
// Authentication: Required (JWT)
func (h *ReceivablesHandler) CollapseMonth(c echo.Context) error {
	year, month, err := h.parseMonthParams(c)
	if err != nil {
		return err
	}

	bucket, err := h.treeService.CollapseMonth(year, month)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: bucket,
	})
}

// ExpandWeek materializes a week's day buckets with customer leaves
//
// Method: POST /api/v1/receivables/weeks/:year/:month/:week/expand
// Authentication: Required (JWT)
//
// Path parameters:
//   - year: Four digit year
//   - month: Month number (1-12)
//   - week: Within-month week number (1-6)
//
// Success Response: 200 OK
//   - data: The week bucket with its day children attached. Days with no
//     activity are omitted.
//
// Error Responses:
//   - 400: Invalid year, month or week
//   - 401: Unauthorized (missing JWT)
//   - 404: Week bucket not found
//   - 409: The parent month has not been expanded yet
//   - 422: A stored record could not be assigned to a bucket
//   - 500: Internal server error
func (h *ReceivablesHandler) ExpandWeek(c echo.Context) error {
	year, month, week, err := h.parseWeekParams(c)
	if err != nil {
		return err
	}

	bucket, err := h.treeService.ExpandWeek(year, month, week)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: bucket,
	})
}

// CollapseWeek marks a week as collapsed without discarding its children
//
// Method: POST /api/v1/receivables/weeks/:year/:month/:week/collapse
// Authentication: Required (JWT)
func (h *ReceivablesHandler) CollapseWeek(c echo.Context) error {
	year, month, week, err := h.parseWeekParams(c)
	if err != nil {
		return err
	}

	bucket, err := h.treeService.CollapseWeek(year, month, week)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: bucket,
	})
}

// GetDayCustomers returns the customer payment leaves of a materialized day
//
// Method: GET /api/v1/receivables/days/:date/customers
// Authentication: Required (JWT)
//
// Path parameters:
//   - date: ISO date (YYYY-MM-DD)
//
// The day must already have been materialized by expanding its week; this
// endpoint never triggers a fetch.
//
// Error Responses:
//   - 400: Invalid date format
//   - 401: Unauthorized (missing JWT)
//   - 404: Day bucket not materialized
//   - 500: Internal server error
func (h *ReceivablesHandler) GetDayCustomers(c echo.Context) error {
	isoDate := c.Param("date")
	if _, err := time.Parse("2006-01-02", isoDate); err != nil {
		return SendError(c, apierrors.ValidationInvalidDate,
			apierrors.WithDetails("date must be formatted YYYY-MM-DD"))
	}

	leaves, err := h.treeService.GetDayCustomers(isoDate)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: leaves,
	})
}

// Reload discards the cached tree so the next request rebuilds it
//
// Method: POST /api/v1/receivables/reload
// Authentication: Required (JWT, admin role)
func (h *ReceivablesHandler) Reload(c echo.Context) error {
	h.treeService.Reload()

	if userID, err := getUserIDFromContext(c); err == nil {
		slog.Info("receivables tree reload requested", "user_id", userID)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "receivables tree reloaded",
	})
}

func (h *ReceivablesHandler) parseMonthParams(c echo.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return 0, 0, SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("invalid year"))
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("invalid month"))
	}
	if month < 1 || month > 12 {
		return 0, 0, SendError(c, apierrors.PeriodInvalidMonth)
	}

	return year, time.Month(month), nil
}

func (h *ReceivablesHandler) parseWeekParams(c echo.Context) (int, time.Month, int, error) {
	year, month, err := h.parseMonthParams(c)
	if err != nil {
		return 0, 0, 0, err
	}

	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 || week > 6 {
		return 0, 0, 0, SendError(c, apierrors.PeriodInvalidWeek)
	}

	return year, month, week, nil
}

func (h *ReceivablesHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrMonthNotFound) {
		return SendError(c, apierrors.PeriodMonthNotFound)
	}

	if errors.Is(err, services.ErrWeekNotFound) {
		return SendError(c, apierrors.PeriodWeekNotFound)
	}

	if errors.Is(err, services.ErrDayNotFound) {
		return SendError(c, apierrors.PeriodDayNotFound)
	}

	if errors.Is(err, services.ErrNotMaterialized) {
		return SendError(c, apierrors.PeriodNotMaterialized)
	}

	if errors.Is(err, services.ErrUnbucketedRecord) {
		return SendError(c, apierrors.PeriodUnbucketedRecord, apierrors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
