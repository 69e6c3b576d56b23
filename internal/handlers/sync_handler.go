package handlers

import (
	"errors"
	"net/http"

	apierrors "receivables-console/internal/errors"
	"receivables-console/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler triggers pulls from the ERP gateway into the local store.
type SyncHandler struct {
	syncService services.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService services.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// TriggerSync runs a full ERP pull
//
// Method: POST /api/v1/sync
// Authentication: Required (X-Api-Key header checked by middleware)
//
// Success Response: 200 OK
//   - data: Sync report with per-entity row counts, the number of records
//     kept without a usable date, and the run duration.
//
// Error Responses:
//   - 401: Invalid or missing API key
//   - 409: A sync run is already in progress
//   - 502: ERP gateway unreachable
//   - 500: Internal server error
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	report, err := h.syncService.Run(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    report,
		Message: "synchronization completed",
	})
}

func (h *SyncHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrSyncAlreadyRunning) {
		return SendError(c, apierrors.SyncAlreadyRunning)
	}

	if errors.Is(err, services.ErrERPUnavailable) {
		return SendError(c, apierrors.SyncUpstreamUnavailable, apierrors.WithDetails(err.Error()))
	}

	return SendError(c, apierrors.SyncFailed, apierrors.WithDetails(err.Error()))
}
