package handlers

import (
	"net/http"
	"time"

	apierrors "receivables-console/internal/errors"
	"receivables-console/internal/models"
	"receivables-console/internal/repositories"
	"receivables-console/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
	invoiceRepo  repositories.InvoiceRepositoryInterface
	paymentRepo  repositories.PaymentRepositoryInterface
	linkRepo     repositories.ApplicationLinkRepositoryInterface
	directory    services.CustomerDirectoryInterface
	tree         services.ReceivablesTreeServiceInterface
	tokenService *services.TokenService
	generator    services.RecordGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	customerRepo repositories.CustomerRepositoryInterface,
	invoiceRepo repositories.InvoiceRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	linkRepo repositories.ApplicationLinkRepositoryInterface,
	directory services.CustomerDirectoryInterface,
	tree services.ReceivablesTreeServiceInterface,
	tokenService *services.TokenService,
) *DevHandler {
	return &DevHandler{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		linkRepo:     linkRepo,
		directory:    directory,
		tree:         tree,
		tokenService: tokenService,
		generator:    services.NewRecordGenerator(time.Now().UnixNano()),
	}
}

// SeedTestData generates a self-consistent receivables history
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - seed: Optional RNG seed for reproducible datasets
//
// Success Response: 200 OK with per-entity row counts
func (h *DevHandler) SeedTestData(c echo.Context) error {
	generator := h.generator
	if seed := getIntParam(c, "seed", 0); seed != 0 {
		generator = services.NewRecordGenerator(int64(seed))
	}

	dataset := generator.GenerateDataset(time.Now().UTC())

	if err := h.customerRepo.UpsertBatch(dataset.Customers); err != nil {
		return SendSystemError(c, err)
	}
	if err := h.invoiceRepo.UpsertBatch(dataset.Invoices); err != nil {
		return SendSystemError(c, err)
	}
	if err := h.paymentRepo.UpsertBatch(dataset.Payments); err != nil {
		return SendSystemError(c, err)
	}

	paymentIDs := make([]string, 0, len(dataset.Payments))
	for i := range dataset.Payments {
		paymentIDs = append(paymentIDs, dataset.Payments[i].ID)
	}
	if err := h.linkRepo.ReplaceForPayments(paymentIDs, dataset.Links); err != nil {
		return SendSystemError(c, err)
	}

	h.directory.Invalidate()
	h.tree.Reload()

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "test data seeded successfully",
		Data: map[string]int{
			"customers":         len(dataset.Customers),
			"invoices":          len(dataset.Invoices),
			"payments":          len(dataset.Payments),
			"application_links": len(dataset.Links),
		},
	})
}

// IssueDevToken signs a short-lived dashboard token with the local dev keypair
//
// Method: POST /api/v1/dev/token
// Environment: Development only
//
// Query parameters:
//   - role: "admin" or "viewer" (default: viewer)
func (h *DevHandler) IssueDevToken(c echo.Context) error {
	role := c.QueryParam("role")
	if role == "" {
		role = models.RoleViewer
	}
	if role != models.RoleAdmin && role != models.RoleViewer {
		return SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails("role must be 'admin' or 'viewer'"))
	}

	token, err := h.tokenService.GenerateDevToken("dev-user", "dev@localhost", role, time.Hour)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]string{
			"access_token": token,
			"token_type":   "Bearer",
			"role":         role,
		},
	})
}
