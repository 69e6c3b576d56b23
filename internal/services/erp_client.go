package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"receivables-console/internal/config"
	"receivables-console/internal/dto"
)

// ErrERPUnavailable marks transport-level failures against the ERP gateway.
var ErrERPUnavailable = errors.New("erp gateway unavailable")

type erpAuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *erpAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// ERPClient pulls the ERP gateway's paged export endpoints. Each FetchX walks
// pages of a fixed size until the gateway reports no more data.
type ERPClient struct {
	config  *config.ERPConfig
	client  *http.Client
	logger  *slog.Logger
	breaker *CircuitBreaker
}

// NewERPClient creates a new ERP gateway client
func NewERPClient(cfg *config.ERPConfig, logger *slog.Logger) ERPClientInterface {
	transport := &erpAuthTransport{
		apiKey: cfg.ApiKey,
		base:   http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &ERPClient{
		config:  cfg,
		client:  client,
		logger:  logger,
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
	}
}

func (s *ERPClient) FetchCustomers(ctx context.Context) ([]dto.ERPCustomer, error) {
	return fetchAllPages[dto.ERPCustomer](ctx, s, "/export/customers")
}

func (s *ERPClient) FetchInvoices(ctx context.Context) ([]dto.ERPInvoice, error) {
	return fetchAllPages[dto.ERPInvoice](ctx, s, "/export/invoices")
}

func (s *ERPClient) FetchPayments(ctx context.Context) ([]dto.ERPPayment, error) {
	return fetchAllPages[dto.ERPPayment](ctx, s, "/export/payments")
}

func (s *ERPClient) FetchApplicationLinks(ctx context.Context) ([]dto.ERPApplicationLink, error) {
	return fetchAllPages[dto.ERPApplicationLink](ctx, s, "/export/payment-applications")
}

// fetchAllPages walks a paged export endpoint sequentially, concatenating
// page data until has_more goes false.
func fetchAllPages[T any](ctx context.Context, s *ERPClient, path string) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		envelope, err := fetchPage[T](ctx, s, path, page)
		if err != nil {
			return nil, err
		}

		all = append(all, envelope.Data...)
		if !envelope.HasMore {
			break
		}
	}

	return all, nil
}

func fetchPage[T any](ctx context.Context, s *ERPClient, path string, page int) (*dto.ERPPage[T], error) {
	if s.breaker.IsOpen() {
		return nil, fmt.Errorf("%w: %v", ErrERPUnavailable, ErrCircuitOpen)
	}

	url := fmt.Sprintf("%s%s?page=%s&page_size=%s",
		s.config.BaseUrl,
		path,
		strconv.Itoa(page),
		strconv.Itoa(s.config.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.Error("erp request failed",
			"path", path,
			"page", page,
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrERPUnavailable, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch resp.StatusCode {

	case http.StatusOK:
		var envelope dto.ERPPage[T]
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decode export page: %w", err)
		}
		s.breaker.RecordSuccess()
		return &envelope, nil

	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusInternalServerError:

		if resp.StatusCode >= http.StatusInternalServerError {
			s.breaker.RecordFailure()
		}

		var errResp dto.ERPErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("erp error (%d): %s", resp.StatusCode, string(body))
		}

		s.logger.Error("erp export error",
			"path", path,
			"status", resp.StatusCode,
			"code", errResp.Error.Code,
			"message", errResp.Error.Message,
			"request_id", errResp.Error.RequestID)

		return nil, fmt.Errorf("%w: %s", ErrERPUnavailable, errResp.Error.Message)

	default:
		return nil, fmt.Errorf("unexpected erp response (%d): %s", resp.StatusCode, string(body))
	}
}
