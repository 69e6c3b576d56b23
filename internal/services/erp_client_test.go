package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"receivables-console/internal/config"
	"receivables-console/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestERPClient(t *testing.T, handler http.Handler) ERPClientInterface {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.ERPConfig{
		BaseUrl:  server.URL,
		ApiKey:   "test-api-key",
		PageSize: 2,
		Timeout:  5 * time.Second,
	}
	return NewERPClient(cfg, slog.Default())
}

func TestERPClient_FetchCustomers_WalksAllPages(t *testing.T) {
	var authHeaders []string

	client := newTestERPClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/export/customers", r.URL.Path)
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		require.Equal(t, "2", r.URL.Query().Get("page_size"))

		envelope := dto.ERPPage[dto.ERPCustomer]{Page: page, PageSize: 2}
		switch page {
		case 1:
			envelope.Data = []dto.ERPCustomer{{ID: "CUST-01"}, {ID: "CUST-02"}}
			envelope.HasMore = true
		case 2:
			envelope.Data = []dto.ERPCustomer{{ID: "CUST-03"}}
		default:
			t.Fatalf("unexpected page %d", page)
		}
		json.NewEncoder(w).Encode(envelope)
	}))

	customers, err := client.FetchCustomers(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "CUST-03", customers[2].ID)

	require.Len(t, authHeaders, 2)
	for _, h := range authHeaders {
		assert.Equal(t, "Bearer test-api-key", h)
	}
}

func TestERPClient_FetchInvoices_RawStringsPassThrough(t *testing.T) {
	client := newTestERPClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/export/invoices", r.URL.Path)
		json.NewEncoder(w).Encode(dto.ERPPage[dto.ERPInvoice]{
			Data: []dto.ERPInvoice{
				{Number: "INV-1", CustomerID: "CUST-01", Date: "2024-03-05T00:00:00-07:00", Amount: "100.00"},
				{Number: "INV-2", CustomerID: "CUST-01", Date: "pending", Amount: "oops"},
			},
		})
	}))

	invoices, err := client.FetchInvoices(context.Background())

	// The client does not normalize; raw export strings reach the sync layer
	// untouched.
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "2024-03-05T00:00:00-07:00", invoices[0].Date)
	assert.Equal(t, "pending", invoices[1].Date)
	assert.Equal(t, "oops", invoices[1].Amount)
}

func TestERPClient_GatewayError(t *testing.T) {
	client := newTestERPClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ERPErrorResponse{
			Error: dto.ERPErrorDetail{Code: "EXPORT_FAILED", Message: "export job crashed"},
		})
	}))

	_, err := client.FetchPayments(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrERPUnavailable)
	assert.Contains(t, err.Error(), "export job crashed")
}

func TestERPClient_UnexpectedStatus(t *testing.T) {
	client := newTestERPClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := client.FetchApplicationLinks(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrERPUnavailable)
	assert.Contains(t, err.Error(), "unexpected erp response")
}

func TestERPClient_ConnectionRefused(t *testing.T) {
	cfg := &config.ERPConfig{
		BaseUrl:  "http://127.0.0.1:1",
		ApiKey:   "test-api-key",
		PageSize: 2,
		Timeout:  time.Second,
	}
	client := NewERPClient(cfg, slog.Default())

	_, err := client.FetchCustomers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrERPUnavailable)
}
