package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"receivables-console/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

type PanicRecoverySuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *PanicRecoverySuite) SetupTest() {
	s.e = echo.New()
}

// recoverFrom runs a handler that panics with the given value and returns the
// recorder after the middleware has handled it.
func (s *PanicRecoverySuite) recoverFrom(panicValue interface{}, traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/receivables/months", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicValue)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	return rec
}

func (s *PanicRecoverySuite) TestRecoversAndRespondsWithSystemError() {
	rec := s.recoverFrom("boom", "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

func (s *PanicRecoverySuite) TestMissingTraceIDFallsBackToUnknown() {
	rec := s.recoverFrom("boom", "")

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoverySuite) TestNormalFlowUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoverySuite) TestRecoversFromArbitraryPanicValues() {
	for _, panicValue := range []interface{}{
		"string panic",
		42,
		struct{ msg string }{"error"},
		nil,
	} {
		rec := s.recoverFrom(panicValue, "test-trace-id")
		s.Equal(http.StatusInternalServerError, rec.Code)
	}
}
