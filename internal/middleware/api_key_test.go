package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestApiKeyMiddleware(t *testing.T) {
	suite.Run(t, new(ApiKeyMiddlewareSuite))
}

type ApiKeyMiddlewareSuite struct {
	suite.Suite
	e       *echo.Echo
	keyHash string
}

func (s *ApiKeyMiddlewareSuite) SetupSuite() {
	hash, err := bcrypt.GenerateFromPassword([]byte("sync-key-123"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.keyHash = string(hash)
}

func (s *ApiKeyMiddlewareSuite) SetupTest() {
	s.e = echo.New()
}

func (s *ApiKeyMiddlewareSuite) do(keyHash, headerValue string) *httptest.ResponseRecorder {
	handler := RequireApiKey(keyHash)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
	if headerValue != "" {
		req.Header.Set(ApiKeyHeader, headerValue)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// SendError writes the response and returns nil.
	s.NoError(handler(c))
	return rec
}

func (s *ApiKeyMiddlewareSuite) TestRequireApiKey_ValidKey() {
	rec := s.do(s.keyHash, "sync-key-123")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ApiKeyMiddlewareSuite) TestRequireApiKey_MissingHeader() {
	rec := s.do(s.keyHash, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *ApiKeyMiddlewareSuite) TestRequireApiKey_WrongKey() {
	rec := s.do(s.keyHash, "wrong-key")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_005")
}

func (s *ApiKeyMiddlewareSuite) TestRequireApiKey_NotConfigured() {
	rec := s.do("", "sync-key-123")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "not configured")
}
