package middleware

import (
	"receivables-console/internal/errors"
	"receivables-console/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// ApiKeyHeader carries the shared key for machine-to-machine endpoints.
const ApiKeyHeader = "X-Api-Key"

// RequireApiKey guards the sync endpoint with a pre-shared key. Only the
// bcrypt hash of the key is configured on the server.
func RequireApiKey(keyHash string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if keyHash == "" {
				return handlers.SendError(c, errors.AuthInvalidApiKey,
					errors.WithDetails("API key authentication is not configured"))
			}

			key := c.Request().Header.Get(ApiKeyHeader)
			if key == "" {
				return handlers.SendError(c, errors.AuthInvalidApiKey)
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				return handlers.SendError(c, errors.AuthInvalidApiKey)
			}

			return next(c)
		}
	}
}
