package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user's id from context.
// Returns ErrUnauthorized if it is missing or the wrong type.
func getUserIDFromContext(c echo.Context) (string, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return "", ErrUnauthorized
	}

	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
