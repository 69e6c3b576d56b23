package models

import "github.com/golang-jwt/jwt/v5"

// Dashboard roles carried in externally issued tokens.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// DashboardClaims represents the claims in tokens issued by the hosted auth
// service for dashboard users. This API validates them; it never issues them
// outside of development.
type DashboardClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}
