package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"receivables-console/internal/config"
	"receivables-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService validates dashboard tokens issued by the hosted auth service.
// Only the issuer's public key is configured here; this API never signs
// tokens outside of development.
type TokenService struct {
	auth *config.AuthConfig
}

// NewTokenService creates a new token service from auth configuration
func NewTokenService(authConfig *config.AuthConfig) *TokenService {
	return &TokenService{
		auth: authConfig,
	}
}

// ValidateAccessToken validates and parses a dashboard access token
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.DashboardClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.DashboardClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.DashboardClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ts.auth.Issuer {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// GenerateDevToken signs a short-lived token with the locally generated dev
// keypair. It fails in production, where no private key exists.
func (ts *TokenService) GenerateDevToken(userID, email, role string, ttl time.Duration) (string, error) {
	privateKey := ts.auth.DevPrivateKey()
	if privateKey == nil {
		return "", errors.New("no signing key available outside development")
	}

	now := time.Now()
	claims := models.DashboardClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.auth.Issuer,
			Subject:   email,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign dev token: %w", err)
	}

	return signed, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	// RS256 required so the issuer can rotate keys without sharing secrets
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.auth.PublicKey, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
