package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	ERP         ERPConfig
	Sync        SyncConfig
	Aggregation AggregationConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig holds the key material for validating dashboard tokens. Tokens
// are issued by the hosted auth service; this API only verifies them, so in
// production only the public key is required.
type AuthConfig struct {
	PublicKey  *rsa.PublicKey
	privateKey *rsa.PrivateKey // dev-only, used to mint tokens for local testing
	Issuer     string
}

// ERPConfig describes the hosted ERP gateway the sync path pulls from.
type ERPConfig struct {
	BaseUrl  string
	ApiKey   string
	PageSize int
	Timeout  time.Duration
}

// SyncConfig guards the sync trigger endpoint. ApiKeyHash is a bcrypt hash of
// the shared key the scheduler presents; the plaintext never reaches config.
type SyncConfig struct {
	ApiKeyHash string
}

// AggregationConfig tunes the period aggregator. LinkBatchSize bounds the id
// count per application-link query, not memory.
type AggregationConfig struct {
	LinkBatchSize int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "receivables_user"),
			Password:        getEnv("DB_PASSWORD", "receivables_password"),
			Name:            getEnv("DB_NAME", "receivables_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			Issuer: getEnv("AUTH_ISSUER", "receivables-console"),
		},
		ERP: ERPConfig{
			BaseUrl:  getEnv("ERP_BASE_URL", "http://localhost:9090"),
			ApiKey:   getEnv("ERP_API_KEY", ""),
			PageSize: getIntEnv("ERP_PAGE_SIZE", 200),
			Timeout:  getDurationEnv("ERP_TIMEOUT", 30*time.Second),
		},
		Sync: SyncConfig{
			ApiKeyHash: getEnv("SYNC_API_KEY_HASH", ""),
		},
		Aggregation: AggregationConfig{
			LinkBatchSize: getIntEnv("AGG_LINK_BATCH_SIZE", 100),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadKeysErr error
	config.Auth.privateKey, config.Auth.PublicKey, loadKeysErr = config.loadAuthKeys()
	if loadKeysErr != nil {
		log.Fatal("Failed to load RSA keys:", loadKeysErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// DevPrivateKey returns the generated signing key in non-production
// environments, nil otherwise. The dev token helper uses it to mint tokens
// that pass validation without the hosted auth service.
func (c *AuthConfig) DevPrivateKey() *rsa.PrivateKey {
	return c.privateKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadAuthKeys loads the RSA key material for token validation.
// Priority order:
//  1. If AUTH_PUBLIC_KEY is set, use it (AUTH_PRIVATE_KEY is optional and
//     only consumed by the dev token helper)
//  2. If production and the public key is missing, fail
//  3. If development/testing, generate a throwaway keypair
func (c *Config) loadAuthKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("AUTH_PUBLIC_KEY")
	privateKeyB64 := os.Getenv("AUTH_PRIVATE_KEY")

	if publicKeyB64 != "" {
		log.Println("Loading RSA public key from environment")
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode AUTH_PUBLIC_KEY: %w", err)
		}
		publicKey, err := loadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
		}

		var privateKey *rsa.PrivateKey
		if privateKeyB64 != "" {
			privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to decode AUTH_PRIVATE_KEY: %w", err)
			}
			privateKey, err = loadRSAPrivateKey(privateKeyBytes)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
			}
		}

		return privateKey, publicKey, nil
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("AUTH_PUBLIC_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating new RSA keypair for token validation (set AUTH_PUBLIC_KEY to persist across restarts)")
	return GenerateRSAKeyPair()
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// DevAuthConfig builds an AuthConfig around a throwaway keypair, matching what
// Load produces in development. Local tooling and tests use it to mint and
// validate tokens without the hosted auth service.
func DevAuthConfig(issuer string) (*AuthConfig, error) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, err
	}
	return &AuthConfig{
		PublicKey:  publicKey,
		privateKey: privateKey,
		Issuer:     issuer,
	}, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Fallback: PKCS8 format support for compatibility with various key generation tools
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("key is not an RSA private key")
		}
		return rsaKey, nil
	}

	return privateKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		return key, nil
	}

	rsaKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("key is not an RSA public key")
	}
	return rsaKey, nil
}
