package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	AuthCookieSecure bool
	JWTSecret        string

	CompanyServiceURL string
	ProtoDescriptor   string
	DirectoryBackend  string

	UserAPIURL  string
	CORSOrigins []string
}

const (
	DirectoryBackendStub = "stub"
	DirectoryBackendGRPC = "grpc"
)

// ErrMissingJWTSecret is returned when COMPANY_JWT_SECRET is unset. The signing
// secret has no default: sessions signed with a guessable secret are forgeable.
var ErrMissingJWTSecret = errors.New("COMPANY_JWT_SECRET is required")

// Load loads configuration from environment variables and .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	secret := strings.TrimSpace(os.Getenv("COMPANY_JWT_SECRET"))
	if secret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	cfg := Config{
		AppName:           getenv("APP_SERVICE", "company-portal"),
		AppVersion:        getenv("APP_VERSION", "0.1.0"),
		Environment:       environment,
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		AuthCookieSecure:  authCookieSecure,
		JWTSecret:         secret,
		CompanyServiceURL: getenv("COMPANY_SERVICE_URL", "localhost:50051"),
		ProtoDescriptor:   strings.TrimSpace(os.Getenv("COMPANY_PROTO_DESCRIPTOR")),
		DirectoryBackend:  normalizeDirectoryBackend(getenv("COMPANY_DIRECTORY_BACKEND", DirectoryBackendStub)),
		UserAPIURL:        getenv("USER_API_URL", "http://localhost:3005"),
		CORSOrigins:       parseOrigins(os.Getenv("CORS_ORIGINS")),
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the CORS allow-list: the user-profile REST backend
// plus any extra configured origins.
func (c Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.CORSOrigins)+1)
	if c.UserAPIURL != "" {
		origins = append(origins, c.UserAPIURL)
	}
	for _, o := range c.CORSOrigins {
		if o != c.UserAPIURL {
			origins = append(origins, o)
		}
	}
	return origins
}

func normalizeDirectoryBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DirectoryBackendGRPC:
		return DirectoryBackendGRPC
	default:
		return DirectoryBackendStub
	}
}

func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
