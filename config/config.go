package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Mail     MailConfig
	Contact  ContactConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For; empty means the peer address is the client.
	TrustedProxies []string
}

// DatabaseConfig points at the document store holding the projects collection.
// An empty URI leaves the project endpoints answering with a configuration error.
type DatabaseConfig struct {
	URI            string
	Name           string
	Collection     string
	ConnectTimeout time.Duration
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AuthConfig holds the two admin secrets. Both are required for login;
// SecretToken alone is required for authenticated writes.
type AuthConfig struct {
	AdminPassword string
	SecretToken   string
}

func (a AuthConfig) Configured() bool {
	return a.AdminPassword != "" && a.SecretToken != ""
}

type MailConfig struct {
	Transport      string
	User           string
	Password       string
	Host           string
	Port           int
	SendgridAPIKey string
	Recipient      string
}

type ContactConfig struct {
	RatePerMinute int
	Burst         int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

const (
	MailTransportSMTP     = "smtp"
	MailTransportSendgrid = "sendgrid"
	MailTransportConsole  = "console"
)

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", ""),
			Name:           getEnv("MONGODB_DB", "PortfolioDB"),
			Collection:     getEnv("MONGODB_COLLECTION", "projects"),
			ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("PROJECTS_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			SecretToken:   getEnv("API_SECRET_TOKEN", ""),
		},
		Mail: MailConfig{
			Transport:      strings.ToLower(getEnv("MAIL_TRANSPORT", MailTransportSMTP)),
			User:           getEnv("EMAIL_USER", ""),
			Password:       getEnv("EMAIL_PASS", ""),
			Host:           getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:           getEnvAsInt("SMTP_PORT", 587),
			SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			Recipient:      getEnv("EMAIL_TO", ""),
		},
		Contact: ContactConfig{
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MINUTE", 0),
			Burst:         getEnvAsInt("CONTACT_RATE_BURST", 5),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects only settings the process cannot start without.
// Missing secrets are reported per request by the operations that need them.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Mail.Transport {
	case MailTransportSMTP, MailTransportSendgrid, MailTransportConsole:
	default:
		return fmt.Errorf("MAIL_TRANSPORT %q is not supported", c.Mail.Transport)
	}

	if c.Contact.RatePerMinute < 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must not be negative")
	}

	return nil
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	out := make([]string, 0, 4)
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
