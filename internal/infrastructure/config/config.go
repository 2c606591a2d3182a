// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mail provider selection.
const (
	MailProviderResend = "resend"
	MailProviderGmail  = "gmail"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string

	// Firebase Realtime Database
	FirebaseDatabaseURL     string
	FirebaseCredentialsFile string
	StoreTimeout            time.Duration

	// MongoDB (email dispatch log; disabled when DSN is empty)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Postgres (airport reference data; static fallback when empty)
	PostgresURI string

	// Mail
	MailProvider string
	MailAPIURL   string
	MailAPIKey   string
	MailFrom     string
	MailTimeout  time.Duration

	// Gmail (only when MailProvider == gmail)
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:     getEnv("APP_VERSION", "1.0.0"),
		Port:           getEnv("PORT", "8080"),
		ReadTimeout:    time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:   time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "*")),

		FirebaseDatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json"),
		StoreTimeout:            time.Duration(getEnvAsInt("STORE_TIMEOUT", 10)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "udaansathi"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_URI", ""),

		MailProvider: getEnv("MAIL_PROVIDER", MailProviderResend),
		MailAPIURL:   getEnv("MAIL_API_URL", "https://api.resend.com"),
		MailAPIKey:   getEnv("MAIL_API_KEY", ""),
		MailFrom:     getEnv("MAIL_FROM", "Udaan Sathi <alerts@udaansathi.in>"),
		MailTimeout:  time.Duration(getEnvAsInt("MAIL_TIMEOUT", 30)) * time.Second,

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
	}

	if config.FirebaseDatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is not set")
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
