package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// SessionFile is the path of the file-backed key-value store holding
	// the persisted session snapshot.
	SessionFile string
	// SessionSecret signs the persisted session snapshot. A tampered or
	// unverifiable snapshot is discarded at startup.
	SessionSecret string

	// SimulatedLatency is the artificial delay applied to login and account
	// registration, standing in for a remote call.
	SimulatedLatency time.Duration

	AllowedOrigins []string

	// Email settings. Provider "ses" sends via AWS SES; anything else is a no-op.
	EmailProvider      string
	EmailFromAddress   string
	EmailFromName      string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables.
// It attempts to load a .env file first unless running in production,
// where system environment variables are expected to be set.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		SessionFile:        os.Getenv("SESSION_FILE"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		SimulatedLatency:   time.Second,
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if s := os.Getenv("SIMULATED_LATENCY_MS"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil && ms >= 0 {
			cfg.SimulatedLatency = time.Duration(ms) * time.Millisecond
		}
	}

	if s := os.Getenv("ALLOWED_ORIGINS"); s != "" {
		cfg.AllowedOrigins = strings.Split(s, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = "session.json"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "development-secret"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	return cfg, nil
}
