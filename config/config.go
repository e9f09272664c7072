package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MemoryDatabase selects the volatile in-memory project store instead of a SQL database
const MemoryDatabase = "memory"

const (
	defaultMaxUploadBytes    = 4 << 20
	defaultAllowedExtensions = "png,jpg,jpeg,gif,webp"
)

// Config holds all process-wide settings, loaded once at startup
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Uploads  UploadConfig
	Admin    AdminConfig
	Session  SessionConfig
	Log      LogConfig

	// EnvFileLoaded reports whether a .env file was found
	EnvFileLoaded bool
}

type ServerConfig struct {
	Port    string
	GinMode string
	Version string
}

type DatabaseConfig struct {
	// URL is a postgres:// URL, a sqlite file path, or MemoryDatabase
	URL string
}

type UploadConfig struct {
	Dir               string
	MaxBytes          int64
	AllowedExtensions []string
}

type AdminConfig struct {
	Username     string
	PasswordHash string
}

type SessionConfig struct {
	Secret       string
	SecureCookie bool
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadEnv loads environment variables from .env file
func LoadEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the configuration from the environment, after loading .env if present
func Load() (*Config, error) {
	loaded := LoadEnv()

	maxBytes, err := GetEnvAsInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}

	secure, err := GetEnvAsBool("SESSION_SECURE_COOKIE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:    GetEnv("PORT", "8080"),
			GinMode: GetEnv("GIN_MODE", "release"),
			Version: GetEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			URL: GetEnv("DATABASE_URL", "portfolio.db"),
		},
		Uploads: UploadConfig{
			Dir:               GetEnv("UPLOAD_DIR", "static/uploads"),
			MaxBytes:          maxBytes,
			AllowedExtensions: SplitList(GetEnv("ALLOWED_EXTENSIONS", defaultAllowedExtensions)),
		},
		Admin: AdminConfig{
			Username:     GetEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Session: SessionConfig{
			Secret:       GetEnv("SESSION_SECRET", ""),
			SecureCookie: secure,
		},
		Log: LogConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "json"),
		},
		EnvFileLoaded: loaded,
	}

	return cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
// A missing ADMIN_PASSWORD_HASH is not rejected here: the login route reports it when used.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Uploads.Dir == "" {
		return errors.New("UPLOAD_DIR is required")
	}
	if c.Uploads.MaxBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.Uploads.MaxBytes)
	}
	if len(c.Uploads.AllowedExtensions) == 0 {
		return errors.New("ALLOWED_EXTENSIONS must list at least one extension")
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	return nil
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt64 parses an integer environment variable
func GetEnvAsInt64(key string, fallback int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

// GetEnvAsBool parses a boolean environment variable
func GetEnvAsBool(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

// SplitList splits a comma separated value, dropping blanks and leading dots
func SplitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), ".")
		if part != "" {
			items = append(items, strings.ToLower(part))
		}
	}
	return items
}
