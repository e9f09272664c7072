package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{URL: MemoryDatabase},
		Uploads: UploadConfig{
			Dir:               "static/uploads",
			MaxBytes:          defaultMaxUploadBytes,
			AllowedExtensions: []string{"png"},
		},
		Session: SessionConfig{Secret: "secret"},
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "APP_VERSION", "DATABASE_URL", "UPLOAD_DIR", "MAX_UPLOAD_BYTES",
		"ALLOWED_EXTENSIONS", "ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "SESSION_SECRET",
		"SESSION_SECURE_COOKIE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "portfolio.db", cfg.Database.URL)
	assert.Equal(t, "static/uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(4<<20), cfg.Uploads.MaxBytes)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif", "webp"}, cfg.Uploads.AllowedExtensions)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Empty(t, cfg.Admin.PasswordHash)
	assert.False(t, cfg.Session.SecureCookie)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// no secret configured
	assert.ErrorContains(t, cfg.Validate(), "SESSION_SECRET")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://user:pw@localhost/portfolio")
	t.Setenv("UPLOAD_DIR", "/var/uploads")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("ALLOWED_EXTENSIONS", "PNG, .jpg,,gif")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("SESSION_SECURE_COOKIE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "postgres://user:pw@localhost/portfolio", cfg.Database.URL)
	assert.Equal(t, "/var/uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(1024), cfg.Uploads.MaxBytes)
	assert.Equal(t, []string{"png", "jpg", "gif"}, cfg.Uploads.AllowedExtensions)
	assert.Equal(t, "owner", cfg.Admin.Username)
	assert.Equal(t, "$2a$10$hash", cfg.Admin.PasswordHash)
	assert.True(t, cfg.Session.SecureCookie)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "four megabytes")
	_, err := Load()
	assert.ErrorContains(t, err, "MAX_UPLOAD_BYTES")

	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("SESSION_SECURE_COOKIE", "maybe")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_SECURE_COOKIE")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = "" }, "PORT"},
		{"database", func(c *Config) { c.Database.URL = "" }, "DATABASE_URL"},
		{"upload dir", func(c *Config) { c.Uploads.Dir = "" }, "UPLOAD_DIR"},
		{"max bytes", func(c *Config) { c.Uploads.MaxBytes = 0 }, "MAX_UPLOAD_BYTES"},
		{"extensions", func(c *Config) { c.Uploads.AllowedExtensions = nil }, "ALLOWED_EXTENSIONS"},
		{"secret", func(c *Config) { c.Session.Secret = "" }, "SESSION_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateAllowsMissingPasswordHash(t *testing.T) {
	cfg := validConfig()
	cfg.Admin.PasswordHash = ""
	assert.NoError(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"png", "jpeg"}, SplitList(" .PNG , jpeg ,"))
	assert.Nil(t, SplitList(""))
}
