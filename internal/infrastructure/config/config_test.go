package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Check app defaults
		assert.Equal(t, "prod", cfg.App.Env)
		assert.False(t, cfg.App.IsDev())

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8000, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:3000")

		// Check model defaults
		assert.Equal(t, "./models", cfg.Models.Dir)
		assert.Equal(t, ".model.yaml", cfg.Models.Extension)

		// Check storage defaults
		assert.Equal(t, "mongo", cfg.Storage.Driver)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
		assert.Equal(t, "intent", cfg.Mongo.Database)

		// Check database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Check redis defaults
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 6379, cfg.Redis.Port)

		// Check auth defaults
		assert.Equal(t, 5*time.Minute, cfg.Auth.CacheTTL)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("INTENT_SERVER_PORT", "9090")
		t.Setenv("INTENT_DATABASE_HOST", "db.example.com")
		t.Setenv("INTENT_LOG_LEVEL", "debug")
		t.Setenv("INTENT_STORAGE_DRIVER", "postgres")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "db.example.com", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "postgres", cfg.Storage.Driver)
	})

	t.Run("reads legacy environment variables", func(t *testing.T) {
		t.Setenv("ENV", "DEV")
		t.Setenv("MONGO_URI", "mongodb://mongo.internal:27017")
		t.Setenv("MONGO_DB", "intents")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "dev", cfg.App.Env)
		assert.True(t, cfg.App.IsDev())
		assert.Equal(t, "mongodb://mongo.internal:27017", cfg.Mongo.URI)
		assert.Equal(t, "intents", cfg.Mongo.Database)
	})

	t.Run("prefixed variable wins over legacy one", func(t *testing.T) {
		t.Setenv("INTENT_APP_ENV", "staging")
		t.Setenv("ENV", "dev")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "staging", cfg.App.Env)
	})
}

func TestAppConfig_LogCollection(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{env: "dev", expected: "DEV_intent_logs"},
		{env: "prod", expected: "PROD_intent_logs"},
		{env: "staging", expected: "STAGING_intent_logs"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.expected, AppConfig{Env: tt.env}.LogCollection())
		})
	}
}

func TestSetDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify sensible defaults
	assert.Greater(t, cfg.Server.Port, 0)
	assert.Greater(t, cfg.Database.Port, 0)
	assert.Greater(t, cfg.Redis.Port, 0)
	assert.Greater(t, cfg.Models.LoadTimeout, time.Duration(0))
}
