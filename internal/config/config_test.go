package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	unsetenv(t, "DB_NAME")
	unsetenv(t, "PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "test", cfg.Database.Name)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "contacts")
	t.Setenv("PORT", "8080")
	t.Setenv("CONTACTS_PRIMARY__ENV", "production")
	t.Setenv("CONTACTS_SERVER__READ_TIMEOUT", "5s")
	t.Setenv("CONTACTS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CONTACTS_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("CONTACTS_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "contacts", cfg.Database.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	t.Setenv("CONTACTS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example"}, cfg.Server.CORSAllowedOrigins)

	t.Setenv("CONTACTS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example,https://c.example")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.Server.CORSAllowedOrigins, 3)
	assert.Equal(t, "https://c.example", cfg.Server.CORSAllowedOrigins[2])
}

func TestLoadConfig_MissingStoreURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "URL")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("CONTACTS_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"MONGODB_URL":                   "database.url",
		"DB_NAME":                       "database.name",
		"PORT":                          "server.port",
		"CONTACTS_SERVER__IDLE_TIMEOUT": "server.idle_timeout",
		"HOME":                          "",
		"CONTACTSX":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
