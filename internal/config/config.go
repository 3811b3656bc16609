// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Provide defaults for every optional setting (DefaultConfig).
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config struct.
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

/*
	Environment mapping.

	Three well-known variables are read verbatim:
	  MONGODB_URL -> database.url   (required)
	  DB_NAME     -> database.name
	  PORT        -> server.port

	Everything else uses the CONTACTS_ prefix. The prefix is removed, the key
	lowercased, and "__" marks nesting:
	  CONTACTS_OBSERVABILITY__LOGGING__LEVEL=debug -> observability.logging.level
	  CONTACTS_SERVER__CORS_ALLOWED_ORIGINS=a,b    -> server.cors_allowed_origins
*/

// EnvPrefix is the prefix for all service-specific environment variables.
const EnvPrefix = "CONTACTS_"

var envAliases = map[string]string{
	"MONGODB_URL": "database.url",
	"DB_NAME":     "database.name",
	"PORT":        "server.port",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary             `koanf:"primary"`
	Server        ServerConfig        `koanf:"server"`
	Database      DatabaseConfig      `koanf:"database"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"min=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"min=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"min=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains the document store connection parameters.
//
// URL is a standard MongoDB connection string. Pool sizing is left to the
// driver unless MaxPoolSize is set.
type DatabaseConfig struct {
	URL            string        `koanf:"url" validate:"required"`
	Name           string        `koanf:"name" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"min=1s"`
	MaxPoolSize    uint64        `koanf:"max_pool_size"`
}

// DefaultConfig returns the configuration used when no environment overrides
// are present. database.url has no default on purpose.
func DefaultConfig() Config {
	return Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30 * time.Second,
			WriteTimeout:       30 * time.Second,
			IdleTimeout:        60 * time.Second,
			ShutdownTimeout:    30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Name:           "test",
			ConnectTimeout: 10 * time.Second,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from defaults and environment variables,
// validates it and returns the result.
//
// Behavior summary:
//   - Loads DefaultConfig into koanf
//   - Overlays env vars (see the mapping above)
//   - Unmarshals into Config
//   - Validates struct tags and observability rules
//   - Forces the observability service name + environment
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Env values are plain strings: durations and comma-separated lists need
	// decode hooks to reach their typed fields.
	mainConfig := &Config{}
	if err := k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           mainConfig,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Force service name and environment values regardless of what user set,
	// so tracing/logging see consistent naming.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey converts an environment variable name into a koanf key.
// An empty result tells the env provider to skip the variable.
func envKey(s string) string {
	if key, ok := envAliases[s]; ok {
		return key
	}
	if !strings.HasPrefix(s, EnvPrefix) {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// IsLocal reports whether the service runs on a developer machine.
// Local mode enables verbose store command logging.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
