package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type Config struct {
	Port              string
	LogLevel          string
	StoreBackend      string
	DatabaseURL       string
	PostgresAddress   string
	PostgresPort      string
	PostgresDB        string
	PostgresUsername  string
	PostgresPassword  string
	OperatorWorkers   int
	CORSAllowedOrigin string
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"port":                "9446",
	"log_level":           "info",
	"store_backend":       StoreBackendPostgres,
	"database_url":        "",
	"postgres_address":    "localhost",
	"postgres_port":       "5433",
	"postgres_db":         "postgres",
	"postgres_username":   "postgres",
	"postgres_password":   "testpassword",
	"operator_workers":    "4",
	"cors_allowed_origin": "*",
}

// ProcessEnvironmentVariables layers the defaults, an optional .env file in the
// working directory and the process environment, in that order.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Unknown variables and empty values are skipped so the defaults stay in place.
	err := k.Load(env.ProviderWithValue("", ".", func(s string, v string) (string, interface{}) {
		key := strings.ToLower(s)
		if _, ok := defaults[key]; !ok || v == "" {
			return "", nil
		}
		return key, v
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	workers, err := strconv.Atoi(k.String("operator_workers"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", k.String("operator_workers"), err)
	}

	cfg := &Config{
		Port:              k.String("port"),
		LogLevel:          k.String("log_level"),
		StoreBackend:      strings.ToLower(k.String("store_backend")),
		DatabaseURL:       k.String("database_url"),
		PostgresAddress:   k.String("postgres_address"),
		PostgresPort:      k.String("postgres_port"),
		PostgresDB:        k.String("postgres_db"),
		PostgresUsername:  k.String("postgres_username"),
		PostgresPassword:  k.String("postgres_password"),
		OperatorWorkers:   workers,
		CORSAllowedOrigin: k.String("cors_allowed_origin"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.StoreBackend != StoreBackendPostgres && c.StoreBackend != StoreBackendMemory {
		problems = append(problems, fmt.Sprintf("invalid store backend %q: must be %q or %q",
			c.StoreBackend, StoreBackendPostgres, StoreBackendMemory))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresDSN returns DATABASE_URL when set, otherwise a DSN composed from the
// individual POSTGRES_* settings.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword + "@" +
		c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
