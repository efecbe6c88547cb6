// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

// Budget storage backends
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Advisor providers
const (
	ProviderNone   = "none"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL *url.URL

	// Remote transaction API
	TransactionsAPIURL string
	RequestTimeout     time.Duration

	// Budget storage
	BudgetBackend string
	DataDir       string
	DatabaseURL   string

	// Redis, used for the budget backend and the transaction cache
	RedisURL string
	CacheTTL time.Duration

	// AMQP budget events, disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	// Chat assistant
	AdvisorProvider string
	AdvisorModel    string
	GeminiAPIKey    string
	OpenAIAPIKey    string
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are loaded first if it exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	cfg := Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: apiURL,

		TransactionsAPIURL: strings.TrimSuffix(getEnv("TRANSACTIONS_API_URL", "https://finance-visualizer-backend.vercel.app"), "/"),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),

		BudgetBackend: getEnv("BUDGET_BACKEND", BackendSQLite),
		DataDir:       getEnv("DATA_DIR", "data"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "findash.budgets"),

		AdvisorModel: getEnv("ADVISOR_MODEL", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}

	cfg.AdvisorProvider = getEnv("ADVISOR_PROVIDER", defaultProvider(cfg))

	return cfg, cfg.Validate()
}

// defaultProvider picks the provider for which an API key is configured.
func defaultProvider(c Config) string {
	switch {
	case c.GeminiAPIKey != "":
		return ProviderGemini
	case c.OpenAIAPIKey != "":
		return ProviderOpenAI
	}
	return ProviderNone
}

// SQLitePath returns the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "findash.db")
}

// Validate returns an error listing every invalid setting.
func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.TransactionsAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid transactions API URL '%s': must be an absolute URL", c.TransactionsAPIURL))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be positive", c.RequestTimeout))
	}

	if c.CacheTTL < 0 {
		problems = append(problems, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	}

	backends := []string{BackendSQLite, BackendRedis, BackendPostgres, BackendMemory}
	if !slices.Contains(backends, c.BudgetBackend) {
		problems = append(problems, fmt.Sprintf("invalid budget backend '%s': must be one of %v", c.BudgetBackend, backends))
	}

	switch c.BudgetBackend {
	case BackendSQLite:
		if c.DataDir == "" {
			problems = append(problems, "DATA_DIR cannot be empty when using the sqlite backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			problems = append(problems, "REDIS_URL is required when using the redis backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when using the postgres backend")
		}
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	switch c.AdvisorProvider {
	case ProviderNone:
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			problems = append(problems, "GEMINI_API_KEY is required for the gemini advisor")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			problems = append(problems, "OPENAI_API_KEY is required for the openai advisor")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid advisor provider '%s': must be one of %v", c.AdvisorProvider, []string{ProviderNone, ProviderGemini, ProviderOpenAI}))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("90s") and plain seconds ("90").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
