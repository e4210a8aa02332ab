package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/futig/contract-workbench/internal/catalog"
	pkgRetry "github.com/futig/contract-workbench/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string        `env:"SERVER_ADDR,notEmpty"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Database configuration
	DatabaseURL         string               `env:"DATABASE_URL"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`

	// External query builder service
	QueryBuilderCfg QueryBuilderConnectorConfig `envPrefix:"QUERY_BUILDER_"`

	// Rendering and workbench behaviour
	MarkdownCfg   MarkdownConfig   `envPrefix:"MARKDOWN_"`
	ComparisonCfg ComparisonConfig `envPrefix:"COMPARISON_"`
	DefaultModel  string           `env:"DEFAULT_MODEL" envDefault:"primary"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type QueryBuilderConnectorConfig struct {
	HTTPClientConfig
	DescribeEndpoint string               `env:"DESCRIBE_ENDPOINT" envDefault:"/describe"`
	CacheTTL         time.Duration        `env:"CACHE_TTL" envDefault:"5m"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"20s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"5s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

type MarkdownConfig struct {
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// ComparisonConfig controls the lifetime of open comparison pages
type ComparisonConfig struct {
	IdleTTL         time.Duration `env:"IDLE_TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"5m"`
	LoadTimeout     time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads .env.<environment> if present and then parses the process environment
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadQueryBuilder parses only the QUERY_BUILDER_* variables. Used by tools that
// talk to the query builder without running the API.
func LoadQueryBuilder() (QueryBuilderConnectorConfig, error) {
	var cfg QueryBuilderConnectorConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "QUERY_BUILDER_"}); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	if !cfg.EnableMocks {
		if cfg.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL is required unless ENABLE_MOCKS is set")
		}
		if cfg.QueryBuilderCfg.Url == "" {
			errs = append(errs, "QUERY_BUILDER_SERVICE_URL is required unless ENABLE_MOCKS is set")
		}
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.QueryBuilderCfg.Retry.Attempts < 1 || cfg.QueryBuilderCfg.Retry.Attempts > 10 {
		errs = append(errs, fmt.Sprintf("QUERY_BUILDER_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.QueryBuilderCfg.Retry.Attempts))
	}

	if !catalog.New().Contains(cfg.DefaultModel) {
		errs = append(errs, fmt.Sprintf("DEFAULT_MODEL must be one of primary, secondary, got %q", cfg.DefaultModel))
	}

	if cfg.ComparisonCfg.IdleTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("COMPARISON_IDLE_TTL must be at least 1m, got %s", cfg.ComparisonCfg.IdleTTL))
	}

	if cfg.ComparisonCfg.LoadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("COMPARISON_LOAD_TIMEOUT must be positive, got %s", cfg.ComparisonCfg.LoadTimeout))
	}

	if len(errs) > 0 {
		return errors.New("configuration validation errors:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
