package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverDynamoDB = "dynamodb"
)

// Config is the service configuration, read from environment variables.
type Config struct {
	Port        string `env:"PORT"         envDefault:"8080"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"movequote.db"`

	DatabaseURL             string        `env:"DATABASE_URL"`
	DatabasePingTimeout     time.Duration `env:"DATABASE_PING_TIMEOUT"       envDefault:"2s"`
	DatabaseMaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS"     envDefault:"10"`
	DatabaseMaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS"     envDefault:"5"`
	DatabaseConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME"  envDefault:"30m"`
	DatabaseConnMaxIdleTime time.Duration `env:"DATABASE_CONN_MAX_IDLE_TIME" envDefault:"5m"`

	DynamoDB DynamoDBConfig

	JWTSecret string `env:"JWT_SECRET"`

	TransitionMaxAttempts int `env:"QUOTE_TRANSITION_MAX_ATTEMPTS" envDefault:"3"`
	ListMaxPageSize       int `env:"QUOTE_LIST_MAX_PAGE_SIZE"      envDefault:"50"`

	OTelEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// DynamoDBConfig holds the dynamodb driver settings. The "local" credential
// defaults are accepted by DynamoDB Local.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION"            envDefault:"us-east-1"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"     envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`

	QuoteRequestsTable           string `env:"QUOTE_REQUESTS_TABLE"`
	StatusHistoriesTable         string `env:"QUOTE_STATUS_HISTORIES_TABLE"`
	MoverQuotesTable             string `env:"MOVER_QUOTES_TABLE"`
	TargetedQuoteRequestsTable   string `env:"TARGETED_QUOTE_REQUESTS_TABLE"`
	TargetedQuoteRejectionsTable string `env:"TARGETED_QUOTE_REJECTIONS_TABLE"`
	QuoteMatchesTable            string `env:"QUOTE_MATCHES_TABLE"`
	MoversTable                  string `env:"MOVERS_TABLE"`
	CustomersTable               string `env:"CUSTOMERS_TABLE"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("SQLITE_PATH is required")
		}
	case StoreDriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required")
		}
	case StoreDriverDynamoDB:
		if strings.TrimSpace(c.DynamoDB.Region) == "" {
			return errors.New("AWS_REGION is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of sqlite, postgres, dynamodb (got %q)", c.StoreDriver)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TransitionMaxAttempts < 1 {
		return errors.New("QUOTE_TRANSITION_MAX_ATTEMPTS must be >= 1")
	}
	if c.ListMaxPageSize < 1 {
		return errors.New("QUOTE_LIST_MAX_PAGE_SIZE must be >= 1")
	}
	return nil
}
