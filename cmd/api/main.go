package main

import (
	"context"
	"fmt"
	"log"
	"movequote/internal/adapter/http/routes"
	"movequote/internal/adapter/persistence/repository"
	"movequote/internal/infrastructure/config"
	"movequote/internal/infrastructure/database"
	"movequote/internal/infrastructure/telemetry"
	"movequote/internal/usecase"
	"movequote/internal/usecase/interfaces"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const serviceName = "movequote"

// @title           Move Quote API
// @version         1.0
// @description     Quote requests, mover quotes and targeted rejections for moves.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("[telemetry][main] shutdown failed err=%v", err)
		}
	}()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return routes.Run(ctx, cfg.Port, routes.Dependencies{
		Transition: usecase.NewQuoteTransitionUseCase(store, cfg.TransitionMaxAttempts),
		Query:      usecase.NewQuoteQueryUseCase(store, cfg.ListMaxPageSize),
		Requests:   usecase.NewQuoteRequestUseCase(store, cfg.TransitionMaxAttempts),
		JWTSecret:  []byte(cfg.JWTSecret),
	})
}

func openStore(ctx context.Context, cfg config.Config) (interfaces.IQuoteStore, func(), error) {
	log.Printf("[store][main] opening driver=%s", cfg.StoreDriver)
	switch cfg.StoreDriver {
	case config.StoreDriverDynamoDB:
		d := cfg.DynamoDB
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          d.Region,
			Endpoint:        d.Endpoint,
			AccessKeyID:     d.AccessKeyID,
			SecretAccessKey: d.SecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewDynamoDBQuoteStore(ddb, repository.DynamoDBTableNames{
			QuoteRequests:           d.QuoteRequestsTable,
			StatusHistories:         d.StatusHistoriesTable,
			MoverQuotes:             d.MoverQuotesTable,
			TargetedQuoteRequests:   d.TargetedQuoteRequestsTable,
			TargetedQuoteRejections: d.TargetedQuoteRejectionsTable,
			QuoteMatches:            d.QuoteMatchesTable,
			Movers:                  d.MoversTable,
			Customers:               d.CustomersTable,
		}), func() {}, nil

	case config.StoreDriverPostgres:
		db, err := database.OpenPostgres(ctx, database.PostgresConfig{
			URL:             cfg.DatabaseURL,
			PingTimeout:     cfg.DatabasePingTimeout,
			MaxOpenConns:    cfg.DatabaseMaxOpenConns,
			MaxIdleConns:    cfg.DatabaseMaxIdleConns,
			ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
			ConnMaxIdleTime: cfg.DatabaseConnMaxIdleTime,
		})
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresQuoteStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil

	case config.StoreDriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewSQLiteQuoteStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
