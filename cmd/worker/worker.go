package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lutefd/estate-site/internal/cache"
	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/currency"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/repository"
	"github.com/Lutefd/estate-site/internal/worker"
	"github.com/joho/godotenv"
)

// The worker keeps the shared rate snapshot in redis warm so that web
// instances starting up reuse it instead of calling the rates API themselves.

type dependencies struct {
	cache       cache.Cache
	logRepo     repository.LogRepository
	rateUpdater RateUpdater
}

type RateUpdater interface {
	Start(ctx context.Context)
	UpdateRates(ctx context.Context) error
}

// viewInvalidator drops property views priced with the previous rates.
type viewInvalidator struct {
	store cache.Cache
}

func (v viewInvalidator) Invalidate(ctx context.Context) error {
	return v.store.DeletePrefix(ctx, cache.PropertyPrefix)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	config, err := commons.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	deps, err := initDependencies(config)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- runWorker(ctx, deps)
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Worker failed: %v", err)
		}
	case <-signalChan:
		log.Println("Shutdown signal received, initiating graceful shutdown...")
		cancel()

		select {
		case <-errChan:
			log.Println("Worker shut down gracefully")
		case <-time.After(30 * time.Second):
			log.Println("Shutdown timed out")
		}
	}
}

func initDependencies(config commons.Config) (*dependencies, error) {
	redisCache, err := cache.NewRedisCache(config.RedisAddr, config.RedisPass)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	logRepo, err := repository.NewPostgresLogRepository(config.PostgresConn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log repository: %w", err)
	}

	schedule := config.RatesRefreshCron
	if schedule == "" {
		schedule = commons.DefaultWorkerSchedule
	}

	client := worker.NewExchangeRateAPIClient(config.RatesAPIURL, config.RatesAPIMaxRetries)
	rates := currency.NewRateCache(client, redisCache)
	rateUpdater, err := worker.NewRateUpdater(rates, schedule, viewInvalidator{store: redisCache})
	if err != nil {
		return nil, err
	}

	return &dependencies{
		cache:       redisCache,
		logRepo:     logRepo,
		rateUpdater: rateUpdater,
	}, nil
}

func runWorker(ctx context.Context, deps *dependencies) error {
	logger.InitLogger(deps.logRepo, "worker")

	defer func() {
		if err := deps.cache.Close(); err != nil {
			log.Printf("Error closing cache: %v", err)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.LoggerShutdownTimeout)
		defer cancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down logger: %v", err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := deps.rateUpdater.UpdateRates(ctx); err != nil {
		logger.Errorf("initial rate update failed: %v", err)
	}

	deps.rateUpdater.Start(ctx)
	log.Println("Worker shutting down...")
	return ctx.Err()
}
