package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lutefd/estate-site/internal/cache"
	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/currency"
	"github.com/Lutefd/estate-site/internal/logger"
	"github.com/Lutefd/estate-site/internal/repository"
	"github.com/Lutefd/estate-site/internal/server"
	"github.com/Lutefd/estate-site/internal/service"
	"github.com/Lutefd/estate-site/internal/worker"
	"github.com/joho/godotenv"
)

type dependencies struct {
	propertyRepo repository.PropertyRepository
	cache        cache.Cache
	logRepo      repository.LogRepository
	rates        RatesLoader
	rateUpdater  RateUpdater
	server       Server
}

type RatesLoader interface {
	EnsureLoaded(ctx context.Context) error
}

type RateUpdater interface {
	Start(ctx context.Context)
}

type Server interface {
	Start(ctx context.Context) error
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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, deps); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func initDependencies(config commons.Config) (*dependencies, error) {
	propertyRepo, err := repository.NewPostgresPropertyRepository(config.PostgresConn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize property repository: %w", err)
	}

	redisCache, err := cache.NewRedisCache(config.RedisAddr, config.RedisPass)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	logRepo, err := repository.NewPostgresLogRepository(config.PostgresConn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize log repository: %w", err)
	}

	client := worker.NewExchangeRateAPIClient(config.RatesAPIURL, config.RatesAPIMaxRetries)
	rates := currency.NewRateCache(client, redisCache)
	properties := service.NewPropertyService(propertyRepo, rates, redisCache)

	deps := &dependencies{
		propertyRepo: propertyRepo,
		cache:        redisCache,
		logRepo:      logRepo,
		rates:        rates,
		server:       server.NewServer(config, rates, properties),
	}

	if config.RatesRefreshCron != "" {
		updater, err := worker.NewRateUpdater(rates, config.RatesRefreshCron, properties)
		if err != nil {
			return nil, err
		}
		deps.rateUpdater = updater
	}
	return deps, nil
}

func run(ctx context.Context, deps *dependencies) error {
	logger.InitLogger(deps.logRepo, "web")
	defer func() {
		if err := deps.propertyRepo.Close(); err != nil {
			log.Printf("Error closing property repository: %v", err)
		}
		if err := deps.cache.Close(); err != nil {
			log.Printf("Error closing cache: %v", err)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.LoggerShutdownTimeout)
		defer cancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down logger: %v", err)
		}
	}()

	if err := deps.rates.EnsureLoaded(ctx); err != nil {
		logger.Errorf("starting with fallback rates: %v", err)
	}

	if deps.rateUpdater != nil {
		go deps.rateUpdater.Start(ctx)
	}

	return deps.server.Start(ctx)
}
