package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/tumpangan/internal/pkg/config"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/health"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/nats"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/internal/pkg/server"
	"github.com/piresc/tumpangan/services/rides/gateway"
	"github.com/piresc/tumpangan/services/rides/handler"
	"github.com/piresc/tumpangan/services/rides/repository"
	"github.com/piresc/tumpangan/services/rides/usecase"
)

func main() {
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS with JetStream", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelSetup()

	if err := natsClient.EnsureStreams(setupCtx, nats.DefaultStreamConfigs()...); err != nil {
		zapLogger.Fatal("Failed to ensure JetStream streams", logger.Err(err))
	}

	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	rideCache := repository.NewRideCache(configs, redisClient)
	ridesGW := gateway.NewRideGW(configs, natsClient)

	rideUC, err := usecase.NewRideUC(configs, rideRepo, rideCache, ridesGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}

	rideHandler := handler.NewHandler(rideUC, natsClient, configs, nrApp)

	if err := rideHandler.InitNATSConsumers(setupCtx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	// consumers stop before the connection drains
	shutdown.Register("booking-consumer", func(context.Context) error {
		rideHandler.StopNATSConsumers()
		return nil
	})

	e := echo.New()
	e.HideBanner = true

	// panic recovery first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.HTTPMiddleware())

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("booking-consumer", health.CheckerFunc(rideHandler.ConsumerHealth))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", metrics.Handler())

	rideHandler.RegisterRoutes(e, redisClient.GetClient())

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
