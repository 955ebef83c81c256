package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/Woolfer0097/AlfaHackathon/internal/application/usecase"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/port"
	"github.com/Woolfer0097/AlfaHackathon/internal/domain/service"
	"github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/config"
	"github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/messaging"
	filemetrics "github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/metrics"
	"github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/ml"
	pgrepo "github.com/Woolfer0097/AlfaHackathon/internal/infrastructure/persistence/postgres"
	"github.com/Woolfer0097/AlfaHackathon/internal/presentation/rest"
	"github.com/Woolfer0097/AlfaHackathon/pkg/kafka"
	"github.com/Woolfer0097/AlfaHackathon/pkg/observability"
	pgshared "github.com/Woolfer0097/AlfaHackathon/pkg/postgres"
)

const serviceName = "scoring-service"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: serviceName,
	})

	logger.Info("starting scoring-service",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
	)

	// Initialize tracing.
	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: serviceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Initialize metrics.
	meterProvider, meter, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: serviceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(ctx)

	requestCounter, err := meter.Int64Counter("http_requests_total",
		metric.WithDescription("Total HTTP requests served."),
	)
	if err != nil {
		logger.Error("failed to create request counter", "error", err)
		os.Exit(1)
	}

	// Optional schema migrations for the tables this service owns.
	if cfg.RunMigrations {
		if err := pgshared.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgshared.NewPool(dbCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Load the model artifact. A failed load keeps the process alive: scoring
	// reports unavailable, read-only endpoints keep working, and readiness
	// flips to not ready.
	var incomeModel port.IncomeModel
	adapter, err := ml.Load(cfg.ModelMetaPath, cfg.ModelPath, logger)
	if err != nil {
		logger.Error("model artifact failed to load, scoring disabled", "error", err)
		// The manifest keys feature lookups; reload it on its own so the
		// profile endpoint survives an artifact-only failure.
		meta, metaErr := ml.LoadManifest(cfg.ModelMetaPath)
		if metaErr != nil {
			logger.Error("model manifest unavailable, feature lookups disabled", "error", metaErr)
		}
		incomeModel = ml.Unavailable{Reason: err, Meta: meta}
	} else {
		incomeModel = adapter
	}
	manifest := incomeModel.Manifest()

	// Wire infrastructure adapters.
	featureRepo := pgrepo.NewFeatureRepository(pool, manifest)
	descriptionRepo := pgrepo.NewDescriptionRepository(pool)
	predictionLogRepo := pgrepo.NewPredictionLogRepository(pool)
	trainingRunRepo := pgrepo.NewTrainingRunRepository(pool)
	metricsSource := filemetrics.NewFileSource(cfg.MetricsPath)

	producer := kafka.NewProducer([]string{cfg.KafkaBroker})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, cfg.KafkaTopic, logger)

	// Wire domain services.
	resolver := service.NewFeatureResolver(featureRepo, descriptionRepo, manifest, logger)
	riskScorer := service.NewRiskScorer()
	profileBuilder := service.NewProfileBuilder(riskScorer)
	explanationBuilder := service.NewExplanationBuilder()
	recommendationEngine := service.NewRecommendationEngine()

	// Wire use cases.
	estimateUC := usecase.NewEstimateIncome(resolver, incomeModel, predictionLogRepo, eventPublisher, logger)
	explainUC := usecase.NewExplainPrediction(resolver, incomeModel, explanationBuilder, logger)
	recommendUC := usecase.NewRecommendProducts(resolver, incomeModel, profileBuilder, recommendationEngine, logger)
	profileUC := usecase.NewGetClientProfile(resolver, profileBuilder)
	metricsUC := usecase.NewGetModelMetrics(metricsSource, predictionLogRepo, trainingRunRepo, logger)
	backfillUC := usecase.NewBackfillActualIncome(resolver, predictionLogRepo, logger)

	// HTTP server.
	apiHandler := rest.NewHandler(estimateUC, explainUC, recommendUC, profileUC, metricsUC, backfillUC, logger)
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"database": func(ctx context.Context) error {
			return pgshared.HealthCheck(ctx, pool)
		},
		"model": func(context.Context) error {
			if u, ok := incomeModel.(ml.Unavailable); ok {
				return u.Reason
			}
			return nil
		},
	})

	mux := http.NewServeMux()
	apiHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      rest.WithRequestCounter(requestCounter, mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("scoring-service started",
		"http_address", cfg.HTTPAddress(),
		"model_version", incomeModel.Version(),
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down scoring-service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("scoring-service stopped")
}
