package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/usecase"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/port"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/service"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/adapter"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/config"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/kafka"
	pgRepo "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/presentation/grpc"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/presentation/rest"
	pkgkafka "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/kafka"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/observability"
	pkgpostgres "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Observability.LogLevel,
		Format:  cfg.Observability.LogFormat,
		Service: cfg.ServiceName,
	})

	logger.Info("starting risk-assessment-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	if cfg.Observability.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.Observability.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Load the assessment policy (tier thresholds, document catalog).
	policy, err := config.LoadAssessmentPolicy(cfg.PolicyFile)
	if err != nil {
		logger.Error("failed to load assessment policy", "error", err)
		os.Exit(1)
	}

	classifier, err := service.NewTierClassifier(policy.TierThresholds)
	if err != nil {
		logger.Error("invalid tier thresholds", "error", err)
		os.Exit(1)
	}
	docPolicy, err := service.NewDocumentPolicy(policy.DocumentCatalog)
	if err != nil {
		logger.Error("invalid document catalog", "error", err)
		os.Exit(1)
	}

	// Wire collaborator adapters. Adapters without a configured base URL run
	// with deterministic local behaviour.
	policyAdapter := adapter.NewPolicyAdapter(adapterConfig(cfg.PolicyRetrieval), policyClient(cfg.PolicyRetrieval))
	scoringAdapter := adapter.NewRiskScoringAdapter(adapterConfig(cfg.RiskScoring), scoringClient(cfg.RiskScoring))
	documentAdapter := adapter.NewDocumentRequestAdapter(adapterConfig(cfg.Documents), documentClient(cfg.Documents))
	packetAdapter := adapter.NewPacketComposerAdapter(adapterConfig(cfg.Packets), packetClient(cfg.Packets))
	bandResolver := adapter.NewScheduleBandResolver()

	// Optional persistence.
	var (
		repo      port.AssessmentRepository
		govLogger port.GovernanceLogger = adapter.NewInMemoryGovernanceLogger()
		getUC     *usecase.GetAssessmentUseCase
		ready     func() bool
	)
	if cfg.DB.Enabled {
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pgCfg := pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
			AppName:  cfg.ServiceName,
		}
		pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("connected to database")

		if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(),
			"file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
			logger.Warn("migration warning", "error", migErr)
		}

		repo = pgRepo.NewAssessmentRepo(pool)
		govLogger = pgRepo.NewGovernanceLogRepo(pool)
		ready = func() bool {
			pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer pingCancel()
			return pkgpostgres.HealthCheck(pingCtx, pool) == nil
		}

		getUC, err = usecase.NewGetAssessmentUseCase(repo, logger)
		if err != nil {
			logger.Error("failed to wire get-assessment use case", "error", err)
			os.Exit(1)
		}
	}

	// Optional event publishing.
	var publisher port.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		if err != nil {
			logger.Error("failed to configure kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = kafka.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
		logger.Info("event publishing enabled", "topic", cfg.Kafka.Topic)
	}

	// Wire the assessment pipeline.
	assessUC, err := usecase.NewAssessApplicationUseCase(usecase.AssessmentDeps{
		PolicyRetriever: policyAdapter,
		PolicyLookup:    policyAdapter,
		RiskScorer:      scoringAdapter,
		BandResolver:    bandResolver,
		DocRequester:    documentAdapter,
		PacketComposer:  packetAdapter,
		GovLogger:       govLogger,
		Classifier:      classifier,
		DocumentPolicy:  docPolicy,
		Repository:      repo,
		Publisher:       publisher,
		Logger:          logger,
		PolicyTopK:      policy.RetrievalTopK,
		ScoreScale:      policy.ScoreScale,
	})
	if err != nil {
		logger.Error("failed to wire assessment pipeline", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewAssessmentHandler(assessUC, getUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, ready)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("risk-assessment-service stopped")
}

func adapterConfig(c config.CollaboratorConfig) adapter.Config {
	return adapter.Config{
		BaseURL:        c.BaseURL,
		APIKey:         c.APIKey,
		TimeoutSeconds: c.TimeoutSeconds,
		MaxRetries:     c.MaxRetries,
		RetryBackoffMs: c.RetryBackoffMs,
	}
}

func policyClient(c config.CollaboratorConfig) adapter.PolicyClient {
	if c.BaseURL == "" {
		return nil
	}
	return adapter.NewHTTPPolicyClient(adapterConfig(c))
}

func scoringClient(c config.CollaboratorConfig) adapter.ScoringClient {
	if c.BaseURL == "" {
		return nil
	}
	return adapter.NewHTTPScoringClient(adapterConfig(c))
}

func documentClient(c config.CollaboratorConfig) adapter.DocumentClient {
	if c.BaseURL == "" {
		return nil
	}
	return adapter.NewHTTPDocumentClient(adapterConfig(c))
}

func packetClient(c config.CollaboratorConfig) adapter.PacketClient {
	if c.BaseURL == "" {
		return nil
	}
	return adapter.NewHTTPPacketClient(adapterConfig(c))
}
