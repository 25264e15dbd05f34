package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/shenikar/emergency_dispatch/internal/classifier"
	"github.com/shenikar/emergency_dispatch/internal/config"
	v1 "github.com/shenikar/emergency_dispatch/internal/handler/http/v1"
	"github.com/shenikar/emergency_dispatch/internal/messaging"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/repository"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/webhook"
	"github.com/shenikar/emergency_dispatch/pkg/logger"
	"github.com/shenikar/emergency_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/emergency_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/emergency_dispatch/docs"
)

// @title Emergency Dispatch API
// @version 1.0
// @description Emergency request intake, nearest-doctor assignment and doctor availability.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	rootCmd := &cobra.Command{
		Use:           "emergency-dispatch",
		Short:         "Emergency dispatch service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}

func serveCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the webhook worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cfg, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on startup")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runMigrations(cfg, logger.New(cfg.LogLevel, cfg.LogFormat), false)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runMigrations(cfg, logger.New(cfg.LogLevel, cfg.LogFormat), true)
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func runMigrations(cfg *config.Config, log *logrus.Logger, down bool) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.WithField("down", down).Info("Database migrations applied successfully")
	return nil
}

func serve(cfg *config.Config, skipMigrations bool) error {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !skipMigrations {
		if err := runMigrations(cfg, log, false); err != nil {
			return err
		}
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPromRecorder(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Издатели событий: очередь вебхуков всегда, RabbitMQ при наличии URL
	publishers := []service.EventPublisher{webhook.NewRedisWebhookPublisher(redisClient)}
	if cfg.RabbitMQURL != "" {
		rabbit, err := messaging.NewPublisher(cfg.RabbitMQURL, log)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer rabbit.Close()
		publishers = append(publishers, rabbit)
	}

	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	workerDone := webhookWorker.Start(ctx)

	// Репозитории
	emergencyRepo := repository.NewEmergencyRepository(dbpool)
	rejectionRepo := repository.NewRejectionRepository(dbpool)
	availabilityRepo := repository.NewAvailabilityRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)
	requestCache := repository.NewRedisRequestCache(redisClient, cfg.RequestCacheTTL)

	// Сервисы
	dispatchService := service.NewDispatchService(service.Dependencies{
		Emergencies:  emergencyRepo,
		Rejections:   rejectionRepo,
		Availability: availabilityRepo,
		Profiles:     profileRepo,
		Cache:        requestCache,
		Classifier:   classifier.NewGateway(cfg.ClassifierURL, cfg.ClassifierTimeout, log, recorder),
		Publishers:   publishers,
		Metrics:      recorder,
	}, log)
	availabilityService := service.NewAvailabilityService(availabilityRepo, profileRepo, recorder, log)
	statsService := service.NewStatsService(emergencyRepo, time.Duration(cfg.StatsTimeWindowMinutes)*time.Minute, log)

	gin.SetMode(gin.ReleaseMode)
	handler := v1.NewHandler(dispatchService, availabilityService, statsService, log, cfg)
	router := v1.NewRouter(handler, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
	}
	stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server exited gracefully")
	return nil
}
