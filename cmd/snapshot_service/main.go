package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fame_list/configs"
	"fame_list/internal/db"
	"fame_list/internal/db/repositories"
	"fame_list/internal/di"
	"fame_list/internal/snapshot"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadSnapshotServiceConfig()
	logger := di.NewLogger(config.App, config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	dbConfig, err := configs.LoadDB(config.Paths.DBConfig)
	if err != nil {
		logger.Fatalw("failed to load db config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(ctx, dbConfig, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	registry := prometheus.NewRegistry()
	metrics := &snapshot.Metrics{}
	metrics.Register(registry)

	store := repositories.NewStore(database)
	generator := snapshot.NewGenerator(store.Repositories().Members, config.Paths.Snapshot, logger, snapshot.WithMetrics(metrics))

	server := newHealthCheckServer(config.Schedule.HealthCheckAddr, registry)
	go func() {
		logger.Info("setting up health check server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
		}
	}()

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	regenerate(ctx, generator, logger)

	_, err = s.Cron(config.Schedule.Cron).Do(func() {
		regenerate(ctx, generator, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule snapshot job", "error", err, "cron", config.Schedule.Cron)
	}

	s.StartAsync()
	logger.Infow("snapshot service started", "cron", config.Schedule.Cron)

	<-ctx.Done()

	s.Stop()
	shutdown(server, logger)
}

func regenerate(ctx context.Context, generator snapshot.Generator, logger *zap.SugaredLogger) {
	logger.Info("regenerating snapshot")

	entries, err := generator.Generate(ctx)
	if err != nil {
		logger.Errorw("failed to generate snapshot", "error", err)
		return
	}

	logger.Infow("snapshot regenerated", "members", len(entries))
}

func newHealthCheckServer(addr string, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/snapshot-service/healthcheck", healthCheckHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

func shutdown(server *http.Server, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
