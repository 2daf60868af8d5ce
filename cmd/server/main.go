package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auditHandler "hesabu/internal/audit/handler"
	auditMetrics "hesabu/internal/audit/metrics"
	"hesabu/internal/audit/outbox"
	auditService "hesabu/internal/audit/service"
	auditStore "hesabu/internal/audit/store"
	"hesabu/internal/audit/truthdata"
	"hesabu/internal/audit/worker"
	filingHandler "hesabu/internal/filing/handler"
	filingMetrics "hesabu/internal/filing/metrics"
	"hesabu/internal/filing/schema"
	filingService "hesabu/internal/filing/service"
	"hesabu/internal/filing/session"
	filingStore "hesabu/internal/filing/store"
	"hesabu/internal/officer"
	officerHandler "hesabu/internal/officer/handler"
	"hesabu/internal/platform/config"
	"hesabu/internal/platform/httpserver"
	"hesabu/internal/platform/logger"
	"hesabu/internal/platform/postgres"
	platformRedis "hesabu/internal/platform/redis"
)

// main wires the dependency graph and owns the process lifecycle. Durable
// backends are optional: with no Postgres, Redis, or Kafka configured the
// service runs entirely in memory, which is how local development works.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("failed to open postgres", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("failed to migrate postgres", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := platformRedis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher, err := outbox.New(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Error("failed to connect to kafka", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	// Audit pipeline.
	am := auditMetrics.New()
	cases := newCaseStore(db)
	aggregator := truthdata.NewAggregator(newTruthSource(db), log, am)
	auditSvc := auditService.New(aggregator, cases, publisher, log, am)
	queue := worker.NewQueue(cfg.AuditQueueSize, log, am)

	var workers sync.WaitGroup
	for i := 0; i < cfg.AuditWorkers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			_ = worker.New(queue, auditSvc).Run(ctx)
		}()
	}

	// Filing workflow.
	fm := filingMetrics.New()
	machine := session.NewMachine(schema.New())
	filingSvc := filingService.New(machine, newSessionStore(redisClient, cfg.SessionTTL), newAnswerStore(db), queue, log, fm)

	// Officer review surface.
	officerSvc := officer.New(cfg.JWTSigningKey, cfg.OfficerUsername, cfg.OfficerPasswordHash)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	filingHandler.New(filingSvc, log).Register(router)
	auditHandler.New(cases, officerSvc, log).Register(router)
	officerHandler.New(officerSvc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	workers.Wait()
}

func newSessionStore(client *platformRedis.Client, ttl time.Duration) session.Store {
	if client == nil {
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(client.Client, ttl)
}

func newAnswerStore(db *sql.DB) filingStore.Store {
	if db == nil {
		return filingStore.NewMemoryStore()
	}
	return filingStore.NewPostgres(db)
}

func newCaseStore(db *sql.DB) auditStore.Store {
	if db == nil {
		return auditStore.NewMemoryStore()
	}
	return auditStore.NewPostgres(db)
}

func newTruthSource(db *sql.DB) truthdata.Source {
	if db == nil {
		return truthdata.NewMemorySource()
	}
	return truthdata.NewPostgresSource(db)
}
