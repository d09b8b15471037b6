package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"

	_ "github.com/lib/pq"

	accountstore "markethub/internal/account/store"
	erasureservice "markethub/internal/erasure/service"
	erasurestore "markethub/internal/erasure/store"
	marketstore "markethub/internal/marketplace/store"
	jwttoken "markethub/internal/jwt_token"
	"markethub/internal/platform/config"
	"markethub/internal/platform/httpserver"
	"markethub/internal/platform/logger"
	"markethub/internal/platform/metrics"
	platformredis "markethub/internal/platform/redis"
	sessionstore "markethub/internal/session/store"
	httptransport "markethub/internal/transport/http"
	"markethub/pkg/platform/audit"
	auditpublisher "markethub/pkg/platform/audit/publisher"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Error("open postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Error("ping postgres", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient == nil {
		log.Error("REDIS_URL is required for session storage")
		os.Exit(1)
	}
	defer redisClient.Close()

	var compliance audit.Logger
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := auditpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
			defer cancel()
			_ = kafka.Close(ctx)
		}()
		compliance = kafka
	} else {
		log.Warn("no kafka brokers configured, sensitive-access records stay in memory")
		compliance = auditpublisher.NewMemoryPublisher()
	}

	users := accountstore.NewPostgres(db)
	requests := erasurestore.NewPostgres(db)
	orders := marketstore.NewPostgresOrderStore(db)
	returns := marketstore.NewPostgresReturnStore(db)
	reviews := marketstore.NewPostgresReviewStore(db)
	addresses := marketstore.NewPostgresAddressStore(db)
	shops := marketstore.NewPostgresShopStore(db)
	sessions := sessionstore.NewRedisStore(redisClient.Client)

	m := metrics.New()
	evaluator := erasureservice.NewBlockingEvaluator(returns, shops)
	assessor := erasureservice.NewImpactAssessor(orders, reviews, addresses, shops, evaluator)
	anonymizer := erasureservice.NewAnonymizer(users, sessions, addresses, reviews, shops)
	trail := erasureservice.NewAuditWriter(requests, compliance, log)
	erasure := erasureservice.NewService(
		erasureservice.NewSQLUnitOfWork(db),
		users, requests, evaluator, assessor, anonymizer, trail, m, log,
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer)
	handler := httptransport.NewErasureHandler(erasure, log, jwtService)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting markethub", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
