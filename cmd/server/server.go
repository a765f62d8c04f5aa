package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/neroprotocol/server/internal/config"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/logger"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{config: cfg}

	// pick the ledger backend: Postgres when configured, then Redis,
	// otherwise a per-process in-memory ledger for local development
	switch {
	case cfg.DatabaseURL != "":
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse database config: %w", err)
		}

		poolConfig.MaxConns = 5
		poolConfig.MinConns = 1
		poolConfig.MaxConnLifetime = 30 * time.Minute
		poolConfig.MaxConnIdleTime = 5 * time.Minute
		poolConfig.HealthCheckPeriod = 1 * time.Minute

		db, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}

		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		ledger := entitlement.NewPostgresLedger(db, cfg.DailyFreeQuota)
		if err := ledger.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure entitlement schema: %w", err)
		}

		server.db = db
		server.ledger = ledger
		logger.Info("entitlement ledger using postgres")

	case cfg.RedisURL != "":
		ledger, err := entitlement.NewRedisLedgerFromURL(cfg.RedisURL, cfg.DailyFreeQuota)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		server.redisLedger = ledger
		server.ledger = ledger
		logger.Info("entitlement ledger using redis")

	default:
		server.ledger = entitlement.NewMemoryLedger(cfg.DailyFreeQuota)
		logger.Warn("entitlement ledger using in-memory store, balances reset on restart")
	}

	services, err := InitializeServices(server.ledger)
	if err != nil {
		server.closeStores()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	server.services = services

	router := gin.Default()
	server.router = router

	RegisterRoutes(router, server)

	return server, nil
}

// releases ledger backing stores, safe to call with either backend
func (s *Server) closeStores() {
	if s.redisLedger != nil {
		s.redisLedger.Close() //nolint:errcheck,gosec // best-effort cleanup
	}
	if s.db != nil {
		s.db.Close()
	}
}
