package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/neroprotocol/server/internal/config"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/llm"
	"codeberg.org/neroprotocol/server/internal/nft"
	"codeberg.org/neroprotocol/server/internal/payments"
	"codeberg.org/neroprotocol/server/internal/relay"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	ledger   entitlement.Ledger
	services *Services
	router   *gin.Engine

	// non-nil only when the ledger runs on Redis
	redisLedger *entitlement.RedisLedger
}

// holds all external service clients (model, chain, payments)
type Services struct {
	Relay    *relay.Relay
	LLM      llm.ChatGenerator
	NFT      nft.Service
	Payments payments.Verifier
}
