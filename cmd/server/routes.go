package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/api/rest/chat"
	"codeberg.org/neroprotocol/server/api/rest/health"
	"codeberg.org/neroprotocol/server/api/rest/nft"
	"codeberg.org/neroprotocol/server/api/rest/payments"
	"codeberg.org/neroprotocol/server/api/rest/users"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(server.config.RateLimitPerMin))

	{
		v1.GET("/ping", health.PingHandler)

		chat.RegisterRoutes(v1, server.services.Relay, server.config.PaidQueryCost)
		users.RegisterRoutes(v1, server.ledger, server.services.NFT)
		nft.RegisterRoutes(v1, server.services.NFT)
		payments.RegisterRoutes(v1, server.services.Payments, server.ledger)
	}
}
