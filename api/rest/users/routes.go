package users

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/nft"
)

func RegisterRoutes(router *gin.RouterGroup, ledger entitlement.Ledger, nftSvc nft.Service) {
	userGroup := router.Group("/user")
	userGroup.Use(auth.Middleware())
	{
		userGroup.GET("/profile", ProfileHandler(ledger, nftSvc))
	}
}
