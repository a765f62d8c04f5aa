package nft

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	nftcore "codeberg.org/neroprotocol/server/internal/nft"
)

func RegisterRoutes(router *gin.RouterGroup, nftSvc nftcore.Service) {
	nftGroup := router.Group("/nft")
	{
		nftGroup.POST("/mint", auth.Middleware(), MintHandler(nftSvc))
		// metadata is public so marketplaces can resolve tokens
		nftGroup.GET("/:tokenId", MetadataHandler(nftSvc))
	}
}
