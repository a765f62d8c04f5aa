package chat

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/relay"
)

func RegisterRoutes(router *gin.RouterGroup, relaySvc *relay.Relay, paidQueryCost float64) {
	router.POST("/chat", auth.Middleware(), ChatHandler(relaySvc, paidQueryCost))
}
