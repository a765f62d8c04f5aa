package payments

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/payments"
)

func RegisterRoutes(router *gin.RouterGroup, verifier payments.Verifier, ledger entitlement.Ledger) {
	paymentGroup := router.Group("/payment")
	paymentGroup.Use(auth.Middleware())
	{
		paymentGroup.POST("/process", ProcessHandler(verifier, ledger))
	}
}
