package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/errors"
	"codeberg.org/neroprotocol/server/internal/logger"
	"codeberg.org/neroprotocol/server/internal/nft"
)

// ProfileHandler godoc
// @Summary Get user profile
// @Description Get the authenticated user's NFT holdings and remaining query allowance
// @Tags users
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/user/profile [get]
func ProfileHandler(ledger entitlement.Ledger, nftSvc nft.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "authentication required")
			return
		}
		wallet := auth.GetWalletAddress(c)

		ent, err := ledger.Entitlement(c.Request.Context(), userID, entitlement.Today())
		if err != nil {
			errors.InternalError(c, "failed to load entitlement", err)
			return
		}

		var holding *nft.NFT
		if wallet != "" {
			holding, err = nftSvc.HolderData(c.Request.Context(), wallet)
			if err != nil {
				// profile still works without chain data
				logger.ErrorErr(err, "failed to load nft holder data", "wallet", wallet)
				holding = nil
			}
		}

		c.JSON(http.StatusOK, ProfileResponse{
			UserID:               userID,
			WalletAddress:        wallet,
			NFT:                  holding,
			FreeQueriesRemaining: ent.FreeRemaining,
			PaidQueriesRemaining: ent.PaidBalance,
		})
	}
}
