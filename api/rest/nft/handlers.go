package nft

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/errors"
	nftcore "codeberg.org/neroprotocol/server/internal/nft"
)

// MintHandler godoc
// @Summary Mint a Nero agent NFT
// @Description Mint an agent NFT for the authenticated user's wallet
// @Tags nft
// @Accept json
// @Produce json
// @Param request body MintRequest true "Mint request"
// @Success 200 {object} MintResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/nft/mint [post]
func MintHandler(nftSvc nftcore.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "authentication required")
			return
		}

		wallet := auth.GetWalletAddress(c)
		if wallet == "" {
			errors.BadRequest(c, "wallet address required to mint", nil)
			return
		}

		var req MintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		existing, err := nftSvc.Existing(c.Request.Context(), wallet, req.PlatformID)
		if err != nil {
			errors.InternalError(c, "failed to check existing NFT", err)
			return
		}
		if existing != nil {
			// minting is idempotent per wallet+platform: hand back the
			// held token instead of erroring
			c.JSON(http.StatusOK, MintResponse{
				Success:         true,
				NFT:             existing,
				TransactionHash: existing.TxHash,
				Message:         "NFT already exists",
			})
			return
		}

		minted, err := nftSvc.Mint(c.Request.Context(), wallet, req.PlatformID)
		if err != nil {
			errors.InternalError(c, "failed to mint NFT", err)
			return
		}

		c.JSON(http.StatusOK, MintResponse{
			Success:         true,
			NFT:             minted,
			TransactionHash: minted.TxHash,
		})
	}
}

// MetadataHandler godoc
// @Summary Get token metadata
// @Description Get on-chain metadata for a token, no authentication required
// @Tags nft
// @Produce json
// @Param tokenId path string true "Token ID"
// @Success 200 {object} nftcore.Metadata
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/nft/{tokenId} [get]
func MetadataHandler(nftSvc nftcore.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID := c.Param("tokenId")
		meta, err := nftSvc.Metadata(c.Request.Context(), tokenID)
		if err != nil {
			errors.InternalError(c, "failed to load token metadata", err)
			return
		}
		if meta == nil {
			errors.NotFound(c, "token")
			return
		}

		c.JSON(http.StatusOK, meta)
	}
}
