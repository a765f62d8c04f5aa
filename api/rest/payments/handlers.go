package payments

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/errors"
	"codeberg.org/neroprotocol/server/internal/logger"
	"codeberg.org/neroprotocol/server/internal/payments"
)

// ProcessHandler godoc
// @Summary Process a query credit purchase
// @Description Verify an x402 payment and credit the purchased queries
// @Tags payments
// @Accept json
// @Produce json
// @Param request body ProcessRequest true "Payment request"
// @Success 200 {object} ProcessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/payment/process [post]
func ProcessHandler(verifier payments.Verifier, ledger entitlement.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "authentication required")
			return
		}

		var req ProcessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}
		if req.QueryCount <= 0 {
			errors.BadRequest(c, "queryCount must be positive", nil)
			return
		}

		wallet := auth.GetWalletAddress(c)
		receipt, err := verifier.VerifyPayment(c.Request.Context(), wallet, req.Amount)
		if err != nil {
			// no credit on failed verification
			errors.BadRequest(c, "payment verification failed", err)
			return
		}

		if err := ledger.CreditPaidQueries(c.Request.Context(), userID, req.QueryCount); err != nil {
			if stderrors.Is(err, entitlement.ErrInvalidCredit) {
				errors.BadRequest(c, "invalid credit count", err)
				return
			}
			errors.InternalError(c, "failed to credit queries", err)
			return
		}

		logger.Info("query credits purchased",
			"user_id", userID,
			"queries", req.QueryCount,
			"receipt_id", receipt.ID,
		)

		c.JSON(http.StatusOK, ProcessResponse{
			Success:         true,
			TransactionHash: receipt.TxHash,
			QueriesAdded:    req.QueryCount,
		})
	}
}
