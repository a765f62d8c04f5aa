package chat

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/neroprotocol/server/internal/auth"
	"codeberg.org/neroprotocol/server/internal/errors"
	"codeberg.org/neroprotocol/server/internal/llm"
	"codeberg.org/neroprotocol/server/internal/relay"
)

// ChatHandler godoc
// @Summary Send a chat message
// @Description Relay a chat message to the model, consuming one free or paid query
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "Chat request"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 402 {object} errors.PaymentRequiredResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/chat [post]
func ChatHandler(relaySvc *relay.Relay, paidQueryCost float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "authentication required")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		history := make([]llm.Message, 0, len(req.ConversationHistory))
		for _, m := range req.ConversationHistory {
			history = append(history, llm.Message{Role: m.Role, Content: m.Content})
		}

		result, err := relaySvc.Chat(c.Request.Context(), relay.ChatRequest{
			UserID:     userID,
			PlatformID: req.PlatformID,
			Message:    req.Message,
			History:    history,
		})
		if err != nil {
			switch {
			case stderrors.Is(err, relay.ErrAllowanceExhausted):
				errors.PaymentRequired(c, paidQueryCost)
			case stderrors.Is(err, relay.ErrModelUnavailable):
				errors.ModelUnavailable(c, err)
			default:
				errors.InternalError(c, "chat request failed", err)
			}
			return
		}

		c.JSON(http.StatusOK, Response{
			Response:  result.Response,
			XPEarned:  result.XPEarned,
			QueryType: string(result.QueryType),
		})
	}
}
