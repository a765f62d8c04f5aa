package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// validates bearer credentials and adds the caller's identity to the context
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		identity, err := VerifyCredential(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired credential"})
			c.Abort()
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("wallet_address", identity.WalletAddress)

		c.Next()
	}
}

// extracts user_id from context after Middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")

	if !exists {
		return "", false
	}

	return userID.(string), true
}

// extracts wallet_address from context after Middleware; empty when the
// credential carries no wallet
func GetWalletAddress(c *gin.Context) string {
	return c.GetString("wallet_address")
}
