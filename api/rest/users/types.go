package users

import "codeberg.org/neroprotocol/server/internal/nft"

// ProfileResponse is the authenticated user's profile
type ProfileResponse struct {
	UserID               string   `json:"userId"`
	WalletAddress        string   `json:"walletAddress,omitempty"`
	NFT                  *nft.NFT `json:"nft"`
	FreeQueriesRemaining int      `json:"freeQueriesRemaining"`
	PaidQueriesRemaining int      `json:"paidQueriesRemaining"`
}
