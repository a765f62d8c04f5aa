package nft

import nftcore "codeberg.org/neroprotocol/server/internal/nft"

// MintRequest selects which platform agent to mint
type MintRequest struct {
	PlatformID string `json:"platformId"`
}

// MintResponse reports the minted or already-held token
type MintResponse struct {
	Success         bool         `json:"success"`
	NFT             *nftcore.NFT `json:"nft"`
	TransactionHash string       `json:"transactionHash,omitempty"`
	Message         string       `json:"message,omitempty"`
}
