// Package nft models the Movement-chain capability the relay depends on.
// The chain is an opaque external collaborator: the core never inspects its
// behavior, and the stub implementation returns placeholder data until the
// Movement SDK integration lands.
package nft

import "context"

// Service is the blockchain capability interface consumed by the relay and
// the REST layer.
type Service interface {
	// returns the NFT held by the wallet, if any
	HolderData(ctx context.Context, walletAddress string) (*NFT, error)

	// returns the wallet's NFT for a platform, or nil when none exists
	Existing(ctx context.Context, walletAddress, platformID string) (*NFT, error)

	// mints a new Nero agent NFT for the wallet on the given platform
	Mint(ctx context.Context, walletAddress, platformID string) (*NFT, error)

	// fetches token metadata
	Metadata(ctx context.Context, tokenID string) (*Metadata, error)

	// records XP earned by a user's agent
	AddXP(ctx context.Context, userID string, amount int) error
}
