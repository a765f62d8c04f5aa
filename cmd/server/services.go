package main

import (
	"fmt"

	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/llm"
	"codeberg.org/neroprotocol/server/internal/nft"
	"codeberg.org/neroprotocol/server/internal/payments"
	"codeberg.org/neroprotocol/server/internal/relay"
)

// creates and configures all service clients
func InitializeServices(ledger entitlement.Ledger) (*Services, error) {
	generator, err := llm.NewChatGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	nftService := nft.NewStubService()
	verifier := payments.NewStubX402Verifier()
	relayService := relay.New(ledger, generator, nftService)

	return &Services{
		Relay:    relayService,
		LLM:      generator,
		NFT:      nftService,
		Payments: verifier,
	}, nil
}
