package nft

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"codeberg.org/neroprotocol/server/internal/logger"
)

// StubService is the placeholder chain backend. It returns fixed data and
// never touches the network.
//
// TODO: replace with the Movement SDK client once the NERO_NFT_CONTRACT
// deployment is final.
type StubService struct{}

var _ Service = (*StubService)(nil)

func NewStubService() *StubService {
	return &StubService{}
}

func (s *StubService) HolderData(_ context.Context, _ string) (*NFT, error) {
	return &NFT{
		TokenID:    "1",
		Level:      1,
		XP:         0,
		MaxXP:      500,
		PlatformID: "uniswap",
	}, nil
}

func (s *StubService) Existing(_ context.Context, _, _ string) (*NFT, error) {
	return nil, nil
}

func (s *StubService) Mint(_ context.Context, _, platformID string) (*NFT, error) {
	txHash, err := randomTxHash()
	if err != nil {
		return nil, err
	}

	return &NFT{
		TokenID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Level:      1,
		XP:         0,
		MaxXP:      500,
		PlatformID: platformID,
		TxHash:     txHash,
	}, nil
}

func (s *StubService) Metadata(_ context.Context, tokenID string) (*Metadata, error) {
	return &Metadata{
		TokenID: tokenID,
		Name:    "Nero Agent #" + tokenID,
		Image:   "ipfs://...",
		Attributes: []Attribute{
			{TraitType: "Level", Value: "1"},
			{TraitType: "XP", Value: "0"},
		},
	}, nil
}

func (s *StubService) AddXP(_ context.Context, userID string, amount int) error {
	logger.Info("stub XP award", "user_id", userID, "xp", amount)
	return nil
}

// returns a 0x-prefixed 32-byte hex hash
func randomTxHash() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("nft: generate tx hash: %w", err)
	}

	return "0x" + hex.EncodeToString(bytes), nil
}
