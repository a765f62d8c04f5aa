package nft

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubService_Mint(t *testing.T) {
	svc := NewStubService()

	minted, err := svc.Mint(context.Background(), "0xabc123", "aave")

	require.NoError(t, err)
	assert.NotEmpty(t, minted.TokenID)
	assert.Equal(t, 1, minted.Level)
	assert.Equal(t, 0, minted.XP)
	assert.Equal(t, 500, minted.MaxXP)
	assert.Equal(t, "aave", minted.PlatformID)
	assert.True(t, strings.HasPrefix(minted.TxHash, "0x"))
	assert.Len(t, minted.TxHash, 66)
}

func TestStubService_ExistingIsNil(t *testing.T) {
	svc := NewStubService()

	existing, err := svc.Existing(context.Background(), "0xabc123", "aave")

	require.NoError(t, err)
	assert.Nil(t, existing)
}

func TestStubService_Metadata(t *testing.T) {
	svc := NewStubService()

	meta, err := svc.Metadata(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "7", meta.TokenID)
	assert.Equal(t, "Nero Agent #7", meta.Name)
	require.Len(t, meta.Attributes, 2)
	assert.Equal(t, "Level", meta.Attributes[0].TraitType)
}
