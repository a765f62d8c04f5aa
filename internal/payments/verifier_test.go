package payments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubVerifier_Success(t *testing.T) {
	verifier := NewStubX402Verifier()

	receipt, err := verifier.VerifyPayment(context.Background(), "0xabc123", 0.005)

	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.True(t, strings.HasPrefix(receipt.TxHash, "0x"))
	assert.Len(t, receipt.TxHash, 66, "tx hash should be 0x plus 64 hex chars")
}

func TestStubVerifier_UniqueReceipts(t *testing.T) {
	verifier := NewStubX402Verifier()
	ctx := context.Background()

	first, err := verifier.VerifyPayment(ctx, "0xabc123", 0.005)
	require.NoError(t, err)
	second, err := verifier.VerifyPayment(ctx, "0xabc123", 0.005)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.TxHash, second.TxHash)
}

func TestStubVerifier_EmptyWallet(t *testing.T) {
	verifier := NewStubX402Verifier()

	_, err := verifier.VerifyPayment(context.Background(), "", 0.005)

	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestStubVerifier_NonPositiveAmount(t *testing.T) {
	verifier := NewStubX402Verifier()
	ctx := context.Background()

	for _, amount := range []float64{0, -0.001} {
		_, err := verifier.VerifyPayment(ctx, "0xabc123", amount)
		assert.ErrorIs(t, err, ErrVerificationFailed, "amount %f should be rejected", amount)
	}
}
