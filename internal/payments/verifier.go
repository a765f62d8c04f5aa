// Package payments models the external payment-verification collaborator.
// A verified payment is the only event that may credit paid queries, and
// each payment must be verified exactly once before the credit is applied.
package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// returned when the collaborator rejects the payment; no credit is applied
var ErrVerificationFailed = errors.New("payments: verification failed")

// confirmation of one verified payment
type Receipt struct {
	ID     string
	TxHash string
}

// Verifier confirms a payment against the settlement layer.
type Verifier interface {
	VerifyPayment(ctx context.Context, walletAddress string, amount float64) (*Receipt, error)
}

// StubX402Verifier is the placeholder x402 micropayment backend. It accepts
// any positive amount from a wallet-bearing caller.
//
// TODO: replace with the x402 streaming-settlement client once the treasury
// contract is deployed.
type StubX402Verifier struct{}

var _ Verifier = (*StubX402Verifier)(nil)

func NewStubX402Verifier() *StubX402Verifier {
	return &StubX402Verifier{}
}

func (v *StubX402Verifier) VerifyPayment(_ context.Context, walletAddress string, amount float64) (*Receipt, error) {
	if walletAddress == "" {
		return nil, fmt.Errorf("%w: no wallet address", ErrVerificationFailed)
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: non-positive amount", ErrVerificationFailed)
	}

	txHash, err := randomTxHash()
	if err != nil {
		return nil, err
	}

	return &Receipt{
		ID:     uuid.NewString(),
		TxHash: txHash,
	}, nil
}

func randomTxHash() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("payments: generate tx hash: %w", err)
	}

	return "0x" + hex.EncodeToString(bytes), nil
}
