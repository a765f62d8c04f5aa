// Package relay orchestrates one chat request: allowance check, prompt
// assembly, remote model call, debit, XP award. The check and the debit are
// short ledger operations; the slow model call happens between them so a
// failed call never consumes the allowance.
package relay

import (
	"context"
	"fmt"

	"codeberg.org/neroprotocol/server/internal/entitlement"
	"codeberg.org/neroprotocol/server/internal/llm"
	"codeberg.org/neroprotocol/server/internal/logger"
	"codeberg.org/neroprotocol/server/internal/nft"
)

// XP awarded for each paid query
const paidQueryXP = 10

// one chat request from an authenticated user
type ChatRequest struct {
	UserID     string
	PlatformID string
	Message    string
	History    []llm.Message
}

// the assistant's reply plus how the query was funded
type ChatResult struct {
	Response  string
	QueryType entitlement.Source
	XPEarned  int
	Model     string
}

type Relay struct {
	ledger    entitlement.Ledger
	generator llm.ChatGenerator
	nftSvc    nft.Service

	// serializes one user's check→model→debit sequences; a user's own
	// requests may queue, unrelated users never block each other
	userLocks *keyedMutex
}

func New(ledger entitlement.Ledger, generator llm.ChatGenerator, nftSvc nft.Service) *Relay {
	return &Relay{
		ledger:    ledger,
		generator: generator,
		nftSvc:    nftSvc,
		userLocks: newKeyedMutex(),
	}
}

// relays one chat message to the remote model, consuming one query from the
// user's allowance on success
func (r *Relay) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if req.UserID == "" {
		return nil, entitlement.ErrEmptyUserID
	}

	if req.Message == "" {
		return nil, fmt.Errorf("relay: empty message")
	}

	r.userLocks.Lock(req.UserID)
	defer r.userLocks.Unlock(req.UserID)

	decision, err := r.ledger.CheckAllowance(ctx, req.UserID, entitlement.Today())
	if err != nil {
		return nil, fmt.Errorf("relay: allowance check: %w", err)
	}

	if !decision.Allowed {
		return nil, ErrAllowanceExhausted
	}

	platform := LookupPlatform(req.PlatformID)

	// the model call runs without any ledger lock held; on failure or
	// cancellation the allowance is not debited
	resp, err := r.generator.GenerateChat(ctx, llm.ChatRequest{
		SystemPrompt: buildSystemPrompt(platform),
		Messages:     buildMessages(req.History, req.Message),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	// the reply arrived, so the debit must land even if the client has
	// since gone away
	if err := r.ledger.CommitDebit(context.WithoutCancel(ctx), req.UserID, decision.Source); err != nil {
		return nil, fmt.Errorf("relay: debit: %w", err)
	}

	result := &ChatResult{
		Response:  resp.Text,
		QueryType: decision.Source,
		Model:     resp.Model,
	}

	if decision.Source == entitlement.SourcePaid {
		result.XPEarned = paidQueryXP

		if r.nftSvc != nil {
			if err := r.nftSvc.AddXP(context.WithoutCancel(ctx), req.UserID, paidQueryXP); err != nil {
				// XP bookkeeping is best effort; the reply still stands
				logger.ErrorErr(err, "failed to award XP", "user_id", req.UserID)
			}
		}
	}

	return result, nil
}
