// Package entitlement tracks each user's right to issue chat queries.
//
// A user record carries a daily free-query counter (reset lazily, at most
// once per calendar day, the first time the record is touched on a new day)
// and a purchased credit balance that carries over indefinitely. The
// allowance check and the debit are deliberately separate operations: the
// slow remote model call happens between them, so a failed call never
// consumes the allowance.
//
// Three backends implement the same contract: in-memory (default),
// PostgreSQL and Redis. Every operation is atomic per user; records for
// different users are never serialized against each other.
package entitlement

import "context"

// Ledger decides whether a user may query and settles the outcome.
type Ledger interface {
	// CheckAllowance reports whether the user may issue one query as of the
	// given date and which balance it would draw from. The only mutation is
	// the lazy day-rollover reset; the debit is a separate step.
	CheckAllowance(ctx context.Context, userID string, asOf Date) (Decision, error)

	// CommitDebit consumes one unit from the balance named by source, which
	// must be the value a prior CheckAllowance returned for this request.
	// Underflow and SourceNone are protocol violations.
	CommitDebit(ctx context.Context, userID string, source Source) error

	// CreditPaidQueries unconditionally adds count purchased credits.
	// Deduplication of repeated payment confirmations is the caller's job.
	CreditPaidQueries(ctx context.Context, userID string, count int) error

	// Entitlement returns the user's balances as of the given date,
	// applying the same rollover view as CheckAllowance.
	Entitlement(ctx context.Context, userID string, asOf Date) (Entitlement, error)
}
