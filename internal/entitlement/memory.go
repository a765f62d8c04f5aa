package entitlement

import (
	"context"
	"sync"
)

// MemoryLedger implements Ledger using in-memory storage. State lives for
// the process lifetime; production deployments should prefer the Postgres
// or Redis backends.
type MemoryLedger struct {
	mu             sync.RWMutex
	users          map[string]*userRecord
	dailyFreeQuota int
}

// each record has its own lock so one user's operations never block another's
type userRecord struct {
	mu            sync.Mutex
	freeQuotaDate Date
	freeRemaining int
	paidBalance   int
}

var _ Ledger = (*MemoryLedger)(nil)

// creates a new in-memory ledger with the given daily free quota
func NewMemoryLedger(dailyFreeQuota int) *MemoryLedger {
	if dailyFreeQuota <= 0 {
		dailyFreeQuota = DefaultDailyFreeQuota
	}

	return &MemoryLedger{
		users:          make(map[string]*userRecord),
		dailyFreeQuota: dailyFreeQuota,
	}
}

// returns the record for userID, creating it lazily; created specifies the
// initial free quota date (zero when created by a credit, so the first
// allowance check performs the reset)
func (l *MemoryLedger) record(userID string, created Date, freeRemaining int) *userRecord {
	l.mu.RLock()
	rec, ok := l.users[userID]
	l.mu.RUnlock()

	if ok {
		return rec
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// re-check under the write lock
	if rec, ok = l.users[userID]; ok {
		return rec
	}

	rec = &userRecord{
		freeQuotaDate: created,
		freeRemaining: freeRemaining,
	}
	l.users[userID] = rec

	return rec
}

// resets the free quota when the tracked date differs from asOf; idempotent
// within the same day; caller must hold rec.mu
func (l *MemoryLedger) rollover(rec *userRecord, asOf Date) {
	if rec.freeQuotaDate != asOf {
		rec.freeQuotaDate = asOf
		rec.freeRemaining = l.dailyFreeQuota
	}
}

func (l *MemoryLedger) CheckAllowance(_ context.Context, userID string, asOf Date) (Decision, error) {
	if userID == "" {
		return Decision{}, ErrEmptyUserID
	}

	rec := l.record(userID, asOf, l.dailyFreeQuota)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	l.rollover(rec, asOf)

	switch {
	case rec.freeRemaining > 0:
		return Decision{Allowed: true, Source: SourceFree}, nil
	case rec.paidBalance > 0:
		return Decision{Allowed: true, Source: SourcePaid}, nil
	default:
		return Decision{Allowed: false, Source: SourceNone}, nil
	}
}

func (l *MemoryLedger) CommitDebit(_ context.Context, userID string, source Source) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	l.mu.RLock()
	rec, ok := l.users[userID]
	l.mu.RUnlock()

	if !ok {
		// a debit must follow an allowance check, which creates the record
		return ErrNoAllowance
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	switch source {
	case SourceFree:
		if rec.freeRemaining <= 0 {
			return ErrNoAllowance
		}
		rec.freeRemaining--
	case SourcePaid:
		if rec.paidBalance <= 0 {
			return ErrNoAllowance
		}
		rec.paidBalance--
	default:
		return ErrInvalidSource
	}

	return nil
}

func (l *MemoryLedger) CreditPaidQueries(_ context.Context, userID string, count int) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if count <= 0 {
		return ErrInvalidCredit
	}

	rec := l.record(userID, Date{}, 0)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.paidBalance += count

	return nil
}

func (l *MemoryLedger) Entitlement(_ context.Context, userID string, asOf Date) (Entitlement, error) {
	if userID == "" {
		return Entitlement{}, ErrEmptyUserID
	}

	rec := l.record(userID, asOf, l.dailyFreeQuota)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	l.rollover(rec, asOf)

	return Entitlement{
		UserID:        userID,
		FreeQuotaDate: rec.freeQuotaDate,
		FreeRemaining: rec.freeRemaining,
		PaidBalance:   rec.paidBalance,
	}, nil
}
