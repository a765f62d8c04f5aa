package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS entitlements (
			user_id TEXT PRIMARY KEY,
			free_quota_date TEXT NOT NULL DEFAULT '',
			free_remaining INT NOT NULL DEFAULT 0,
			paid_balance INT NOT NULL DEFAULT 0,
			CHECK (free_remaining >= 0),
			CHECK (paid_balance >= 0)
		);
	`

	ensureRecordSQL = `
		INSERT INTO entitlements (user_id, free_quota_date, free_remaining)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`

	rolloverSQL = `
		UPDATE entitlements
		SET free_quota_date = $2, free_remaining = $3
		WHERE user_id = $1 AND free_quota_date <> $2
	`

	selectBalancesSQL = `
		SELECT free_quota_date, free_remaining, paid_balance
		FROM entitlements
		WHERE user_id = $1
	`

	debitFreeSQL = `
		UPDATE entitlements
		SET free_remaining = free_remaining - 1
		WHERE user_id = $1 AND free_remaining > 0
		RETURNING free_remaining
	`

	debitPaidSQL = `
		UPDATE entitlements
		SET paid_balance = paid_balance - 1
		WHERE user_id = $1 AND paid_balance > 0
		RETURNING paid_balance
	`

	creditSQL = `
		INSERT INTO entitlements (user_id, paid_balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET paid_balance = entitlements.paid_balance + $2
	`
)

// PostgresLedger implements Ledger using PostgreSQL. Row-level updates give
// per-user atomicity, and durability across restarts makes it the backend
// for multi-instance deployments.
type PostgresLedger struct {
	db             *pgxpool.Pool
	dailyFreeQuota int
}

var _ Ledger = (*PostgresLedger)(nil)

// creates a new PostgreSQL-backed ledger
func NewPostgresLedger(db *pgxpool.Pool, dailyFreeQuota int) *PostgresLedger {
	if dailyFreeQuota <= 0 {
		dailyFreeQuota = DefaultDailyFreeQuota
	}

	return &PostgresLedger{db: db, dailyFreeQuota: dailyFreeQuota}
}

// creates the required table if it doesn't exist
func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("entitlement: ensure schema: %w", err)
	}

	return nil
}

// creates the record if missing and applies the lazy day rollover, then
// returns the current balances; runs inside one transaction
func (l *PostgresLedger) loadAsOf(ctx context.Context, userID string, asOf Date) (Entitlement, error) {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return Entitlement{}, fmt.Errorf("entitlement: begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, ensureRecordSQL, userID, asOf.String(), l.dailyFreeQuota); err != nil {
		return Entitlement{}, fmt.Errorf("entitlement: ensure record: %w", err)
	}

	if _, err := tx.Exec(ctx, rolloverSQL, userID, asOf.String(), l.dailyFreeQuota); err != nil {
		return Entitlement{}, fmt.Errorf("entitlement: rollover: %w", err)
	}

	var (
		rawDate       string
		freeRemaining int
		paidBalance   int
	)

	if err := tx.QueryRow(ctx, selectBalancesSQL, userID).Scan(&rawDate, &freeRemaining, &paidBalance); err != nil {
		return Entitlement{}, fmt.Errorf("entitlement: select balances: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Entitlement{}, fmt.Errorf("entitlement: commit: %w", err)
	}

	quotaDate, err := ParseDate(rawDate)
	if err != nil {
		return Entitlement{}, err
	}

	return Entitlement{
		UserID:        userID,
		FreeQuotaDate: quotaDate,
		FreeRemaining: freeRemaining,
		PaidBalance:   paidBalance,
	}, nil
}

func (l *PostgresLedger) CheckAllowance(ctx context.Context, userID string, asOf Date) (Decision, error) {
	if userID == "" {
		return Decision{}, ErrEmptyUserID
	}

	ent, err := l.loadAsOf(ctx, userID, asOf)
	if err != nil {
		return Decision{}, err
	}

	switch {
	case ent.FreeRemaining > 0:
		return Decision{Allowed: true, Source: SourceFree}, nil
	case ent.PaidBalance > 0:
		return Decision{Allowed: true, Source: SourcePaid}, nil
	default:
		return Decision{Allowed: false, Source: SourceNone}, nil
	}
}

func (l *PostgresLedger) CommitDebit(ctx context.Context, userID string, source Source) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	var query string

	switch source {
	case SourceFree:
		query = debitFreeSQL
	case SourcePaid:
		query = debitPaidSQL
	default:
		return ErrInvalidSource
	}

	var remaining int

	err := l.db.QueryRow(ctx, query, userID).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// no row matched: either the record is missing or the balance is
		// already zero; both mean the check→debit protocol was broken
		return ErrNoAllowance
	}
	if err != nil {
		return fmt.Errorf("entitlement: debit: %w", err)
	}

	return nil
}

func (l *PostgresLedger) CreditPaidQueries(ctx context.Context, userID string, count int) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if count <= 0 {
		return ErrInvalidCredit
	}

	if _, err := l.db.Exec(ctx, creditSQL, userID, count); err != nil {
		return fmt.Errorf("entitlement: credit: %w", err)
	}

	return nil
}

func (l *PostgresLedger) Entitlement(ctx context.Context, userID string, asOf Date) (Entitlement, error) {
	if userID == "" {
		return Entitlement{}, ErrEmptyUserID
	}

	return l.loadAsOf(ctx, userID, asOf)
}
