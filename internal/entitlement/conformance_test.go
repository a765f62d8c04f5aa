package entitlement

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared contract suite run against every backend. The memory backend always
// runs; the Postgres and Redis runs are integration tests that skip unless
// DATABASE_URL / REDIS_URL point at a live store.

var userSeq atomic.Int64

// returns a user id unique across runs so shared stores never leak state
// between test executions
func uniqueUser(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), userSeq.Add(1))
}

func TestLedgerContract_Memory(t *testing.T) {
	runLedgerContract(t, func(_ *testing.T, quota int) Ledger {
		return NewMemoryLedger(quota)
	})
}

func TestLedgerContract_Postgres(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, NewPostgresLedger(pool, 1).EnsureSchema(ctx))

	runLedgerContract(t, func(_ *testing.T, quota int) Ledger {
		return NewPostgresLedger(pool, quota)
	})
}

func TestLedgerContract_Redis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	runLedgerContract(t, func(t *testing.T, quota int) Ledger {
		ledger, err := NewRedisLedgerFromURL(url, quota)
		require.NoError(t, err)
		t.Cleanup(func() {
			ledger.Close() //nolint:errcheck,gosec // best-effort cleanup
		})
		return ledger
	})
}

func runLedgerContract(t *testing.T, newLedger func(t *testing.T, quota int) Ledger) {
	ctx := context.Background()

	t.Run("ExhaustionSequence", func(t *testing.T) {
		ledger := newLedger(t, 3)
		user := uniqueUser("exhaust")

		for i := 0; i < 3; i++ {
			decision, err := ledger.CheckAllowance(ctx, user, day1)
			require.NoError(t, err)
			require.True(t, decision.Allowed)
			require.Equal(t, SourceFree, decision.Source)
			require.NoError(t, ledger.CommitDebit(ctx, user, decision.Source))
		}

		decision, err := ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, SourceNone, decision.Source)
	})

	t.Run("PaidFallback", func(t *testing.T) {
		ledger := newLedger(t, 1)
		user := uniqueUser("paid")

		decision, err := ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)
		require.NoError(t, ledger.CommitDebit(ctx, user, decision.Source))

		require.NoError(t, ledger.CreditPaidQueries(ctx, user, 2))

		decision, err = ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, SourcePaid, decision.Source)

		require.NoError(t, ledger.CommitDebit(ctx, user, decision.Source))

		ent, err := ledger.Entitlement(ctx, user, day1)
		require.NoError(t, err)
		assert.Equal(t, 0, ent.FreeRemaining)
		assert.Equal(t, 1, ent.PaidBalance)
	})

	t.Run("DayRollover", func(t *testing.T) {
		ledger := newLedger(t, 2)
		user := uniqueUser("rollover")

		for i := 0; i < 2; i++ {
			decision, err := ledger.CheckAllowance(ctx, user, day1)
			require.NoError(t, err)
			require.NoError(t, ledger.CommitDebit(ctx, user, decision.Source))
		}
		require.NoError(t, ledger.CreditPaidQueries(ctx, user, 5))

		// free quota resets on the new day, paid balance carries over
		ent, err := ledger.Entitlement(ctx, user, day2)
		require.NoError(t, err)
		assert.Equal(t, 2, ent.FreeRemaining)
		assert.Equal(t, 5, ent.PaidBalance)
		assert.Equal(t, day2, ent.FreeQuotaDate)

		decision, err := ledger.CheckAllowance(ctx, user, day2)
		require.NoError(t, err)
		assert.Equal(t, SourceFree, decision.Source)
	})

	t.Run("UnderflowErrors", func(t *testing.T) {
		ledger := newLedger(t, 1)
		user := uniqueUser("underflow")

		decision, err := ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)
		require.NoError(t, ledger.CommitDebit(ctx, user, decision.Source))

		// balances never clamp below zero
		assert.ErrorIs(t, ledger.CommitDebit(ctx, user, SourceFree), ErrNoAllowance)
		assert.ErrorIs(t, ledger.CommitDebit(ctx, user, SourcePaid), ErrNoAllowance)

		// debit without any prior record
		assert.ErrorIs(t, ledger.CommitDebit(ctx, uniqueUser("ghost"), SourceFree), ErrNoAllowance)
	})

	t.Run("InvalidInputs", func(t *testing.T) {
		ledger := newLedger(t, 1)
		user := uniqueUser("invalid")

		_, err := ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)

		assert.ErrorIs(t, ledger.CommitDebit(ctx, user, SourceNone), ErrInvalidSource)
		assert.ErrorIs(t, ledger.CreditPaidQueries(ctx, user, 0), ErrInvalidCredit)
		assert.ErrorIs(t, ledger.CreditPaidQueries(ctx, user, -2), ErrInvalidCredit)

		_, err = ledger.CheckAllowance(ctx, "", day1)
		assert.ErrorIs(t, err, ErrEmptyUserID)
		assert.ErrorIs(t, ledger.CommitDebit(ctx, "", SourceFree), ErrEmptyUserID)
		assert.ErrorIs(t, ledger.CreditPaidQueries(ctx, "", 1), ErrEmptyUserID)
		_, err = ledger.Entitlement(ctx, "", day1)
		assert.ErrorIs(t, err, ErrEmptyUserID)
	})

	t.Run("CreditBeforeFirstCheck", func(t *testing.T) {
		ledger := newLedger(t, 4)
		user := uniqueUser("credit-first")

		require.NoError(t, ledger.CreditPaidQueries(ctx, user, 3))

		// the record created by the credit must still grant the full free
		// quota on the first check of the day
		decision, err := ledger.CheckAllowance(ctx, user, day1)
		require.NoError(t, err)
		assert.Equal(t, SourceFree, decision.Source)

		ent, err := ledger.Entitlement(ctx, user, day1)
		require.NoError(t, err)
		assert.Equal(t, 4, ent.FreeRemaining)
		assert.Equal(t, 3, ent.PaidBalance)
	})

	t.Run("ConcurrentDebits", func(t *testing.T) {
		const (
			quota   = 5
			paid    = 2
			workers = 20
		)

		ledger := newLedger(t, quota)
		user := uniqueUser("concurrent")

		require.NoError(t, ledger.CreditPaidQueries(ctx, user, paid))

		var (
			wg      sync.WaitGroup
			granted atomic.Int64
		)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				decision, err := ledger.CheckAllowance(ctx, user, day1)
				if err != nil || !decision.Allowed {
					return
				}
				if err := ledger.CommitDebit(ctx, user, decision.Source); err != nil {
					return
				}
				granted.Add(1)
			}()
		}
		wg.Wait()

		// the conditional debit is the backstop: grants never exceed the
		// combined balance even without the relay's per-user lock
		assert.LessOrEqual(t, granted.Load(), int64(quota+paid))

		ent, err := ledger.Entitlement(ctx, user, day1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ent.FreeRemaining, 0)
		assert.GreaterOrEqual(t, ent.PaidBalance, 0)
	})
}
