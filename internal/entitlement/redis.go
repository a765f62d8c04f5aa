package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyEntitlement = "nero:entitlement:%s"

// applies the lazy day rollover and reports which source would fund one
// query; mirrors the memory backend's CheckAllowance
var checkScript = redis.NewScript(`
local date = redis.call('HGET', KEYS[1], 'free_quota_date')
if not date or date ~= ARGV[1] then
	redis.call('HSET', KEYS[1], 'free_quota_date', ARGV[1], 'free_remaining', ARGV[2])
	redis.call('HSETNX', KEYS[1], 'paid_balance', 0)
	date = ARGV[1]
end
local free = tonumber(redis.call('HGET', KEYS[1], 'free_remaining'))
local paid = tonumber(redis.call('HGET', KEYS[1], 'paid_balance'))
if free > 0 then
	return {'free', date, free, paid}
end
if paid > 0 then
	return {'paid', date, free, paid}
end
return {'none', date, free, paid}
`)

// decrements the named balance only when it is positive; returns -1 when the
// record is missing or the balance is already zero
var debitScript = redis.NewScript(`
local bal = redis.call('HGET', KEYS[1], ARGV[1])
if not bal or tonumber(bal) <= 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], -1)
`)

// RedisLedger implements Ledger using Redis. Per-user atomicity comes from
// Lua scripts operating on a single hash, which makes it safe for
// multi-instance deployments.
type RedisLedger struct {
	client         *redis.Client
	dailyFreeQuota int
}

var _ Ledger = (*RedisLedger)(nil)

// creates a new Redis-backed ledger
func NewRedisLedger(client *redis.Client, dailyFreeQuota int) *RedisLedger {
	if dailyFreeQuota <= 0 {
		dailyFreeQuota = DefaultDailyFreeQuota
	}

	return &RedisLedger{client: client, dailyFreeQuota: dailyFreeQuota}
}

// creates a new Redis-backed ledger from a URL
func NewRedisLedgerFromURL(redisURL string, dailyFreeQuota int) (*RedisLedger, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("entitlement: parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("entitlement: connect to redis: %w", err)
	}

	return NewRedisLedger(client, dailyFreeQuota), nil
}

// closes the underlying Redis connection
func (l *RedisLedger) Close() error {
	return l.client.Close()
}

func (l *RedisLedger) key(userID string) string {
	return fmt.Sprintf(keyEntitlement, userID)
}

// runs the check script and decodes its reply
func (l *RedisLedger) check(ctx context.Context, userID string, asOf Date) (Source, Entitlement, error) {
	raw, err := checkScript.Run(ctx, l.client, []string{l.key(userID)}, asOf.String(), l.dailyFreeQuota).Slice()
	if err != nil {
		return SourceNone, Entitlement{}, fmt.Errorf("entitlement: check script: %w", err)
	}

	if len(raw) != 4 {
		return SourceNone, Entitlement{}, fmt.Errorf("entitlement: unexpected script reply length %d", len(raw))
	}

	source, _ := raw[0].(string)
	rawDate, _ := raw[1].(string)
	free, _ := raw[2].(int64)
	paid, _ := raw[3].(int64)

	quotaDate, err := ParseDate(rawDate)
	if err != nil {
		return SourceNone, Entitlement{}, err
	}

	ent := Entitlement{
		UserID:        userID,
		FreeQuotaDate: quotaDate,
		FreeRemaining: int(free),
		PaidBalance:   int(paid),
	}

	return Source(source), ent, nil
}

func (l *RedisLedger) CheckAllowance(ctx context.Context, userID string, asOf Date) (Decision, error) {
	if userID == "" {
		return Decision{}, ErrEmptyUserID
	}

	source, _, err := l.check(ctx, userID, asOf)
	if err != nil {
		return Decision{}, err
	}

	return Decision{Allowed: source != SourceNone, Source: source}, nil
}

func (l *RedisLedger) CommitDebit(ctx context.Context, userID string, source Source) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	var field string

	switch source {
	case SourceFree:
		field = "free_remaining"
	case SourcePaid:
		field = "paid_balance"
	default:
		return ErrInvalidSource
	}

	remaining, err := debitScript.Run(ctx, l.client, []string{l.key(userID)}, field).Int64()
	if err != nil {
		return fmt.Errorf("entitlement: debit script: %w", err)
	}

	if remaining < 0 {
		return ErrNoAllowance
	}

	return nil
}

func (l *RedisLedger) CreditPaidQueries(ctx context.Context, userID string, count int) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if count <= 0 {
		return ErrInvalidCredit
	}

	if err := l.client.HIncrBy(ctx, l.key(userID), "paid_balance", int64(count)).Err(); err != nil {
		return fmt.Errorf("entitlement: credit: %w", err)
	}

	return nil
}

func (l *RedisLedger) Entitlement(ctx context.Context, userID string, asOf Date) (Entitlement, error) {
	if userID == "" {
		return Entitlement{}, ErrEmptyUserID
	}

	_, ent, err := l.check(ctx, userID, asOf)
	if err != nil {
		return Entitlement{}, err
	}

	return ent, nil
}
