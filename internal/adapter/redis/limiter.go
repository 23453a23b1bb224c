package redisadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// WithdrawalLimiter enforces the platform's daily withdrawal cap with a
// per-advertiser counter bucketed by UTC day. Implements
// port.WithdrawalLimiter.
type WithdrawalLimiter struct {
	client *redis.Client
	cap    int64
}

// NewWithdrawalLimiter returns a limiter with the given daily cap in
// cents. A non-positive cap disables limiting.
func NewWithdrawalLimiter(client *redis.Client, capCents int64) *WithdrawalLimiter {
	return &WithdrawalLimiter{client: client, cap: capCents}
}

func (l *WithdrawalLimiter) key(advertiserID string) string {
	return fmt.Sprintf("withdrawals:%s:%s", advertiserID, time.Now().UTC().Format("2006-01-02"))
}

// Reserve admits amount into today's window or fails with
// ErrWithdrawalLimit. The counter is given back on rejection.
func (l *WithdrawalLimiter) Reserve(ctx context.Context, advertiserID string, amount domain.Money) error {
	if l.cap <= 0 || l.client == nil {
		return nil
	}
	key := l.key(advertiserID)
	total, err := l.client.IncrBy(ctx, key, amount.Cents()).Result()
	if err != nil {
		return err
	}
	if total == amount.Cents() {
		// first reservation of the day, set the bucket's TTL
		l.client.Expire(ctx, key, 48*time.Hour)
	}
	if total > l.cap {
		if err = l.client.DecrBy(ctx, key, amount.Cents()).Err(); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d of %d cents used today", port.ErrWithdrawalLimit, total-amount.Cents(), l.cap)
	}
	return nil
}

// Release gives a reservation back after the withdrawal itself failed.
func (l *WithdrawalLimiter) Release(ctx context.Context, advertiserID string, amount domain.Money) error {
	if l.cap <= 0 || l.client == nil {
		return nil
	}
	return l.client.DecrBy(ctx, l.key(advertiserID), amount.Cents()).Err()
}
