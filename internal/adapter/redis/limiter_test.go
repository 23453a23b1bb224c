package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"

	"promo-ledger/internal/core/port"
)

func todayKey(advertiserID string) string {
	return fmt.Sprintf("withdrawals:%s:%s", advertiserID, time.Now().UTC().Format("2006-01-02"))
}

func TestReserveWithinCap(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	key := todayKey("adv-1")
	rmock.ExpectIncrBy(key, 5_000).SetVal(5_000)
	rmock.ExpectExpire(key, 48*time.Hour).SetVal(true)

	l := NewWithdrawalLimiter(db, 500_000)
	if err := l.Reserve(context.Background(), "adv-1", 5_000); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if err := rmock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// TestReserveOverCap: a rejected reservation must give the counter back
// so the advertiser is not charged against the window.
func TestReserveOverCap(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	key := todayKey("adv-1")
	rmock.ExpectIncrBy(key, 100_000).SetVal(550_000)
	rmock.ExpectDecrBy(key, 100_000).SetVal(450_000)

	l := NewWithdrawalLimiter(db, 500_000)
	if err := l.Reserve(context.Background(), "adv-1", 100_000); !errors.Is(err, port.ErrWithdrawalLimit) {
		t.Fatalf("expected ErrWithdrawalLimit, got %v", err)
	}
	if err := rmock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRelease(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	rmock.ExpectDecrBy(todayKey("adv-1"), 5_000).SetVal(0)

	l := NewWithdrawalLimiter(db, 500_000)
	if err := l.Release(context.Background(), "adv-1", 5_000); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if err := rmock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDisabledLimiter(t *testing.T) {
	l := NewWithdrawalLimiter(nil, 0)
	if err := l.Reserve(context.Background(), "adv-1", 1); err != nil {
		t.Fatalf("disabled limiter must admit everything, got %v", err)
	}
	if err := l.Release(context.Background(), "adv-1", 1); err != nil {
		t.Fatalf("Release error: %v", err)
	}
}
