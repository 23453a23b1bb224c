package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"promo-ledger/internal/config/configs"
	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
	"promo-ledger/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFunding() configs.Funding {
	return configs.Funding{BufferCents: 1000, FeeBasisPoints: 290, FeeFixedCents: 30, ExposureThreshold: 5}
}

// TestCheckFeasibilityShortfall verifies the guided top-up math: a 15000
// cent estimate against a 10000 cent balance leaves a 5000 shortfall and
// recommends shortfall + buffer + provider fee.
func TestCheckFeasibilityShortfall(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().
		EnsureWallet(mock.Anything, "adv-1").
		Return(&domain.Wallet{AdvertiserID: "adv-1", TotalDeposited: 10_000}, nil)

	svc := NewWalletUseCase(repo, mocks.NewMockWithdrawalLimiter(t), testFunding(), testLogger())

	f, err := svc.CheckFeasibility(context.Background(), "adv-1", 15_000)
	if err != nil {
		t.Fatalf("CheckFeasibility error: %v", err)
	}
	if f.CanAfford {
		t.Fatal("15000 against a 10000 balance must not be affordable")
	}
	if f.Shortfall != 5_000 {
		t.Fatalf("shortfall = %d, want 5000", f.Shortfall)
	}
	// 5000 + 1000 buffer + (5000*2.9% + 30) fee
	if f.RecommendedDeposit != 6_175 {
		t.Fatalf("recommended deposit = %d, want 6175", f.RecommendedDeposit)
	}
}

func TestCheckFeasibilityIgnoresHeldFunds(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().
		EnsureWallet(mock.Anything, "adv-1").
		Return(&domain.Wallet{AdvertiserID: "adv-1", TotalDeposited: 50_000, TotalHeld: 45_000}, nil)

	svc := NewWalletUseCase(repo, mocks.NewMockWithdrawalLimiter(t), testFunding(), testLogger())

	f, err := svc.CheckFeasibility(context.Background(), "adv-1", 10_000)
	if err != nil {
		t.Fatalf("CheckFeasibility error: %v", err)
	}
	if f.CanAfford {
		t.Fatal("held funds must not count as available")
	}
	if f.AvailableBalance != 5_000 {
		t.Fatalf("available = %d, want 5000", f.AvailableBalance)
	}
}

func TestWithdrawRejectedByDailyLimit(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	limiter := mocks.NewMockWithdrawalLimiter(t)
	limiter.EXPECT().
		Reserve(mock.Anything, "adv-1", domain.Money(600_000)).
		Return(port.ErrWithdrawalLimit)

	svc := NewWalletUseCase(repo, limiter, testFunding(), testLogger())

	if _, err := svc.Withdraw(context.Background(), "adv-1", 600_000); !errors.Is(err, port.ErrWithdrawalLimit) {
		t.Fatalf("expected ErrWithdrawalLimit, got %v", err)
	}
}

// TestWithdrawReleasesWindowOnFailure ensures the daily-limit
// reservation is given back when the wallet debit itself fails.
func TestWithdrawReleasesWindowOnFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	limiter := mocks.NewMockWithdrawalLimiter(t)
	limiter.EXPECT().Reserve(mock.Anything, "adv-1", domain.Money(5_000)).Return(nil)
	repo.EXPECT().Withdraw(mock.Anything, "adv-1", domain.Money(5_000)).Return(nil, port.ErrInsufficientFunds)
	limiter.EXPECT().Release(mock.Anything, "adv-1", domain.Money(5_000)).Return(nil)

	svc := NewWalletUseCase(repo, limiter, testFunding(), testLogger())

	if _, err := svc.Withdraw(context.Background(), "adv-1", 5_000); !errors.Is(err, port.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
