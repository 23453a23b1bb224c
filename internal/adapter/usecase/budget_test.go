package usecase

import (
	"context"
	"errors"
	"testing"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
	"promo-ledger/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func activeAccount(model domain.EconomicModel) *domain.BudgetAccount {
	return &domain.BudgetAccount{
		CampaignID:      "cmp-1",
		AdvertiserID:    "adv-1",
		EconomicModel:   model,
		Terms:           domain.ModelTerms{CPVCents: 50, MaxViews: 100_000},
		AllocatedBudget: 50_000,
		HeldAmount:      50_000,
		Status:          domain.AccountActive,
	}
}

// TestOpenAccountReleasesHoldOnFailure ensures the wallet hold placed
// for a new account is compensated when persisting the account fails.
func TestOpenAccountReleasesHoldOnFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().EnsureWallet(mock.Anything, "adv-1").Return(&domain.Wallet{AdvertiserID: "adv-1"}, nil)
	repo.EXPECT().Hold(mock.Anything, "adv-1", domain.Money(50_000)).Return(nil)
	repo.EXPECT().CreateBudgetAccount(mock.Anything, mock.AnythingOfType("*domain.BudgetAccount")).
		Return(port.ErrDuplicateAccount)
	repo.EXPECT().ReleaseHold(mock.Anything, "adv-1", domain.Money(50_000)).Return(nil)

	svc := NewBudgetUseCase(repo, mocks.NewMockWalletUseCase(t), testLogger())

	_, err := svc.OpenAccount(context.Background(), port.OpenAccountRequest{
		CampaignID:    "cmp-1",
		AdvertiserID:  "adv-1",
		EconomicModel: domain.PayPerView,
		Terms:         domain.ModelTerms{CPVCents: 50, MaxViews: 100_000},
		RequestedHold: 50_000,
	})
	if !errors.Is(err, port.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestOpenAccountFixedPriceHoldMustEqualPrice(t *testing.T) {
	svc := NewBudgetUseCase(mocks.NewMockLedgerRepository(t), mocks.NewMockWalletUseCase(t), testLogger())

	_, err := svc.OpenAccount(context.Background(), port.OpenAccountRequest{
		CampaignID:    "cmp-1",
		AdvertiserID:  "adv-1",
		EconomicModel: domain.FixedPrice,
		Terms:         domain.ModelTerms{PriceCents: 250_000},
		RequestedHold: 100_000,
	})
	if err == nil {
		t.Fatal("expected rejection of a partial fixed-price hold")
	}
}

// TestAdjustBudgetRequiresFunding covers the guided top-up flow: an
// infeasible increase returns the structured shortfall and touches
// nothing.
func TestAdjustBudgetRequiresFunding(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil)

	wallets := mocks.NewMockWalletUseCase(t)
	wallets.EXPECT().
		CheckFeasibility(mock.Anything, "adv-1", domain.Money(20_000)).
		Return(&port.Feasibility{CanAfford: false, Shortfall: 15_000, RecommendedDeposit: 16_465}, nil)

	svc := NewBudgetUseCase(repo, wallets, testLogger())

	res, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", 20_000)
	if err != nil {
		t.Fatalf("AdjustBudget error: %v", err)
	}
	if res.Adjusted || !res.RequiresAdditionalFunding {
		t.Fatalf("expected funding-required result, got %+v", res)
	}
	if res.AdditionalFundingAmount != 15_000 || res.RecommendedDeposit != 16_465 {
		t.Fatalf("shortfall not propagated: %+v", res)
	}
}

func TestAdjustBudgetIncrease(t *testing.T) {
	grown := activeAccount(domain.PayPerView)
	grown.AllocatedBudget = 70_000
	grown.HeldAmount = 70_000

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil)
	repo.EXPECT().Hold(mock.Anything, "adv-1", domain.Money(20_000)).Return(nil)
	repo.EXPECT().IncreaseAccountHold(mock.Anything, "cmp-1", domain.Money(20_000)).Return(grown, nil)

	wallets := mocks.NewMockWalletUseCase(t)
	wallets.EXPECT().
		CheckFeasibility(mock.Anything, "adv-1", domain.Money(20_000)).
		Return(&port.Feasibility{CanAfford: true}, nil)

	svc := NewBudgetUseCase(repo, wallets, testLogger())

	res, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", 20_000)
	if err != nil {
		t.Fatalf("AdjustBudget error: %v", err)
	}
	if !res.Adjusted || res.Account.AllocatedBudget != 70_000 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestAdjustBudgetStaleFeasibility: the balance moved between the check
// and the hold, so the caller gets a retryable stale-verdict error.
func TestAdjustBudgetStaleFeasibility(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil)
	repo.EXPECT().Hold(mock.Anything, "adv-1", domain.Money(20_000)).Return(port.ErrInsufficientFunds)

	wallets := mocks.NewMockWalletUseCase(t)
	wallets.EXPECT().
		CheckFeasibility(mock.Anything, "adv-1", domain.Money(20_000)).
		Return(&port.Feasibility{CanAfford: true}, nil)

	svc := NewBudgetUseCase(repo, wallets, testLogger())

	if _, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", 20_000); !errors.Is(err, port.ErrStaleFeasibility) {
		t.Fatalf("expected ErrStaleFeasibility, got %v", err)
	}
}

// TestAdjustBudgetCompensatesFailedIncrease ensures the wallet hold is
// released when growing the account hold fails halfway.
func TestAdjustBudgetCompensatesFailedIncrease(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil)
	repo.EXPECT().Hold(mock.Anything, "adv-1", domain.Money(20_000)).Return(nil)
	repo.EXPECT().IncreaseAccountHold(mock.Anything, "cmp-1", domain.Money(20_000)).
		Return(nil, port.ErrInvalidStateTransition)
	repo.EXPECT().ReleaseHold(mock.Anything, "adv-1", domain.Money(20_000)).Return(nil)

	wallets := mocks.NewMockWalletUseCase(t)
	wallets.EXPECT().
		CheckFeasibility(mock.Anything, "adv-1", domain.Money(20_000)).
		Return(&port.Feasibility{CanAfford: true}, nil)

	svc := NewBudgetUseCase(repo, wallets, testLogger())

	if _, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", 20_000); !errors.Is(err, port.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestAdjustBudgetDecreaseReleasesFreedHold(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil).Times(2)
	repo.EXPECT().DecreaseAccountHold(mock.Anything, "cmp-1", domain.Money(10_000)).Return(domain.Money(10_000), nil)
	repo.EXPECT().ReleaseHold(mock.Anything, "adv-1", domain.Money(10_000)).Return(nil)

	svc := NewBudgetUseCase(repo, mocks.NewMockWalletUseCase(t), testLogger())

	res, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", -10_000)
	if err != nil {
		t.Fatalf("AdjustBudget error: %v", err)
	}
	if !res.Adjusted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAdjustBudgetOwnershipAndTerminal(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil).Once()

	svc := NewBudgetUseCase(repo, mocks.NewMockWalletUseCase(t), testLogger())

	if _, err := svc.AdjustBudget(context.Background(), "adv-other", "cmp-1", 100); !errors.Is(err, port.ErrAccountNotFound) {
		t.Fatalf("foreign campaign must look not-found, got %v", err)
	}

	closed := activeAccount(domain.PayPerView)
	closed.Status = domain.AccountCompleted
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(closed, nil).Once()

	if _, err := svc.AdjustBudget(context.Background(), "adv-1", "cmp-1", 100); !errors.Is(err, port.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestResumeGoesToExhaustedWhenDrained(t *testing.T) {
	drained := activeAccount(domain.PayPerView)
	drained.Status = domain.AccountPaused
	drained.SpentAmount = drained.HeldAmount

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(drained, nil)
	repo.EXPECT().SetAccountStatus(mock.Anything, "cmp-1", domain.AccountExhausted).Return(nil)

	svc := NewBudgetUseCase(repo, mocks.NewMockWalletUseCase(t), testLogger())

	if err := svc.Resume(context.Background(), "cmp-1"); err != nil {
		t.Fatalf("Resume error: %v", err)
	}
}
