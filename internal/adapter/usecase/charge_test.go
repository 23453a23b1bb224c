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

func TestRequestCharge(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().EnsureWallet(mock.Anything, "adv-1").Return(&domain.Wallet{AdvertiserID: "adv-1"}, nil)
	repo.EXPECT().CreateCharge(mock.Anything, mock.AnythingOfType("*domain.AdvertiserCharge")).
		RunAndReturn(func(_ context.Context, c *domain.AdvertiserCharge) (*domain.AdvertiserCharge, bool, error) {
			return c, true, nil
		})
	repo.EXPECT().AdjustPendingCharges(mock.Anything, "adv-1", domain.Money(15_000)).Return(nil)
	provider.EXPECT().InitiateCharge(mock.Anything, mock.MatchedBy(func(req port.ChargeRequest) bool {
		return req.AdvertiserID == "adv-1" && req.AmountCents == 15_000 && req.IdempotencyKey == "key-1"
	})).Return(&port.ProviderReceipt{Reference: "prov-1"}, nil)
	repo.EXPECT().UpdateChargeStatus(mock.Anything, mock.AnythingOfType("string"), domain.SettlementProcessing, "prov-1").Return(nil)

	svc := NewChargeUseCase(repo, provider, testLogger())

	handle, err := svc.RequestCharge(context.Background(), "adv-1", 15_000, "pm-1", "key-1")
	if err != nil {
		t.Fatalf("RequestCharge error: %v", err)
	}
	if handle.Status != domain.SettlementProcessing || handle.ProviderRef != "prov-1" {
		t.Fatalf("unexpected handle: %+v", handle)
	}
}

// TestRequestChargeIdempotentRetry: a resend with the same key maps onto
// the stored charge and must not contact the provider again.
func TestRequestChargeIdempotentRetry(t *testing.T) {
	stored := &domain.AdvertiserCharge{
		ID:             "ch-1",
		AdvertiserID:   "adv-1",
		Kind:           domain.ChargeTopUp,
		AmountCents:    15_000,
		IdempotencyKey: "key-1",
		ProviderRef:    "prov-1",
		Status:         domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().EnsureWallet(mock.Anything, "adv-1").Return(&domain.Wallet{AdvertiserID: "adv-1"}, nil)
	repo.EXPECT().CreateCharge(mock.Anything, mock.AnythingOfType("*domain.AdvertiserCharge")).Return(stored, false, nil)

	svc := NewChargeUseCase(repo, mocks.NewMockPaymentProvider(t), testLogger())

	handle, err := svc.RequestCharge(context.Background(), "adv-1", 15_000, "pm-1", "key-1")
	if err != nil {
		t.Fatalf("RequestCharge error: %v", err)
	}
	if handle.ChargeID != "ch-1" || handle.ProviderRef != "prov-1" {
		t.Fatalf("retry must return the stored charge, got %+v", handle)
	}
}

// TestRequestChargeProviderFailure: a rejected charge is marked FAILED
// and the pending counter rolled back, leaving no trace on the balance.
func TestRequestChargeProviderFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().EnsureWallet(mock.Anything, "adv-1").Return(&domain.Wallet{AdvertiserID: "adv-1"}, nil)
	repo.EXPECT().CreateCharge(mock.Anything, mock.AnythingOfType("*domain.AdvertiserCharge")).
		RunAndReturn(func(_ context.Context, c *domain.AdvertiserCharge) (*domain.AdvertiserCharge, bool, error) {
			return c, true, nil
		})
	repo.EXPECT().AdjustPendingCharges(mock.Anything, "adv-1", domain.Money(15_000)).Return(nil)
	provider.EXPECT().InitiateCharge(mock.Anything, mock.Anything).Return(nil, errors.New("card declined"))
	repo.EXPECT().UpdateChargeStatus(mock.Anything, mock.AnythingOfType("string"), domain.SettlementFailed, "").Return(nil)
	repo.EXPECT().AdjustPendingCharges(mock.Anything, "adv-1", domain.Money(-15_000)).Return(nil)

	svc := NewChargeUseCase(repo, provider, testLogger())

	if _, err := svc.RequestCharge(context.Background(), "adv-1", 15_000, "pm-1", ""); !errors.Is(err, port.ErrProviderFailure) {
		t.Fatalf("expected ErrProviderFailure, got %v", err)
	}
}

func TestSettleChargeDepositsOnce(t *testing.T) {
	charge := &domain.AdvertiserCharge{
		ID:           "ch-1",
		AdvertiserID: "adv-1",
		Kind:         domain.ChargeTopUp,
		AmountCents:  15_000,
		ProviderRef:  "prov-1",
		Status:       domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetChargeByProviderRef(mock.Anything, "prov-1").Return(charge, nil)
	repo.EXPECT().Deposit(mock.Anything, "adv-1", domain.Money(15_000), "ch-1").
		Return(&domain.Wallet{AdvertiserID: "adv-1", TotalDeposited: 15_000}, nil)
	repo.EXPECT().UpdateChargeStatus(mock.Anything, "ch-1", domain.SettlementSucceeded, "prov-1").Return(nil)
	repo.EXPECT().AdjustPendingCharges(mock.Anything, "adv-1", domain.Money(-15_000)).Return(nil)

	svc := NewChargeUseCase(repo, mocks.NewMockPaymentProvider(t), testLogger())

	if err := svc.SettleCharge(context.Background(), "prov-1", true); err != nil {
		t.Fatalf("SettleCharge error: %v", err)
	}
}

// TestSettleChargeIdempotent: a replayed webhook for an already-settled
// charge is a no-op.
func TestSettleChargeIdempotent(t *testing.T) {
	charge := &domain.AdvertiserCharge{
		ID:           "ch-1",
		AdvertiserID: "adv-1",
		Kind:         domain.ChargeTopUp,
		AmountCents:  15_000,
		ProviderRef:  "prov-1",
		Status:       domain.SettlementSucceeded,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetChargeByProviderRef(mock.Anything, "prov-1").Return(charge, nil)

	svc := NewChargeUseCase(repo, mocks.NewMockPaymentProvider(t), testLogger())

	if err := svc.SettleCharge(context.Background(), "prov-1", true); err != nil {
		t.Fatalf("replayed settlement must be a no-op, got %v", err)
	}
}

func TestRequestRefundChecksBalance(t *testing.T) {
	original := &domain.AdvertiserCharge{
		ID:           "ch-1",
		AdvertiserID: "adv-1",
		Kind:         domain.ChargeTopUp,
		AmountCents:  15_000,
		ProviderRef:  "prov-1",
		Status:       domain.SettlementSucceeded,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetCharge(mock.Anything, "ch-1").Return(original, nil)
	// the deposit is mostly held by a running campaign
	repo.EXPECT().GetWallet(mock.Anything, "adv-1").
		Return(&domain.Wallet{AdvertiserID: "adv-1", TotalDeposited: 15_000, TotalHeld: 10_000}, nil)

	svc := NewChargeUseCase(repo, mocks.NewMockPaymentProvider(t), testLogger())

	if _, err := svc.RequestRefund(context.Background(), "adv-1", "ch-1", ""); !errors.Is(err, port.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
