package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
	"promo-ledger/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func newPayoutService(repo *mocks.MockLedgerRepository, provider *mocks.MockPaymentProvider) *PayoutUseCase {
	return NewPayoutUseCase(repo, provider, testFunding(), 30*time.Minute, testLogger())
}

func TestDisburseRejectsOverspend(t *testing.T) {
	acct := activeAccount(domain.FixedPrice)
	acct.SpentAmount = 49_000 // 1000 remaining

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(acct, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if _, err := svc.Disburse(context.Background(), "cmp-1", "pro-1", 2_000, ""); !errors.Is(err, port.ErrOverspend) {
		t.Fatalf("expected ErrOverspend, got %v", err)
	}
}

// TestDisburseReversesSpendOnProviderFailure: when the rail rejects the
// transfer, the booked spend is reversed so no partial effect remains.
func TestDisburseReversesSpendOnProviderFailure(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.FixedPrice), nil)
	repo.EXPECT().ApplySpend(mock.Anything, "cmp-1", domain.Money(50_000), ReasonDeliverable).
		Return(activeAccount(domain.FixedPrice), nil)
	repo.EXPECT().CreatePayout(mock.Anything, mock.AnythingOfType("*domain.PayoutRecord")).Return(nil)
	provider.EXPECT().SendPayout(mock.Anything, mock.Anything).Return(nil, errors.New("rail unavailable"))
	repo.EXPECT().FailPayout(mock.Anything, mock.AnythingOfType("string"), true).Return(true, nil)

	svc := newPayoutService(repo, provider)

	if _, err := svc.Disburse(context.Background(), "cmp-1", "pro-1", 50_000, ReasonDeliverable); !errors.Is(err, port.ErrProviderFailure) {
		t.Fatalf("expected ErrProviderFailure, got %v", err)
	}
}

// TestAccrueViews: 40000 verified views at 50 cents per 100 views book
// 20000 cents of spend against the escrow. The cursor advance books the
// spend itself; no separate spend call is made.
func TestAccrueViews(t *testing.T) {
	booked := activeAccount(domain.PayPerView)
	booked.VerifiedViews = 40_000
	booked.SpentAmount = 20_000

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(activeAccount(domain.PayPerView), nil)
	repo.EXPECT().RecordVerifiedViews(mock.Anything, "cmp-1", int64(40_000)).Return(booked, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	rep, err := svc.AccrueViews(context.Background(), "cmp-1", 40_000)
	if err != nil {
		t.Fatalf("AccrueViews error: %v", err)
	}
	if rep.SpentAmount != 20_000 || rep.RemainingAmount != 30_000 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

// TestConcurrentAccrueViewsBooksOnce: two view sources reporting the
// same cumulative tally must book its spend delta once, not once each.
// The cursor advance and the booking share one transaction, so the
// second report sees the advanced cursor and books nothing.
func TestConcurrentAccrueViewsBooksOnce(t *testing.T) {
	var (
		mu     sync.Mutex
		cursor int64
		spent  domain.Money
	)
	snapshot := func() *domain.BudgetAccount {
		mu.Lock()
		defer mu.Unlock()
		a := activeAccount(domain.PayPerView)
		a.VerifiedViews = cursor
		a.SpentAmount = spent
		return a
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").
		RunAndReturn(func(context.Context, string) (*domain.BudgetAccount, error) {
			return snapshot(), nil
		})
	repo.EXPECT().RecordVerifiedViews(mock.Anything, "cmp-1", int64(40_000)).
		RunAndReturn(func(_ context.Context, _ string, total int64) (*domain.BudgetAccount, error) {
			mu.Lock()
			if total > cursor {
				cursor = total
				spent += domain.Money(50 * total / 100).SubClamped(spent)
			}
			mu.Unlock()
			return snapshot(), nil
		})

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	wg := sync.WaitGroup{}
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AccrueViews(context.Background(), "cmp-1", 40_000); err != nil {
				t.Errorf("AccrueViews error: %v", err)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if spent != 20_000 {
		t.Fatalf("booked %d cents of spend, want 20000", spent)
	}
}

// TestAccrueViewsAlreadyBooked: reporting the same cursor twice must not
// book additional spend.
func TestAccrueViewsAlreadyBooked(t *testing.T) {
	booked := activeAccount(domain.PayPerView)
	booked.VerifiedViews = 40_000
	booked.SpentAmount = 20_000

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(booked, nil)
	repo.EXPECT().RecordVerifiedViews(mock.Anything, "cmp-1", int64(40_000)).Return(booked, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if _, err := svc.AccrueViews(context.Background(), "cmp-1", 40_000); err != nil {
		t.Fatalf("AccrueViews error: %v", err)
	}
}

func TestSettleAccruedViews(t *testing.T) {
	acct := activeAccount(domain.PayPerView)
	acct.SpentAmount = 20_000

	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(acct, nil)
	repo.EXPECT().SumSettledPayouts(mock.Anything, "cmp-1").Return(domain.Money(5_000), nil)
	repo.EXPECT().CreatePayout(mock.Anything, mock.MatchedBy(func(p *domain.PayoutRecord) bool {
		return p.AmountCents == 15_000 &&
			p.Reason == ReasonViewSettlement &&
			p.IdempotencyKey == "view-settle:cmp-1:pro-1:5000"
	})).Return(nil)
	provider.EXPECT().SendPayout(mock.Anything, mock.Anything).Return(&port.ProviderReceipt{Reference: "prov-p1"}, nil)
	repo.EXPECT().UpdatePayoutStatus(mock.Anything, mock.AnythingOfType("string"), domain.SettlementProcessing, "prov-p1").Return(nil)

	svc := newPayoutService(repo, provider)

	handle, err := svc.SettleAccruedViews(context.Background(), "cmp-1", "pro-1")
	if err != nil {
		t.Fatalf("SettleAccruedViews error: %v", err)
	}
	if handle.AmountCents != 15_000 {
		t.Fatalf("settlement amount = %d, want 15000", handle.AmountCents)
	}
}

func TestSettleAccruedViewsNothingOwed(t *testing.T) {
	acct := activeAccount(domain.PayPerView)
	acct.SpentAmount = 20_000

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(acct, nil)
	repo.EXPECT().SumSettledPayouts(mock.Anything, "cmp-1").Return(domain.Money(20_000), nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if _, err := svc.SettleAccruedViews(context.Background(), "cmp-1", "pro-1"); !errors.Is(err, port.ErrNothingToSettle) {
		t.Fatalf("expected ErrNothingToSettle, got %v", err)
	}
}

func TestSettlePayoutCreditsPromoter(t *testing.T) {
	payout := &domain.PayoutRecord{
		ID:          "po-1",
		CampaignID:  "cmp-1",
		PromoterID:  "pro-1",
		AmountCents: 15_000,
		Reason:      ReasonDeliverable,
		ProviderRef: "prov-p1",
		Status:      domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetPayoutByProviderRef(mock.Anything, "prov-p1").Return(payout, nil)
	repo.EXPECT().UpdatePayoutStatus(mock.Anything, "po-1", domain.SettlementSucceeded, "prov-p1").Return(nil)
	repo.EXPECT().CreditPromoter(mock.Anything, "pro-1", domain.Money(15_000)).Return(nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if err := svc.SettlePayout(context.Background(), "prov-p1", true); err != nil {
		t.Fatalf("SettlePayout error: %v", err)
	}
}

// TestSettlePayoutFailureCompensates: a failed transfer gives the spend
// back to the campaign escrow.
func TestSettlePayoutFailureCompensates(t *testing.T) {
	payout := &domain.PayoutRecord{
		ID:          "po-1",
		CampaignID:  "cmp-1",
		PromoterID:  "pro-1",
		AmountCents: 15_000,
		Reason:      ReasonDeliverable,
		ProviderRef: "prov-p1",
		Status:      domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetPayoutByProviderRef(mock.Anything, "prov-p1").Return(payout, nil)
	repo.EXPECT().FailPayout(mock.Anything, "po-1", true).Return(true, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if err := svc.SettlePayout(context.Background(), "prov-p1", false); err != nil {
		t.Fatalf("SettlePayout error: %v", err)
	}
}

// TestSettlePayoutFailureReplayCompensatesOnce: the rail redelivers
// callbacks at least once. Only the delivery that actually transitions
// the payout to FAILED reverses the spend; a replay finds the record
// terminal and changes nothing.
func TestSettlePayoutFailureReplayCompensatesOnce(t *testing.T) {
	payout := &domain.PayoutRecord{
		ID:          "po-1",
		CampaignID:  "cmp-1",
		PromoterID:  "pro-1",
		AmountCents: 15_000,
		Reason:      ReasonDeliverable,
		ProviderRef: "prov-p1",
		Status:      domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetPayoutByProviderRef(mock.Anything, "prov-p1").Return(payout, nil).Times(2)
	repo.EXPECT().FailPayout(mock.Anything, "po-1", true).Return(true, nil).Once()
	repo.EXPECT().FailPayout(mock.Anything, "po-1", true).Return(false, nil).Once()

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if err := svc.SettlePayout(context.Background(), "prov-p1", false); err != nil {
		t.Fatalf("first delivery error: %v", err)
	}
	if err := svc.SettlePayout(context.Background(), "prov-p1", false); err != nil {
		t.Fatalf("redelivery error: %v", err)
	}
}

// TestSettlePayoutViewSettlementFailureKeepsSpend: accrual already
// booked the spend, so a failed view settlement keeps the earnings owed
// instead of reversing them.
func TestSettlePayoutViewSettlementFailureKeepsSpend(t *testing.T) {
	payout := &domain.PayoutRecord{
		ID:          "po-1",
		CampaignID:  "cmp-1",
		PromoterID:  "pro-1",
		AmountCents: 15_000,
		Reason:      ReasonViewSettlement,
		ProviderRef: "prov-p1",
		Status:      domain.SettlementProcessing,
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().GetPayoutByProviderRef(mock.Anything, "prov-p1").Return(payout, nil)
	repo.EXPECT().FailPayout(mock.Anything, "po-1", false).Return(true, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	if err := svc.SettlePayout(context.Background(), "prov-p1", false); err != nil {
		t.Fatalf("SettlePayout error: %v", err)
	}
}

// TestReconcileStaleSkipsSettledPayout: a payout the sweep listed but a
// concurrent callback settled must not be failed or compensated again.
func TestReconcileStaleSkipsSettledPayout(t *testing.T) {
	stale := []domain.PayoutRecord{
		{ID: "po-1", CampaignID: "cmp-1", AmountCents: 15_000, Reason: ReasonDeliverable, Status: domain.SettlementProcessing},
		{ID: "po-2", CampaignID: "cmp-1", AmountCents: 5_000, Reason: ReasonDeliverable, Status: domain.SettlementProcessing},
	}

	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().ListStaleSettlements(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, stale, nil)
	repo.EXPECT().FailPayout(mock.Anything, "po-1", true).Return(true, nil)
	// settled between the listing and the sweep reaching it
	repo.EXPECT().FailPayout(mock.Anything, "po-2", true).Return(false, nil)

	svc := newPayoutService(repo, mocks.NewMockPaymentProvider(t))

	n, err := svc.ReconcileStale(context.Background())
	if err != nil {
		t.Fatalf("ReconcileStale error: %v", err)
	}
	if n != 1 {
		t.Fatalf("reconciled %d settlements, want 1", n)
	}
}

func TestRecordSaleSuggestsTopUp(t *testing.T) {
	acct := activeAccount(domain.CommissionPerSale)
	acct.Terms = domain.ModelTerms{CommissionPerSaleCents: 1_500}
	acct.AllocatedBudget = 30_000
	acct.HeldAmount = 30_000
	acct.SpentAmount = 22_500

	after := *acct
	after.SpentAmount = 24_000 // 6000 remaining < 5 * 1500 floor

	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(acct, nil).Times(2)
	repo.EXPECT().ApplySpend(mock.Anything, "cmp-1", domain.Money(1_500), ReasonVerifiedSalePfx+"sale-9").Return(&after, nil)
	repo.EXPECT().CreatePayout(mock.Anything, mock.AnythingOfType("*domain.PayoutRecord")).Return(nil)
	provider.EXPECT().SendPayout(mock.Anything, mock.Anything).Return(&port.ProviderReceipt{Reference: "prov-p1"}, nil)
	repo.EXPECT().UpdatePayoutStatus(mock.Anything, mock.AnythingOfType("string"), domain.SettlementProcessing, "prov-p1").Return(nil)
	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").Return(&after, nil).Once()

	svc := newPayoutService(repo, provider)

	res, err := svc.RecordSale(context.Background(), "cmp-1", "pro-1", "sale-9")
	if err != nil {
		t.Fatalf("RecordSale error: %v", err)
	}
	if !res.TopUpSuggested || res.SuggestedTopUp != 1_500 {
		t.Fatalf("expected a 1500 top-up suggestion, got %+v", res)
	}
}

// TestConcurrentDisburse ensures concurrent disbursements never drain
// more than the remaining escrow.
func TestConcurrentDisburse(t *testing.T) {
	var (
		mu    sync.Mutex
		held  = domain.Money(10_000)
		spent = domain.Money(0)
	)
	snapshot := func() *domain.BudgetAccount {
		mu.Lock()
		defer mu.Unlock()
		return &domain.BudgetAccount{
			CampaignID:      "cmp-1",
			AdvertiserID:    "adv-1",
			EconomicModel:   domain.BudgetRange,
			Terms:           domain.ModelTerms{MinBudget: 5_000, MaxBudget: 20_000},
			AllocatedBudget: held,
			HeldAmount:      held,
			SpentAmount:     spent,
			Status:          domain.AccountActive,
		}
	}

	repo := mocks.NewMockLedgerRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().GetBudgetAccount(mock.Anything, "cmp-1").
		RunAndReturn(func(context.Context, string) (*domain.BudgetAccount, error) {
			return snapshot(), nil
		})
	repo.EXPECT().ApplySpend(mock.Anything, "cmp-1", domain.Money(1_000), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, amount domain.Money, _ string) (*domain.BudgetAccount, error) {
			mu.Lock()
			if amount > held-spent {
				mu.Unlock()
				return nil, port.ErrOverspend
			}
			spent += amount
			mu.Unlock()
			return snapshot(), nil
		})
	repo.EXPECT().CreatePayout(mock.Anything, mock.AnythingOfType("*domain.PayoutRecord")).Return(nil).Maybe()
	provider.EXPECT().SendPayout(mock.Anything, mock.Anything).Return(&port.ProviderReceipt{Reference: "prov-p"}, nil).Maybe()
	repo.EXPECT().UpdatePayoutStatus(mock.Anything, mock.AnythingOfType("string"), domain.SettlementProcessing, "prov-p").Return(nil).Maybe()

	svc := newPayoutService(repo, provider)

	wg := sync.WaitGroup{}
	count := 12
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.Disburse(context.Background(), "cmp-1", "pro-1", 1_000, ReasonDeliverable)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if spent != 10_000 {
		t.Fatalf("escrow overdrawn or underused: spent %d, want 10000", spent)
	}
}
