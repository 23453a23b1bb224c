package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promo-ledger/internal/config/configs"
	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// Payout reasons recorded on the audit log. View settlements pay spend
// that accrual already booked, so their failure handling differs from
// payouts that book spend themselves.
const (
	ReasonViewSettlement  = "pay-per-view settlement"
	ReasonDeliverable     = "deliverable approved"
	ReasonVerifiedSalePfx = "verified sale "
	ReasonManualDisbursal = "manual disbursement"
)

// PayoutUseCase implements port.PayoutUseCase. Disbursements book spend
// against campaign escrow, drive the external payout rail outside the
// serialization boundary, and compensate (reverse the spend) when the
// rail fails.
type PayoutUseCase struct {
	repo     port.LedgerRepository
	provider port.PaymentProvider
	funding  configs.Funding
	window   time.Duration
	logger   *slog.Logger
}

// NewPayoutUseCase creates the payout engine. window is how long a
// settlement may stay in flight before reconciliation fails it.
func NewPayoutUseCase(repo port.LedgerRepository, provider port.PaymentProvider, funding configs.Funding, window time.Duration, logger *slog.Logger) *PayoutUseCase {
	return &PayoutUseCase{repo: repo, provider: provider, funding: funding, window: window, logger: logger}
}

func payoutHandle(p *domain.PayoutRecord) *port.PayoutHandle {
	return &port.PayoutHandle{
		PayoutID:    p.ID,
		ProviderRef: p.ProviderRef,
		Status:      p.Status,
		AmountCents: p.AmountCents,
	}
}

// Disburse books amount against the campaign's remaining escrow and
// starts a payout to the promoter. A provider failure reverses the
// spend before the error is surfaced, so no partial effect remains.
func (u *PayoutUseCase) Disburse(ctx context.Context, campaignID, promoterID string, amount domain.Money, reason string) (*port.PayoutHandle, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("disbursement amount must be positive")
	}
	if reason == "" {
		reason = ReasonManualDisbursal
	}
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if amount > acct.RemainingAmount() {
		return nil, fmt.Errorf("%w: %d requested, %d remaining", port.ErrOverspend, amount, acct.RemainingAmount())
	}
	if _, err = u.repo.ApplySpend(ctx, campaignID, amount, reason); err != nil {
		return nil, err
	}
	payout := &domain.PayoutRecord{
		ID:             uuid.NewString(),
		CampaignID:     campaignID,
		AdvertiserID:   acct.AdvertiserID,
		PromoterID:     promoterID,
		AmountCents:    amount,
		Reason:         reason,
		IdempotencyKey: uuid.NewString(),
		Status:         domain.SettlementPending,
	}
	if err = u.repo.CreatePayout(ctx, payout); err != nil {
		u.reverseSpend(ctx, campaignID, amount)
		return nil, err
	}
	return u.send(ctx, payout, true)
}

// send drives the external rail for a PENDING payout. bookedSpend says
// whether this payout's amount was just applied as spend and therefore
// must be reversed when the rail rejects the request.
func (u *PayoutUseCase) send(ctx context.Context, payout *domain.PayoutRecord, bookedSpend bool) (*port.PayoutHandle, error) {
	receipt, err := u.provider.SendPayout(ctx, port.PayoutRequest{
		PromoterID:     payout.PromoterID,
		AmountCents:    payout.AmountCents,
		IdempotencyKey: payout.IdempotencyKey,
	})
	if err != nil {
		u.failPayout(ctx, payout.ID, bookedSpend)
		return nil, fmt.Errorf("%w: %v", port.ErrProviderFailure, err)
	}
	if err = u.repo.UpdatePayoutStatus(ctx, payout.ID, domain.SettlementProcessing, receipt.Reference); err != nil {
		return nil, err
	}
	payout.Status = domain.SettlementProcessing
	payout.ProviderRef = receipt.Reference
	u.logger.Info("payout initiated",
		slog.String("payout_id", payout.ID),
		slog.String("campaign_id", payout.CampaignID),
		slog.String("promoter_id", payout.PromoterID),
		slog.Int64("amount_cents", payout.AmountCents.Cents()))
	return payoutHandle(payout), nil
}

// reverseSpend runs the compensating transaction for a disbursement
// whose payout row never made it to the rail. It is retried; a final
// failure is a reconciliation alert.
func (u *PayoutUseCase) reverseSpend(ctx context.Context, campaignID string, amount domain.Money) {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		if err = u.repo.ReverseSpend(ctx, campaignID, amount); err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	u.logger.Error("RECONCILIATION ALERT: spend reversal failed, campaign overstates spend",
		slog.String("campaign_id", campaignID),
		slog.Int64("amount_cents", amount.Cents()),
		slog.Any("error", err))
}

// failPayout runs the atomic fail-and-compensate operation for a payout
// that already has a row. It is retried; a final failure is a
// reconciliation alert. Reports whether this call transitioned the
// payout to FAILED (false means it was already terminal).
func (u *PayoutUseCase) failPayout(ctx context.Context, payoutID string, reverseSpend bool) bool {
	var failed bool
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		if failed, err = u.repo.FailPayout(ctx, payoutID, reverseSpend); err == nil {
			return failed
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	u.logger.Error("RECONCILIATION ALERT: payout failure not applied, campaign overstates spend",
		slog.String("payout_id", payoutID),
		slog.Any("error", err))
	return false
}

// AccrueViews advances a pay-per-view campaign's verified view cursor.
// The repository books the earned spend delta in the same transaction
// as the cursor move; views beyond MaxViews never increase spend.
func (u *PayoutUseCase) AccrueViews(ctx context.Context, campaignID string, totalVerifiedViews int64) (*port.AccountReport, error) {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if acct.EconomicModel != domain.PayPerView {
		return nil, fmt.Errorf("view accrual on %s campaign", acct.EconomicModel)
	}
	if acct, err = u.repo.RecordVerifiedViews(ctx, campaignID, totalVerifiedViews); err != nil {
		return nil, err
	}
	return report(acct), nil
}

// SettleAccruedViews pays a promoter the accrued-but-unsettled view
// earnings in one batched payout. The spend is already booked by
// accrual, so a failed settlement keeps the earnings owed instead of
// reversing them.
func (u *PayoutUseCase) SettleAccruedViews(ctx context.Context, campaignID, promoterID string) (*port.PayoutHandle, error) {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if acct.EconomicModel != domain.PayPerView {
		return nil, fmt.Errorf("view settlement on %s campaign", acct.EconomicModel)
	}
	settled, err := u.repo.SumSettledPayouts(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	unsettled := acct.SpentAmount.SubClamped(settled)
	if !unsettled.IsPositive() {
		return nil, port.ErrNothingToSettle
	}
	payout := &domain.PayoutRecord{
		ID:           uuid.NewString(),
		CampaignID:   campaignID,
		AdvertiserID: acct.AdvertiserID,
		PromoterID:   promoterID,
		AmountCents:  unsettled,
		Reason:       ReasonViewSettlement,
		// cursor-keyed so two concurrent sweeps cannot both pay the
		// same accrued window
		IdempotencyKey: fmt.Sprintf("view-settle:%s:%s:%d", campaignID, promoterID, settled.Cents()),
		Status:         domain.SettlementPending,
	}
	if err = u.repo.CreatePayout(ctx, payout); err != nil {
		return nil, err
	}
	return u.send(ctx, payout, false)
}

// RecordSale books one verified sale's commission and pays it out. When
// the remaining escrow drops below the exposure floor, a top-up is
// suggested alongside the payout.
func (u *PayoutUseCase) RecordSale(ctx context.Context, campaignID, promoterID, saleRef string) (*port.SaleResult, error) {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if acct.EconomicModel != domain.CommissionPerSale {
		return nil, fmt.Errorf("sale booking on %s campaign", acct.EconomicModel)
	}
	handle, err := u.Disburse(ctx, campaignID, promoterID, acct.Terms.CommissionPerSaleCents, ReasonVerifiedSalePfx+saleRef)
	if err != nil {
		return nil, err
	}
	res := &port.SaleResult{Payout: *handle}
	if acct, err = u.repo.GetBudgetAccount(ctx, campaignID); err == nil {
		if topUp := acct.ExposureTopUp(u.funding.ExposureThreshold); topUp.IsPositive() {
			res.TopUpSuggested = true
			res.SuggestedTopUp = topUp
		}
	}
	return res, nil
}

// SettlePayout applies a provider settlement callback, idempotent by
// provider reference. A reported failure after spend was applied runs
// the compensating reversal and the FAILED transition as one atomic
// repository operation, so a redelivered callback cannot reverse the
// same spend twice.
func (u *PayoutUseCase) SettlePayout(ctx context.Context, providerRef string, succeeded bool) error {
	payout, err := u.repo.GetPayoutByProviderRef(ctx, providerRef)
	if err != nil {
		return err
	}
	if payout.Status.Terminal() {
		return nil
	}
	if succeeded {
		if err = u.repo.UpdatePayoutStatus(ctx, payout.ID, domain.SettlementSucceeded, providerRef); err != nil {
			return err
		}
		if err = u.repo.CreditPromoter(ctx, payout.PromoterID, payout.AmountCents); err != nil {
			u.logger.Error("RECONCILIATION ALERT: promoter credit failed after settled payout",
				slog.String("payout_id", payout.ID), slog.Any("error", err))
			return err
		}
		u.logger.Info("payout settled", slog.String("payout_id", payout.ID))
		return nil
	}
	if u.failPayout(ctx, payout.ID, payout.Reason != ReasonViewSettlement) {
		u.logger.Warn("payout failed, spend compensated",
			slog.String("payout_id", payout.ID), slog.String("campaign_id", payout.CampaignID))
	}
	return nil
}

// PromoterBalance returns the accumulated earnings projection.
func (u *PayoutUseCase) PromoterBalance(ctx context.Context, promoterID string) (*domain.PromoterBalance, error) {
	return u.repo.GetPromoterBalance(ctx, promoterID)
}

// ReconcileStale fails settlements stuck in flight beyond the window
// and compensates their ledger effects. Returns how many records were
// reconciled.
func (u *PayoutUseCase) ReconcileStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-u.window)
	charges, payouts, err := u.repo.ListStaleSettlements(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range charges {
		c := &charges[i]
		if err = u.repo.UpdateChargeStatus(ctx, c.ID, domain.SettlementFailed, ""); err != nil {
			u.logger.Error("stale charge reconciliation failed", slog.String("charge_id", c.ID), slog.Any("error", err))
			continue
		}
		if c.Kind == domain.ChargeTopUp {
			if err = u.repo.AdjustPendingCharges(ctx, c.AdvertiserID, -c.AmountCents); err != nil {
				u.logger.Error("RECONCILIATION ALERT: pending counter not reduced for stale charge",
					slog.String("charge_id", c.ID), slog.Any("error", err))
			}
		}
		u.logger.Warn("charge timed out", slog.String("charge_id", c.ID), slog.Any("cause", port.ErrProviderTimeout))
		n++
	}
	for i := range payouts {
		p := &payouts[i]
		failed, failErr := u.repo.FailPayout(ctx, p.ID, p.Reason != ReasonViewSettlement)
		if failErr != nil {
			u.logger.Error("stale payout reconciliation failed", slog.String("payout_id", p.ID), slog.Any("error", failErr))
			continue
		}
		if !failed {
			// settled by a callback while the sweep was running
			continue
		}
		u.logger.Warn("payout timed out", slog.String("payout_id", p.ID), slog.Any("cause", port.ErrProviderTimeout))
		n++
	}
	return n, nil
}
