package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// BudgetUseCase implements port.BudgetUseCase: account lifecycle plus
// the budget-adjustment processor. Growing a hold is a two-step
// sequence across the wallet and the account; a failure between the
// steps triggers the compensating release before the error surfaces.
type BudgetUseCase struct {
	repo    port.LedgerRepository
	wallets port.WalletUseCase
	logger  *slog.Logger
}

// NewBudgetUseCase creates the budget service.
func NewBudgetUseCase(repo port.LedgerRepository, wallets port.WalletUseCase, logger *slog.Logger) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, wallets: wallets, logger: logger}
}

func report(a *domain.BudgetAccount) *port.AccountReport {
	return &port.AccountReport{
		CampaignID:      a.CampaignID,
		EconomicModel:   a.EconomicModel,
		AllocatedBudget: a.AllocatedBudget,
		HeldAmount:      a.HeldAmount,
		SpentAmount:     a.SpentAmount,
		RemainingAmount: a.RemainingAmount(),
		VerifiedViews:   a.VerifiedViews,
		Status:          a.Status,
	}
}

// compensateRelease undoes a wallet hold after a later step failed. The
// release is idempotent and retried; if it cannot complete the failure
// is logged as a reconciliation alert that requires manual intervention
// and must never be swallowed silently.
func (u *BudgetUseCase) compensateRelease(ctx context.Context, advertiserID string, amount domain.Money) {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		if err = u.repo.ReleaseHold(ctx, advertiserID, amount); err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	u.logger.Error("RECONCILIATION ALERT: compensating hold release failed, wallet overstates held funds",
		slog.String("advertiser_id", advertiserID),
		slog.Int64("amount_cents", amount.Cents()),
		slog.Any("error", err))
}

// OpenAccount places the wallet hold and creates the campaign's escrow
// account. The hold is rolled back if account creation fails.
func (u *BudgetUseCase) OpenAccount(ctx context.Context, req port.OpenAccountRequest) (*port.AccountReport, error) {
	if !req.RequestedHold.IsPositive() {
		return nil, fmt.Errorf("requested hold must be positive")
	}
	acct := &domain.BudgetAccount{
		CampaignID:    req.CampaignID,
		AdvertiserID:  req.AdvertiserID,
		EconomicModel: req.EconomicModel,
		Terms:         req.Terms,
		Status:        domain.AccountActive,
	}
	if err := acct.ValidateTerms(); err != nil {
		return nil, err
	}
	if req.EconomicModel == domain.FixedPrice && req.RequestedHold != req.Terms.PriceCents {
		return nil, fmt.Errorf("fixed-price hold must equal the price (%d)", req.Terms.PriceCents)
	}
	if req.EconomicModel == domain.BudgetRange && (req.RequestedHold < req.Terms.MinBudget || req.RequestedHold > req.Terms.MaxBudget) {
		return nil, fmt.Errorf("budget-range hold must be within [%d, %d]", req.Terms.MinBudget, req.Terms.MaxBudget)
	}
	acct.AllocatedBudget = req.RequestedHold
	acct.HeldAmount = req.RequestedHold

	if _, err := u.repo.EnsureWallet(ctx, req.AdvertiserID); err != nil {
		return nil, err
	}
	if err := u.repo.Hold(ctx, req.AdvertiserID, req.RequestedHold); err != nil {
		return nil, err
	}
	if err := u.repo.CreateBudgetAccount(ctx, acct); err != nil {
		u.compensateRelease(ctx, req.AdvertiserID, req.RequestedHold)
		return nil, err
	}
	u.logger.Info("budget account opened",
		slog.String("campaign_id", req.CampaignID),
		slog.String("model", string(req.EconomicModel)),
		slog.Int64("hold_cents", req.RequestedHold.Cents()))
	return report(acct), nil
}

// AdjustBudget grows or shrinks a running campaign's hold. A positive
// delta is checked for feasibility first; infeasible requests return
// the structured shortfall without mutating anything.
func (u *BudgetUseCase) AdjustBudget(ctx context.Context, advertiserID, campaignID string, delta domain.Money) (*port.AdjustResult, error) {
	if delta.IsZero() {
		return nil, fmt.Errorf("budget delta must be non-zero")
	}
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if acct.AdvertiserID != advertiserID {
		return nil, fmt.Errorf("campaign %s is not owned by advertiser %s: %w", campaignID, advertiserID, port.ErrAccountNotFound)
	}
	if acct.Status.Terminal() {
		return nil, fmt.Errorf("%w: adjust budget on %s campaign", port.ErrInvalidStateTransition, acct.Status)
	}

	if delta.IsPositive() {
		return u.increase(ctx, advertiserID, campaignID, delta)
	}
	return u.decrease(ctx, advertiserID, campaignID, -delta)
}

func (u *BudgetUseCase) increase(ctx context.Context, advertiserID, campaignID string, delta domain.Money) (*port.AdjustResult, error) {
	feas, err := u.wallets.CheckFeasibility(ctx, advertiserID, delta)
	if err != nil {
		return nil, err
	}
	if !feas.CanAfford {
		return &port.AdjustResult{
			RequiresAdditionalFunding: true,
			AdditionalFundingAmount:   feas.Shortfall,
			RecommendedDeposit:        feas.RecommendedDeposit,
		}, nil
	}
	if err = u.repo.Hold(ctx, advertiserID, delta); err != nil {
		if errors.Is(err, port.ErrInsufficientFunds) {
			// the balance moved between the check and the hold
			return nil, fmt.Errorf("%w: %v", port.ErrStaleFeasibility, err)
		}
		return nil, err
	}
	acct, err := u.repo.IncreaseAccountHold(ctx, campaignID, delta)
	if err != nil {
		u.compensateRelease(ctx, advertiserID, delta)
		return nil, err
	}
	u.logger.Info("budget increased",
		slog.String("campaign_id", campaignID), slog.Int64("delta_cents", delta.Cents()))
	return &port.AdjustResult{Adjusted: true, Account: report(acct)}, nil
}

func (u *BudgetUseCase) decrease(ctx context.Context, advertiserID, campaignID string, delta domain.Money) (*port.AdjustResult, error) {
	freed, err := u.repo.DecreaseAccountHold(ctx, campaignID, delta)
	if err != nil {
		return nil, err
	}
	if freed.IsPositive() {
		if err = u.repo.ReleaseHold(ctx, advertiserID, freed); err != nil {
			u.logger.Error("RECONCILIATION ALERT: hold release after decrease failed",
				slog.String("campaign_id", campaignID),
				slog.Int64("freed_cents", freed.Cents()),
				slog.Any("error", err))
			return nil, err
		}
	}
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	u.logger.Info("budget decreased",
		slog.String("campaign_id", campaignID), slog.Int64("freed_cents", freed.Cents()))
	return &port.AdjustResult{Adjusted: true, Account: report(acct)}, nil
}

// Pause stops a campaign from accepting new spend.
func (u *BudgetUseCase) Pause(ctx context.Context, campaignID string) error {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return err
	}
	if acct.Status != domain.AccountActive && acct.Status != domain.AccountExhausted {
		return fmt.Errorf("%w: pause on %s campaign", port.ErrInvalidStateTransition, acct.Status)
	}
	return u.repo.SetAccountStatus(ctx, campaignID, domain.AccountPaused)
}

// Resume re-enables spend on a paused campaign.
func (u *BudgetUseCase) Resume(ctx context.Context, campaignID string) error {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return err
	}
	if acct.Status != domain.AccountPaused {
		return fmt.Errorf("%w: resume on %s campaign", port.ErrInvalidStateTransition, acct.Status)
	}
	status := domain.AccountActive
	if acct.RemainingAmount().IsZero() {
		status = domain.AccountExhausted
	}
	return u.repo.SetAccountStatus(ctx, campaignID, status)
}

// Close marks the campaign terminal and releases the unspent hold.
func (u *BudgetUseCase) Close(ctx context.Context, campaignID string, outcome domain.AccountStatus) (*port.CloseResult, error) {
	released, err := u.repo.CloseBudgetAccount(ctx, campaignID, outcome)
	if err != nil {
		return nil, err
	}
	u.logger.Info("budget account closed",
		slog.String("campaign_id", campaignID),
		slog.String("outcome", string(outcome)),
		slog.Int64("released_cents", released.Cents()))
	return &port.CloseResult{Outcome: outcome, Released: released}, nil
}

// Account returns the account projection.
func (u *BudgetUseCase) Account(ctx context.Context, campaignID string) (*port.AccountReport, error) {
	acct, err := u.repo.GetBudgetAccount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return report(acct), nil
}
