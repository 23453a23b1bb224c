package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"promo-ledger/internal/config/configs"
	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// WalletUseCase implements port.WalletUseCase: wallet projections, the
// funding-feasibility evaluator and withdrawals.
type WalletUseCase struct {
	repo    port.LedgerRepository
	limiter port.WithdrawalLimiter
	funding configs.Funding
	logger  *slog.Logger
}

// NewWalletUseCase creates the wallet service.
func NewWalletUseCase(repo port.LedgerRepository, limiter port.WithdrawalLimiter, funding configs.Funding, logger *slog.Logger) *WalletUseCase {
	return &WalletUseCase{repo: repo, limiter: limiter, funding: funding, logger: logger}
}

func summarize(w *domain.Wallet) port.WalletSummary {
	return port.WalletSummary{
		AdvertiserID:   w.AdvertiserID,
		TotalDeposited: w.TotalDeposited,
		TotalSpent:     w.TotalSpent,
		TotalHeld:      w.TotalHeld,
		TotalWithdrawn: w.TotalWithdrawn,
		PendingCharges: w.PendingCharges,
		CurrentBalance: w.CurrentBalance(),
	}
}

// Balance returns the wallet projection, creating the wallet on first
// use.
func (u *WalletUseCase) Balance(ctx context.Context, advertiserID string) (*port.WalletSummary, error) {
	w, err := u.repo.EnsureWallet(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	s := summarize(w)
	return &s, nil
}

// CheckFeasibility is a pure read: it never mutates the wallet and is
// safe to call repeatedly. Held funds are never counted as available.
// The verdict is point-in-time; the hold path re-validates.
func (u *WalletUseCase) CheckFeasibility(ctx context.Context, advertiserID string, estimate domain.Money) (*port.Feasibility, error) {
	if estimate < 0 {
		return nil, fmt.Errorf("negative budget estimate %d", estimate)
	}
	w, err := u.repo.EnsureWallet(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	available := w.CurrentBalance()
	f := &port.Feasibility{
		CanAfford:        available >= estimate,
		AvailableBalance: available,
		Shortfall:        estimate.SubClamped(available),
		Wallet:           summarize(w),
	}
	if f.Shortfall.IsPositive() {
		f.RecommendedDeposit = f.Shortfall + domain.Money(u.funding.BufferCents) + u.funding.FeeEstimate(f.Shortfall)
	}
	return f, nil
}

// Withdraw debits available balance, subject to the platform's daily
// limit. Held funds back active campaigns and are untouchable.
func (u *WalletUseCase) Withdraw(ctx context.Context, advertiserID string, amount domain.Money) (*domain.WithdrawalTicket, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdrawal amount must be positive")
	}
	if err := u.limiter.Reserve(ctx, advertiserID, amount); err != nil {
		return nil, err
	}
	ticket, err := u.repo.Withdraw(ctx, advertiserID, amount)
	if err != nil {
		// give today's window back; the money never moved
		if relErr := u.limiter.Release(ctx, advertiserID, amount); relErr != nil {
			u.logger.Warn("withdrawal limit release failed",
				slog.String("advertiser_id", advertiserID), slog.Any("error", relErr))
		}
		return nil, err
	}
	u.logger.Info("withdrawal completed",
		slog.String("advertiser_id", advertiserID), slog.Int64("amount_cents", amount.Cents()))
	return ticket, nil
}

// Transactions returns the recent append-only audit trail.
func (u *WalletUseCase) Transactions(ctx context.Context, advertiserID string, limit int) (*port.TransactionHistory, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	charges, err := u.repo.ListCharges(ctx, advertiserID, limit)
	if err != nil {
		return nil, err
	}
	payouts, err := u.repo.ListPayouts(ctx, advertiserID, limit)
	if err != nil {
		return nil, err
	}
	return &port.TransactionHistory{Charges: charges, Payouts: payouts}, nil
}
