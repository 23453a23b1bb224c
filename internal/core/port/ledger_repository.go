package port

import (
	"context"
	"time"

	"promo-ledger/internal/core/domain"
)

// LedgerRepository is the persistence outbound port. Every mutating
// method executes as a single database transaction that locks the
// advertiser's wallet row first (SELECT ... FOR UPDATE); that row is
// the per-advertiser serialization boundary, so concurrent holds,
// spends and releases for one advertiser never observe a torn state.
// Methods never leave partial effects behind.
type LedgerRepository interface {
	// EnsureWallet returns the advertiser's wallet, creating an empty
	// active one on first use.
	EnsureWallet(ctx context.Context, advertiserID string) (*domain.Wallet, error)
	// GetWallet returns the wallet or ErrWalletNotFound.
	GetWallet(ctx context.Context, advertiserID string) (*domain.Wallet, error)

	// Deposit credits settled funds. Idempotent on chargeRef: a second
	// call with the same reference is a no-op returning the current
	// wallet. Only the charge settlement path calls this.
	Deposit(ctx context.Context, advertiserID string, amount domain.Money, chargeRef string) (*domain.Wallet, error)
	// Hold moves amount from available balance into TotalHeld, or fails
	// with ErrInsufficientFunds.
	Hold(ctx context.Context, advertiserID string, amount domain.Money) error
	// ReleaseHold reverses a hold. The release is clamped to the wallet's
	// current TotalHeld so retried compensations stay safe.
	ReleaseHold(ctx context.Context, advertiserID string, amount domain.Money) error
	// Withdraw debits available balance, never held funds.
	Withdraw(ctx context.Context, advertiserID string, amount domain.Money) (*domain.WithdrawalTicket, error)
	// AdjustPendingCharges tracks in-flight top-up volume on the wallet;
	// delta may be negative when a charge settles or fails.
	AdjustPendingCharges(ctx context.Context, advertiserID string, delta domain.Money) error
	// ApplyRefund debits TotalDeposited after a provider-confirmed
	// refund. Fails with ErrInsufficientFunds when the balance no longer
	// covers the refunded amount; any associated hold must already have
	// been released by then.
	ApplyRefund(ctx context.Context, advertiserID string, amount domain.Money, chargeRef string) error

	// CreateBudgetAccount persists a freshly opened account. Fails with
	// ErrDuplicateAccount when the campaign already has one.
	CreateBudgetAccount(ctx context.Context, acct *domain.BudgetAccount) error
	// GetBudgetAccount returns the account or ErrAccountNotFound.
	GetBudgetAccount(ctx context.Context, campaignID string) (*domain.BudgetAccount, error)
	// IncreaseAccountHold grows AllocatedBudget and HeldAmount by delta.
	// Fails with ErrInvalidStateTransition on terminal accounts. The
	// matching wallet Hold is a separate step owned by the caller.
	IncreaseAccountHold(ctx context.Context, campaignID string, delta domain.Money) (*domain.BudgetAccount, error)
	// DecreaseAccountHold shrinks the hold by at most delta, never below
	// SpentAmount. Returns the actually freed amount for the caller to
	// release back to the wallet.
	DecreaseAccountHold(ctx context.Context, campaignID string, delta domain.Money) (domain.Money, error)
	// ApplySpend books amount against the campaign's escrow and moves the
	// same amount from the wallet's held to spent in one transaction.
	// Fails with ErrOverspend when amount exceeds the remaining hold and
	// ErrInvalidStateTransition when the account rejects spend.
	ApplySpend(ctx context.Context, campaignID string, amount domain.Money, reason string) (*domain.BudgetAccount, error)
	// ReverseSpend compensates a failed disbursement: spent goes back to
	// held on both the account and the wallet. Idempotent for retries of
	// the same compensation when the caller passes the payout amount once.
	ReverseSpend(ctx context.Context, campaignID string, amount domain.Money) error
	// RecordVerifiedViews advances the PAY_PER_VIEW accrual cursor to
	// totalViews (monotonic, capped at the account's MaxViews) and books
	// the spend the new views earn in the same transaction, so two
	// concurrent reports of one tally can never book the delta twice.
	RecordVerifiedViews(ctx context.Context, campaignID string, totalViews int64) (*domain.BudgetAccount, error)
	// SetAccountStatus applies non-terminal transitions (pause/resume).
	SetAccountStatus(ctx context.Context, campaignID string, status domain.AccountStatus) error
	// CloseBudgetAccount marks the account COMPLETED or CANCELLED,
	// releases the unspent hold back to the wallet in the same
	// transaction, and returns the released amount.
	CloseBudgetAccount(ctx context.Context, campaignID string, outcome domain.AccountStatus) (domain.Money, error)

	// CreateCharge inserts a PENDING charge row. When the idempotency key
	// already exists the stored row is returned with created == false and
	// no new row is written.
	CreateCharge(ctx context.Context, charge *domain.AdvertiserCharge) (stored *domain.AdvertiserCharge, created bool, err error)
	// GetCharge returns a charge by id.
	GetCharge(ctx context.Context, chargeID string) (*domain.AdvertiserCharge, error)
	// GetChargeByProviderRef resolves a settlement callback to its charge.
	GetChargeByProviderRef(ctx context.Context, providerRef string) (*domain.AdvertiserCharge, error)
	// UpdateChargeStatus advances a charge, recording the provider
	// reference and settlement time where relevant.
	UpdateChargeStatus(ctx context.Context, chargeID string, status domain.SettlementStatus, providerRef string) error

	// CreatePayout inserts a PENDING payout row.
	CreatePayout(ctx context.Context, payout *domain.PayoutRecord) error
	// GetPayoutByProviderRef resolves a settlement callback to its payout.
	GetPayoutByProviderRef(ctx context.Context, providerRef string) (*domain.PayoutRecord, error)
	GetPayout(ctx context.Context, payoutID string) (*domain.PayoutRecord, error)
	UpdatePayoutStatus(ctx context.Context, payoutID string, status domain.SettlementStatus, providerRef string) error
	// FailPayout marks an in-flight payout FAILED and, when reverseSpend
	// is set, returns its booked spend to the campaign's escrow in the
	// same transaction. An already-terminal payout is left untouched and
	// reports false, which keeps webhook replays and the stale sweep
	// from compensating twice.
	FailPayout(ctx context.Context, payoutID string, reverseSpend bool) (bool, error)
	// SumSettledPayouts totals SUCCEEDED payouts for a campaign, used to
	// settle accrued pay-per-view earnings without double paying.
	SumSettledPayouts(ctx context.Context, campaignID string) (domain.Money, error)

	// CreditPromoter adds settled earnings to the promoter's balance.
	CreditPromoter(ctx context.Context, promoterID string, amount domain.Money) error
	GetPromoterBalance(ctx context.Context, promoterID string) (*domain.PromoterBalance, error)

	// ListCharges and ListPayouts page the append-only audit log for the
	// advertiser, newest first.
	ListCharges(ctx context.Context, advertiserID string, limit int) ([]domain.AdvertiserCharge, error)
	ListPayouts(ctx context.Context, advertiserID string, limit int) ([]domain.PayoutRecord, error)

	// ListStaleSettlements returns charges and payouts stuck in
	// PROCESSING since before the cutoff, for the reconciliation sweep.
	ListStaleSettlements(ctx context.Context, cutoff time.Time) ([]domain.AdvertiserCharge, []domain.PayoutRecord, error)
}
