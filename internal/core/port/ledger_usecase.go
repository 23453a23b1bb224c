package port

import (
	"context"

	"promo-ledger/internal/core/domain"
)

// WalletSummary is the read projection of an advertiser's wallet
// returned to the dashboard layer. Amounts are integer cents.
type WalletSummary struct {
	AdvertiserID   string       `json:"advertiserId"`
	TotalDeposited domain.Money `json:"totalDepositedCents"`
	TotalSpent     domain.Money `json:"totalSpentCents"`
	TotalHeld      domain.Money `json:"totalHeldCents"`
	TotalWithdrawn domain.Money `json:"totalWithdrawnCents"`
	PendingCharges domain.Money `json:"pendingChargesCents"`
	CurrentBalance domain.Money `json:"currentBalanceCents"`
}

// Feasibility is the verdict of a funding check: whether the advertiser
// can afford a prospective hold right now, and if not, how much to
// deposit. It is a point-in-time read; the verdict is re-validated at
// hold time.
type Feasibility struct {
	CanAfford          bool          `json:"canAfford"`
	AvailableBalance   domain.Money  `json:"currentAvailableBalanceCents"`
	Shortfall          domain.Money  `json:"shortfallAmountCents"`
	RecommendedDeposit domain.Money  `json:"recommendedDepositCents"`
	Wallet             WalletSummary `json:"walletSummary"`
}

// ChargeHandle is returned immediately from a charge or refund request;
// settlement arrives later via webhook.
type ChargeHandle struct {
	ChargeID    string                  `json:"chargeId"`
	ProviderRef string                  `json:"providerRef"`
	Status      domain.SettlementStatus `json:"status"`
	AmountCents domain.Money            `json:"amountCents"`
}

// PayoutHandle is the immediate result of a disbursement request.
type PayoutHandle struct {
	PayoutID    string                  `json:"payoutId"`
	ProviderRef string                  `json:"providerRef"`
	Status      domain.SettlementStatus `json:"status"`
	AmountCents domain.Money            `json:"amountCents"`
}

// AdjustResult reports the outcome of a budget adjustment. When the
// wallet cannot cover a requested increase, RequiresAdditionalFunding
// carries the structured shortfall so the dashboard can run a guided
// top-up flow instead of showing a bare rejection.
type AdjustResult struct {
	Adjusted                  bool           `json:"adjusted"`
	RequiresAdditionalFunding bool           `json:"requiresAdditionalFunding"`
	AdditionalFundingAmount   domain.Money   `json:"additionalFundingAmountCents,omitempty"`
	RecommendedDeposit        domain.Money   `json:"recommendedDepositCents,omitempty"`
	Account                   *AccountReport `json:"account,omitempty"`
}

// AccountReport is the read projection of a budget account.
type AccountReport struct {
	CampaignID      string               `json:"campaignId"`
	EconomicModel   domain.EconomicModel `json:"economicModel"`
	AllocatedBudget domain.Money         `json:"allocatedBudgetCents"`
	HeldAmount      domain.Money         `json:"heldAmountCents"`
	SpentAmount     domain.Money         `json:"spentAmountCents"`
	RemainingAmount domain.Money         `json:"remainingAmountCents"`
	VerifiedViews   int64                `json:"verifiedViews,omitempty"`
	Status          domain.AccountStatus `json:"status"`
}

// OpenAccountRequest opens escrow for a newly created campaign.
type OpenAccountRequest struct {
	CampaignID    string
	AdvertiserID  string
	EconomicModel domain.EconomicModel
	Terms         domain.ModelTerms
	RequestedHold domain.Money
}

// CloseResult reports the released unspent hold after closing.
type CloseResult struct {
	Outcome  domain.AccountStatus `json:"outcome"`
	Released domain.Money         `json:"releasedCents"`
}

// SaleResult reports a booked commission and, when the remaining escrow
// runs low, a suggested hold top-up.
type SaleResult struct {
	Payout         PayoutHandle `json:"payout"`
	TopUpSuggested bool         `json:"topUpSuggested"`
	SuggestedTopUp domain.Money `json:"suggestedTopUpCents,omitempty"`
}

// TransactionHistory pages the advertiser's append-only audit trail.
type TransactionHistory struct {
	Charges []domain.AdvertiserCharge `json:"charges"`
	Payouts []domain.PayoutRecord     `json:"payouts"`
}

// WalletUseCase covers wallet reads, feasibility and withdrawals.
type WalletUseCase interface {
	// Balance returns the wallet projection, creating the wallet on
	// first use.
	Balance(ctx context.Context, advertiserID string) (*WalletSummary, error)
	// CheckFeasibility answers "can this advertiser afford a hold of
	// estimate right now?" without side effects.
	CheckFeasibility(ctx context.Context, advertiserID string, estimate domain.Money) (*Feasibility, error)
	// Withdraw debits available balance subject to the daily limit.
	Withdraw(ctx context.Context, advertiserID string, amount domain.Money) (*domain.WithdrawalTicket, error)
	// Transactions returns the recent audit trail for the advertiser.
	Transactions(ctx context.Context, advertiserID string, limit int) (*TransactionHistory, error)
}

// ChargeUseCase converts a funding shortfall into wallet funds through
// the external provider and reconciles its asynchronous settlement.
type ChargeUseCase interface {
	// RequestCharge creates a PENDING charge and contacts the provider.
	// Retries with the same idempotency key return the stored handle and
	// never create a second charge.
	RequestCharge(ctx context.Context, advertiserID string, amount domain.Money, paymentMethodRef, idempotencyKey string) (*ChargeHandle, error)
	// RequestRefund mirrors RequestCharge for money flowing back out.
	RequestRefund(ctx context.Context, advertiserID string, originalChargeID string, idempotencyKey string) (*ChargeHandle, error)
	// SettleCharge applies a provider settlement callback. Idempotent by
	// provider transaction reference.
	SettleCharge(ctx context.Context, providerRef string, succeeded bool) error
}

// BudgetUseCase owns the account lifecycle and budget adjustments.
type BudgetUseCase interface {
	// OpenAccount checks feasibility, places the wallet hold and creates
	// the account; the hold is rolled back if account creation fails.
	OpenAccount(ctx context.Context, req OpenAccountRequest) (*AccountReport, error)
	// AdjustBudget grows or shrinks a running campaign's hold. Growth
	// re-checks feasibility and is compensated on partial failure.
	AdjustBudget(ctx context.Context, advertiserID, campaignID string, delta domain.Money) (*AdjustResult, error)
	// Pause and Resume toggle spend acceptance.
	Pause(ctx context.Context, campaignID string) error
	Resume(ctx context.Context, campaignID string) error
	// Close marks the campaign COMPLETED or CANCELLED and releases the
	// unspent hold back to the wallet.
	Close(ctx context.Context, campaignID string, outcome domain.AccountStatus) (*CloseResult, error)
	// Account returns the account projection.
	Account(ctx context.Context, campaignID string) (*AccountReport, error)
}

// PayoutUseCase drains campaign escrow into promoter balances via the
// external payout rail.
type PayoutUseCase interface {
	// Disburse books spend against the campaign and starts a payout.
	// A provider failure reverses the spend before the error surfaces.
	Disburse(ctx context.Context, campaignID, promoterID string, amount domain.Money, reason string) (*PayoutHandle, error)
	// AccrueViews advances a PAY_PER_VIEW campaign's verified view count
	// and books the resulting spend delta.
	AccrueViews(ctx context.Context, campaignID string, totalVerifiedViews int64) (*AccountReport, error)
	// SettleAccruedViews pays a promoter the accrued-but-unsettled
	// view earnings in one batched payout.
	SettleAccruedViews(ctx context.Context, campaignID, promoterID string) (*PayoutHandle, error)
	// RecordSale books one verified sale's commission on a
	// COMMISSION_PER_SALE campaign and pays it out.
	RecordSale(ctx context.Context, campaignID, promoterID, saleRef string) (*SaleResult, error)
	// SettlePayout applies a provider settlement callback; failures run
	// the compensating spend reversal. Idempotent by provider reference.
	SettlePayout(ctx context.Context, providerRef string, succeeded bool) error
	// PromoterBalance returns the accumulated earnings projection.
	PromoterBalance(ctx context.Context, promoterID string) (*domain.PromoterBalance, error)
	// ReconcileStale fails and compensates settlements stuck in
	// PROCESSING beyond the configured window.
	ReconcileStale(ctx context.Context) (int, error)
}
