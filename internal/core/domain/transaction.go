package domain

import "time"

// SettlementStatus is shared by charges and payouts. PENDING means the
// record exists but the provider has not been contacted yet; PROCESSING
// means the provider accepted the request and settlement is awaited.
type SettlementStatus string

const (
	SettlementPending    SettlementStatus = "PENDING"
	SettlementProcessing SettlementStatus = "PROCESSING"
	SettlementSucceeded  SettlementStatus = "SUCCEEDED"
	SettlementFailed     SettlementStatus = "FAILED"
	SettlementRefunded   SettlementStatus = "REFUNDED"
	SettlementCancelled  SettlementStatus = "CANCELLED"
)

// Terminal reports whether the settlement reached a final state.
func (s SettlementStatus) Terminal() bool {
	switch s {
	case SettlementSucceeded, SettlementFailed, SettlementRefunded, SettlementCancelled:
		return true
	}
	return false
}

// ChargeKind distinguishes top-ups from refunds in the charge log.
type ChargeKind string

const (
	ChargeTopUp  ChargeKind = "CHARGE"
	ChargeRefund ChargeKind = "REFUND"
)

// AdvertiserCharge is an immutable audit-log entry for a wallet top-up
// or refund. The IdempotencyKey is unique: a retried request maps onto
// the existing row instead of creating a second charge. Wallet balances
// must be reconstructable by replaying settled charges and payouts.
type AdvertiserCharge struct {
	ID               string
	AdvertiserID     string
	Kind             ChargeKind
	AmountCents      Money
	PaymentMethodRef string
	IdempotencyKey   string
	ProviderRef      string
	Status           SettlementStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	SettledAt        *time.Time
}

// PayoutRecord is an immutable audit-log entry for a disbursement from
// a campaign's escrow to a promoter.
type PayoutRecord struct {
	ID             string
	CampaignID     string
	AdvertiserID   string
	PromoterID     string
	AmountCents    Money
	Reason         string
	IdempotencyKey string
	ProviderRef    string
	Status         SettlementStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	SettledAt      *time.Time
}

// PromoterBalance accumulates verified earnings for a promoter. It is
// the payout target; anything beyond the running total is out of scope
// for the ledger.
type PromoterBalance struct {
	PromoterID    string
	TotalEarnings Money
	UpdatedAt     time.Time
}

// WithdrawalTicket is returned to the caller after a successful
// withdrawal from available balance.
type WithdrawalTicket struct {
	ID           string
	AdvertiserID string
	AmountCents  Money
	CreatedAt    time.Time
}
