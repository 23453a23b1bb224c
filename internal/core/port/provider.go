package port

import (
	"context"

	"promo-ledger/internal/core/domain"
)

// ChargeRequest asks the external card processor to collect funds from
// an advertiser's stored payment method.
type ChargeRequest struct {
	AdvertiserID     string
	AmountCents      domain.Money
	PaymentMethodRef string
	IdempotencyKey   string
}

// PayoutRequest asks the external payout rail to transfer funds to a
// promoter.
type PayoutRequest struct {
	PromoterID     string
	AmountCents    domain.Money
	IdempotencyKey string
}

// RefundRequest reverses a previously settled charge.
type RefundRequest struct {
	OriginalProviderRef string
	AmountCents         domain.Money
	IdempotencyKey      string
}

// ProviderReceipt is the immediate acknowledgement from the provider.
// Settlement itself arrives later through the webhook endpoints, keyed
// by Reference.
type ProviderReceipt struct {
	Reference string
	Status    string
}

// PaymentProvider is the outbound port to the opaque card-payment and
// payout processor. Requests are fire-and-acknowledge: implementations
// must pass the idempotency key through so retries after timeouts do
// not double-charge or double-pay. Implementations must not be called
// while holding the advertiser serialization lock.
type PaymentProvider interface {
	InitiateCharge(ctx context.Context, req ChargeRequest) (*ProviderReceipt, error)
	InitiateRefund(ctx context.Context, req RefundRequest) (*ProviderReceipt, error)
	SendPayout(ctx context.Context, req PayoutRequest) (*ProviderReceipt, error)
}

// WithdrawalLimiter enforces the platform's daily withdrawal cap per
// advertiser. Reserve either admits the amount into today's window or
// fails with ErrWithdrawalLimit; Release gives a reservation back when
// the withdrawal itself fails afterwards.
type WithdrawalLimiter interface {
	Reserve(ctx context.Context, advertiserID string, amount domain.Money) error
	Release(ctx context.Context, advertiserID string, amount domain.Money) error
}
