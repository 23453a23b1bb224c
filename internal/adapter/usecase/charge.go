package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// ChargeUseCase implements port.ChargeUseCase. It converts funding
// shortfalls into wallet funds via the external provider and reconciles
// the asynchronous settlement callbacks. The provider is always called
// outside the advertiser's serialization boundary: the PENDING record
// is created first, the lock is released, and only the settlement delta
// re-enters the boundary.
type ChargeUseCase struct {
	repo     port.LedgerRepository
	provider port.PaymentProvider
	logger   *slog.Logger
}

// NewChargeUseCase creates the charge coordinator.
func NewChargeUseCase(repo port.LedgerRepository, provider port.PaymentProvider, logger *slog.Logger) *ChargeUseCase {
	return &ChargeUseCase{repo: repo, provider: provider, logger: logger}
}

func chargeHandle(c *domain.AdvertiserCharge) *port.ChargeHandle {
	return &port.ChargeHandle{
		ChargeID:    c.ID,
		ProviderRef: c.ProviderRef,
		Status:      c.Status,
		AmountCents: c.AmountCents,
	}
}

// RequestCharge creates a PENDING charge and contacts the provider.
// A retry with the same idempotency key maps onto the stored charge, so
// a client resending after a timeout can never double-deposit.
func (u *ChargeUseCase) RequestCharge(ctx context.Context, advertiserID string, amount domain.Money, paymentMethodRef, idempotencyKey string) (*port.ChargeHandle, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("charge amount must be positive")
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}
	if _, err := u.repo.EnsureWallet(ctx, advertiserID); err != nil {
		return nil, err
	}
	charge := &domain.AdvertiserCharge{
		ID:               uuid.NewString(),
		AdvertiserID:     advertiserID,
		Kind:             domain.ChargeTopUp,
		AmountCents:      amount,
		PaymentMethodRef: paymentMethodRef,
		IdempotencyKey:   idempotencyKey,
		Status:           domain.SettlementPending,
	}
	stored, created, err := u.repo.CreateCharge(ctx, charge)
	if err != nil {
		return nil, err
	}
	if !created && stored.ProviderRef != "" {
		// retried request: the provider was already contacted
		return chargeHandle(stored), nil
	}
	if created {
		if err = u.repo.AdjustPendingCharges(ctx, advertiserID, stored.AmountCents); err != nil {
			return nil, err
		}
	}
	receipt, err := u.provider.InitiateCharge(ctx, port.ChargeRequest{
		AdvertiserID:     advertiserID,
		AmountCents:      stored.AmountCents,
		PaymentMethodRef: paymentMethodRef,
		IdempotencyKey:   stored.IdempotencyKey,
	})
	if err != nil {
		if stErr := u.repo.UpdateChargeStatus(ctx, stored.ID, domain.SettlementFailed, ""); stErr != nil {
			u.logger.Error("failed to mark charge FAILED", slog.String("charge_id", stored.ID), slog.Any("error", stErr))
		}
		if pcErr := u.repo.AdjustPendingCharges(ctx, advertiserID, -stored.AmountCents); pcErr != nil {
			u.logger.Error("RECONCILIATION ALERT: pending charge counter not rolled back",
				slog.String("charge_id", stored.ID), slog.Any("error", pcErr))
		}
		return nil, fmt.Errorf("%w: %v", port.ErrProviderFailure, err)
	}
	if err = u.repo.UpdateChargeStatus(ctx, stored.ID, domain.SettlementProcessing, receipt.Reference); err != nil {
		return nil, err
	}
	stored.Status = domain.SettlementProcessing
	stored.ProviderRef = receipt.Reference
	u.logger.Info("charge initiated",
		slog.String("charge_id", stored.ID),
		slog.String("provider_ref", receipt.Reference),
		slog.Int64("amount_cents", stored.AmountCents.Cents()))
	return chargeHandle(stored), nil
}

// RequestRefund starts the mirror path: the wallet is debited only when
// the provider confirms. Any hold backed by the refunded amount must be
// released before the refund can settle.
func (u *ChargeUseCase) RequestRefund(ctx context.Context, advertiserID string, originalChargeID string, idempotencyKey string) (*port.ChargeHandle, error) {
	original, err := u.repo.GetCharge(ctx, originalChargeID)
	if err != nil {
		return nil, err
	}
	if original.AdvertiserID != advertiserID || original.Kind != domain.ChargeTopUp || original.Status != domain.SettlementSucceeded {
		return nil, fmt.Errorf("charge %s is not refundable: %w", originalChargeID, port.ErrChargeNotFound)
	}
	wallet, err := u.repo.GetWallet(ctx, advertiserID)
	if err != nil {
		return nil, err
	}
	if !wallet.CanCover(original.AmountCents) {
		return nil, fmt.Errorf("%w: refund of %d exceeds available balance %d",
			port.ErrInsufficientFunds, original.AmountCents, wallet.CurrentBalance())
	}
	if idempotencyKey == "" {
		idempotencyKey = "refund:" + originalChargeID
	}
	refund := &domain.AdvertiserCharge{
		ID:             uuid.NewString(),
		AdvertiserID:   advertiserID,
		Kind:           domain.ChargeRefund,
		AmountCents:    original.AmountCents,
		IdempotencyKey: idempotencyKey,
		Status:         domain.SettlementPending,
	}
	stored, created, err := u.repo.CreateCharge(ctx, refund)
	if err != nil {
		return nil, err
	}
	if !created && stored.ProviderRef != "" {
		return chargeHandle(stored), nil
	}
	receipt, err := u.provider.InitiateRefund(ctx, port.RefundRequest{
		OriginalProviderRef: original.ProviderRef,
		AmountCents:         stored.AmountCents,
		IdempotencyKey:      stored.IdempotencyKey,
	})
	if err != nil {
		if stErr := u.repo.UpdateChargeStatus(ctx, stored.ID, domain.SettlementFailed, ""); stErr != nil {
			u.logger.Error("failed to mark refund FAILED", slog.String("charge_id", stored.ID), slog.Any("error", stErr))
		}
		return nil, fmt.Errorf("%w: %v", port.ErrProviderFailure, err)
	}
	if err = u.repo.UpdateChargeStatus(ctx, stored.ID, domain.SettlementProcessing, receipt.Reference); err != nil {
		return nil, err
	}
	stored.Status = domain.SettlementProcessing
	stored.ProviderRef = receipt.Reference
	return chargeHandle(stored), nil
}

// SettleCharge applies a provider settlement callback. Idempotent by
// provider transaction reference: terminal charges are never touched
// again, and the deposit itself is dedup'd on the charge id.
func (u *ChargeUseCase) SettleCharge(ctx context.Context, providerRef string, succeeded bool) error {
	charge, err := u.repo.GetChargeByProviderRef(ctx, providerRef)
	if err != nil {
		return err
	}
	if charge.Status.Terminal() {
		return nil
	}
	switch charge.Kind {
	case domain.ChargeTopUp:
		if succeeded {
			if _, err = u.repo.Deposit(ctx, charge.AdvertiserID, charge.AmountCents, charge.ID); err != nil {
				return err
			}
			if err = u.repo.UpdateChargeStatus(ctx, charge.ID, domain.SettlementSucceeded, providerRef); err != nil {
				return err
			}
		} else {
			if err = u.repo.UpdateChargeStatus(ctx, charge.ID, domain.SettlementFailed, providerRef); err != nil {
				return err
			}
		}
		if err = u.repo.AdjustPendingCharges(ctx, charge.AdvertiserID, -charge.AmountCents); err != nil {
			u.logger.Error("RECONCILIATION ALERT: pending charge counter not reduced after settlement",
				slog.String("charge_id", charge.ID), slog.Any("error", err))
			return err
		}
	case domain.ChargeRefund:
		if succeeded {
			if err = u.repo.ApplyRefund(ctx, charge.AdvertiserID, charge.AmountCents, charge.ID); err != nil {
				u.logger.Error("RECONCILIATION ALERT: confirmed refund could not be applied",
					slog.String("charge_id", charge.ID), slog.Any("error", err))
				return err
			}
			if err = u.repo.UpdateChargeStatus(ctx, charge.ID, domain.SettlementRefunded, providerRef); err != nil {
				return err
			}
		} else {
			if err = u.repo.UpdateChargeStatus(ctx, charge.ID, domain.SettlementFailed, providerRef); err != nil {
				return err
			}
		}
	}
	u.logger.Info("charge settled",
		slog.String("charge_id", charge.ID),
		slog.String("kind", string(charge.Kind)),
		slog.Bool("succeeded", succeeded))
	return nil
}
