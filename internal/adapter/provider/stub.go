package provider

import (
	"context"
	"fmt"
	"sync/atomic"

	"promo-ledger/internal/core/port"
)

// Stub is a no-op provider for development and tests: every request is
// acknowledged immediately with a deterministic reference. Settlement
// still has to be driven through the webhook endpoints, which keeps the
// local flow identical to production.
type Stub struct {
	seq atomic.Int64
}

// NewStub returns a stub provider.
func NewStub() *Stub { return &Stub{} }

func (s *Stub) ref(kind, key string) *port.ProviderReceipt {
	return &port.ProviderReceipt{
		Reference: fmt.Sprintf("stub_%s_%s_%d", kind, key, s.seq.Add(1)),
		Status:    "accepted",
	}
}

func (s *Stub) InitiateCharge(_ context.Context, req port.ChargeRequest) (*port.ProviderReceipt, error) {
	return s.ref("charge", req.IdempotencyKey), nil
}

func (s *Stub) InitiateRefund(_ context.Context, req port.RefundRequest) (*port.ProviderReceipt, error) {
	return s.ref("refund", req.IdempotencyKey), nil
}

func (s *Stub) SendPayout(_ context.Context, req port.PayoutRequest) (*port.ProviderReceipt, error) {
	return s.ref("payout", req.IdempotencyKey), nil
}
