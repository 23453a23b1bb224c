package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"promo-ledger/internal/config/configs"
	"promo-ledger/internal/core/port"
)

// Client talks to the external payment processor over HTTP. The
// processor is opaque: we post a request carrying our idempotency key,
// it acknowledges with a reference, and settlement arrives later on the
// webhook endpoints. Implements port.PaymentProvider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a provider client from configuration.
func NewClient(cfg configs.Provider) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// New returns the configured provider: the HTTP client when a base URL
// is set, the stub otherwise.
func New(cfg configs.Provider) port.PaymentProvider {
	if cfg.BaseURL == "" {
		return NewStub()
	}
	return NewClient(cfg)
}

type providerAck struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

func (c *Client) post(ctx context.Context, path string, body any) (*port.ProviderReceipt, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", port.ErrProviderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", port.ErrProviderFailure, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", port.ErrProviderFailure, resp.StatusCode)
	}
	var ack providerAck
	if err = json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("%w: bad acknowledgement: %v", port.ErrProviderFailure, err)
	}
	return &port.ProviderReceipt{Reference: ack.Reference, Status: ack.Status}, nil
}

func (c *Client) InitiateCharge(ctx context.Context, req port.ChargeRequest) (*port.ProviderReceipt, error) {
	return c.post(ctx, "/v1/charges", map[string]any{
		"advertiser_id":      req.AdvertiserID,
		"amount_cents":       req.AmountCents.Cents(),
		"payment_method_ref": req.PaymentMethodRef,
		"idempotency_key":    req.IdempotencyKey,
	})
}

func (c *Client) InitiateRefund(ctx context.Context, req port.RefundRequest) (*port.ProviderReceipt, error) {
	return c.post(ctx, "/v1/refunds", map[string]any{
		"original_reference": req.OriginalProviderRef,
		"amount_cents":       req.AmountCents.Cents(),
		"idempotency_key":    req.IdempotencyKey,
	})
}

func (c *Client) SendPayout(ctx context.Context, req port.PayoutRequest) (*port.ProviderReceipt, error) {
	return c.post(ctx, "/v1/payouts", map[string]any{
		"promoter_id":     req.PromoterID,
		"amount_cents":    req.AmountCents.Cents(),
		"idempotency_key": req.IdempotencyKey,
	})
}
