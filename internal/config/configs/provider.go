package configs

import "time"

// Provider configures the external payment/payout processor client and
// the webhook endpoints that receive its settlement callbacks.
type Provider struct {
	// BaseURL of the provider API. Empty selects the stub provider,
	// which acknowledges everything immediately.
	BaseURL string `env:"BASE_URL"`
	// APIKey authenticates outbound requests.
	APIKey string `env:"API_KEY"`
	// WebhookSecret signs settlement callbacks (HMAC-SHA256 over the
	// raw body).
	WebhookSecret string `env:"WEBHOOK_SECRET" envDefault:"dev-secret"`
	// RequestTimeout bounds a single provider HTTP call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	// SettlementWindow is how long a charge or payout may sit in
	// PROCESSING before the reconciliation sweep fails and compensates it.
	SettlementWindow time.Duration `env:"SETTLEMENT_WINDOW" envDefault:"30m"`
}
