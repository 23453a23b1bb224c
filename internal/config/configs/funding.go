package configs

import "promo-ledger/internal/core/domain"

// Funding tunes the feasibility evaluator and the commission exposure
// check. The recommended deposit for a shortfall S is
// S + BufferCents + S*FeeBasisPoints/10000 + FeeFixedCents, mirroring
// what the payment provider will skim off a top-up.
type Funding struct {
	// BufferCents is added on top of any shortfall so the advertiser is
	// not immediately short again after small spends.
	BufferCents int64 `env:"BUFFER_CENTS" envDefault:"1000"`
	// FeeBasisPoints estimates the provider's proportional fee (290 =
	// 2.9%).
	FeeBasisPoints int64 `env:"FEE_BASIS_POINTS" envDefault:"290"`
	// FeeFixedCents estimates the provider's fixed per-charge fee.
	FeeFixedCents int64 `env:"FEE_FIXED_CENTS" envDefault:"30"`
	// ExposureThreshold is the number of upcoming commissions a
	// commission-per-sale campaign should keep covered by its hold
	// before a top-up is suggested.
	ExposureThreshold int64 `env:"EXPOSURE_THRESHOLD" envDefault:"5"`
}

// FeeEstimate returns the estimated provider fee for charging amount.
func (c Funding) FeeEstimate(amount domain.Money) domain.Money {
	if !amount.IsPositive() {
		return 0
	}
	return domain.Money(int64(amount)*c.FeeBasisPoints/10000 + c.FeeFixedCents)
}
