package domain

import (
	"fmt"
	"time"
)

// EconomicModel selects how a campaign's budget is spent. The four
// models share the common BudgetAccount record; model-specific pricing
// fields are only meaningful for the matching tag.
type EconomicModel string

const (
	PayPerView        EconomicModel = "PAY_PER_VIEW"
	FixedPrice        EconomicModel = "FIXED_PRICE"
	BudgetRange       EconomicModel = "BUDGET_RANGE"
	CommissionPerSale EconomicModel = "COMMISSION_PER_SALE"
)

// Valid reports whether m is one of the four known models.
func (m EconomicModel) Valid() bool {
	switch m {
	case PayPerView, FixedPrice, BudgetRange, CommissionPerSale:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a budget account.
// ACTIVE -> {EXHAUSTED, PAUSED, COMPLETED, CANCELLED}; PAUSED rejects
// new spend but allows hold increases and closing; COMPLETED and
// CANCELLED are absorbing.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountExhausted AccountStatus = "EXHAUSTED"
	AccountPaused    AccountStatus = "PAUSED"
	AccountCompleted AccountStatus = "COMPLETED"
	AccountCancelled AccountStatus = "CANCELLED"
)

// Terminal reports whether the status is absorbing.
func (s AccountStatus) Terminal() bool {
	return s == AccountCompleted || s == AccountCancelled
}

// ModelTerms carries the pricing fields for each economic model. Only
// the fields matching the account's EconomicModel tag are populated.
type ModelTerms struct {
	// PAY_PER_VIEW: price per 100 verified views and the view cap.
	CPVCents Money
	MaxViews int64
	// FIXED_PRICE: single all-or-nothing price.
	PriceCents Money
	// BUDGET_RANGE: staged spending bounded by MaxBudget.
	MinBudget Money
	MaxBudget Money
	// COMMISSION_PER_SALE: booked per verified sale.
	CommissionPerSaleCents Money
}

// BudgetAccount is the per-campaign hold lifecycle: funds reserved from
// the advertiser's wallet (HeldAmount), the portion already paid out to
// promoters (SpentAmount), and the committed maximum (AllocatedBudget).
// Invariant: 0 <= SpentAmount <= HeldAmount <= AllocatedBudget.
type BudgetAccount struct {
	CampaignID    string
	AdvertiserID  string
	EconomicModel EconomicModel
	Terms         ModelTerms

	AllocatedBudget Money
	HeldAmount      Money
	SpentAmount     Money
	VerifiedViews   int64 // PAY_PER_VIEW accrual cursor

	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingAmount is the escrow still available for payouts.
func (a *BudgetAccount) RemainingAmount() Money {
	return a.HeldAmount - a.SpentAmount
}

// CanSpend reports whether the account accepts new spend in its current
// state. PAUSED and terminal accounts reject spend.
func (a *BudgetAccount) CanSpend() bool {
	return a.Status == AccountActive
}

// ValidateTerms checks that the pricing fields required by the model
// tag are present and coherent.
func (a *BudgetAccount) ValidateTerms() error {
	switch a.EconomicModel {
	case PayPerView:
		if !a.Terms.CPVCents.IsPositive() || a.Terms.MaxViews <= 0 {
			return fmt.Errorf("pay-per-view terms require positive cpv and max views")
		}
	case FixedPrice:
		if !a.Terms.PriceCents.IsPositive() {
			return fmt.Errorf("fixed-price terms require a positive price")
		}
	case BudgetRange:
		if !a.Terms.MaxBudget.IsPositive() || a.Terms.MinBudget > a.Terms.MaxBudget {
			return fmt.Errorf("budget-range terms require 0 <= min <= max")
		}
	case CommissionPerSale:
		if !a.Terms.CommissionPerSaleCents.IsPositive() {
			return fmt.Errorf("commission terms require a positive commission")
		}
	default:
		return fmt.Errorf("unknown economic model %q", a.EconomicModel)
	}
	return nil
}

// SpendForViews returns the total spend a PAY_PER_VIEW campaign should
// have accrued for the given cumulative verified view count. CPV is
// priced per 100 views; views beyond MaxViews never increase spend.
func (a *BudgetAccount) SpendForViews(totalViews int64) (Money, error) {
	if a.EconomicModel != PayPerView {
		return 0, fmt.Errorf("spend-for-views on %s campaign", a.EconomicModel)
	}
	if totalViews < 0 {
		totalViews = 0
	}
	if totalViews > a.Terms.MaxViews {
		totalViews = a.Terms.MaxViews
	}
	return a.Terms.CPVCents.MulDiv(totalViews, 100)
}

// ExposureTopUp returns the suggested hold increase for a
// COMMISSION_PER_SALE campaign once remaining escrow drops below
// threshold upcoming commissions. Zero means no top-up is needed.
// Commission campaigns have no hard exposure ceiling; this soft check
// keeps the hold ahead of the sale rate.
func (a *BudgetAccount) ExposureTopUp(threshold int64) Money {
	if a.EconomicModel != CommissionPerSale || threshold <= 0 {
		return 0
	}
	floor := Money(int64(a.Terms.CommissionPerSaleCents) * threshold)
	if a.RemainingAmount() >= floor {
		return 0
	}
	return floor - a.RemainingAmount()
}
