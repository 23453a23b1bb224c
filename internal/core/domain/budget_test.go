package domain

import "testing"

func ppvAccount(cpv Money, maxViews int64) *BudgetAccount {
	return &BudgetAccount{
		CampaignID:      "c1",
		AdvertiserID:    "a1",
		EconomicModel:   PayPerView,
		Terms:           ModelTerms{CPVCents: cpv, MaxViews: maxViews},
		AllocatedBudget: 50_000,
		HeldAmount:      50_000,
		Status:          AccountActive,
	}
}

func TestSpendForViews(t *testing.T) {
	acct := ppvAccount(50, 100_000)

	// 40000 views at 50 cents per 100 views
	got, err := acct.SpendForViews(40_000)
	if err != nil || got != 20_000 {
		t.Fatalf("SpendForViews(40000) = %d, %v", got, err)
	}

	// views beyond the cap never increase spend
	capped, err := acct.SpendForViews(250_000)
	if err != nil {
		t.Fatalf("SpendForViews error: %v", err)
	}
	atCap, _ := acct.SpendForViews(100_000)
	if capped != atCap {
		t.Fatalf("spend past MaxViews: got %d, want %d", capped, atCap)
	}

	if got, err = acct.SpendForViews(-5); err != nil || got != 0 {
		t.Fatalf("negative views should accrue nothing, got %d, %v", got, err)
	}

	fixed := &BudgetAccount{EconomicModel: FixedPrice}
	if _, err = fixed.SpendForViews(10); err == nil {
		t.Fatal("expected error for non pay-per-view account")
	}
}

func TestValidateTerms(t *testing.T) {
	cases := []struct {
		name string
		acct BudgetAccount
		ok   bool
	}{
		{"ppv ok", BudgetAccount{EconomicModel: PayPerView, Terms: ModelTerms{CPVCents: 50, MaxViews: 1000}}, true},
		{"ppv no cap", BudgetAccount{EconomicModel: PayPerView, Terms: ModelTerms{CPVCents: 50}}, false},
		{"fixed ok", BudgetAccount{EconomicModel: FixedPrice, Terms: ModelTerms{PriceCents: 250_000}}, true},
		{"fixed zero price", BudgetAccount{EconomicModel: FixedPrice}, false},
		{"range ok", BudgetAccount{EconomicModel: BudgetRange, Terms: ModelTerms{MinBudget: 100, MaxBudget: 200}}, true},
		{"range inverted", BudgetAccount{EconomicModel: BudgetRange, Terms: ModelTerms{MinBudget: 300, MaxBudget: 200}}, false},
		{"commission ok", BudgetAccount{EconomicModel: CommissionPerSale, Terms: ModelTerms{CommissionPerSaleCents: 1500}}, true},
		{"unknown model", BudgetAccount{EconomicModel: "CPM"}, false},
	}
	for _, tc := range cases {
		err := tc.acct.ValidateTerms()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestExposureTopUp(t *testing.T) {
	acct := &BudgetAccount{
		EconomicModel: CommissionPerSale,
		Terms:         ModelTerms{CommissionPerSaleCents: 1_500},
		HeldAmount:    30_000,
		SpentAmount:   24_000, // 6000 remaining, floor is 5 * 1500 = 7500
	}
	if got := acct.ExposureTopUp(5); got != 1_500 {
		t.Fatalf("ExposureTopUp = %d, want 1500", got)
	}
	acct.SpentAmount = 10_000
	if got := acct.ExposureTopUp(5); got != 0 {
		t.Fatalf("no top-up expected above the floor, got %d", got)
	}
	if got := ppvAccount(50, 1000).ExposureTopUp(5); got != 0 {
		t.Fatalf("top-up only applies to commission campaigns, got %d", got)
	}
}

func TestAccountStatus(t *testing.T) {
	for _, s := range []AccountStatus{AccountActive, AccountExhausted, AccountPaused} {
		if s.Terminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
	for _, s := range []AccountStatus{AccountCompleted, AccountCancelled} {
		if !s.Terminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	acct := ppvAccount(50, 1000)
	if !acct.CanSpend() {
		t.Fatal("active account should accept spend")
	}
	acct.Status = AccountPaused
	if acct.CanSpend() {
		t.Fatal("paused account must reject spend")
	}
}
