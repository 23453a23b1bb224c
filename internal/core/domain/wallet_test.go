package domain

import "testing"

func TestWalletCurrentBalance(t *testing.T) {
	w := Wallet{
		TotalDeposited: 100_000,
		TotalSpent:     30_000,
		TotalHeld:      20_000,
		TotalWithdrawn: 10_000,
	}
	if got := w.CurrentBalance(); got != 40_000 {
		t.Fatalf("CurrentBalance = %d, want 40000", got)
	}
	// conservation: deposited == spent + held + withdrawn + balance
	total := w.TotalSpent + w.TotalHeld + w.TotalWithdrawn + w.CurrentBalance()
	if total != w.TotalDeposited {
		t.Fatalf("conservation broken: %d != %d", total, w.TotalDeposited)
	}
}

func TestWalletCanCoverIgnoresHeldFunds(t *testing.T) {
	w := Wallet{TotalDeposited: 50_000, TotalHeld: 45_000}
	if !w.CanCover(5_000) {
		t.Fatal("5000 should be coverable")
	}
	if w.CanCover(5_001) {
		t.Fatal("held funds must not count as available")
	}
}
