package domain

import "time"

// WalletStatus describes the lifecycle of a wallet. Wallets are never
// deleted, only archived.
type WalletStatus string

const (
	WalletActive   WalletStatus = "active"
	WalletArchived WalletStatus = "archived"
)

// Wallet is the cash position of a single advertiser. All amounts are
// integer cents. Balances are mutated exclusively through repository
// operations executed inside the advertiser's serialization boundary;
// no other component touches the raw numbers.
type Wallet struct {
	AdvertiserID   string
	TotalDeposited Money
	TotalSpent     Money
	TotalHeld      Money
	TotalWithdrawn Money
	PendingCharges Money // in-flight top-ups not yet settled
	Status         WalletStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CurrentBalance is the amount available for new holds or withdrawals:
// deposited minus everything spent, held or withdrawn. The repository
// enforces that it never goes below zero.
func (w *Wallet) CurrentBalance() Money {
	return w.TotalDeposited - w.TotalSpent - w.TotalHeld - w.TotalWithdrawn
}

// CanCover reports whether a hold or withdrawal of amount can be
// satisfied by the current balance. Held funds are never counted.
func (w *Wallet) CanCover(amount Money) bool {
	return w.CurrentBalance() >= amount
}
