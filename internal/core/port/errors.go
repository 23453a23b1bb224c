package port

import "errors"

// Sentinel errors shared by ports and adapters. Callers match them with
// errors.Is; adapters wrap them with context via fmt.Errorf("%w").
var (
	// ErrInsufficientFunds: a hold or withdrawal exceeds the available
	// balance. Recoverable by depositing more.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverspend: a spend exceeds a campaign's remaining hold. Never
	// silently clamped; indicates a caller bug or stale feasibility read.
	ErrOverspend = errors.New("spend exceeds remaining hold")

	// ErrStaleFeasibility: a feasibility verdict no longer held at commit
	// time because the balance changed concurrently. Retry-required, not
	// fatal.
	ErrStaleFeasibility = errors.New("feasibility check is stale, retry")

	// ErrInvalidStateTransition: an operation is not legal for the
	// account's current status (e.g. adjusting a COMPLETED campaign).
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrProviderTimeout / ErrProviderFailure: the external payment or
	// payout rail did not confirm. Triggers automatic compensation.
	ErrProviderTimeout = errors.New("payment provider timed out")
	ErrProviderFailure = errors.New("payment provider failure")

	// ErrWithdrawalLimit: the platform daily withdrawal cap was reached.
	ErrWithdrawalLimit = errors.New("daily withdrawal limit exceeded")

	// ErrNothingToSettle: a batched settlement found no accrued,
	// unsettled earnings to pay out.
	ErrNothingToSettle = errors.New("nothing to settle")

	ErrWalletNotFound   = errors.New("wallet not found")
	ErrAccountNotFound  = errors.New("budget account not found")
	ErrChargeNotFound   = errors.New("charge not found")
	ErrPayoutNotFound   = errors.New("payout not found")
	ErrDuplicateAccount = errors.New("budget account already exists")
)
