package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool.
// Every mutating method runs one serializable transaction and locks the
// advertiser's wallet row before touching anything else, which gives
// the per-advertiser single-writer boundary.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
}

func finish(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		_ = tx.Rollback(ctx)
	} else {
		*err = tx.Commit(ctx)
	}
}

const walletColumns = `advertiser_id, total_deposited, total_spent, total_held, total_withdrawn, pending_charges, status, created_at, updated_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(
		&w.AdvertiserID,
		&w.TotalDeposited,
		&w.TotalSpent,
		&w.TotalHeld,
		&w.TotalWithdrawn,
		&w.PendingCharges,
		&w.Status,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// lockWallet acquires the advertiser's row lock inside tx. All other
// reads and writes for this advertiser happen behind it.
func lockWallet(ctx context.Context, tx pgx.Tx, advertiserID string) (*domain.Wallet, error) {
	w, err := scanWallet(tx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE advertiser_id = $1 FOR UPDATE`, advertiserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrWalletNotFound
	}
	return w, err
}

func saveWallet(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	_, err := tx.Exec(ctx, `UPDATE wallets SET
            total_deposited = $2, total_spent = $3, total_held = $4,
            total_withdrawn = $5, pending_charges = $6, updated_at = now()
        WHERE advertiser_id = $1`,
		w.AdvertiserID, w.TotalDeposited, w.TotalSpent, w.TotalHeld, w.TotalWithdrawn, w.PendingCharges)
	return err
}

// EnsureWallet returns the wallet, creating an empty one on first use.
func (r *LedgerRepository) EnsureWallet(ctx context.Context, advertiserID string) (*domain.Wallet, error) {
	_, err := r.pool.Exec(ctx, `INSERT INTO wallets (advertiser_id, status, created_at, updated_at)
        VALUES ($1, 'active', now(), now()) ON CONFLICT (advertiser_id) DO NOTHING`, advertiserID)
	if err != nil {
		return nil, err
	}
	return r.GetWallet(ctx, advertiserID)
}

// GetWallet returns the wallet without locking.
func (r *LedgerRepository) GetWallet(ctx context.Context, advertiserID string) (*domain.Wallet, error) {
	w, err := scanWallet(r.pool.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE advertiser_id = $1`, advertiserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrWalletNotFound
	}
	return w, err
}

// Deposit credits settled funds, idempotent on chargeRef via the
// wallet_deposits dedup table.
func (r *LedgerRepository) Deposit(ctx context.Context, advertiserID string, amount domain.Money, chargeRef string) (w *domain.Wallet, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer finish(ctx, tx, &err)

	if w, err = lockWallet(ctx, tx, advertiserID); err != nil {
		return nil, err
	}
	tag, err := tx.Exec(ctx, `INSERT INTO wallet_deposits (charge_ref, advertiser_id, amount_cents, created_at)
        VALUES ($1, $2, $3, now()) ON CONFLICT (charge_ref) DO NOTHING`, chargeRef, advertiserID, amount)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// already deposited for this charge
		return w, nil
	}
	if w.TotalDeposited, err = w.TotalDeposited.Add(amount); err != nil {
		return nil, err
	}
	if err = saveWallet(ctx, tx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Hold moves amount from available balance into total_held.
func (r *LedgerRepository) Hold(ctx context.Context, advertiserID string, amount domain.Money) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return err
	}
	if !w.CanCover(amount) {
		return fmt.Errorf("%w: need %d, available %d", port.ErrInsufficientFunds, amount, w.CurrentBalance())
	}
	if w.TotalHeld, err = w.TotalHeld.Add(amount); err != nil {
		return err
	}
	return saveWallet(ctx, tx, w)
}

// ReleaseHold reverses a hold, clamped so retried compensations cannot
// drive total_held negative.
func (r *LedgerRepository) ReleaseHold(ctx context.Context, advertiserID string, amount domain.Money) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return err
	}
	w.TotalHeld = w.TotalHeld.SubClamped(amount)
	return saveWallet(ctx, tx, w)
}

// Withdraw debits available balance only; held funds are untouchable.
func (r *LedgerRepository) Withdraw(ctx context.Context, advertiserID string, amount domain.Money) (ticket *domain.WithdrawalTicket, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer finish(ctx, tx, &err)

	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return nil, err
	}
	if !w.CanCover(amount) {
		return nil, fmt.Errorf("%w: need %d, available %d", port.ErrInsufficientFunds, amount, w.CurrentBalance())
	}
	if w.TotalWithdrawn, err = w.TotalWithdrawn.Add(amount); err != nil {
		return nil, err
	}
	if err = saveWallet(ctx, tx, w); err != nil {
		return nil, err
	}
	ticket = &domain.WithdrawalTicket{
		ID:           uuid.NewString(),
		AdvertiserID: advertiserID,
		AmountCents:  amount,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = tx.Exec(ctx, `INSERT INTO withdrawals (id, advertiser_id, amount_cents, created_at)
        VALUES ($1, $2, $3, $4)`, ticket.ID, advertiserID, amount, ticket.CreatedAt)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// AdjustPendingCharges tracks in-flight top-up volume.
func (r *LedgerRepository) AdjustPendingCharges(ctx context.Context, advertiserID string, delta domain.Money) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return err
	}
	if delta >= 0 {
		if w.PendingCharges, err = w.PendingCharges.Add(delta); err != nil {
			return err
		}
	} else {
		w.PendingCharges = w.PendingCharges.SubClamped(-delta)
	}
	return saveWallet(ctx, tx, w)
}

// ApplyRefund debits TotalDeposited after a confirmed refund, dedup'd
// through wallet_deposits like Deposit.
func (r *LedgerRepository) ApplyRefund(ctx context.Context, advertiserID string, amount domain.Money, chargeRef string) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `INSERT INTO wallet_deposits (charge_ref, advertiser_id, amount_cents, created_at)
        VALUES ($1, $2, $3, now()) ON CONFLICT (charge_ref) DO NOTHING`, chargeRef, advertiserID, -amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}
	if !w.CanCover(amount) {
		return fmt.Errorf("%w: refund of %d, available %d", port.ErrInsufficientFunds, amount, w.CurrentBalance())
	}
	if w.TotalDeposited, err = w.TotalDeposited.Sub(amount); err != nil {
		return err
	}
	return saveWallet(ctx, tx, w)
}

const accountColumns = `campaign_id, advertiser_id, economic_model,
        allocated_budget, held_amount, spent_amount, verified_views,
        cpv_cents, max_views, price_cents, min_budget, max_budget, commission_per_sale_cents,
        status, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.BudgetAccount, error) {
	var a domain.BudgetAccount
	err := row.Scan(
		&a.CampaignID,
		&a.AdvertiserID,
		&a.EconomicModel,
		&a.AllocatedBudget,
		&a.HeldAmount,
		&a.SpentAmount,
		&a.VerifiedViews,
		&a.Terms.CPVCents,
		&a.Terms.MaxViews,
		&a.Terms.PriceCents,
		&a.Terms.MinBudget,
		&a.Terms.MaxBudget,
		&a.Terms.CommissionPerSaleCents,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// lockAccount takes the account row lock. Callers must already hold the
// owning advertiser's wallet lock to preserve lock ordering.
func lockAccount(ctx context.Context, tx pgx.Tx, campaignID string) (*domain.BudgetAccount, error) {
	a, err := scanAccount(tx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM budget_accounts WHERE campaign_id = $1 FOR UPDATE`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAccountNotFound
	}
	return a, err
}

func saveAccount(ctx context.Context, tx pgx.Tx, a *domain.BudgetAccount) error {
	_, err := tx.Exec(ctx, `UPDATE budget_accounts SET
            allocated_budget = $2, held_amount = $3, spent_amount = $4,
            verified_views = $5, status = $6, updated_at = now()
        WHERE campaign_id = $1`,
		a.CampaignID, a.AllocatedBudget, a.HeldAmount, a.SpentAmount, a.VerifiedViews, a.Status)
	return err
}

// accountAdvertiser resolves the owning advertiser so the wallet row
// can be locked first.
func (r *LedgerRepository) accountAdvertiser(ctx context.Context, tx pgx.Tx, campaignID string) (string, error) {
	var advertiserID string
	err := tx.QueryRow(ctx,
		`SELECT advertiser_id FROM budget_accounts WHERE campaign_id = $1`, campaignID).Scan(&advertiserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", port.ErrAccountNotFound
	}
	return advertiserID, err
}

// CreateBudgetAccount persists a freshly opened account.
func (r *LedgerRepository) CreateBudgetAccount(ctx context.Context, acct *domain.BudgetAccount) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO budget_accounts
        (campaign_id, advertiser_id, economic_model, allocated_budget, held_amount, spent_amount,
         verified_views, cpv_cents, max_views, price_cents, min_budget, max_budget,
         commission_per_sale_cents, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,now(),now())`,
		acct.CampaignID, acct.AdvertiserID, acct.EconomicModel,
		acct.AllocatedBudget, acct.HeldAmount, acct.SpentAmount, acct.VerifiedViews,
		acct.Terms.CPVCents, acct.Terms.MaxViews, acct.Terms.PriceCents,
		acct.Terms.MinBudget, acct.Terms.MaxBudget, acct.Terms.CommissionPerSaleCents,
		acct.Status)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return port.ErrDuplicateAccount
	}
	return err
}

// GetBudgetAccount returns the account without locking.
func (r *LedgerRepository) GetBudgetAccount(ctx context.Context, campaignID string) (*domain.BudgetAccount, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM budget_accounts WHERE campaign_id = $1`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAccountNotFound
	}
	return a, err
}

// IncreaseAccountHold grows the allocation and held amount by delta.
func (r *LedgerRepository) IncreaseAccountHold(ctx context.Context, campaignID string, delta domain.Money) (a *domain.BudgetAccount, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return nil, err
	}
	if _, err = lockWallet(ctx, tx, advertiserID); err != nil {
		return nil, err
	}
	if a, err = lockAccount(ctx, tx, campaignID); err != nil {
		return nil, err
	}
	if a.Status.Terminal() {
		return nil, fmt.Errorf("%w: increase hold on %s campaign", port.ErrInvalidStateTransition, a.Status)
	}
	if a.AllocatedBudget, err = a.AllocatedBudget.Add(delta); err != nil {
		return nil, err
	}
	if a.HeldAmount, err = a.HeldAmount.Add(delta); err != nil {
		return nil, err
	}
	if a.Status == domain.AccountExhausted && a.RemainingAmount().IsPositive() {
		a.Status = domain.AccountActive
	}
	if err = saveAccount(ctx, tx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DecreaseAccountHold shrinks the hold by at most delta, never below
// what is already spent, and returns the freed amount.
func (r *LedgerRepository) DecreaseAccountHold(ctx context.Context, campaignID string, delta domain.Money) (freed domain.Money, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return 0, err
	}
	if _, err = lockWallet(ctx, tx, advertiserID); err != nil {
		return 0, err
	}
	a, err := lockAccount(ctx, tx, campaignID)
	if err != nil {
		return 0, err
	}
	if a.Status.Terminal() {
		return 0, fmt.Errorf("%w: decrease hold on %s campaign", port.ErrInvalidStateTransition, a.Status)
	}
	// cannot shrink below spent
	maxFree := a.HeldAmount - a.SpentAmount
	freed = delta
	if freed > maxFree {
		freed = maxFree
	}
	a.HeldAmount -= freed
	a.AllocatedBudget -= freed
	if err = saveAccount(ctx, tx, a); err != nil {
		return 0, err
	}
	return freed, nil
}

// ApplySpend books amount on the campaign and moves the same amount
// from held to spent on the wallet, atomically.
func (r *LedgerRepository) ApplySpend(ctx context.Context, campaignID string, amount domain.Money, reason string) (a *domain.BudgetAccount, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return nil, err
	}
	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return nil, err
	}
	if a, err = lockAccount(ctx, tx, campaignID); err != nil {
		return nil, err
	}
	if !a.CanSpend() {
		return nil, fmt.Errorf("%w: spend on %s campaign (%s)", port.ErrInvalidStateTransition, a.Status, reason)
	}
	if a.SpentAmount+amount > a.HeldAmount {
		return nil, fmt.Errorf("%w: %s needs %d, remaining %d", port.ErrOverspend, reason, amount, a.RemainingAmount())
	}
	a.SpentAmount += amount
	if a.RemainingAmount().IsZero() {
		a.Status = domain.AccountExhausted
	}
	// wallet side: held -> spent
	if w.TotalHeld, err = w.TotalHeld.Sub(amount); err != nil {
		return nil, err
	}
	if w.TotalSpent, err = w.TotalSpent.Add(amount); err != nil {
		return nil, err
	}
	if err = saveWallet(ctx, tx, w); err != nil {
		return nil, err
	}
	if err = saveAccount(ctx, tx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ReverseSpend compensates a failed disbursement: spent goes back to
// held on both sides.
func (r *LedgerRepository) ReverseSpend(ctx context.Context, campaignID string, amount domain.Money) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return err
	}
	a, err := lockAccount(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if a.SpentAmount, err = a.SpentAmount.Sub(amount); err != nil {
		return err
	}
	if a.Status == domain.AccountExhausted && a.RemainingAmount().IsPositive() {
		a.Status = domain.AccountActive
	}
	if w.TotalSpent, err = w.TotalSpent.Sub(amount); err != nil {
		return err
	}
	if w.TotalHeld, err = w.TotalHeld.Add(amount); err != nil {
		return err
	}
	if err = saveWallet(ctx, tx, w); err != nil {
		return err
	}
	return saveAccount(ctx, tx, a)
}

// RecordVerifiedViews advances the view cursor monotonically, capped at
// the account's MaxViews, and books the spend the new views earn.
// Cursor and spend move in the same transaction, so two concurrent
// reports of the same tally book the delta exactly once: whichever
// commits second sees an already-advanced cursor and does nothing.
func (r *LedgerRepository) RecordVerifiedViews(ctx context.Context, campaignID string, totalViews int64) (a *domain.BudgetAccount, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return nil, err
	}
	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return nil, err
	}
	if a, err = lockAccount(ctx, tx, campaignID); err != nil {
		return nil, err
	}
	if totalViews > a.Terms.MaxViews {
		totalViews = a.Terms.MaxViews
	}
	if totalViews <= a.VerifiedViews {
		return a, nil
	}
	a.VerifiedViews = totalViews
	target, err := a.SpendForViews(a.VerifiedViews)
	if err != nil {
		return nil, err
	}
	if delta := target.SubClamped(a.SpentAmount); delta.IsPositive() {
		if !a.CanSpend() {
			return nil, fmt.Errorf("%w: view accrual on %s campaign", port.ErrInvalidStateTransition, a.Status)
		}
		if a.SpentAmount+delta > a.HeldAmount {
			return nil, fmt.Errorf("%w: view accrual needs %d, remaining %d", port.ErrOverspend, delta, a.RemainingAmount())
		}
		a.SpentAmount += delta
		if a.RemainingAmount().IsZero() {
			a.Status = domain.AccountExhausted
		}
		if w.TotalHeld, err = w.TotalHeld.Sub(delta); err != nil {
			return nil, err
		}
		if w.TotalSpent, err = w.TotalSpent.Add(delta); err != nil {
			return nil, err
		}
		if err = saveWallet(ctx, tx, w); err != nil {
			return nil, err
		}
	}
	if err = saveAccount(ctx, tx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SetAccountStatus applies pause/resume transitions.
func (r *LedgerRepository) SetAccountStatus(ctx context.Context, campaignID string, status domain.AccountStatus) (err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if _, err = lockWallet(ctx, tx, advertiserID); err != nil {
		return err
	}
	a, err := lockAccount(ctx, tx, campaignID)
	if err != nil {
		return err
	}
	if a.Status.Terminal() {
		return fmt.Errorf("%w: %s -> %s", port.ErrInvalidStateTransition, a.Status, status)
	}
	a.Status = status
	return saveAccount(ctx, tx, a)
}

// CloseBudgetAccount marks the account terminal and releases the
// unspent hold back to the wallet in the same transaction.
func (r *LedgerRepository) CloseBudgetAccount(ctx context.Context, campaignID string, outcome domain.AccountStatus) (released domain.Money, err error) {
	if !outcome.Terminal() {
		return 0, fmt.Errorf("%w: close with non-terminal outcome %s", port.ErrInvalidStateTransition, outcome)
	}
	tx, err := r.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer finish(ctx, tx, &err)

	advertiserID, err := r.accountAdvertiser(ctx, tx, campaignID)
	if err != nil {
		return 0, err
	}
	w, err := lockWallet(ctx, tx, advertiserID)
	if err != nil {
		return 0, err
	}
	a, err := lockAccount(ctx, tx, campaignID)
	if err != nil {
		return 0, err
	}
	if a.Status.Terminal() {
		return 0, fmt.Errorf("%w: close on already %s campaign", port.ErrInvalidStateTransition, a.Status)
	}
	released = a.HeldAmount - a.SpentAmount
	a.HeldAmount = a.SpentAmount
	a.Status = outcome
	w.TotalHeld = w.TotalHeld.SubClamped(released)
	if err = saveWallet(ctx, tx, w); err != nil {
		return 0, err
	}
	if err = saveAccount(ctx, tx, a); err != nil {
		return 0, err
	}
	return released, nil
}

const chargeColumns = `id, advertiser_id, kind, amount_cents, payment_method_ref,
        idempotency_key, COALESCE(provider_ref, ''), status, created_at, updated_at, settled_at`

func scanCharge(row pgx.Row) (*domain.AdvertiserCharge, error) {
	var c domain.AdvertiserCharge
	err := row.Scan(&c.ID, &c.AdvertiserID, &c.Kind, &c.AmountCents, &c.PaymentMethodRef,
		&c.IdempotencyKey, &c.ProviderRef, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.SettledAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCharge inserts the charge unless the idempotency key is already
// known, in which case the stored row is returned with created=false.
func (r *LedgerRepository) CreateCharge(ctx context.Context, charge *domain.AdvertiserCharge) (*domain.AdvertiserCharge, bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO advertiser_charges
        (id, advertiser_id, kind, amount_cents, payment_method_ref, idempotency_key, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT (idempotency_key) DO NOTHING`,
		charge.ID, charge.AdvertiserID, charge.Kind, charge.AmountCents,
		charge.PaymentMethodRef, charge.IdempotencyKey, charge.Status)
	if err != nil {
		return nil, false, err
	}
	stored, err := scanCharge(r.pool.QueryRow(ctx,
		`SELECT `+chargeColumns+` FROM advertiser_charges WHERE idempotency_key = $1`, charge.IdempotencyKey))
	if err != nil {
		return nil, false, err
	}
	return stored, tag.RowsAffected() == 1, nil
}

// GetCharge returns a charge by id.
func (r *LedgerRepository) GetCharge(ctx context.Context, chargeID string) (*domain.AdvertiserCharge, error) {
	c, err := scanCharge(r.pool.QueryRow(ctx,
		`SELECT `+chargeColumns+` FROM advertiser_charges WHERE id = $1`, chargeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrChargeNotFound
	}
	return c, err
}

// GetChargeByProviderRef resolves a settlement callback.
func (r *LedgerRepository) GetChargeByProviderRef(ctx context.Context, providerRef string) (*domain.AdvertiserCharge, error) {
	c, err := scanCharge(r.pool.QueryRow(ctx,
		`SELECT `+chargeColumns+` FROM advertiser_charges WHERE provider_ref = $1`, providerRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrChargeNotFound
	}
	return c, err
}

// UpdateChargeStatus advances a charge record.
func (r *LedgerRepository) UpdateChargeStatus(ctx context.Context, chargeID string, status domain.SettlementStatus, providerRef string) error {
	var settled *time.Time
	if status.Terminal() {
		now := time.Now().UTC()
		settled = &now
	}
	tag, err := r.pool.Exec(ctx, `UPDATE advertiser_charges SET
            status = $2, provider_ref = COALESCE(NULLIF($3, ''), provider_ref),
            settled_at = COALESCE($4, settled_at), updated_at = now()
        WHERE id = $1`, chargeID, status, providerRef, settled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrChargeNotFound
	}
	return nil
}

const payoutColumns = `id, campaign_id, advertiser_id, promoter_id, amount_cents, reason,
        idempotency_key, COALESCE(provider_ref, ''), status, created_at, updated_at, settled_at`

func scanPayout(row pgx.Row) (*domain.PayoutRecord, error) {
	var p domain.PayoutRecord
	err := row.Scan(&p.ID, &p.CampaignID, &p.AdvertiserID, &p.PromoterID, &p.AmountCents, &p.Reason,
		&p.IdempotencyKey, &p.ProviderRef, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.SettledAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayout inserts a PENDING payout row.
func (r *LedgerRepository) CreatePayout(ctx context.Context, payout *domain.PayoutRecord) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO payout_records
        (id, campaign_id, advertiser_id, promoter_id, amount_cents, reason, idempotency_key, status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())`,
		payout.ID, payout.CampaignID, payout.AdvertiserID, payout.PromoterID,
		payout.AmountCents, payout.Reason, payout.IdempotencyKey, payout.Status)
	return err
}

// GetPayout returns a payout by id.
func (r *LedgerRepository) GetPayout(ctx context.Context, payoutID string) (*domain.PayoutRecord, error) {
	p, err := scanPayout(r.pool.QueryRow(ctx,
		`SELECT `+payoutColumns+` FROM payout_records WHERE id = $1`, payoutID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrPayoutNotFound
	}
	return p, err
}

// GetPayoutByProviderRef resolves a settlement callback.
func (r *LedgerRepository) GetPayoutByProviderRef(ctx context.Context, providerRef string) (*domain.PayoutRecord, error) {
	p, err := scanPayout(r.pool.QueryRow(ctx,
		`SELECT `+payoutColumns+` FROM payout_records WHERE provider_ref = $1`, providerRef))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrPayoutNotFound
	}
	return p, err
}

// UpdatePayoutStatus advances a payout record. Only in-flight payouts
// move; a payout another callback already settled stays terminal and
// the update reports ErrPayoutNotFound instead of overwriting it.
func (r *LedgerRepository) UpdatePayoutStatus(ctx context.Context, payoutID string, status domain.SettlementStatus, providerRef string) error {
	var settled *time.Time
	if status.Terminal() {
		now := time.Now().UTC()
		settled = &now
	}
	tag, err := r.pool.Exec(ctx, `UPDATE payout_records SET
            status = $2, provider_ref = COALESCE(NULLIF($3, ''), provider_ref),
            settled_at = COALESCE($4, settled_at), updated_at = now()
        WHERE id = $1 AND status IN ('PENDING', 'PROCESSING')`, payoutID, status, providerRef, settled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrPayoutNotFound
	}
	return nil
}

// FailPayout marks an in-flight payout FAILED and, when reverseSpend is
// set, moves its amount back from spent to held on the account and the
// wallet, all in one transaction. The status guard makes the operation
// idempotent: a replayed failure callback or a stale-sweep pass over an
// already-terminal payout changes nothing and reports false.
func (r *LedgerRepository) FailPayout(ctx context.Context, payoutID string, reverseSpend bool) (failed bool, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return false, err
	}
	defer finish(ctx, tx, &err)

	p, err := scanPayout(tx.QueryRow(ctx,
		`SELECT `+payoutColumns+` FROM payout_records WHERE id = $1`, payoutID))
	if errors.Is(err, pgx.ErrNoRows) {
		return false, port.ErrPayoutNotFound
	}
	if err != nil {
		return false, err
	}
	w, err := lockWallet(ctx, tx, p.AdvertiserID)
	if err != nil {
		return false, err
	}
	a, err := lockAccount(ctx, tx, p.CampaignID)
	if err != nil {
		return false, err
	}
	tag, err := tx.Exec(ctx, `UPDATE payout_records SET
            status = $2, settled_at = now(), updated_at = now()
        WHERE id = $1 AND status IN ('PENDING', 'PROCESSING')`, payoutID, domain.SettlementFailed)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		// a concurrent callback settled it first
		return false, nil
	}
	if !reverseSpend {
		return true, nil
	}
	if a.SpentAmount, err = a.SpentAmount.Sub(p.AmountCents); err != nil {
		return false, err
	}
	if a.Status == domain.AccountExhausted && a.RemainingAmount().IsPositive() {
		a.Status = domain.AccountActive
	}
	if w.TotalSpent, err = w.TotalSpent.Sub(p.AmountCents); err != nil {
		return false, err
	}
	if w.TotalHeld, err = w.TotalHeld.Add(p.AmountCents); err != nil {
		return false, err
	}
	if err = saveWallet(ctx, tx, w); err != nil {
		return false, err
	}
	if err = saveAccount(ctx, tx, a); err != nil {
		return false, err
	}
	return true, nil
}

// SumSettledPayouts totals SUCCEEDED payouts for a campaign.
func (r *LedgerRepository) SumSettledPayouts(ctx context.Context, campaignID string) (domain.Money, error) {
	var total domain.Money
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(amount_cents), 0) FROM payout_records WHERE campaign_id = $1 AND status = 'SUCCEEDED'`,
		campaignID).Scan(&total)
	return total, err
}

// CreditPromoter accumulates settled earnings.
func (r *LedgerRepository) CreditPromoter(ctx context.Context, promoterID string, amount domain.Money) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO promoter_balances (promoter_id, total_earnings, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (promoter_id) DO UPDATE SET
            total_earnings = promoter_balances.total_earnings + EXCLUDED.total_earnings,
            updated_at = now()`, promoterID, amount)
	return err
}

// GetPromoterBalance returns the earnings projection. An unknown
// promoter has a zero balance rather than an error.
func (r *LedgerRepository) GetPromoterBalance(ctx context.Context, promoterID string) (*domain.PromoterBalance, error) {
	var b domain.PromoterBalance
	err := r.pool.QueryRow(ctx,
		`SELECT promoter_id, total_earnings, updated_at FROM promoter_balances WHERE promoter_id = $1`,
		promoterID).Scan(&b.PromoterID, &b.TotalEarnings, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.PromoterBalance{PromoterID: promoterID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListCharges pages the charge log, newest first.
func (r *LedgerRepository) ListCharges(ctx context.Context, advertiserID string, limit int) ([]domain.AdvertiserCharge, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+chargeColumns+` FROM advertiser_charges WHERE advertiser_id = $1 ORDER BY created_at DESC LIMIT $2`,
		advertiserID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdvertiserCharge, error) {
		c, err := scanCharge(row)
		if err != nil {
			return domain.AdvertiserCharge{}, err
		}
		return *c, nil
	})
}

// ListPayouts pages the payout log, newest first.
func (r *LedgerRepository) ListPayouts(ctx context.Context, advertiserID string, limit int) ([]domain.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payoutColumns+` FROM payout_records WHERE advertiser_id = $1 ORDER BY created_at DESC LIMIT $2`,
		advertiserID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PayoutRecord, error) {
		p, err := scanPayout(row)
		if err != nil {
			return domain.PayoutRecord{}, err
		}
		return *p, nil
	})
}

// ListStaleSettlements returns in-flight records older than the cutoff.
func (r *LedgerRepository) ListStaleSettlements(ctx context.Context, cutoff time.Time) ([]domain.AdvertiserCharge, []domain.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+chargeColumns+` FROM advertiser_charges WHERE status IN ('PENDING','PROCESSING') AND updated_at < $1`, cutoff)
	if err != nil {
		return nil, nil, err
	}
	charges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdvertiserCharge, error) {
		c, err := scanCharge(row)
		if err != nil {
			return domain.AdvertiserCharge{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, nil, err
	}
	rows, err = r.pool.Query(ctx,
		`SELECT `+payoutColumns+` FROM payout_records WHERE status IN ('PENDING','PROCESSING') AND updated_at < $1`, cutoff)
	if err != nil {
		return nil, nil, err
	}
	payouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PayoutRecord, error) {
		p, err := scanPayout(row)
		if err != nil {
			return domain.PayoutRecord{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return charges, payouts, nil
}
