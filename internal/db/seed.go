package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the promo-ledger database: a funded
// advertiser wallet with one campaign per economic model, plus a
// settled top-up charge so the balances replay from the audit trail.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	const advertiser = "adv-demo-1"
	const deposited = int64(10_000_000) // 100,000.00 demo units

	_, err := db.Exec(ctx, `INSERT INTO wallets
        (advertiser_id, total_deposited, total_spent, total_held, total_withdrawn, pending_charges, status, created_at, updated_at)
        VALUES ($1, $2, 0, 0, 0, 0, 'active', now(), now()) ON CONFLICT DO NOTHING`,
		advertiser, deposited)
	if err != nil {
		return err
	}

	chargeID := uuid.NewString()
	_, err = db.Exec(ctx, `INSERT INTO advertiser_charges
        (id, advertiser_id, kind, amount_cents, payment_method_ref, idempotency_key, provider_ref, status, created_at, updated_at, settled_at)
        VALUES ($1, $2, 'CHARGE', $3, 'pm-demo', $4, $5, 'SUCCEEDED', now(), now(), now()) ON CONFLICT DO NOTHING`,
		chargeID, advertiser, deposited, "seed:"+advertiser, "prov_seed_"+chargeID)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO wallet_deposits (charge_ref, advertiser_id, amount_cents, created_at)
        VALUES ($1, $2, $3, now()) ON CONFLICT DO NOTHING`, chargeID, advertiser, deposited)
	if err != nil {
		return err
	}

	campaigns := []struct {
		id         string
		model      string
		hold       int64
		cpv        int64
		maxViews   int64
		price      int64
		minBudget  int64
		maxBudget  int64
		commission int64
	}{
		{id: "cmp-ppv-1", model: "PAY_PER_VIEW", hold: 50_000, cpv: 50, maxViews: 100_000},
		{id: "cmp-fixed-1", model: "FIXED_PRICE", hold: 250_000, price: 250_000},
		{id: "cmp-range-1", model: "BUDGET_RANGE", hold: 100_000, minBudget: 50_000, maxBudget: 200_000},
		{id: "cmp-sale-1", model: "COMMISSION_PER_SALE", hold: 30_000, commission: 1_500},
	}
	var totalHeld int64
	for _, c := range campaigns {
		_, err = db.Exec(ctx, `INSERT INTO budget_accounts
            (campaign_id, advertiser_id, economic_model, allocated_budget, held_amount, spent_amount,
             verified_views, cpv_cents, max_views, price_cents, min_budget, max_budget,
             commission_per_sale_cents, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $4, 0, 0, $5, $6, $7, $8, $9, $10, 'ACTIVE', now(), now())
            ON CONFLICT DO NOTHING`,
			c.id, advertiser, c.model, c.hold, c.cpv, c.maxViews, c.price, c.minBudget, c.maxBudget, c.commission)
		if err != nil {
			return err
		}
		totalHeld += c.hold
	}
	_, err = db.Exec(ctx, `UPDATE wallets SET total_held = $2, updated_at = now()
        WHERE advertiser_id = $1 AND total_held = 0`, advertiser, totalHeld)
	return err
}
