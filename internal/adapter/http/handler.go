package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"

	"promo-ledger/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the wallet, budget
// and payout operations to the dashboard layer and the settlement
// webhooks to the payment provider. Amounts cross the wire as integer
// cents only.
type Handler struct {
	wallets       port.WalletUseCase
	charges       port.ChargeUseCase
	budgets       port.BudgetUseCase
	payouts       port.PayoutUseCase
	webhookSecret string
	validate      *validator.Validate
	logger        *slog.Logger
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	wallets port.WalletUseCase,
	charges port.ChargeUseCase,
	budgets port.BudgetUseCase,
	payouts port.PayoutUseCase,
	webhookSecret string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		wallets:       wallets,
		charges:       charges,
		budgets:       budgets,
		payouts:       payouts,
		webhookSecret: webhookSecret,
		validate:      validator.New(),
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/wallet", func(r chi.Router) {
			r.Get("/balance", h.handleWalletBalance)
			r.Get("/transactions", h.handleWalletTransactions)
			r.Post("/add-funds", h.handleAddFunds)
			r.Post("/withdraw", h.handleWithdraw)
			r.Post("/refund", h.handleRefund)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleOpenAccount)
			r.Post("/funding-feasibility", h.handleFeasibility)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/budget", h.handleGetAccount)
				r.Put("/budget", h.handleAdjustBudget)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/close", h.handleClose)
				r.Post("/pay-promoter", h.handlePayPromoter)
				r.Post("/views", h.handleAccrueViews)
				r.Post("/views/settle", h.handleSettleViews)
				r.Post("/sales", h.handleRecordSale)
			})
		})
		r.Get("/promoters/{promoterID}/balance", h.handlePromoterBalance)
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/charges", h.handleChargeWebhook)
			r.Post("/payouts", h.handlePayoutWebhook)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// advertiserID extracts the authenticated advertiser from the request.
// Authentication itself is an upstream concern; the gateway injects the
// identity header.
func advertiserID(r *http.Request) string {
	return r.Header.Get("X-Advertiser-ID")
}
