package httpadapter

import (
	"net/http"
	"strconv"

	"promo-ledger/internal/core/domain"
)

type addFundsRequest struct {
	AmountCents     int64  `json:"amountCents" validate:"required,gt=0"`
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
	IdempotencyKey  string `json:"idempotencyKey"`
}

type withdrawRequest struct {
	AmountCents int64 `json:"amountCents" validate:"required,gt=0"`
}

type refundRequest struct {
	ChargeID       string `json:"chargeId" validate:"required"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type feasibilityRequest struct {
	EstimatedBudgetCents int64 `json:"estimatedBudgetCents" validate:"required,gt=0"`
}

// handleWalletBalance returns the advertiser's wallet projection.
func (h *Handler) handleWalletBalance(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	summary, err := h.wallets.Balance(r.Context(), adv)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// handleWalletTransactions pages the advertiser's audit trail. The
// optional `limit` query parameter caps the page size.
func (h *Handler) handleWalletTransactions(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}
	history, err := h.wallets.Transactions(r.Context(), adv, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, history)
}

// handleAddFunds starts a top-up charge through the payment provider.
// The handle comes back immediately; the deposit lands when the
// provider's settlement webhook confirms.
func (h *Handler) handleAddFunds(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req addFundsRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	handle, err := h.charges.RequestCharge(r.Context(), adv, domain.Money(req.AmountCents), req.PaymentMethodID, req.IdempotencyKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, handle)
}

// handleWithdraw debits available balance, subject to the daily limit.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req withdrawRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	ticket, err := h.wallets.Withdraw(r.Context(), adv, domain.Money(req.AmountCents))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ticket)
}

// handleRefund starts the refund mirror path for a settled top-up.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req refundRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	handle, err := h.charges.RequestRefund(r.Context(), adv, req.ChargeID, req.IdempotencyKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, handle)
}

// handleFeasibility answers whether the advertiser can afford a
// prospective budget right now, with a structured shortfall when not.
func (h *Handler) handleFeasibility(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req feasibilityRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	feas, err := h.wallets.CheckFeasibility(r.Context(), adv, domain.Money(req.EstimatedBudgetCents))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, feas)
}
