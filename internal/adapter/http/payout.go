package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promo-ledger/internal/adapter/usecase"
	"promo-ledger/internal/core/domain"
)

type payPromoterRequest struct {
	PromoterID  string `json:"promoterId" validate:"required"`
	AmountCents int64  `json:"amountCents" validate:"required,gt=0"`
	Reason      string `json:"reason"`
}

type accrueViewsRequest struct {
	TotalVerifiedViews int64 `json:"totalVerifiedViews" validate:"required,gt=0"`
}

type settleViewsRequest struct {
	PromoterID string `json:"promoterId" validate:"required"`
}

type recordSaleRequest struct {
	PromoterID string `json:"promoterId" validate:"required"`
	SaleRef    string `json:"saleRef" validate:"required"`
}

// handlePayPromoter disburses from the campaign's escrow to a promoter.
// Used for milestone and deliverable-approved payouts on fixed-price
// and budget-range campaigns.
func (h *Handler) handlePayPromoter(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req payPromoterRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	reason := req.Reason
	if reason == "" {
		reason = usecase.ReasonDeliverable
	}
	handle, err := h.payouts.Disburse(r.Context(), chi.URLParam(r, "campaignID"), req.PromoterID, domain.Money(req.AmountCents), reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, handle)
}

// handleAccrueViews advances a pay-per-view campaign's verified view
// tally; the view-verification pipeline posts cumulative counts here.
func (h *Handler) handleAccrueViews(w http.ResponseWriter, r *http.Request) {
	var req accrueViewsRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	acct, err := h.payouts.AccrueViews(r.Context(), chi.URLParam(r, "campaignID"), req.TotalVerifiedViews)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

// handleSettleViews pays out the accrued-but-unsettled view earnings.
func (h *Handler) handleSettleViews(w http.ResponseWriter, r *http.Request) {
	var req settleViewsRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	handle, err := h.payouts.SettleAccruedViews(r.Context(), chi.URLParam(r, "campaignID"), req.PromoterID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, handle)
}

// handleRecordSale books a verified sale's commission and pays it out.
func (h *Handler) handleRecordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.payouts.RecordSale(r.Context(), chi.URLParam(r, "campaignID"), req.PromoterID, req.SaleRef)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, result)
}

// handlePromoterBalance returns a promoter's accumulated earnings.
func (h *Handler) handlePromoterBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.payouts.PromoterBalance(r.Context(), chi.URLParam(r, "promoterID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balance)
}
