package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promo-ledger/internal/core/domain"
	"promo-ledger/internal/core/port"
)

type openAccountRequest struct {
	CampaignID    string `json:"campaignId" validate:"required"`
	EconomicModel string `json:"economicModel" validate:"required"`
	RequestedHold int64  `json:"requestedHoldCents" validate:"required,gt=0"`

	CPVCents               int64 `json:"cpvCents,omitempty"`
	MaxViews               int64 `json:"maxViews,omitempty"`
	PriceCents             int64 `json:"priceCents,omitempty"`
	MinBudgetCents         int64 `json:"minBudgetCents,omitempty"`
	MaxBudgetCents         int64 `json:"maxBudgetCents,omitempty"`
	CommissionPerSaleCents int64 `json:"commissionPerSaleCents,omitempty"`
}

type adjustBudgetRequest struct {
	AdditionalBudgetCents int64 `json:"additionalBudgetCents" validate:"required"`
}

type closeRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=COMPLETED CANCELLED"`
}

// handleOpenAccount opens escrow for a newly created campaign: a
// successful wallet hold backs the account from the first cent.
func (h *Handler) handleOpenAccount(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req openAccountRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	model := domain.EconomicModel(req.EconomicModel)
	if !model.Valid() {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown economic model"})
		return
	}
	acct, err := h.budgets.OpenAccount(r.Context(), port.OpenAccountRequest{
		CampaignID:    req.CampaignID,
		AdvertiserID:  adv,
		EconomicModel: model,
		RequestedHold: domain.Money(req.RequestedHold),
		Terms: domain.ModelTerms{
			CPVCents:               domain.Money(req.CPVCents),
			MaxViews:               req.MaxViews,
			PriceCents:             domain.Money(req.PriceCents),
			MinBudget:              domain.Money(req.MinBudgetCents),
			MaxBudget:              domain.Money(req.MaxBudgetCents),
			CommissionPerSaleCents: domain.Money(req.CommissionPerSaleCents),
		},
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, acct)
}

// handleGetAccount returns the campaign's budget account projection.
func (h *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := h.budgets.Account(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, acct)
}

// handleAdjustBudget grows or shrinks a running campaign's hold. An
// infeasible increase comes back 200 with requiresAdditionalFunding and
// the amount needed, enabling the guided top-up flow.
func (h *Handler) handleAdjustBudget(w http.ResponseWriter, r *http.Request) {
	adv := h.requireAdvertiser(w, r)
	if adv == "" {
		return
	}
	var req adjustBudgetRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.budgets.AdjustBudget(r.Context(), adv, chi.URLParam(r, "campaignID"), domain.Money(req.AdditionalBudgetCents))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.Pause(r.Context(), chi.URLParam(r, "campaignID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.Resume(r.Context(), chi.URLParam(r, "campaignID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClose marks the campaign COMPLETED or CANCELLED and releases
// the unspent hold back to the wallet.
func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	var req closeRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.budgets.Close(r.Context(), chi.URLParam(r, "campaignID"), domain.AccountStatus(req.Outcome))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
