package httpadapter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"
)

// settlementEvent is the provider's callback payload. Reference is the
// provider transaction id handed out when the charge or payout was
// initiated; callbacks are idempotent on it.
type settlementEvent struct {
	Reference string `json:"reference" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=succeeded failed"`
}

// verifyAndDecode checks the HMAC-SHA256 signature over the raw body
// against the X-Signature header, then decodes the event. A false
// return means the response was already written.
func (h *Handler) verifyAndDecode(w http.ResponseWriter, r *http.Request, ev *settlementEvent) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable body"})
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	got := r.Header.Get("X-Signature")
	if !hmac.Equal([]byte(want), []byte(got)) {
		h.logger.Warn("webhook signature mismatch", slog.String("path", r.URL.Path))
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid signature"})
		return false
	}
	if err = json.Unmarshal(body, ev); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	if err = h.validate.Struct(ev); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event"})
		return false
	}
	return true
}

// handleChargeWebhook applies a charge settlement callback.
func (h *Handler) handleChargeWebhook(w http.ResponseWriter, r *http.Request) {
	var ev settlementEvent
	if !h.verifyAndDecode(w, r, &ev) {
		return
	}
	if err := h.charges.SettleCharge(r.Context(), ev.Reference, ev.Status == "succeeded"); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handlePayoutWebhook applies a payout settlement callback.
func (h *Handler) handlePayoutWebhook(w http.ResponseWriter, r *http.Request) {
	var ev settlementEvent
	if !h.verifyAndDecode(w, r, &ev) {
		return
	}
	if err := h.payouts.SettlePayout(r.Context(), ev.Reference, ev.Status == "succeeded"); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
