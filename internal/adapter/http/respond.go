package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"log/slog"

	"promo-ledger/internal/core/port"
)

// errorResponse is the JSON error envelope. Details carries per-field
// validation failures when present.
type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decodeValid decodes the JSON body into dst and runs struct
// validation. A false return means the response was already written.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		resp := errorResponse{Error: "validation failed", Details: map[string]string{}}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				resp.Details[fe.Field()] = fmt.Sprintf("failed on the '%s' tag", fe.Tag())
			}
		}
		h.writeJSON(w, http.StatusBadRequest, resp)
		return false
	}
	return true
}

// writeError maps the ledger error taxonomy onto HTTP statuses. The
// structured variants (shortfall, retry hints) are written by the
// individual handlers before falling through to here.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, port.ErrWithdrawalLimit):
		status = http.StatusTooManyRequests
	case errors.Is(err, port.ErrOverspend),
		errors.Is(err, port.ErrStaleFeasibility),
		errors.Is(err, port.ErrInvalidStateTransition),
		errors.Is(err, port.ErrDuplicateAccount),
		errors.Is(err, port.ErrNothingToSettle):
		status = http.StatusConflict
	case errors.Is(err, port.ErrWalletNotFound),
		errors.Is(err, port.ErrAccountNotFound),
		errors.Is(err, port.ErrChargeNotFound),
		errors.Is(err, port.ErrPayoutNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrProviderTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, port.ErrProviderFailure):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// requireAdvertiser writes 401 and returns "" when the identity header
// is missing.
func (h *Handler) requireAdvertiser(w http.ResponseWriter, r *http.Request) string {
	id := advertiserID(r)
	if id == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing X-Advertiser-ID"})
	}
	return id
}
