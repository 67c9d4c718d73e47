package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kasozi/homefind/internal/auth"
	"github.com/kasozi/homefind/internal/payment"
)

// PaymentsHandler verifies payments and issues signed viewing passes.
type PaymentsHandler struct {
	Verifier  payment.Verifier
	JWTSecret string

	// now is swappable for tests.
	now func() time.Time
}

func (h *PaymentsHandler) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

type verifyPaymentRequest struct {
	TransactionID string `json:"transaction_id"`
}

type verifyPaymentResponse struct {
	AccessType string    `json:"access_type"`
	ExpiresAt  time.Time `json:"expires_at"`
	Pass       string    `json:"pass"`
}

// Verify handles POST /api/verify-payment. The transaction reference is
// confirmed with the payment provider and the confirmed amount decides
// the tier; nothing the client sends beyond the reference is trusted.
func (h *PaymentsHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TransactionID == "" {
		jsonError(w, http.StatusBadRequest, "transaction_id required")
		return
	}

	v, err := h.Verifier.Verify(r.Context(), req.TransactionID)
	switch {
	case errors.Is(err, payment.ErrAmountMismatch):
		slog.Warn("payment amount mismatch", "transaction", req.TransactionID)
		jsonError(w, http.StatusBadRequest, "payment amount does not match a viewing package")
		return
	case errors.Is(err, payment.ErrVerificationFailed):
		slog.Warn("payment verification failed", "transaction", req.TransactionID, "error", err)
		jsonError(w, http.StatusBadGateway, "payment could not be verified")
		return
	case err != nil:
		slog.Error("payment verification error", "transaction", req.TransactionID, "error", err)
		jsonError(w, http.StatusInternalServerError, "payment could not be verified")
		return
	}

	expiresAt := h.clock().Add(v.Tier.Duration())
	pass, err := auth.GeneratePass(h.JWTSecret, string(v.Tier), expiresAt)
	if err != nil {
		slog.Error("failed to generate viewing pass", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to issue viewing pass")
		return
	}

	slog.Info("viewing pass issued", "tier", v.Tier, "amount", v.Amount, "expires", expiresAt)
	jsonResponse(w, http.StatusOK, verifyPaymentResponse{
		AccessType: string(v.Tier),
		ExpiresAt:  expiresAt,
		Pass:       pass,
	})
}
