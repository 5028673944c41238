package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/emidobak1/happy-snail/internal/catalog"
	"github.com/emidobak1/happy-snail/internal/checkout"
	"github.com/emidobak1/happy-snail/internal/payment"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleCoreError maps errors from the core services to HTTP responses.
// Guard failures carry the offending field in details so the client can
// highlight it.
func handleCoreError(w http.ResponseWriter, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   verr.Message,
			Code:    "validation_failed",
			Details: verr.Field,
		})
		return
	}

	var gwErr *payment.GatewayError
	if errors.As(err, &gwErr) {
		respondError(w, http.StatusPaymentRequired, "payment_failed", gwErr.Reason)
		return
	}

	switch {
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
