package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/emidobak1/happy-snail/internal/checkout"
	"github.com/emidobak1/happy-snail/internal/domain"
	"github.com/emidobak1/happy-snail/internal/pricing"
)

// CheckoutService is the slice of the checkout workflow the handler commands.
type CheckoutService interface {
	State(ctx context.Context, sessionID string) (*checkout.Session, *domain.Cart, pricing.Totals, error)
	UpdateDraft(ctx context.Context, sessionID string, draft domain.OrderDraft) (*checkout.Session, error)
	Advance(ctx context.Context, sessionID string) (*checkout.Session, error)
	Back(ctx context.Context, sessionID string) (*checkout.Session, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*checkout.Session, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*checkout.Session, error)
	Submit(ctx context.Context, sessionID string) (*checkout.Session, error)
	AvailableDates() []time.Time
}

type CheckoutHandler struct {
	service CheckoutService
	timeout time.Duration
}

func NewCheckoutHandler(service CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		timeout: timeout,
	}
}

type CheckoutStateDTO struct {
	Session *checkout.Session `json:"session"`
	Cart    *domain.Cart      `json:"cart"`
	Totals  pricing.Totals    `json:"totals"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type DateDTO struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	session, cart, totals, err := h.service.State(ctx, sessionID)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CheckoutStateDTO{Session: session.Redacted(), Cart: cart, Totals: totals})
}

func (h *CheckoutHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	var draft domain.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	session, err := h.service.UpdateDraft(ctx, sessionID, draft)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session.Redacted())
}

func (h *CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Advance)
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Back)
}

func (h *CheckoutHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (*checkout.Session, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	session, err := fn(ctx, sessionID)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session.Redacted())
}

func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "code is required")
		return
	}

	session, err := h.service.ApplyCoupon(ctx, sessionID, req.Code)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session.Redacted())
}

func (h *CheckoutHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.RemoveCoupon)
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	session, err := h.service.Submit(ctx, sessionID)
	if err != nil {
		handleCoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session.Redacted())
}

// GetDates lists the selectable delivery/pickup dates. Labels use the same
// short format the storefront renders ("Wed, Sep 2").
func (h *CheckoutHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session identity")
		return
	}

	dates := h.service.AvailableDates()
	out := make([]DateDTO, 0, len(dates))
	for _, d := range dates {
		out = append(out, DateDTO{
			Date:  d.Format("2006-01-02"),
			Label: d.Format("Mon, Jan 2"),
		})
	}

	respondJSON(w, http.StatusOK, out)
}
