package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/emidobak1/happy-snail/internal/domain"
	"github.com/emidobak1/happy-snail/internal/payment"
	"github.com/emidobak1/happy-snail/internal/pricing"
)

// PickupLocation is echoed on pickup confirmations.
const PickupLocation = "34 Wolfrey Avenue, Toronto, ON M4K 1K8"

// Session is one customer's checkout: current wizard step, the draft order
// form, and the coupon state. The presentation layer reads and commands it
// through Service; it never owns this state.
type Session struct {
	ID            string              `json:"id"`
	Step          domain.CheckoutStep `json:"step"`
	Draft         domain.OrderDraft   `json:"draft"`
	CouponCode    string              `json:"coupon_code"`
	CouponApplied bool                `json:"coupon_applied"`
	Discount      domain.Cents        `json:"discount_cents"`
	Confirmation  *OrderConfirmation  `json:"confirmation,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderConfirmation is the display-only acknowledgement of a submitted
// order. No order record is stored server side.
type OrderConfirmation struct {
	OrderNumber    string                `json:"order_number"`
	PaymentID      string                `json:"payment_id"`
	Email          string                `json:"email"`
	DeliveryMethod domain.DeliveryMethod `json:"delivery_method"`
	DeliveryDate   string                `json:"delivery_date"`
	Address        string                `json:"address"`
	Totals         pricing.Totals        `json:"totals"`
	PlacedAt       time.Time             `json:"placed_at"`
}

// clone returns a deep copy. The store hands out and keeps copies so no
// two handlers ever mutate the same Session.
func (s *Session) clone() *Session {
	cp := *s
	if s.Confirmation != nil {
		conf := *s.Confirmation
		cp.Confirmation = &conf
	}
	return &cp
}

// Redacted returns a copy safe to serialize to clients: the draft's card
// number and CVV never leave the server.
func (s *Session) Redacted() *Session {
	cp := s.clone()
	cp.Draft.CardNumber = ""
	cp.Draft.CVV = ""
	return cp
}

// CartAccess is the slice of the cart service the workflow needs.
type CartAccess interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// Service drives the five-step checkout wizard. All guard failures return
// *ValidationError and leave the session unchanged.
type Service struct {
	sessions SessionStore
	carts    CartAccess
	gateway  payment.Gateway
	now      func() time.Time
}

func NewService(sessions SessionStore, carts CartAccess, gateway payment.Gateway) *Service {
	return &Service{
		sessions: sessions,
		carts:    carts,
		gateway:  gateway,
		now:      time.Now,
	}
}

// State returns the session (creating one at the Cart step if none exists)
// together with the cart and the current totals.
func (s *Service) State(ctx context.Context, sessionID string) (*Session, *domain.Cart, pricing.Totals, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, nil, pricing.Totals{}, err
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, nil, pricing.Totals{}, err
	}

	totals := pricing.ComputeTotals(cart, session.Draft.DeliveryMethod, session.Discount)
	return session, cart, totals, nil
}

// UpdateDraft replaces the draft order form. Nothing is validated here;
// fields are checked only when the step containing them is submitted.
func (s *Service) UpdateDraft(_ context.Context, sessionID string, draft domain.OrderDraft) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	if draft.DeliveryMethod == "" {
		draft.DeliveryMethod = domain.DeliveryMethodDelivery
	}
	session.Draft = draft
	return session, s.save(session)
}

// Advance moves the wizard one step forward after the current step's guard
// passes. Payment -> Confirmation is not reachable here; that transition
// only happens through Submit.
func (s *Service) Advance(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case domain.StepCart:
		cart, err := s.carts.GetCart(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if cart.IsEmpty() {
			return nil, &ValidationError{Field: "cart", Message: "your cart is empty; please add items before checkout"}
		}
	case domain.StepCustomerInfo:
		if verr := validateCustomerInfo(&session.Draft); verr != nil {
			return nil, verr
		}
	case domain.StepShipping:
		if verr := validateShipping(&session.Draft); verr != nil {
			return nil, verr
		}
	default:
		return nil, ErrIllegalTransition
	}

	session.Step++
	return session, s.save(session)
}

// Back moves the wizard one step back. There is no back transition from
// the Cart or Confirmation steps.
func (s *Service) Back(_ context.Context, sessionID string) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Step.CanGoBack() {
		return nil, ErrIllegalTransition
	}

	session.Step--
	return session, s.save(session)
}

// ApplyCoupon resolves the code against the rule table. The discount is a
// snapshot of the subtotal at apply time; later cart edits do not recompute
// it. An unknown code clears any applied discount and reports a validation
// failure.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	discount, err := pricing.ApplyCoupon(code, cart.Subtotal())
	if err != nil {
		session.CouponCode = ""
		session.CouponApplied = false
		session.Discount = 0
		if saveErr := s.save(session); saveErr != nil {
			return nil, saveErr
		}
		return nil, &ValidationError{Field: "coupon", Message: "invalid coupon code"}
	}

	session.CouponCode = code
	session.CouponApplied = true
	session.Discount = discount
	return session, s.save(session)
}

// RemoveCoupon clears code, applied flag, and discount unconditionally.
func (s *Service) RemoveCoupon(_ context.Context, sessionID string) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	session.CouponCode = ""
	session.CouponApplied = false
	session.Discount = 0
	return session, s.save(session)
}

// AvailableDates lists the selectable delivery/pickup dates from today.
func (s *Service) AvailableDates() []time.Time {
	return AvailableDates(s.now())
}

// Submit validates the payment fields, charges the mocked gateway, clears
// the cart, and moves the session to Confirmation with a display-only
// random order reference. On any failure the session stays on Payment.
func (s *Service) Submit(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.getOrCreate(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Step.CanAdvanceTo(domain.StepConfirmation) {
		return nil, ErrIllegalTransition
	}

	if verr := validatePayment(&session.Draft); verr != nil {
		return nil, verr
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	totals := pricing.ComputeTotals(cart, session.Draft.DeliveryMethod, session.Discount)

	result, err := s.gateway.Charge(ctx, &payment.ChargeRequest{
		SessionID:  sessionID,
		Amount:     totals.Total,
		CardNumber: session.Draft.CardNumber,
		CardName:   session.Draft.CardName,
		Expiry:     session.Draft.Expiry,
		CVV:        session.Draft.CVV,
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}

	session.Confirmation = &OrderConfirmation{
		OrderNumber:    fmt.Sprintf("%04d", rand.Intn(10000)),
		PaymentID:      result.PaymentID,
		Email:          session.Draft.Email,
		DeliveryMethod: session.Draft.DeliveryMethod,
		DeliveryDate:   session.Draft.DeliveryDate,
		Address:        confirmationAddress(&session.Draft),
		Totals:         totals,
		PlacedAt:       s.now(),
	}
	session.Step = domain.StepConfirmation
	return session, s.save(session)
}

func confirmationAddress(d *domain.OrderDraft) string {
	if d.DeliveryMethod == domain.DeliveryMethodPickup {
		return PickupLocation
	}
	return fmt.Sprintf("%s, %s, %s %s", d.Address, d.City, d.Province, d.PostalCode)
}

func (s *Service) getOrCreate(sessionID string) (*Session, error) {
	session, err := s.sessions.Get(sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	now := s.now()
	session = &Session{
		ID:        sessionID,
		Step:      domain.StepCart,
		Draft:     domain.NewOrderDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return session, s.save(session)
}

func (s *Service) save(session *Session) error {
	session.UpdatedAt = s.now()
	return s.sessions.Save(session)
}
