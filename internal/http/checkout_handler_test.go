package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emidobak1/happy-snail/internal/checkout"
	"github.com/emidobak1/happy-snail/internal/domain"
	"github.com/emidobak1/happy-snail/internal/pricing"
)

type checkoutServiceMock struct {
	session *checkout.Session
	cart    *domain.Cart
	totals  pricing.Totals
	err     error
	dates   []time.Time
}

func (m checkoutServiceMock) State(context.Context, string) (*checkout.Session, *domain.Cart, pricing.Totals, error) {
	if m.err != nil {
		return nil, nil, pricing.Totals{}, m.err
	}
	return m.session, m.cart, m.totals, nil
}

func (m checkoutServiceMock) UpdateDraft(context.Context, string, domain.OrderDraft) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) Advance(context.Context, string) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) Back(context.Context, string) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) ApplyCoupon(context.Context, string, string) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) RemoveCoupon(context.Context, string) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) Submit(context.Context, string) (*checkout.Session, error) {
	return m.session, m.err
}

func (m checkoutServiceMock) AvailableDates() []time.Time {
	return m.dates
}

func testSession() *checkout.Session {
	return &checkout.Session{
		ID:    "sess-test",
		Step:  domain.StepCustomerInfo,
		Draft: domain.NewOrderDraft(),
	}
}

func TestGetState_Success(t *testing.T) {
	mock := checkoutServiceMock{
		session: testSession(),
		cart:    testCart(),
		totals:  pricing.Totals{Subtotal: 13000, Tax: 1690, Total: 14690},
	}
	handler := NewCheckoutHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.GetState(recorder, withSession(httptest.NewRequest("GET", "/", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response CheckoutStateDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, domain.StepCustomerInfo, response.Session.Step)
	assert.Equal(t, domain.Cents(14690), response.Totals.Total)
}

func TestNext_ValidationFailureMapsTo422(t *testing.T) {
	mock := checkoutServiceMock{
		err: &checkout.ValidationError{Field: "email", Message: "please enter a valid email address"},
	}
	handler := NewCheckoutHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Next(recorder, withSession(httptest.NewRequest("POST", "/", nil)))

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "validation_failed", response.Code)
	assert.Equal(t, "email", response.Details)
}

func TestBack_IllegalTransitionMapsTo409(t *testing.T) {
	mock := checkoutServiceMock{err: checkout.ErrIllegalTransition}
	handler := NewCheckoutHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Back(recorder, withSession(httptest.NewRequest("POST", "/", nil)))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestApplyCoupon_RequiresCode(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{session: testSession()}, 5*time.Second)

	body, _ := json.Marshal(ApplyCouponRequestDTO{Code: ""})
	recorder := httptest.NewRecorder()
	handler.ApplyCoupon(recorder, withSession(httptest.NewRequest("POST", "/", bytes.NewReader(body))))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmit_Success(t *testing.T) {
	session := testSession()
	session.Step = domain.StepConfirmation
	session.Confirmation = &checkout.OrderConfirmation{OrderNumber: "0042"}
	handler := NewCheckoutHandler(checkoutServiceMock{session: session}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.Submit(recorder, withSession(httptest.NewRequest("POST", "/", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response checkout.Session
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.NotNil(t, response.Confirmation)
	assert.Equal(t, "0042", response.Confirmation.OrderNumber)
}

func TestGetDates_FormatsLabels(t *testing.T) {
	wednesday := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	handler := NewCheckoutHandler(checkoutServiceMock{dates: []time.Time{wednesday}}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.GetDates(recorder, withSession(httptest.NewRequest("GET", "/", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []DateDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "2026-09-02", response[0].Date)
	assert.Equal(t, "Wed, Sep 2", response[0].Label)
}

func TestGetState_OmitsCardDataFromResponse(t *testing.T) {
	session := testSession()
	session.Draft.CardNumber = "4111 1111 1111 1111"
	session.Draft.CVV = "123"
	session.Draft.CardName = "Maya Chen"
	mock := checkoutServiceMock{session: session, cart: testCart()}
	handler := NewCheckoutHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.GetState(recorder, withSession(httptest.NewRequest("GET", "/", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response CheckoutStateDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Empty(t, response.Session.Draft.CardNumber)
	assert.Empty(t, response.Session.Draft.CVV)
	assert.Equal(t, "Maya Chen", response.Session.Draft.CardName)

	// the service's copy is untouched
	assert.Equal(t, "4111 1111 1111 1111", session.Draft.CardNumber)
}

func TestGetState_NoSession(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	handler.GetState(recorder, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
