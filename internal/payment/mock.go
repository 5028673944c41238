package payment

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
)

// GetResponseStatus decides the outcome of a mocked charge.
type GetResponseStatus interface {
	GetStatus() (ChargeStatus, string)
}

// AlwaysApprove is the storefront default: no real payment capture takes
// place, every charge succeeds locally.
type AlwaysApprove struct{}

func (AlwaysApprove) GetStatus() (ChargeStatus, string) {
	return ChargeStatusSuccess, ""
}

// RandomStatus declines a small share of charges, useful for exercising the
// failure path in development.
type RandomStatus struct{}

func (RandomStatus) GetStatus() (ChargeStatus, string) {
	if rand.Intn(101) < 95 {
		return ChargeStatusSuccess, ""
	}
	return ChargeStatusFailed, "card declined"
}

// StatusFromMode selects the charge behavior by name. "random" declines a
// share of charges; anything else approves every charge, the storefront
// default.
func StatusFromMode(mode string) GetResponseStatus {
	if mode == "random" {
		return RandomStatus{}
	}
	return AlwaysApprove{}
}

// MockGateway simulates a payment processor. It never stores card data and
// never leaves the process.
type MockGateway struct {
	status GetResponseStatus
}

func NewMockGateway(s GetResponseStatus) *MockGateway {
	return &MockGateway{status: s}
}

func (g *MockGateway) Charge(_ context.Context, _ *ChargeRequest) (*ChargeResult, error) {
	status, reason := g.status.GetStatus()
	if status != ChargeStatusSuccess {
		return nil, &GatewayError{Reason: reason}
	}

	return &ChargeResult{
		PaymentID: uuid.New().String(),
		Status:    ChargeStatusSuccess,
	}, nil
}
