package payment

import (
	"context"
	"fmt"

	"github.com/emidobak1/happy-snail/internal/domain"
)

type ChargeStatus int

const (
	ChargeStatusSuccess ChargeStatus = iota
	ChargeStatusFailed
)

type ChargeRequest struct {
	SessionID  string
	Amount     domain.Cents
	CardNumber string
	CardName   string
	Expiry     string
	CVV        string
}

type ChargeResult struct {
	PaymentID string
	Status    ChargeStatus
	Reason    string
}

// Gateway is the payment collaborator. The storefront ships with a mocked
// implementation; a real processor would slot in behind this interface.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

// GatewayError is the "submission failed" error kind reserved for a real
// backend: timeouts, declined cards, processor outages.
type GatewayError struct {
	Reason string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}
