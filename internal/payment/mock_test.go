package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declineAll struct{}

func (declineAll) GetStatus() (ChargeStatus, string) {
	return ChargeStatusFailed, "insufficient funds"
}

func TestCharge_Approved(t *testing.T) {
	gw := NewMockGateway(AlwaysApprove{})

	result, err := gw.Charge(context.Background(), &ChargeRequest{
		SessionID: "s1",
		Amount:    14690,
	})
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusSuccess, result.Status)
	assert.NotEmpty(t, result.PaymentID)
}

func TestStatusFromMode_DefaultsToApprove(t *testing.T) {
	assert.IsType(t, AlwaysApprove{}, StatusFromMode(""))
	assert.IsType(t, AlwaysApprove{}, StatusFromMode("approve"))
	assert.IsType(t, RandomStatus{}, StatusFromMode("random"))
}

func TestStatusFromMode_ApproveNeverDeclines(t *testing.T) {
	gw := NewMockGateway(StatusFromMode("approve"))

	for i := 0; i < 100; i++ {
		result, err := gw.Charge(context.Background(), &ChargeRequest{Amount: 14690})
		require.NoError(t, err)
		assert.Equal(t, ChargeStatusSuccess, result.Status)
	}
}

func TestCharge_DeclinedReturnsGatewayError(t *testing.T) {
	gw := NewMockGateway(declineAll{})

	result, err := gw.Charge(context.Background(), &ChargeRequest{Amount: 100})
	require.Error(t, err)
	assert.Nil(t, result)

	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, "insufficient funds", gwErr.Reason)
}
