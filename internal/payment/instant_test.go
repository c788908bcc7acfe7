package payment_test

import (
	"context"
	"testing"

	models "github.com/kabirm/safarnama/internal"
	"github.com/kabirm/safarnama/internal/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantGatewayCharge(t *testing.T) {
	gateway := payment.NewInstantGateway()

	result, err := gateway.Charge(context.Background(), decimal.NewFromInt(1300), models.MethodUPI)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, result.Status)
	assert.NotEmpty(t, result.Reference)
}
