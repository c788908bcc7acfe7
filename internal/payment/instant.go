// Package payment provides the in-process payment gateway. Every charge
// settles synchronously as paid; a real gateway slots in behind
// ports.PaymentGateway without changing the booking state machine.
package payment

import (
	"context"

	models "github.com/kabirm/safarnama/internal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InstantGateway struct{}

func NewInstantGateway() *InstantGateway {
	return &InstantGateway{}
}

func (g *InstantGateway) Charge(ctx context.Context, amount decimal.Decimal, method models.PaymentMethod) (models.PaymentResult, error) {
	return models.PaymentResult{
		Status:    models.PaymentPaid,
		Reference: uuid.New().String(),
	}, nil
}
