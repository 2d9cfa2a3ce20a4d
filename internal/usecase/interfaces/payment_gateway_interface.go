package interfaces

import (
	"context"
	"errors"

	"payment_gateway/internal/domain/entities"
)

// Gateway failure kinds shared by the gateway client and its callers.
//
// A card decline is NOT among these: declines come back as a failed
// entities.ChargeResult because they are an expected business outcome. The
// errors below are the exceptional provider failures, each mapped to its own
// HTTP status at the handler boundary.
var (
	ErrGatewayRateLimited    = errors.New("payment gateway rate limited")
	ErrGatewayInvalidRequest = errors.New("payment gateway invalid request")
	ErrGatewayUnauthorized   = errors.New("payment gateway authentication failed")
	ErrGatewayUnavailable    = errors.New("payment gateway unreachable")
)

// ChargeInput carries everything the gateway needs for one charge attempt.
// AmountCents is in minor currency units. IdempotencyKey is sent to the
// provider so a network-level retry of the same attempt cannot double-charge.
type ChargeInput struct {
	AmountCents    int64
	Currency       string
	CustomerID     string
	Token          string
	Description    string
	IdempotencyKey string
}

// IPaymentGateway abstracts the external payment provider (e.g. Stripe).
//
// CreateCustomer returns the provider's opaque customer reference.
// ChargeWithToken attaches the one-time token to the customer as a payment
// source and creates the charge.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	ChargeWithToken(ctx context.Context, in ChargeInput) (entities.ChargeResult, error)
}
