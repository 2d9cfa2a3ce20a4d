package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway implements interfaces.IPaymentGateway against the Stripe API.
//
// Charging is two remote calls: attach the one-time token to the customer as
// a payment source, then create the charge against the customer. Card
// declines are converted into a failed ChargeResult; every other provider
// error is mapped to one of the interfaces.ErrGateway* kinds.
type StripeGateway struct {
	api *client.API
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeGateway{api: client.New(secretKey, nil)}, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	log.Printf("[payment][gateway] create customer start email=%s", email)

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cust, err := g.api.Customers.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create customer failed email=%s err=%v", email, err)
		return "", mapStripeError(err)
	}

	log.Printf("[payment][gateway] create customer success customer_id=%s", cust.ID)
	return cust.ID, nil
}

func (g *StripeGateway) ChargeWithToken(ctx context.Context, in interfaces.ChargeInput) (entities.ChargeResult, error) {
	log.Printf("[payment][gateway] charge start customer_id=%s amount_cents=%d", in.CustomerID, in.AmountCents)

	sourceParams := &stripe.PaymentSourceParams{
		Customer: stripe.String(in.CustomerID),
		Source:   &stripe.PaymentSourceSourceParams{Token: stripe.String(in.Token)},
	}
	sourceParams.Context = ctx

	if _, err := g.api.PaymentSources.New(sourceParams); err != nil {
		if declined, res := declineResult(err); declined {
			log.Printf("[payment][gateway] token attach declined customer_id=%s", in.CustomerID)
			return res, nil
		}
		log.Printf("[payment][gateway] token attach failed customer_id=%s err=%v", in.CustomerID, err)
		return entities.ChargeResult{}, mapStripeError(err)
	}

	chargeParams := &stripe.ChargeParams{
		Amount:      stripe.Int64(in.AmountCents),
		Currency:    stripe.String(in.Currency),
		Customer:    stripe.String(in.CustomerID),
		Description: stripe.String(in.Description),
	}
	chargeParams.Context = ctx
	if in.IdempotencyKey != "" {
		chargeParams.IdempotencyKey = stripe.String(in.IdempotencyKey)
	}

	ch, err := g.api.Charges.New(chargeParams)
	if err != nil {
		if declined, res := declineResult(err); declined {
			log.Printf("[payment][gateway] charge declined customer_id=%s", in.CustomerID)
			return res, nil
		}
		log.Printf("[payment][gateway] charge failed customer_id=%s err=%v", in.CustomerID, err)
		return entities.ChargeResult{}, mapStripeError(err)
	}

	res := entities.ChargeResult{
		Success:   ch.Paid,
		ChargeID:  ch.ID,
		CardLast4: entities.CardLast4Placeholder,
		CardBrand: entities.CardBrandPlaceholder,
	}
	if ch.Source != nil && ch.Source.Card != nil {
		if ch.Source.Card.Last4 != "" {
			res.CardLast4 = ch.Source.Card.Last4
		}
		if ch.Source.Card.Brand != "" {
			res.CardBrand = string(ch.Source.Card.Brand)
		}
	}
	if !res.Success {
		res.ErrorMessage = "charge not paid"
	}

	log.Printf("[payment][gateway] charge success charge_id=%s paid=%t", ch.ID, ch.Paid)
	return res, nil
}

// declineResult converts a card-decline error into a failed ChargeResult.
// Declines are a business outcome, not a server failure.
func declineResult(err error) (bool, entities.ChargeResult) {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) || sErr.Type != stripe.ErrorTypeCard {
		return false, entities.ChargeResult{}
	}

	msg := sErr.Msg
	if msg == "" {
		msg = "card declined"
	}
	return true, entities.ChargeResult{
		Success:      false,
		CardLast4:    entities.CardLast4Placeholder,
		CardBrand:    entities.CardBrandPlaceholder,
		ErrorMessage: msg,
	}
}

func mapStripeError(err error) error {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		// The request never produced a provider response.
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	switch sErr.Err.(type) {
	case *stripe.RateLimitError:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayRateLimited, sErr.Msg)
	case *stripe.AuthenticationError, *stripe.PermissionError:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayUnauthorized, sErr.Msg)
	case *stripe.InvalidRequestError, *stripe.IdempotencyError:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayInvalidRequest, sErr.Msg)
	}

	switch sErr.HTTPStatusCode {
	case 429:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayRateLimited, sErr.Msg)
	case 401, 403:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayUnauthorized, sErr.Msg)
	case 400, 404:
		return fmt.Errorf("%w: %s", interfaces.ErrGatewayInvalidRequest, sErr.Msg)
	}
	return err
}
