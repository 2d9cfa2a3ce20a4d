package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidPaymentToken  = errors.New("invalid payment token")
	ErrUserNotFound         = errors.New("user not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// ProcessPaymentCommand is one payment attempt as submitted by the caller.
// Amount is in major currency units (e.g. 50.00).
type ProcessPaymentCommand struct {
	UserID       string
	Amount       float64
	PaymentToken string
	Description  string
}

// IPaymentProcessorUseCase orchestrates the payment flow:
// validate -> resolve user -> ensure gateway customer -> charge -> persist.

type IPaymentProcessorUseCase interface {
	ProcessPayment(ctx context.Context, cmd ProcessPaymentCommand) (entities.Transaction, error)
	GetTransaction(ctx context.Context, id string) (entities.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string) ([]entities.Transaction, error)
}

type PaymentProcessorUseCase struct {
	users        interfaces.IUserRepository
	transactions interfaces.ITransactionRepository
	gateway      interfaces.IPaymentGateway
	currency     string
}

var _ IPaymentProcessorUseCase = (*PaymentProcessorUseCase)(nil)

func NewPaymentProcessorUseCase(
	users interfaces.IUserRepository,
	transactions interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	currency string,
) *PaymentProcessorUseCase {
	return &PaymentProcessorUseCase{
		users:        users,
		transactions: transactions,
		gateway:      gateway,
		currency:     currency,
	}
}

// ProcessPayment runs one attempt end to end. A declined card is a normal
// outcome: the attempt is persisted as FAILED and returned without error.
// Exactly one Transaction row is written per charged attempt.
func (u *PaymentProcessorUseCase) ProcessPayment(ctx context.Context, cmd ProcessPaymentCommand) (entities.Transaction, error) {
	userID := strings.TrimSpace(cmd.UserID)
	log.Printf("[payment][usecase] process start user_id=%s amount=%.2f", userID, cmd.Amount)

	if userID == "" {
		return entities.Transaction{}, ErrInvalidUserID
	}
	if cmd.Amount <= 0 {
		log.Printf("[payment][usecase] invalid amount user_id=%s amount=%.2f", userID, cmd.Amount)
		return entities.Transaction{}, ErrInvalidAmount
	}
	token := strings.TrimSpace(cmd.PaymentToken)
	if token == "" {
		log.Printf("[payment][usecase] missing payment token user_id=%s", userID)
		return entities.Transaction{}, ErrInvalidPaymentToken
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured user_id=%s", userID)
		return entities.Transaction{}, errors.New("payment gateway not configured")
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading user user_id=%s err=%v", userID, err)
		return entities.Transaction{}, err
	}
	if user.ID == "" {
		log.Printf("[payment][usecase] user not found user_id=%s", userID)
		return entities.Transaction{}, ErrUserNotFound
	}

	customerID := user.GatewayCustomerID
	if customerID == "" {
		log.Printf("[payment][usecase] provisioning gateway customer user_id=%s", userID)
		customerID, err = u.gateway.CreateCustomer(ctx, user.Email, user.Username)
		if err != nil {
			log.Printf("[payment][usecase] customer provisioning failed user_id=%s err=%v", userID, err)
			return entities.Transaction{}, err
		}
		// A failed write here does not block the charge: the reference is
		// re-derivable, the next payment just provisions a fresh customer.
		if err := u.users.SetGatewayCustomerID(ctx, user.ID, customerID); err != nil {
			log.Printf("[payment][usecase] persisting customer reference failed user_id=%s customer_id=%s err=%v", userID, customerID, err)
		}
	}

	// The transaction id doubles as the provider idempotency key, so a
	// network-level retry of this attempt cannot double-charge.
	txID := uuid.NewString()
	result, err := u.gateway.ChargeWithToken(ctx, interfaces.ChargeInput{
		AmountCents:    toMinorUnits(cmd.Amount),
		Currency:       u.currency,
		CustomerID:     customerID,
		Token:          token,
		Description:    cmd.Description,
		IdempotencyKey: txID,
	})
	if err != nil {
		log.Printf("[payment][usecase] charge failed user_id=%s err=%v", userID, err)
		return entities.Transaction{}, err
	}

	status := entities.TransactionStatusFailed
	if result.Success {
		status = entities.TransactionStatusSuccess
	}

	t := entities.Transaction{
		ID:              txID,
		UserID:          user.ID,
		Amount:          cmd.Amount,
		Currency:        u.currency,
		GatewayChargeID: result.ChargeID,
		CardLast4:       result.CardLast4,
		CardBrand:       result.CardBrand,
		Status:          status,
		Description:     cmd.Description,
		ErrorMessage:    result.ErrorMessage,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := u.transactions.Create(ctx, t)
	if err != nil {
		if result.Success {
			// The remote charge went through but the local row is lost.
			// Log everything needed to reconcile the row by hand.
			log.Printf("[payment][usecase] RECONCILE: charge succeeded but persistence failed user_id=%s charge_id=%s amount=%.2f %s err=%v",
				userID, result.ChargeID, cmd.Amount, u.currency, err)
		} else {
			log.Printf("[payment][usecase] transaction persist failed user_id=%s err=%v", userID, err)
		}
		return entities.Transaction{}, err
	}

	log.Printf("[payment][usecase] process done user_id=%s transaction_id=%s status=%s", userID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentProcessorUseCase) GetTransaction(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.transactions.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *PaymentProcessorUseCase) ListUserTransactions(ctx context.Context, userID string) ([]entities.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	items, err := u.transactions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Newest first, matching the original listing order.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// toMinorUnits converts a major-unit amount to integer cents for the gateway.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
