package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	mock_interfaces "payment_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProcessor(ctrl *gomock.Controller) (*PaymentProcessorUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockITransactionRepository, *mock_interfaces.MockIPaymentGateway) {
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentProcessorUseCase(users, transactions, gateway, "usd"), users, transactions, gateway
}

func TestPaymentProcessor_ProcessPayment_Validations(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newProcessor(ctrl)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: " ", Amount: 10, PaymentToken: "tok_visa"})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("zero amount rejected before any gateway or store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newProcessor(ctrl)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 0, PaymentToken: "tok_visa"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount rejected before any gateway or store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newProcessor(ctrl)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: -5.00, PaymentToken: "tok_visa"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newProcessor(ctrl)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "  "})
		if !errors.Is(err, ErrInvalidPaymentToken) {
			t.Fatalf("expected ErrInvalidPaymentToken, got %v", err)
		}
	})

	t.Run("unknown user rejected with no gateway or store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _, _ := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-missing").Return(entities.User{}, nil)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-missing", Amount: 10, PaymentToken: "tok_visa"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestPaymentProcessor_ProcessPayment_CustomerProvisioning(t *testing.T) {
	t.Run("user without customer reference provisions exactly once before charging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com"}, nil)

		create := gateway.EXPECT().CreateCustomer(gomock.Any(), "alice@test.com", "alice").Return("cus_new", nil).Times(1)
		persist := users.EXPECT().SetGatewayCustomerID(gomock.Any(), "u-1", "cus_new").Return(nil)
		charge := gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.ChargeInput) (entities.ChargeResult, error) {
				if in.CustomerID != "cus_new" {
					t.Fatalf("charge used customer %q, want cus_new", in.CustomerID)
				}
				return entities.ChargeResult{Success: true, ChargeID: "ch_1", CardLast4: "4242", CardBrand: "Visa"}, nil
			})
		gomock.InOrder(create, persist, charge)

		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) { return tr, nil })

		created, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.TransactionStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", created.Status)
		}
	})

	t.Run("existing customer reference triggers zero customer creations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com", GatewayCustomerID: "cus_existing"}, nil)
		gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{Success: true, ChargeID: "ch_1", CardLast4: "4242", CardBrand: "Visa"}, nil)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) { return tr, nil })

		if _, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure persisting the customer reference does not block the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com"}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "alice@test.com", "alice").Return("cus_new", nil)
		users.EXPECT().SetGatewayCustomerID(gomock.Any(), "u-1", "cus_new").Return(errors.New("db down"))
		gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{Success: true, ChargeID: "ch_1", CardLast4: "4242", CardBrand: "Visa"}, nil)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) { return tr, nil })

		created, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.TransactionStatusSuccess {
			t.Fatalf("expected SUCCESS, got %s", created.Status)
		}
	})

	t.Run("customer provisioning failure aborts before charging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com"}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "alice@test.com", "alice").Return("", interfaces.ErrGatewayUnavailable)

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"})
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentProcessor_ProcessPayment_Charge(t *testing.T) {
	t.Run("successful charge persists one SUCCESS row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com", GatewayCustomerID: "cus_1"}, nil)
		gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.ChargeInput) (entities.ChargeResult, error) {
				if in.AmountCents != 5000 {
					t.Fatalf("amount_cents = %d, want 5000", in.AmountCents)
				}
				if in.Currency != "usd" || in.Token != "tok_visa" {
					t.Fatalf("unexpected charge input: %+v", in)
				}
				if in.IdempotencyKey == "" {
					t.Fatal("expected a provider idempotency key")
				}
				return entities.ChargeResult{Success: true, ChargeID: "ch_1", CardLast4: "4242", CardBrand: "Visa"}, nil
			})
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				if tr.Status != entities.TransactionStatusSuccess {
					t.Fatalf("persisted status = %s, want SUCCESS", tr.Status)
				}
				if tr.ErrorMessage != "" {
					t.Fatalf("unexpected error message on success: %q", tr.ErrorMessage)
				}
				return tr, nil
			})

		created, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 50.00, PaymentToken: "tok_visa", Description: "order 42"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Amount != 50.00 || created.GatewayChargeID != "ch_1" {
			t.Fatalf("unexpected transaction: %+v", created)
		}
		if created.ID == "" {
			t.Fatal("expected a transaction id")
		}
	})

	t.Run("declined card persists one FAILED row and returns without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com", GatewayCustomerID: "cus_1"}, nil)
		gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{
			Success:      false,
			CardLast4:    entities.CardLast4Placeholder,
			CardBrand:    entities.CardBrandPlaceholder,
			ErrorMessage: "Your card was declined.",
		}, nil)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (entities.Transaction, error) {
				if tr.Status != entities.TransactionStatusFailed {
					t.Fatalf("persisted status = %s, want FAILED", tr.Status)
				}
				if tr.ErrorMessage == "" {
					t.Fatal("expected a non-empty error message on decline")
				}
				return tr, nil
			})

		created, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 50.00, PaymentToken: "tok_chargeDeclined"})
		if err != nil {
			t.Fatalf("a decline must not surface as an error, got %v", err)
		}
		if created.Status != entities.TransactionStatusFailed {
			t.Fatalf("expected FAILED, got %s", created.Status)
		}
	})

	t.Run("gateway failure kinds propagate without persisting", func(t *testing.T) {
		kinds := []error{
			interfaces.ErrGatewayRateLimited,
			interfaces.ErrGatewayInvalidRequest,
			interfaces.ErrGatewayUnauthorized,
			interfaces.ErrGatewayUnavailable,
		}
		for _, kind := range kinds {
			ctrl := gomock.NewController(t)
			uc, users, _, gateway := newProcessor(ctrl)

			users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com", GatewayCustomerID: "cus_1"}, nil)
			gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{}, kind)

			_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"})
			if !errors.Is(err, kind) {
				t.Fatalf("expected %v, got %v", kind, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("persistence failure after a successful charge surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, transactions, gateway := newProcessor(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Username: "alice", Email: "alice@test.com", GatewayCustomerID: "cus_1"}, nil)
		gateway.EXPECT().ChargeWithToken(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{Success: true, ChargeID: "ch_1", CardLast4: "4242", CardBrand: "Visa"}, nil)
		transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("db down"))

		_, err := uc.ProcessPayment(context.Background(), ProcessPaymentCommand{UserID: "u-1", Amount: 10, PaymentToken: "tok_visa"})
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down error, got %v", err)
		}
	})
}

func TestPaymentProcessor_GetTransaction(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newProcessor(ctrl)

		_, err := uc.GetTransaction(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, transactions, _ := newProcessor(ctrl)

		transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{}, nil)

		_, err := uc.GetTransaction(context.Background(), "tx-1")
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, transactions, _ := newProcessor(ctrl)

		transactions.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", Status: entities.TransactionStatusSuccess}, nil)

		got, err := uc.GetTransaction(context.Background(), "tx-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "tx-1" {
			t.Fatalf("unexpected transaction: %+v", got)
		}
	})
}

func TestPaymentProcessor_ListUserTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, transactions, _ := newProcessor(ctrl)

	older := entities.Transaction{ID: "tx-old", CreatedAt: mustParseTime(t, "2025-01-01T10:00:00Z")}
	newer := entities.Transaction{ID: "tx-new", CreatedAt: mustParseTime(t, "2025-02-01T10:00:00Z")}
	transactions.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.Transaction{older, newer}, nil)

	got, err := uc.ListUserTransactions(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "tx-new" || got[1].ID != "tx-old" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{50.00, 5000},
		{0.01, 1},
		{19.99, 1999},
		{1.15, 115},
	}
	for _, c := range cases {
		if got := toMinorUnits(c.amount); got != c.want {
			t.Fatalf("toMinorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}

func mustParseTime(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t.Fatalf("parse time %q: %v", v, err)
	}
	return parsed
}
