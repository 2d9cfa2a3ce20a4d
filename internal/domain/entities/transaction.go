package entities

import "time"

// TransactionStatus represents the outcome of one payment attempt.
//
// SUCCESS means the gateway reported the charge as paid. Everything else,
// declines included, is FAILED.

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is the immutable record of one payment attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Rows are insert-only: a Transaction is created exactly once per attempt and
// never updated or deleted. ErrorMessage is populated iff Status is FAILED.
type Transaction struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	GatewayChargeID string            `json:"gateway_charge_id,omitempty"`
	CardLast4       string            `json:"card_last4,omitempty"`
	CardBrand       string            `json:"card_brand,omitempty"`
	Status          TransactionStatus `json:"status"`
	Description     string            `json:"description,omitempty"`
	ErrorMessage    string            `json:"error_message,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
